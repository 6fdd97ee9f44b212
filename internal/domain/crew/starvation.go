package crew

type StarvationPhase string

const (
	PhaseNone      StarvationPhase = "none"
	PhaseWarning   StarvationPhase = "warning"
	PhaseLockable  StarvationPhase = "lockable"
	PhaseTriggered StarvationPhase = "triggered"
)

type StarvationState struct {
	Phase     StarvationPhase `json:"phase"`
	Triggered bool            `json:"triggered"`
}

// StepStarvation advances the per-tick starvation machine. fired is true only
// on the tick that first reaches the critical state; Triggered then holds
// until the crew recovers.
func StepStarvation(s StarvationState, agg Aggregates, cfg Config) (next StarvationState, fired bool) {
	recovered := agg.Starving == 0 && agg.MaxDebuff < cfg.StarvationWarningDebuff
	if recovered {
		return StarvationState{Phase: PhaseNone}, false
	}
	if s.Triggered {
		return StarvationState{Phase: PhaseTriggered, Triggered: true}, false
	}
	if agg.Starving > 0 && agg.MaxDebuff >= cfg.StarvationCriticalDebuff {
		return StarvationState{Phase: PhaseTriggered, Triggered: true}, true
	}
	if agg.Starving > 0 {
		return StarvationState{Phase: PhaseLockable}, false
	}
	return StarvationState{Phase: PhaseWarning}, false
}

// ForceHeal lifts hunger and thirst to at least the safe level after a
// starvation failure.
func ForceHeal(members []Member, cfg Config) []Member {
	out := Clone(members)
	for i, m := range out {
		if m.Hunger < cfg.StarvationSafeLevel {
			m.Hunger = cfg.StarvationSafeLevel
		}
		if m.Thirst < cfg.StarvationSafeLevel {
			m.Thirst = cfg.StarvationSafeLevel
		}
		out[i] = Normalize(m, cfg)
	}
	return out
}
