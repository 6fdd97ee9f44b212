package economy

import (
	"fmt"

	"voidminer/internal/domain/numeric"
	"voidminer/internal/domain/outcome"
)

type FireInput struct {
	Energy          float64
	MaxEnergy       float64
	CrewDebuff      float64
	NowMs           int64
	TargetID        string
	Events          []ExtractionEvent
	LastFiredAtMs   int64
	LastWarningAtMs int64
}

type FireResult struct {
	Outcome         outcome.Outcome
	Energy          float64
	Events          []ExtractionEvent
	LastFiredAtMs   int64
	LastWarningAtMs int64
	// Warning is set only when a blocked shot is allowed to log.
	Warning string
}

// LaserCooldownMs grows with crew debuff.
func LaserCooldownMs(crewDebuff float64, cfg Config) int64 {
	d := numeric.ClampPercent(crewDebuff)
	return int64(float64(cfg.LaserBaseCooldownMs) * (1 + d/100*cfg.LaserDebuffCooldownFactor))
}

func AttemptFire(in FireInput, cfg Config) FireResult {
	energy := numeric.Clamp(in.Energy, 0, in.MaxEnergy)
	if reason := fireBlockReason(in, energy, cfg); reason != "" {
		res := FireResult{
			Outcome:         outcome.Blocked(reason),
			Energy:          energy,
			Events:          RecordEvent(in.Events, ExtractionEvent{Kind: EventBlocked, TargetID: in.TargetID, Reason: reason, AtMs: in.NowMs}),
			LastFiredAtMs:   lastShotAt(in),
			LastWarningAtMs: in.LastWarningAtMs,
		}
		if in.LastWarningAtMs <= 0 || in.NowMs-in.LastWarningAtMs >= cfg.LaserWarningThrottleMs {
			res.Warning = reason
			res.LastWarningAtMs = in.NowMs
		}
		return res
	}
	return FireResult{
		Outcome:         outcome.Applied(),
		Energy:          numeric.Round4(numeric.Clamp(energy-cfg.LaserShotEnergyCost, 0, in.MaxEnergy)),
		Events:          RecordEvent(in.Events, ExtractionEvent{Kind: EventFired, TargetID: in.TargetID, AtMs: in.NowMs}),
		LastFiredAtMs:   in.NowMs,
		LastWarningAtMs: in.LastWarningAtMs,
	}
}

func fireBlockReason(in FireInput, energy float64, cfg Config) string {
	if energy < cfg.LaserShotEnergyCost {
		return fmt.Sprintf("Laser needs %.0f energy; %.1f available.", cfg.LaserShotEnergyCost, energy)
	}
	if at := lastShotAt(in); at > 0 {
		cooldown := LaserCooldownMs(in.CrewDebuff, cfg)
		if in.NowMs-at < cooldown {
			return fmt.Sprintf("Laser is cooling down (%d ms).", cooldown-(in.NowMs-at))
		}
	}
	return ""
}

// lastShotAt falls back to the ring for records saved without LastFiredAtMs.
func lastShotAt(in FireInput) int64 {
	at := in.LastFiredAtMs
	if ringAt, ok := lastFiredAt(in.Events); ok && ringAt > at {
		at = ringAt
	}
	return at
}
