package tick

import (
	"voidminer/internal/domain/crew"
	"voidminer/internal/domain/economy"
	"voidminer/internal/domain/resource"
)

const FailureReportLimit = 10

type Config struct {
	Economy economy.Config `yaml:"economy" json:"economy"`
	Crew    crew.Config    `yaml:"crew" json:"crew"`

	StartingEnergy    float64            `yaml:"starting_energy" json:"starting_energy"`
	StartingCredits   float64            `yaml:"starting_credits" json:"starting_credits"`
	StartingInventory map[string]float64 `yaml:"starting_inventory" json:"starting_inventory"`

	Catalog resource.Catalog `yaml:"-" json:"-"`
}

func DefaultConfig() Config {
	return Config{
		Economy:         economy.DefaultConfig(),
		Crew:            crew.DefaultConfig(),
		StartingEnergy:  100,
		StartingCredits: 250,
		StartingInventory: map[string]float64{
			"water":      6,
			"carbon":     4,
			"galaxyBar":  3,
			"steel":      1,
			"silicaSand": 2,
			"energyCell": 1,
		},
	}
}

type Summary struct {
	Crew     crew.Aggregates      `json:"crew"`
	Power    economy.PowerSummary `json:"power"`
	Distance float64              `json:"distance"`
}

// State is everything one tick reads and writes. AdvanceOneTick never
// mutates the state it is given.
type State struct {
	CycleTimeSeconds int64 `json:"cycle_time_seconds"`

	Energy    float64            `json:"energy"`
	MaxEnergy float64            `json:"max_energy"`
	Credits   float64            `json:"credits"`
	Inventory resource.Inventory `json:"inventory"`

	Crew       []crew.Member        `json:"crew"`
	Fridge     crew.Fridge          `json:"fridge"`
	Starvation crew.StarvationState `json:"starvation"`

	Market  economy.MarketState  `json:"market"`
	Station economy.StationState `json:"station"`

	AutoCraftUnlocked bool `json:"auto_craft_unlocked"`
	AutoCraftEnabled  bool `json:"auto_craft_enabled"`

	Log             []economy.LogEntry           `json:"log"`
	Events          []economy.ExtractionEvent    `json:"events"`
	LastFiredAtMs   int64                        `json:"last_fired_at_ms"`
	LastWarningAtMs int64                        `json:"last_warning_at_ms"`
	Failures        []economy.FailureReportEntry `json:"failures"`

	Summary Summary `json:"summary"`
}

func NewState(cfg Config) State {
	s := State{
		Energy:     cfg.StartingEnergy,
		MaxEnergy:  cfg.StartingEnergy,
		Credits:    cfg.StartingCredits,
		Inventory:  resource.Sanitize(cfg.StartingInventory),
		Crew:       crew.DefaultMembers(),
		Fridge:     crew.DefaultFridge(),
		Starvation: crew.StarvationState{Phase: crew.PhaseNone},
		Market:     economy.MarketState{Heat: map[string]float64{}},
		Station:    economy.DefaultStation(),
	}
	return Refresh(s, cfg)
}

func (s State) Clone() State {
	out := s
	out.Inventory = s.Inventory.Clone()
	out.Crew = crew.Clone(s.Crew)
	out.Market = s.Market.Clone()
	out.Log = append([]economy.LogEntry(nil), s.Log...)
	out.Events = append([]economy.ExtractionEvent(nil), s.Events...)
	out.Failures = append([]economy.FailureReportEntry(nil), s.Failures...)
	return out
}

// Refresh recomputes the derived summary from the authoritative fields.
func Refresh(s State, cfg Config) State {
	s.Summary = Summary{
		Crew:     crew.Aggregate(s.Crew),
		Power:    economy.SummaryFor(s.Station, cfg.Economy),
		Distance: economy.EffectiveDistance(s.Station),
	}
	return s
}

func AppendFailure(reports []economy.FailureReportEntry, r economy.FailureReportEntry) []economy.FailureReportEntry {
	out := append(append([]economy.FailureReportEntry(nil), reports...), r)
	if len(out) > FailureReportLimit {
		out = out[len(out)-FailureReportLimit:]
	}
	return out
}

// ApplyFailure runs the failure transition against the whole state and
// records the report.
func ApplyFailure(s State, reason economy.FailureReason, cfg Config, nowMs int64) (State, economy.FailureReportEntry) {
	s = s.Clone()
	res := economy.ApplyFailureTransition(economy.FailureInput{
		Reason:     reason,
		Inventory:  s.Inventory,
		Credits:    s.Credits,
		Energy:     s.Energy,
		MaxEnergy:  s.MaxEnergy,
		Station:    s.Station,
		Crew:       s.Crew,
		Starvation: s.Starvation,
		NowMs:      nowMs,
	}, cfg.Economy, cfg.Crew)
	s.Inventory = res.Inventory
	s.Credits = res.Credits
	s.Energy = res.Energy
	s.Station = res.Station
	s.Crew = res.Crew
	s.Starvation = res.Starvation
	s.Failures = AppendFailure(s.Failures, res.Report)
	s.Log = economy.AppendLog(s.Log, res.LogLine, nowMs)
	return Refresh(s, cfg), res.Report
}
