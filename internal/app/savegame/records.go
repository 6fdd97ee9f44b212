package savegame

import (
	"encoding/json"

	"voidminer/internal/domain/crew"
	"voidminer/internal/domain/economy"
	"voidminer/internal/domain/ledger"
	"voidminer/internal/domain/numeric"
	"voidminer/internal/domain/resource"
	"voidminer/internal/domain/tick"
)

const SimulationVersion = 1

type Stats struct {
	Meals       int   `json:"meals"`
	Drinks      int   `json:"drinks"`
	Extractions int   `json:"extractions"`
	Failures    int   `json:"failures"`
	Ticks       int64 `json:"ticks"`
}

type CrewRecord struct {
	Members    []crew.Member        `json:"members"`
	Fridge     crew.Fridge          `json:"fridge"`
	Starvation crew.StarvationState `json:"starvation"`
}

type SimulationRecord struct {
	Version           int                          `json:"version"`
	CycleTimeSeconds  int64                        `json:"cycle_time_seconds"`
	LastSyncUnix      int64                        `json:"last_sync_unix"`
	Energy            float64                      `json:"energy"`
	MaxEnergy         float64                      `json:"max_energy"`
	Credits           float64                      `json:"credits"`
	Market            economy.MarketState          `json:"market"`
	Station           economy.StationState         `json:"station"`
	AutoCraftUnlocked bool                         `json:"auto_craft_unlocked"`
	AutoCraftEnabled  bool                         `json:"auto_craft_enabled"`
	Log               []economy.LogEntry           `json:"log"`
	Events            []economy.ExtractionEvent    `json:"events"`
	LastFiredAtMs     int64                        `json:"last_fired_at_ms"`
	LastWarningAtMs   int64                        `json:"last_warning_at_ms"`
	Failures          []economy.FailureReportEntry `json:"failures"`
	Stats             Stats                        `json:"stats"`
}

// Split breaks a state into its three persisted records.
func Split(s tick.State, lastSyncUnix int64, stats Stats) (resource.Inventory, CrewRecord, SimulationRecord) {
	return s.Inventory.Clone(),
		CrewRecord{Members: crew.Clone(s.Crew), Fridge: s.Fridge, Starvation: s.Starvation},
		SimulationRecord{
			Version:           SimulationVersion,
			CycleTimeSeconds:  s.CycleTimeSeconds,
			LastSyncUnix:      lastSyncUnix,
			Energy:            s.Energy,
			MaxEnergy:         s.MaxEnergy,
			Credits:           s.Credits,
			Market:            s.Market.Clone(),
			Station:           s.Station,
			AutoCraftUnlocked: s.AutoCraftUnlocked,
			AutoCraftEnabled:  s.AutoCraftEnabled,
			Log:               s.Log,
			Events:            s.Events,
			LastFiredAtMs:     s.LastFiredAtMs,
			LastWarningAtMs:   s.LastWarningAtMs,
			Failures:          s.Failures,
			Stats:             stats,
		}
}

func Assemble(inv resource.Inventory, c CrewRecord, sim SimulationRecord, cfg tick.Config) tick.State {
	s := tick.State{
		CycleTimeSeconds:  sim.CycleTimeSeconds,
		Energy:            sim.Energy,
		MaxEnergy:         sim.MaxEnergy,
		Credits:           sim.Credits,
		Inventory:         inv.Clone(),
		Crew:              crew.Clone(c.Members),
		Fridge:            c.Fridge,
		Starvation:        c.Starvation,
		Market:            sim.Market.Clone(),
		Station:           sim.Station,
		AutoCraftUnlocked: sim.AutoCraftUnlocked,
		AutoCraftEnabled:  sim.AutoCraftEnabled,
		Log:               sim.Log,
		Events:            sim.Events,
		LastFiredAtMs:     sim.LastFiredAtMs,
		LastWarningAtMs:   sim.LastWarningAtMs,
		Failures:          sim.Failures,
	}
	return tick.Refresh(s, cfg)
}

func DecodeInventory(b []byte, fallback resource.Inventory) resource.Inventory {
	raw, err := Unwrap(b)
	if err != nil {
		return fallback.Clone()
	}
	var m map[string]float64
	if err := json.Unmarshal(raw, &m); err != nil {
		// keep whatever numeric entries survive
		f, ok := fields(b)
		if !ok {
			return fallback.Clone()
		}
		m = map[string]float64{}
		for k := range f {
			if v := field(f, k, -1.0); v >= 0 {
				m[k] = v
			}
		}
	}
	return resource.Sanitize(m)
}

func DecodeCrew(b []byte, fallback CrewRecord, cfg crew.Config) CrewRecord {
	f, ok := fields(b)
	if !ok {
		return fallback
	}
	out := CrewRecord{}
	for _, raw := range field(f, "members", []json.RawMessage(nil)) {
		var m crew.Member
		if err := json.Unmarshal(raw, &m); err != nil || m.ID == "" {
			continue
		}
		out.Members = append(out.Members, crew.Normalize(m, cfg))
	}
	if len(out.Members) == 0 {
		out.Members = crew.Clone(fallback.Members)
	}
	out.Fridge = field(f, "fridge", fallback.Fridge).Clamp()
	out.Starvation = sanitizeStarvation(field(f, "starvation", fallback.Starvation))
	return out
}

func sanitizeStarvation(s crew.StarvationState) crew.StarvationState {
	switch s.Phase {
	case crew.PhaseNone, crew.PhaseWarning, crew.PhaseLockable, crew.PhaseTriggered:
	default:
		s.Phase = crew.PhaseNone
	}
	if s.Phase == crew.PhaseTriggered {
		s.Triggered = true
	}
	return s
}

func DecodeSimulation(b []byte, fallback SimulationRecord) SimulationRecord {
	f, ok := fields(b)
	if !ok {
		return fallback
	}
	out := SimulationRecord{
		Version:           SimulationVersion,
		CycleTimeSeconds:  field(f, "cycle_time_seconds", fallback.CycleTimeSeconds),
		LastSyncUnix:      field(f, "last_sync_unix", fallback.LastSyncUnix),
		MaxEnergy:         field(f, "max_energy", fallback.MaxEnergy),
		Credits:           numeric.NonNegative4(field(f, "credits", fallback.Credits)),
		Market:            field(f, "market", fallback.Market),
		Station:           field(f, "station", fallback.Station),
		AutoCraftUnlocked: field(f, "auto_craft_unlocked", fallback.AutoCraftUnlocked),
		AutoCraftEnabled:  field(f, "auto_craft_enabled", fallback.AutoCraftEnabled),
		Log:               field(f, "log", fallback.Log),
		Events:            field(f, "events", fallback.Events),
		LastFiredAtMs:     field(f, "last_fired_at_ms", fallback.LastFiredAtMs),
		LastWarningAtMs:   field(f, "last_warning_at_ms", fallback.LastWarningAtMs),
		Failures:          field(f, "failures", fallback.Failures),
		Stats:             field(f, "stats", fallback.Stats),
	}
	if out.CycleTimeSeconds < 0 {
		out.CycleTimeSeconds = 0
	}
	if !(out.MaxEnergy > 0) {
		out.MaxEnergy = fallback.MaxEnergy
	}
	out.Energy = numeric.Round4(numeric.Clamp(field(f, "energy", fallback.Energy), 0, out.MaxEnergy))
	out.Station.ContainmentPower = numeric.ClampPercent(out.Station.ContainmentPower)
	if out.Market.Heat == nil {
		out.Market.Heat = map[string]float64{}
	}
	if n := len(out.Log); n > economy.SimulationLogLimit {
		out.Log = out.Log[n-economy.SimulationLogLimit:]
	}
	if len(out.Events) > economy.ExtractionEventLimit {
		out.Events = out.Events[:economy.ExtractionEventLimit]
	}
	if n := len(out.Failures); n > tick.FailureReportLimit {
		out.Failures = out.Failures[n-tick.FailureReportLimit:]
	}
	return out
}

// DecodeLedger returns the stored ledger shape. Validation and floor repair
// happen in ledger.Hydrate.
func DecodeLedger(b []byte) (ledger.Ledger, bool) {
	f, ok := fields(b)
	if !ok {
		return ledger.Ledger{}, false
	}
	return ledger.Ledger{
		Version:      field(f, "version", 0),
		SectorID:     field(f, "sector_id", ""),
		Seed:         field(f, "seed", uint32(0)),
		DepletedIDs:  field(f, "depleted_ids", []string(nil)),
		ZoneCounts:   field(f, "zone_counts", map[string]int(nil)),
		ClassCounts:  field(f, "class_counts", map[string]int(nil)),
		VisitedZones: field(f, "visited_zones", []string(nil)),
	}, true
}
