package economy

import (
	"strconv"

	"voidminer/internal/domain/crew"
	"voidminer/internal/domain/numeric"
	"voidminer/internal/domain/resource"
)

type FailureReason string

const (
	FailureCombat     FailureReason = "combat"
	FailureStarvation FailureReason = "starvation"
)

type MaterialLine struct {
	ResourceID string  `json:"resource_id"`
	Required   float64 `json:"required"`
	Used       float64 `json:"used"`
	Shortage   float64 `json:"shortage"`
}

type FailureReportEntry struct {
	Reason         FailureReason  `json:"reason"`
	CreditsPenalty float64        `json:"credits_penalty"`
	EnergyPenalty  float64        `json:"energy_penalty"`
	Materials      []MaterialLine `json:"materials"`
	TimestampMs    int64          `json:"timestamp_ms"`
}

func (r FailureReportEntry) TotalShortage() float64 {
	total := 0.0
	for _, m := range r.Materials {
		total += m.Shortage
	}
	return numeric.Round4(total)
}

type FailureInput struct {
	Reason     FailureReason
	Inventory  resource.Inventory
	Credits    float64
	Energy     float64
	MaxEnergy  float64
	Station    StationState
	Crew       []crew.Member
	Starvation crew.StarvationState
	NowMs      int64
}

type FailureResult struct {
	Inventory  resource.Inventory
	Credits    float64
	Energy     float64
	Station    StationState
	Crew       []crew.Member
	Starvation crew.StarvationState
	Report     FailureReportEntry
	LogLine    string
}

// ApplyFailureTransition performs an emergency reset: repair materials are
// taken up to availability, the unmet remainder is billed in credits, energy
// is reset and the ship is towed back to the station.
func ApplyFailureTransition(in FailureInput, cfg Config, crewCfg crew.Config) FailureResult {
	inv := in.Inventory.Clone()
	report := FailureReportEntry{Reason: in.Reason, TimestampMs: in.NowMs}
	shortage := 0.0
	for _, id := range resource.Inventory(cfg.RepairCost).Keys() {
		required := numeric.Round4(cfg.RepairCost[id])
		if required <= 0 {
			continue
		}
		var used float64
		inv, used = inv.Take(id, required)
		line := MaterialLine{
			ResourceID: id,
			Required:   required,
			Used:       used,
			Shortage:   numeric.NonNegative4(required - used),
		}
		shortage += line.Shortage
		report.Materials = append(report.Materials, line)
	}

	penalty := numeric.Round4(cfg.FailureBaseCredits + shortage*cfg.FailureShortageRate)
	credits := numeric.NonNegative4(in.Credits - penalty)
	report.CreditsPenalty = numeric.Round4(in.Credits - credits)

	energy := numeric.Round4(numeric.Clamp(in.MaxEnergy*cfg.FailureEnergyFraction, 0, in.MaxEnergy))
	report.EnergyPenalty = numeric.NonNegative4(in.Energy - energy)

	station := in.Station
	station.Docked = true
	station.Charging = false
	station.ContainmentOn = false

	members := crew.Clone(in.Crew)
	starvation := in.Starvation
	if in.Reason == FailureStarvation {
		members = crew.ForceHeal(members, crewCfg)
		starvation = crew.StarvationState{Phase: crew.PhaseTriggered, Triggered: true}
	}

	return FailureResult{
		Inventory:  inv,
		Credits:    credits,
		Energy:     energy,
		Station:    station,
		Crew:       members,
		Starvation: starvation,
		Report:     report,
		LogLine:    failureLogLine(report),
	}
}

func failureLogLine(r FailureReportEntry) string {
	what := "Hull failure"
	if r.Reason == FailureStarvation {
		what = "Crew collapse"
	}
	return what + ": towed to the station, " + formatAmount(r.CreditsPenalty) + " credits charged."
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(numeric.Round4(v), 'f', -1, 64)
}
