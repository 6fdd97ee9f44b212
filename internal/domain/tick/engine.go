package tick

import (
	"voidminer/internal/domain/crew"
	"voidminer/internal/domain/economy"
	"voidminer/internal/domain/numeric"
)

type Signals struct {
	PersistInventory bool
	FailureTriggered bool
	FailureReason    economy.FailureReason
	FeedingEvents    int
	HydrationEvents  int
}

// AdvanceOneTick moves the simulation forward by one logical second. nowMs is
// used only for log and event timestamps.
func AdvanceOneTick(state State, cfg Config, nowMs int64) (State, Signals) {
	s := state.Clone()
	var sig Signals
	next := s.CycleTimeSeconds + 1

	s.Market = economy.DriftMarket(s.Market, cfg.Economy)

	crewRes := crew.SimulateTick(s.Crew, s.Fridge, s.Inventory, s.CycleTimeSeconds, cfg.Crew)
	s.Crew, s.Fridge, s.Inventory = crewRes.Members, crewRes.Fridge, crewRes.Inventory
	sig.FeedingEvents = crewRes.FeedingEvents
	sig.HydrationEvents = crewRes.HydrationEvents
	sig.PersistInventory = crewRes.InventoryChanged

	if s.AutoCraftUnlocked && s.AutoCraftEnabled {
		craft := economy.AutoCraft(s.Inventory, cfg.Catalog, s.Fridge.Bars, cfg.Crew.BarResourceID, next, cfg.Economy)
		if craft.Outcome.IsApplied() {
			s.Inventory = craft.Inventory
			sig.PersistInventory = true
			s.Log = economy.AppendLog(s.Log, craft.LogLine, nowMs)
		}
	}

	corridor := economy.EnforceCorridor(s.Station, cfg.Economy)
	s.Station = corridor.Station
	s.Log = economy.AppendLog(s.Log, corridor.LogLine, nowMs)

	power := economy.SummaryFor(s.Station, cfg.Economy)
	s.Energy = numeric.Round4(numeric.Clamp(s.Energy+power.ChargingRate-power.ContainmentDrain, 0, s.MaxEnergy))
	if s.Energy <= 0 && s.Station.ContainmentOn {
		s.Station.ContainmentOn = false
		s.Log = economy.AppendLog(s.Log, "Energy depleted; containment field offline.", nowMs)
	}

	agg := crew.Aggregate(s.Crew)
	prev := s.Starvation
	starvation, fired := crew.StepStarvation(prev, agg, cfg.Crew)
	s.Starvation = starvation
	if starvation.Phase == crew.PhaseWarning && prev.Phase == crew.PhaseNone {
		s.Log = economy.AppendLog(s.Log, "Crew condition deteriorating; check food and water.", nowMs)
	}
	if fired {
		sig.FailureTriggered = true
		sig.FailureReason = economy.FailureStarvation
	}

	s.CycleTimeSeconds = next
	return Refresh(s, cfg), sig
}
