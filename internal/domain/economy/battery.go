package economy

import (
	"voidminer/internal/domain/numeric"
	"voidminer/internal/domain/outcome"
	"voidminer/internal/domain/resource"
)

type EnergyCellResult struct {
	Outcome   outcome.Outcome
	Inventory resource.Inventory
	Energy    float64
	Added     float64
}

func UseEnergyCell(inv resource.Inventory, energy, maxEnergy float64, itemID string, cfg Config) EnergyCellResult {
	energy = numeric.Clamp(energy, 0, maxEnergy)
	blocked := func(reason string) EnergyCellResult {
		return EnergyCellResult{Outcome: outcome.Blocked(reason), Inventory: inv.Clone(), Energy: energy}
	}
	charge, ok := cfg.EnergyCells[itemID]
	if !ok || charge <= 0 {
		return blocked(itemID + " is not an energy cell.")
	}
	if inv.Get(itemID) < 1 {
		return blocked("No " + itemID + " in cargo.")
	}
	if energy >= maxEnergy {
		return blocked("Energy is already full.")
	}
	added := numeric.Round4(numeric.Clamp(charge, 0, maxEnergy-energy))
	next, _ := inv.Take(itemID, 1)
	return EnergyCellResult{
		Outcome:   outcome.Applied(),
		Inventory: next,
		Energy:    numeric.Round4(numeric.Clamp(energy+added, 0, maxEnergy)),
		Added:     added,
	}
}
