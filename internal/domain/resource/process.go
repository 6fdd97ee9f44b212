package resource

import "voidminer/internal/domain/outcome"

type ProcessResult struct {
	Outcome   outcome.Outcome
	Inventory Inventory
}

func RunProcess(inv Inventory, p Process) ProcessResult {
	if !inv.HasAll(p.Consume) {
		return ProcessResult{Outcome: outcome.Blocked("Missing inputs for " + processName(p) + "."), Inventory: inv.Clone()}
	}
	next := inv.Clone()
	for _, id := range sortedKeys(p.Consume) {
		next, _ = next.Take(id, p.Consume[id])
	}
	for _, id := range sortedKeys(p.Produce) {
		next = next.Add(id, p.Produce[id])
	}
	return ProcessResult{Outcome: outcome.Applied(), Inventory: next}
}

func processName(p Process) string {
	if p.Label != "" {
		return p.Label
	}
	return p.ID
}

func sortedKeys(m map[string]float64) []string {
	return Inventory(m).Keys()
}
