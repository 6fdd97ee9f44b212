package economy

import (
	"voidminer/internal/domain/outcome"
	"voidminer/internal/domain/resource"
)

type CraftResult struct {
	Outcome   outcome.Outcome
	Inventory resource.Inventory
	LogLine   string
}

func Craft(inv resource.Inventory, cat resource.Catalog, processID string) (CraftResult, error) {
	p, err := cat.Process(processID)
	if err != nil {
		return CraftResult{}, err
	}
	res := resource.RunProcess(inv, p)
	out := CraftResult{Outcome: res.Outcome, Inventory: res.Inventory}
	if res.Outcome.IsApplied() {
		out.LogLine = "Crafted " + processLabel(p) + "."
	}
	return out, nil
}

// AutoCraft runs the configured process on interval ticks while the bar
// stock (fridge plus cargo) is below target. Ticks off the interval are NoOp.
func AutoCraft(inv resource.Inventory, cat resource.Catalog, fridgeBars float64, barID string, cycleSeconds int64, cfg Config) CraftResult {
	if cfg.AutoCraftIntervalSeconds <= 0 || cycleSeconds%cfg.AutoCraftIntervalSeconds != 0 {
		return CraftResult{Outcome: outcome.NoOp("Not an auto-craft tick."), Inventory: inv}
	}
	if fridgeBars+inv.Get(barID) >= cfg.AutoCraftTargetBars {
		return CraftResult{Outcome: outcome.NoOp("Bar stock at target."), Inventory: inv}
	}
	res, err := Craft(inv, cat, cfg.AutoCraftProcessID)
	if err != nil {
		return CraftResult{Outcome: outcome.Blocked(err.Error()), Inventory: inv}
	}
	if res.LogLine != "" {
		res.LogLine = "Auto-" + lowerFirst(res.LogLine)
	}
	return res
}

func processLabel(p resource.Process) string {
	if p.Label != "" {
		return p.Label
	}
	return p.ID
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
