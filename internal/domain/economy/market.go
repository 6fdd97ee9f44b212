package economy

import (
	"fmt"
	"math"

	"voidminer/internal/domain/numeric"
	"voidminer/internal/domain/outcome"
	"voidminer/internal/domain/resource"
)

// MarketState tracks price heat per resource. A missing entry is neutral (1.0);
// hotter markets pay less per unit.
type MarketState struct {
	Heat map[string]float64 `json:"heat"`
}

func (m MarketState) Clone() MarketState {
	out := MarketState{Heat: make(map[string]float64, len(m.Heat))}
	for k, v := range m.Heat {
		out.Heat[k] = v
	}
	return out
}

func (m MarketState) HeatOf(id string) float64 {
	if h, ok := m.Heat[id]; ok && h > 0 {
		return h
	}
	return 1
}

// DriftMarket relaxes every heat value toward 1.0 by the recovery step.
func DriftMarket(m MarketState, cfg Config) MarketState {
	out := MarketState{Heat: make(map[string]float64, len(m.Heat))}
	for _, id := range resource.Inventory(m.Heat).Keys() {
		h := m.Heat[id]
		if math.Abs(h-1) <= cfg.MarketRecoveryPerTick {
			continue
		}
		if h > 1 {
			h -= cfg.MarketRecoveryPerTick
		} else {
			h += cfg.MarketRecoveryPerTick
		}
		out.Heat[id] = numeric.Round4(numeric.Clamp(h, cfg.MarketMinHeat, cfg.MarketMaxHeat))
	}
	return out
}

type SaleResult struct {
	Outcome   outcome.Outcome
	Inventory resource.Inventory
	Market    MarketState
	Credits   float64
	Sold      float64
	Earned    float64
}

func SellResource(inv resource.Inventory, m MarketState, credits float64, resourceID string, qty float64, cat resource.Catalog, cfg Config) SaleResult {
	blocked := func(reason string) SaleResult {
		return SaleResult{Outcome: outcome.Blocked(reason), Inventory: inv.Clone(), Market: m.Clone(), Credits: credits}
	}
	def, err := cat.Resource(resourceID)
	if err != nil {
		return blocked(fmt.Sprintf("%s cannot be sold here.", resourceID))
	}
	held := inv.Get(resourceID)
	if held <= 0 {
		return blocked(fmt.Sprintf("No %s in cargo.", resourceID))
	}
	amount := held
	if qty > 0 && qty < amount {
		amount = qty
	}
	next, sold := inv.Take(resourceID, amount)
	heat := m.HeatOf(resourceID)
	earned := numeric.Round4(sold * def.BaseValue / heat)

	market := m.Clone()
	market.Heat[resourceID] = numeric.Round4(numeric.Clamp(heat+sold*cfg.MarketHeatPerUnit, cfg.MarketMinHeat, cfg.MarketMaxHeat))
	return SaleResult{
		Outcome:   outcome.Applied(),
		Inventory: next,
		Market:    market,
		Credits:   numeric.Round4(credits + earned),
		Sold:      sold,
		Earned:    earned,
	}
}
