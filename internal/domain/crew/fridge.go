package crew

import (
	"voidminer/internal/domain/numeric"
	"voidminer/internal/domain/outcome"
	"voidminer/internal/domain/resource"
)

type Fridge struct {
	Unlocked      bool    `json:"unlocked"`
	Bars          float64 `json:"bars"`
	BarCapacity   float64 `json:"bar_capacity"`
	WaterLiters   float64 `json:"water_liters"`
	WaterCapacity float64 `json:"water_capacity"`
}

func DefaultFridge() Fridge {
	return Fridge{Unlocked: true, BarCapacity: 12, WaterCapacity: 10}
}

// Clamp keeps both stocks inside [0, capacity].
func (f Fridge) Clamp() Fridge {
	if f.BarCapacity < 0 {
		f.BarCapacity = 0
	}
	if f.WaterCapacity < 0 {
		f.WaterCapacity = 0
	}
	f.Bars = numeric.Round4(numeric.Clamp(f.Bars, 0, f.BarCapacity))
	f.WaterLiters = numeric.Round4(numeric.Clamp(f.WaterLiters, 0, f.WaterCapacity))
	return f
}

type TransferResult struct {
	Outcome   outcome.Outcome
	Fridge    Fridge
	Inventory resource.Inventory
	Moved     float64
}

// LoadBars moves bars from cargo into the fridge. A non-positive request
// means "as many as fit".
func LoadBars(f Fridge, inv resource.Inventory, requested float64, cfg Config) TransferResult {
	return load(f, inv, requested, cfg.BarResourceID, "Cargo has no galaxy bars.",
		f.BarCapacity-f.Bars, func(f *Fridge, amount float64) { f.Bars += amount })
}

func LoadWater(f Fridge, inv resource.Inventory, requested float64, cfg Config) TransferResult {
	return load(f, inv, requested, cfg.WaterResourceID, "Cargo has no water.",
		f.WaterCapacity-f.WaterLiters, func(f *Fridge, amount float64) { f.WaterLiters += amount })
}

func load(f Fridge, inv resource.Inventory, requested float64, resourceID, emptyReason string, remaining float64, apply func(*Fridge, float64)) TransferResult {
	blocked := func(reason string) TransferResult {
		return TransferResult{Outcome: outcome.Blocked(reason), Fridge: f, Inventory: inv.Clone()}
	}
	if !f.Unlocked {
		return blocked("Fridge is locked.")
	}
	available := inv.Get(resourceID)
	if available <= 0 {
		return blocked(emptyReason)
	}
	if remaining <= 0 {
		return blocked("Fridge is full.")
	}
	amount := available
	if requested > 0 && requested < amount {
		amount = requested
	}
	if remaining < amount {
		amount = remaining
	}
	amount = numeric.Round4(amount)
	if amount <= 0 {
		return blocked("Fridge is full.")
	}
	next, moved := inv.Take(resourceID, amount)
	apply(&f, moved)
	return TransferResult{Outcome: outcome.Applied(), Fridge: f.Clamp(), Inventory: next, Moved: moved}
}
