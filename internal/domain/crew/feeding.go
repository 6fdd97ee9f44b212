package crew

import (
	"voidminer/internal/domain/numeric"
	"voidminer/internal/domain/outcome"
	"voidminer/internal/domain/resource"
)

type Source string

const (
	SourceFridge Source = "fridge"
	SourceCargo  Source = "cargo"
)

type ConsumeResult struct {
	Outcome   outcome.Outcome
	Members   []Member
	Fridge    Fridge
	Inventory resource.Inventory
	MemberID  string
	Source    Source
}

// FeedCrew gives one bar to the hungriest member that is not already full.
func FeedCrew(members []Member, f Fridge, inv resource.Inventory, cfg Config) ConsumeResult {
	idx := lowest(members, func(m Member) (float64, bool) {
		return m.Hunger, m.Hunger < cfg.FullThreshold
	})
	if idx < 0 {
		return unchanged(members, f, inv, outcome.NoOp("Crew is already fed."))
	}
	return feedMember(members, f, inv, idx, cfg)
}

// HydrateCrew gives one ration of water to the thirstiest member that is not already full.
func HydrateCrew(members []Member, f Fridge, inv resource.Inventory, cfg Config) ConsumeResult {
	idx := lowest(members, func(m Member) (float64, bool) {
		return m.Thirst, m.Thirst < cfg.FullThreshold
	})
	if idx < 0 {
		return unchanged(members, f, inv, outcome.NoOp("Crew is already hydrated."))
	}
	return hydrateMember(members, f, inv, idx, cfg)
}

// ScheduledFeeding is the automatic meal round: awake members at or below the
// meal threshold whose last meal is at least MealGapSeconds ago.
func ScheduledFeeding(members []Member, f Fridge, inv resource.Inventory, cfg Config) ConsumeResult {
	idx := lowest(members, func(m Member) (float64, bool) {
		return m.Hunger, !m.Sleeping && m.Hunger <= cfg.MealThreshold && m.SecondsSinceMeal >= cfg.MealGapSeconds
	})
	if idx < 0 {
		return unchanged(members, f, inv, outcome.NoOp("No meal due."))
	}
	return feedMember(members, f, inv, idx, cfg)
}

func ScheduledHydration(members []Member, f Fridge, inv resource.Inventory, cfg Config) ConsumeResult {
	idx := lowest(members, func(m Member) (float64, bool) {
		return m.Thirst, !m.Sleeping && m.Thirst <= cfg.DrinkThreshold && m.SecondsSinceDrink >= cfg.DrinkGapSeconds
	})
	if idx < 0 {
		return unchanged(members, f, inv, outcome.NoOp("No drink due."))
	}
	return hydrateMember(members, f, inv, idx, cfg)
}

func feedMember(members []Member, f Fridge, inv resource.Inventory, idx int, cfg Config) ConsumeResult {
	f, inv, src, ok := takeStock(f, inv, 1, cfg.BarResourceID, true)
	if !ok {
		return unchanged(members, f, inv, outcome.Blocked("No galaxy bars in the fridge or cargo."))
	}
	out := Clone(members)
	m := out[idx]
	if m.MealsEaten == 0 {
		m.Hunger = 100
	} else {
		m.Hunger += cfg.MealRestore
	}
	m.MealsEaten++
	m.SecondsSinceMeal = 0
	out[idx] = Normalize(m, cfg)
	return ConsumeResult{Outcome: outcome.Applied(), Members: out, Fridge: f, Inventory: inv, MemberID: m.ID, Source: src}
}

func hydrateMember(members []Member, f Fridge, inv resource.Inventory, idx int, cfg Config) ConsumeResult {
	f, inv, src, ok := takeStock(f, inv, cfg.WaterPerDrink, cfg.WaterResourceID, false)
	if !ok {
		return unchanged(members, f, inv, outcome.Blocked("No water in the fridge or cargo."))
	}
	out := Clone(members)
	m := out[idx]
	m.Thirst += cfg.DrinkRestore
	m.DrinksTaken++
	m.SecondsSinceDrink = 0
	out[idx] = Normalize(m, cfg)
	return ConsumeResult{Outcome: outcome.Applied(), Members: out, Fridge: f, Inventory: inv, MemberID: m.ID, Source: src}
}

// takeStock prefers the fridge and falls back to cargo. The fridge is skipped
// while locked.
func takeStock(f Fridge, inv resource.Inventory, amount float64, resourceID string, bars bool) (Fridge, resource.Inventory, Source, bool) {
	if f.Unlocked {
		held := f.WaterLiters
		if bars {
			held = f.Bars
		}
		if held+1e-9 >= amount {
			if bars {
				f.Bars = numeric.NonNegative4(f.Bars - amount)
			} else {
				f.WaterLiters = numeric.NonNegative4(f.WaterLiters - amount)
			}
			return f, inv.Clone(), SourceFridge, true
		}
	}
	if inv.Get(resourceID)+1e-9 >= amount {
		next, _ := inv.Take(resourceID, amount)
		return f, next, SourceCargo, true
	}
	return f, inv, "", false
}

func lowest(members []Member, value func(Member) (float64, bool)) int {
	idx := -1
	best := 0.0
	for i, m := range members {
		v, ok := value(m)
		if !ok {
			continue
		}
		if idx < 0 || v < best {
			idx, best = i, v
		}
	}
	return idx
}

func unchanged(members []Member, f Fridge, inv resource.Inventory, o outcome.Outcome) ConsumeResult {
	return ConsumeResult{Outcome: o, Members: Clone(members), Fridge: f, Inventory: inv.Clone()}
}
