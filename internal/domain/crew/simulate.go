package crew

import "voidminer/internal/domain/resource"

type TickResult struct {
	Members          []Member
	Fridge           Fridge
	Inventory        resource.Inventory
	InventoryChanged bool
	FeedingEvents    int
	HydrationEvents  int
	Meal             *ConsumeResult
	Drink            *ConsumeResult
}

// SimulateTick runs one second of crew life support: decay for every member,
// then at most one scheduled meal and one scheduled drink.
func SimulateTick(members []Member, f Fridge, inv resource.Inventory, cycleSeconds int64, cfg Config) TickResult {
	hour := GameHour(cycleSeconds, cfg)
	out := make([]Member, len(members))
	for i, m := range members {
		out[i] = Decay(m, hour, cfg)
	}
	res := TickResult{Members: out, Fridge: f.Clamp(), Inventory: inv.Clone()}

	meal := ScheduledFeeding(res.Members, res.Fridge, res.Inventory, cfg)
	if meal.Outcome.IsApplied() {
		res.Members, res.Fridge, res.Inventory = meal.Members, meal.Fridge, meal.Inventory
		res.FeedingEvents++
		res.InventoryChanged = res.InventoryChanged || meal.Source == SourceCargo
		res.Meal = &meal
	}
	drink := ScheduledHydration(res.Members, res.Fridge, res.Inventory, cfg)
	if drink.Outcome.IsApplied() {
		res.Members, res.Fridge, res.Inventory = drink.Members, drink.Fridge, drink.Inventory
		res.HydrationEvents++
		res.InventoryChanged = res.InventoryChanged || drink.Source == SourceCargo
		res.Drink = &drink
	}
	return res
}
