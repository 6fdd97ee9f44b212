package crew

import (
	"testing"

	"voidminer/internal/domain/resource"
)

func hungryCrew() []Member {
	return []Member{
		{ID: "a", Hunger: 50, Thirst: 50, MealsEaten: 1},
		{ID: "b", Hunger: 30, Thirst: 70, MealsEaten: 1},
	}
}

func TestFeedCrew_FridgeFirstThenCargo(t *testing.T) {
	cfg := DefaultConfig()
	fridge := Fridge{Unlocked: true, Bars: 2, BarCapacity: 12}
	cargo := resource.Inventory{"galaxyBar": 5}

	res := FeedCrew(hungryCrew(), fridge, cargo, cfg)
	if !res.Outcome.IsApplied() || res.Source != SourceFridge {
		t.Fatalf("expected fridge feeding, got %+v", res.Outcome)
	}
	if res.Fridge.Bars != 1 {
		t.Fatalf("fridge bars = %v, want 1", res.Fridge.Bars)
	}
	if res.Inventory["galaxyBar"] != 5 {
		t.Fatalf("cargo bars = %v, want 5", res.Inventory["galaxyBar"])
	}
	if res.MemberID != "b" {
		t.Fatalf("expected hungriest member b, got %s", res.MemberID)
	}

	empty := res.Fridge
	empty.Bars = 0
	res = FeedCrew(res.Members, empty, res.Inventory, cfg)
	if !res.Outcome.IsApplied() || res.Source != SourceCargo {
		t.Fatalf("expected cargo feeding, got %+v", res.Outcome)
	}
	if res.Inventory["galaxyBar"] != 4 {
		t.Fatalf("cargo bars = %v, want 4", res.Inventory["galaxyBar"])
	}
}

func TestFeedCrew_FirstMealIsFullRestore(t *testing.T) {
	cfg := DefaultConfig()
	members := []Member{{ID: "a", Hunger: 20, Thirst: 80}}
	res := FeedCrew(members, Fridge{Unlocked: true, Bars: 1, BarCapacity: 4}, resource.Inventory{}, cfg)
	if res.Members[0].Hunger != 100 {
		t.Fatalf("first meal hunger = %v, want 100", res.Members[0].Hunger)
	}
	res.Members[0].Hunger = 20
	res = FeedCrew(res.Members, Fridge{Unlocked: true, Bars: 1, BarCapacity: 4}, resource.Inventory{}, cfg)
	if res.Members[0].Hunger != 20+cfg.MealRestore {
		t.Fatalf("second meal hunger = %v, want %v", res.Members[0].Hunger, 20+cfg.MealRestore)
	}
}

func TestFeedCrew_NoOpAndBlocked(t *testing.T) {
	cfg := DefaultConfig()
	full := []Member{{ID: "a", Hunger: 100, Thirst: 100}}
	if res := FeedCrew(full, DefaultFridge(), resource.Inventory{}, cfg); !res.Outcome.IsNoOp() {
		t.Fatalf("expected noop for a full crew, got %+v", res.Outcome)
	}
	if res := FeedCrew(hungryCrew(), DefaultFridge(), resource.Inventory{}, cfg); !res.Outcome.IsBlocked() {
		t.Fatalf("expected blocked without bars, got %+v", res.Outcome)
	}
}

func TestHydrateCrew_UsesFridgeWater(t *testing.T) {
	cfg := DefaultConfig()
	res := HydrateCrew(hungryCrew(), Fridge{Unlocked: true, WaterLiters: 1, WaterCapacity: 10}, resource.Inventory{"water": 3}, cfg)
	if !res.Outcome.IsApplied() || res.Source != SourceFridge {
		t.Fatalf("expected fridge water, got %+v", res)
	}
	if res.Fridge.WaterLiters != 0.5 || res.Inventory["water"] != 3 {
		t.Fatalf("unexpected stocks fridge=%v cargo=%v", res.Fridge.WaterLiters, res.Inventory["water"])
	}
	if res.MemberID != "a" || res.Members[0].Thirst != 90 {
		t.Fatalf("expected thirstiest member a at 90, got %s %+v", res.MemberID, res.Members[0])
	}
}

func TestLoadBars_ClampsToCapacityAndSource(t *testing.T) {
	cfg := DefaultConfig()
	f := Fridge{Unlocked: true, Bars: 10, BarCapacity: 12}
	res := LoadBars(f, resource.Inventory{"galaxyBar": 5}, 4, cfg)
	if !res.Outcome.IsApplied() || res.Moved != 2 {
		t.Fatalf("expected 2 bars moved, got %+v", res)
	}
	if res.Fridge.Bars != 12 || res.Inventory["galaxyBar"] != 3 {
		t.Fatalf("unexpected stocks %+v %+v", res.Fridge, res.Inventory)
	}
}

func TestLoad_BlockedReasons(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		name   string
		fridge Fridge
		cargo  resource.Inventory
		want   string
	}{
		{"locked", Fridge{BarCapacity: 4}, resource.Inventory{"galaxyBar": 1}, "Fridge is locked."},
		{"empty cargo", Fridge{Unlocked: true, BarCapacity: 4}, resource.Inventory{}, "Cargo has no galaxy bars."},
		{"full", Fridge{Unlocked: true, Bars: 4, BarCapacity: 4}, resource.Inventory{"galaxyBar": 1}, "Fridge is full."},
	}
	for _, tc := range cases {
		res := LoadBars(tc.fridge, tc.cargo, 1, cfg)
		if !res.Outcome.IsBlocked() || res.Outcome.Reason != tc.want {
			t.Fatalf("%s: got %+v, want blocked %q", tc.name, res.Outcome, tc.want)
		}
	}
	res := LoadWater(Fridge{Unlocked: true, WaterLiters: 10, WaterCapacity: 10}, resource.Inventory{"water": 1}, 0, cfg)
	if res.Outcome.Reason != "Fridge is full." {
		t.Fatalf("water full reason = %q", res.Outcome.Reason)
	}
}

func TestAggregate_RecomputedFromMembers(t *testing.T) {
	members := []Member{
		{Hunger: 40, Thirst: 60, Debuff: 10, Sleeping: true},
		{Hunger: 60, Thirst: 20, Debuff: 50, Starving: true},
	}
	agg := Aggregate(members)
	if agg.Total != 2 || agg.Awake != 1 || agg.Starving != 1 {
		t.Fatalf("unexpected counts %+v", agg)
	}
	if agg.AvgHunger != 50 || agg.AvgThirst != 40 || agg.AvgDebuff != 30 || agg.MaxDebuff != 50 {
		t.Fatalf("unexpected averages %+v", agg)
	}
}

func TestDecay_ClampsAndGrowsDebuff(t *testing.T) {
	cfg := DefaultConfig()
	m := Member{ID: "a", Hunger: 0.001, Thirst: 50, Debuff: 99.99, SleepShiftHour: 12}
	for i := 0; i < 10; i++ {
		m = Decay(m, 0, cfg)
	}
	if m.Hunger != 0 || !m.Starving {
		t.Fatalf("expected starving at zero hunger, got %+v", m)
	}
	if m.Debuff != 100 {
		t.Fatalf("debuff = %v, want clamped 100", m.Debuff)
	}
}

func TestDecay_SleepHalvesDecay(t *testing.T) {
	cfg := DefaultConfig()
	awake := Decay(Member{Hunger: 50, Thirst: 50, SleepShiftHour: 12}, 0, cfg)
	asleep := Decay(Member{Hunger: 50, Thirst: 50, SleepShiftHour: 0}, 0, cfg)
	if !asleep.Sleeping || awake.Sleeping {
		t.Fatalf("unexpected sleep flags awake=%v asleep=%v", awake.Sleeping, asleep.Sleeping)
	}
	if 50-asleep.Hunger >= 50-awake.Hunger {
		t.Fatalf("sleeping decay %v should be below awake decay %v", 50-asleep.Hunger, 50-awake.Hunger)
	}
}

func TestStepStarvation_FiresOnceUntilRecovery(t *testing.T) {
	cfg := DefaultConfig()
	s := StarvationState{Phase: PhaseNone}

	s, fired := StepStarvation(s, Aggregates{MaxDebuff: 50}, cfg)
	if fired || s.Phase != PhaseWarning {
		t.Fatalf("expected warning, got %+v fired=%v", s, fired)
	}
	s, fired = StepStarvation(s, Aggregates{Starving: 1, MaxDebuff: 60}, cfg)
	if fired || s.Phase != PhaseLockable {
		t.Fatalf("expected lockable, got %+v", s)
	}
	s, fired = StepStarvation(s, Aggregates{Starving: 1, MaxDebuff: 100}, cfg)
	if !fired || !s.Triggered {
		t.Fatalf("expected trigger, got %+v fired=%v", s, fired)
	}
	s, fired = StepStarvation(s, Aggregates{Starving: 1, MaxDebuff: 100}, cfg)
	if fired || s.Phase != PhaseTriggered {
		t.Fatalf("expected no re-fire while still starving, got %+v fired=%v", s, fired)
	}
	s, _ = StepStarvation(s, Aggregates{MaxDebuff: 10}, cfg)
	if s.Triggered || s.Phase != PhaseNone {
		t.Fatalf("expected re-arm after recovery, got %+v", s)
	}
}

func TestSimulateTick_ScheduledMealFromFridge(t *testing.T) {
	cfg := DefaultConfig()
	members := []Member{{ID: "a", Hunger: 40, Thirst: 90, MealsEaten: 1, SecondsSinceMeal: cfg.MealGapSeconds, SleepShiftHour: 12}}
	res := SimulateTick(members, Fridge{Unlocked: true, Bars: 1, BarCapacity: 4, WaterCapacity: 4}, resource.Inventory{"galaxyBar": 2}, 0, cfg)
	if res.FeedingEvents != 1 || res.HydrationEvents != 0 {
		t.Fatalf("unexpected events feed=%d drink=%d", res.FeedingEvents, res.HydrationEvents)
	}
	if res.InventoryChanged || res.Fridge.Bars != 0 {
		t.Fatalf("expected fridge meal without cargo change: %+v", res)
	}
}
