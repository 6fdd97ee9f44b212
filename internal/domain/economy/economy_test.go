package economy

import (
	"math"
	"strings"
	"testing"

	"voidminer/internal/domain/crew"
	"voidminer/internal/domain/resource"
	"voidminer/internal/domain/worldgen"
)

func TestStartCharging_Scenarios(t *testing.T) {
	cfg := DefaultConfig()

	res := StartCharging(StationState{Docked: false}, 50, cfg)
	if !res.Outcome.IsBlocked() || !strings.Contains(strings.ToLower(res.Outcome.Reason), "dock") {
		t.Fatalf("expected dock reason, got %+v", res.Outcome)
	}

	res = StartCharging(StationState{Docked: true}, 500, cfg)
	if !res.Outcome.IsBlocked() || !strings.Contains(res.Outcome.Reason, "500 m") {
		t.Fatalf("expected distance reason, got %+v", res.Outcome)
	}
	if res.Station.Charging {
		t.Fatalf("blocked charge must not set charging")
	}

	res = StartCharging(StationState{Docked: true}, 50, cfg)
	if !res.Outcome.IsApplied() || !res.Station.Charging {
		t.Fatalf("expected charging to start, got %+v", res)
	}
	if res.Summary.ChargingRate != cfg.ChargingRatePerSecond {
		t.Fatalf("docked charge rate = %v, want full %v", res.Summary.ChargingRate, cfg.ChargingRatePerSecond)
	}
}

func TestBuildPowerSummary_FalloffAndDrain(t *testing.T) {
	cfg := DefaultConfig()
	edge := BuildPowerSummary(cfg.ChargingRangeMeters, true, true, 50, cfg)
	if edge.ChargingRate != cfg.ChargingRatePerSecond*0.5 {
		t.Fatalf("edge rate = %v, want half", edge.ChargingRate)
	}
	if edge.ContainmentDrain != 0.6 {
		t.Fatalf("drain = %v, want 0.6", edge.ContainmentDrain)
	}
	out := BuildPowerSummary(cfg.ChargingRangeMeters+1, true, false, 150, cfg)
	if out.ChargingRate != 0 || out.InChargingRange {
		t.Fatalf("expected no charging outside range: %+v", out)
	}
}

func TestEnforceCorridor_AutoUndocks(t *testing.T) {
	cfg := DefaultConfig()
	s := StationState{Docked: true, Charging: true, UseSceneTelemetry: true, SceneDistance: 300}
	res := EnforceCorridor(s, cfg)
	if !res.Outcome.IsApplied() || res.Station.Docked || res.Station.Charging {
		t.Fatalf("expected auto-undock, got %+v", res)
	}
	if res.LogLine == "" {
		t.Fatalf("auto-undock must log")
	}
	manual := StationState{Docked: true, ManualDistance: 300}
	if res := EnforceCorridor(manual, cfg); !res.Outcome.IsNoOp() {
		t.Fatalf("manual override must not auto-undock: %+v", res.Outcome)
	}
	if EffectiveDistance(manual) != 0 {
		t.Fatalf("docked distance must be pinned to 0")
	}
}

func TestSetContainmentPower_Clamped(t *testing.T) {
	cfg := DefaultConfig()
	res := SetContainmentPower(StationState{}, 140, cfg)
	if res.Station.ContainmentPower != 100 {
		t.Fatalf("power = %v, want 100", res.Station.ContainmentPower)
	}
	res = SetContainmentPower(res.Station, -5, cfg)
	if res.Station.ContainmentPower != 0 {
		t.Fatalf("power = %v, want 0", res.Station.ContainmentPower)
	}
}

func TestAttemptFire_EnergyAndCooldown(t *testing.T) {
	cfg := DefaultConfig()
	res := AttemptFire(FireInput{Energy: 20, MaxEnergy: 100, NowMs: 10_000}, cfg)
	if !res.Outcome.IsApplied() || res.Energy != 14 {
		t.Fatalf("expected shot, got %+v", res)
	}
	if len(res.Events) != 1 || res.Events[0].Kind != EventFired {
		t.Fatalf("expected fired event first: %+v", res.Events)
	}

	again := AttemptFire(FireInput{Energy: res.Energy, MaxEnergy: 100, NowMs: 10_100, Events: res.Events}, cfg)
	if !again.Outcome.IsBlocked() || again.Energy != res.Energy {
		t.Fatalf("expected cooldown block without energy change: %+v", again)
	}
	if again.Events[0].Kind != EventBlocked {
		t.Fatalf("blocked extraction must be recorded most-recent-first")
	}

	later := AttemptFire(FireInput{Energy: res.Energy, MaxEnergy: 100, NowMs: 10_000 + cfg.LaserBaseCooldownMs, Events: res.Events}, cfg)
	if !later.Outcome.IsApplied() {
		t.Fatalf("expected shot after cooldown, got %+v", later.Outcome)
	}
}

func TestAttemptFire_CooldownSurvivesFullRing(t *testing.T) {
	cfg := DefaultConfig()
	shot := AttemptFire(FireInput{Energy: 100, MaxEnergy: 100, NowMs: 10_000}, cfg)
	if !shot.Outcome.IsApplied() || shot.LastFiredAtMs != 10_000 {
		t.Fatalf("expected first shot to fire: %+v", shot)
	}
	res := shot
	for i := int64(1); i <= ExtractionEventLimit; i++ {
		res = AttemptFire(FireInput{
			Energy:        res.Energy,
			MaxEnergy:     100,
			NowMs:         10_000 + i,
			Events:        res.Events,
			LastFiredAtMs: res.LastFiredAtMs,
		}, cfg)
		if !res.Outcome.IsBlocked() {
			t.Fatalf("attempt %d must be blocked by cooldown", i)
		}
	}
	if CountEvents(res.Events, EventFired) != 0 {
		t.Fatalf("blocked attempts should have filled the ring")
	}
	next := AttemptFire(FireInput{Energy: res.Energy, MaxEnergy: 100, NowMs: 10_030, Events: res.Events, LastFiredAtMs: res.LastFiredAtMs}, cfg)
	if !next.Outcome.IsBlocked() {
		t.Fatalf("cooldown must hold after the fired entry leaves the ring: %+v", next.Outcome)
	}
	after := AttemptFire(FireInput{Energy: res.Energy, MaxEnergy: 100, NowMs: 10_000 + cfg.LaserBaseCooldownMs, Events: res.Events, LastFiredAtMs: res.LastFiredAtMs}, cfg)
	if !after.Outcome.IsApplied() {
		t.Fatalf("expected shot once cooldown elapsed, got %+v", after.Outcome)
	}
}

func TestLaserCooldown_GrowsWithDebuff(t *testing.T) {
	cfg := DefaultConfig()
	if LaserCooldownMs(80, cfg) <= LaserCooldownMs(0, cfg) {
		t.Fatalf("debuff must slow the laser")
	}
}

func TestAttemptFire_WarningThrottle(t *testing.T) {
	cfg := DefaultConfig()
	first := AttemptFire(FireInput{Energy: 1, MaxEnergy: 100, NowMs: 5_000}, cfg)
	if first.Warning == "" || first.LastWarningAtMs != 5_000 {
		t.Fatalf("first warning must log: %+v", first)
	}
	second := AttemptFire(FireInput{Energy: 1, MaxEnergy: 100, NowMs: 6_000, LastWarningAtMs: first.LastWarningAtMs}, cfg)
	if second.Warning != "" || second.LastWarningAtMs != 5_000 {
		t.Fatalf("warning within throttle must be suppressed: %+v", second)
	}
	third := AttemptFire(FireInput{Energy: 1, MaxEnergy: 100, NowMs: 7_500, LastWarningAtMs: second.LastWarningAtMs}, cfg)
	if third.Warning == "" || third.LastWarningAtMs != 7_500 {
		t.Fatalf("warning after throttle must log: %+v", third)
	}
}

func TestRecordEvent_BoundedRing(t *testing.T) {
	var events []ExtractionEvent
	for i := 0; i < ExtractionEventLimit+10; i++ {
		events = RecordEvent(events, ExtractionEvent{Kind: EventFired, AtMs: int64(i)})
	}
	if len(events) != ExtractionEventLimit {
		t.Fatalf("ring size = %d, want %d", len(events), ExtractionEventLimit)
	}
	if events[0].AtMs != int64(ExtractionEventLimit+9) {
		t.Fatalf("most recent must be first, got %d", events[0].AtMs)
	}
}

func TestResolveExtractionHit(t *testing.T) {
	target := worldgen.Target{ID: "belt-000", ExpectedYield: map[string]float64{"silicaSand": 1.5, "ironOre": 0.25}}
	res := ResolveExtractionHit(resource.Inventory{"silicaSand": 1}, target)
	if !res.Changed || res.Inventory["silicaSand"] != 2.5 || res.Inventory["ironOre"] != 0.25 {
		t.Fatalf("unexpected extraction %+v", res)
	}
	zero := worldgen.Target{ID: "belt-001", ExpectedYield: map[string]float64{"silicaSand": 0, "ironOre": -1}}
	res = ResolveExtractionHit(resource.Inventory{"silicaSand": 1}, zero)
	if res.Changed || len(res.Gained) != 0 {
		t.Fatalf("zero-yield hit must not change inventory: %+v", res)
	}
}

func TestAppendLog_BoundedAndDeterministic(t *testing.T) {
	var a, b []LogEntry
	for i := 0; i < SimulationLogLimit+5; i++ {
		a = AppendLog(a, "tick", int64(i)*1000)
		b = AppendLog(b, "tick", int64(i)*1000)
	}
	if len(a) != SimulationLogLimit {
		t.Fatalf("log size = %d, want %d", len(a), SimulationLogLimit)
	}
	if a[0].TimestampMs != 5000 {
		t.Fatalf("oldest entries must be dropped, first = %d", a[0].TimestampMs)
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("log ids must be deterministic at %d", i)
		}
	}
	if a[0].ID == a[1].ID {
		t.Fatalf("log ids must be unique")
	}
}

func TestUseEnergyCell(t *testing.T) {
	cfg := DefaultConfig()
	res := UseEnergyCell(resource.Inventory{"energyCell": 2}, 80, 100, "energyCell", cfg)
	if !res.Outcome.IsApplied() || res.Energy != 100 || res.Added != 20 || res.Inventory["energyCell"] != 1 {
		t.Fatalf("unexpected cell use %+v", res)
	}
	if res := UseEnergyCell(resource.Inventory{"energyCell": 2}, 100, 100, "energyCell", cfg); !res.Outcome.IsBlocked() {
		t.Fatalf("full energy must block")
	}
	if res := UseEnergyCell(resource.Inventory{"carbon": 2}, 10, 100, "carbon", cfg); !res.Outcome.IsBlocked() {
		t.Fatalf("non-cell must block")
	}
}

func marketCatalog() resource.Catalog {
	return resource.NewCatalog([]resource.Definition{{ID: "steel", BaseValue: 10}}, nil)
}

func TestSellResource_HeatLowersPrice(t *testing.T) {
	cfg := DefaultConfig()
	cat := marketCatalog()
	first := SellResource(resource.Inventory{"steel": 20}, MarketState{}, 0, "steel", 10, cat, cfg)
	if !first.Outcome.IsApplied() || first.Earned != 100 || first.Inventory["steel"] != 10 {
		t.Fatalf("unexpected first sale %+v", first)
	}
	second := SellResource(first.Inventory, first.Market, first.Credits, "steel", 10, cat, cfg)
	if second.Earned >= first.Earned {
		t.Fatalf("heated market must pay less: %v vs %v", second.Earned, first.Earned)
	}
	if res := SellResource(resource.Inventory{}, MarketState{}, 0, "steel", 1, cat, cfg); !res.Outcome.IsBlocked() {
		t.Fatalf("selling nothing must block")
	}
}

func TestDriftMarket_RelaxesTowardNeutral(t *testing.T) {
	cfg := DefaultConfig()
	m := MarketState{Heat: map[string]float64{"steel": 1.01, "water": 0.999}}
	next := DriftMarket(m, cfg)
	if next.Heat["steel"] != 1.008 {
		t.Fatalf("steel heat = %v, want 1.008", next.Heat["steel"])
	}
	if _, ok := next.Heat["water"]; ok {
		t.Fatalf("heat within one step of neutral must settle")
	}
}

func TestApplyFailureTransition_FullyCovered(t *testing.T) {
	cfg := DefaultConfig()
	in := FailureInput{
		Reason:    FailureCombat,
		Inventory: resource.Inventory{"steel": 1, "silicaSand": 2, "carbon": 1},
		Credits:   500,
		Energy:    3,
		MaxEnergy: 100,
		Station:   StationState{Charging: true, ContainmentOn: true},
	}
	res := ApplyFailureTransition(in, cfg, crew.DefaultConfig())
	want := resource.Inventory{"steel": 0.6, "silicaSand": 1.2, "carbon": 0.8}
	if !res.Inventory.Equal(want) {
		t.Fatalf("inventory = %+v, want %+v", res.Inventory, want)
	}
	if res.Report.TotalShortage() != 0 {
		t.Fatalf("expected no shortage: %+v", res.Report.Materials)
	}
	if res.Credits != 500-cfg.FailureBaseCredits {
		t.Fatalf("credits = %v", res.Credits)
	}
	if !res.Station.Docked || res.Station.Charging || res.Station.ContainmentOn {
		t.Fatalf("expected towed station state: %+v", res.Station)
	}
	if res.Energy != 35 {
		t.Fatalf("energy = %v, want 35", res.Energy)
	}
}

func TestApplyFailureTransition_ShortageBilled(t *testing.T) {
	cfg := DefaultConfig()
	in := FailureInput{Reason: FailureCombat, Inventory: resource.Inventory{"steel": 0.1}, Credits: 50, MaxEnergy: 100}
	res := ApplyFailureTransition(in, cfg, crew.DefaultConfig())
	for _, m := range res.Report.Materials {
		if math.Abs(m.Shortage-(m.Required-m.Used)) > 1e-9 || m.Shortage < 0 {
			t.Fatalf("bad material line %+v", m)
		}
	}
	if res.Report.TotalShortage() != 1.3 {
		t.Fatalf("shortage = %v, want 1.3", res.Report.TotalShortage())
	}
	if res.Credits != 0 || res.Report.CreditsPenalty != 50 {
		t.Fatalf("credits must clamp at zero: credits=%v penalty=%v", res.Credits, res.Report.CreditsPenalty)
	}
}

func TestApplyFailureTransition_StarvationHealsAndLocks(t *testing.T) {
	cfg := DefaultConfig()
	crewCfg := crew.DefaultConfig()
	in := FailureInput{
		Reason:    FailureStarvation,
		MaxEnergy: 100,
		Crew:      []crew.Member{{ID: "a", Hunger: 0, Thirst: 50, Starving: true}},
	}
	res := ApplyFailureTransition(in, cfg, crewCfg)
	if res.Crew[0].Hunger != crewCfg.StarvationSafeLevel || res.Crew[0].Starving {
		t.Fatalf("expected force heal, got %+v", res.Crew[0])
	}
	if res.Crew[0].Thirst != 50 {
		t.Fatalf("thirst above safe level must be kept")
	}
	if !res.Starvation.Triggered {
		t.Fatalf("starvation lock must be armed")
	}
	if in.Crew[0].Hunger != 0 {
		t.Fatalf("input crew mutated")
	}
}
