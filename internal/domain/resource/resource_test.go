package resource

import "testing"

func testCatalog() Catalog {
	return NewCatalog([]Definition{
		{ID: "water", Atoms: map[Element]float64{ElementH: 2, ElementO: 1}, BaseValue: 2},
		{ID: "carbon", Atoms: map[Element]float64{ElementC: 1}, BaseValue: 3},
		{ID: "galaxyBar", Atoms: map[Element]float64{ElementC: 0.6, ElementH: 0.6, ElementO: 0.3}, BaseValue: 12},
	}, []Process{
		{ID: "galaxyBar", Consume: map[string]float64{"carbon": 0.6, "water": 0.3}, Produce: map[string]float64{"galaxyBar": 1}},
	})
}

func TestInventory_AddTakeNeverNegative(t *testing.T) {
	inv := Inventory{}.Add("carbon", 1.23456)
	if inv["carbon"] != 1.2346 {
		t.Fatalf("carbon = %v, want 1.2346", inv["carbon"])
	}
	inv, taken := inv.Take("carbon", 5)
	if taken != 1.2346 {
		t.Fatalf("taken = %v, want 1.2346", taken)
	}
	if inv["carbon"] != 0 {
		t.Fatalf("carbon = %v, want 0", inv["carbon"])
	}
}

func TestInventory_AddDoesNotMutateReceiver(t *testing.T) {
	base := Inventory{"water": 1}
	_ = base.Add("water", 2)
	if base["water"] != 1 {
		t.Fatalf("receiver mutated: %v", base["water"])
	}
}

func TestSanitize_ClampsAndDropsEmpty(t *testing.T) {
	inv := Sanitize(map[string]float64{"": 3, "carbon": -2, "water": 0.123456})
	if _, ok := inv[""]; ok {
		t.Fatalf("expected empty id dropped")
	}
	if inv["carbon"] != 0 || inv["water"] != 0.1235 {
		t.Fatalf("unexpected sanitize result: %+v", inv)
	}
}

func TestRunProcess_ConservesAtoms(t *testing.T) {
	cat := testCatalog()
	inv := Inventory{"carbon": 1.2, "water": 0.6}
	before, err := cat.AtomTotals(inv)
	if err != nil {
		t.Fatalf("atoms before: %v", err)
	}
	res := RunProcess(inv, cat.Processes["galaxyBar"])
	if !res.Outcome.IsApplied() {
		t.Fatalf("expected applied, got %+v", res.Outcome)
	}
	after, err := cat.AtomTotals(res.Inventory)
	if err != nil {
		t.Fatalf("atoms after: %v", err)
	}
	for _, el := range Elements {
		if before[el] != after[el] {
			t.Fatalf("element %s not conserved: %v -> %v", el, before[el], after[el])
		}
	}
}

func TestRunProcess_BlockedWhenShort(t *testing.T) {
	cat := testCatalog()
	res := RunProcess(Inventory{"carbon": 0.1}, cat.Processes["galaxyBar"])
	if !res.Outcome.IsBlocked() {
		t.Fatalf("expected blocked, got %+v", res.Outcome)
	}
	if res.Inventory["carbon"] != 0.1 {
		t.Fatalf("blocked process must not consume inputs")
	}
}

func TestCatalog_UnknownResource(t *testing.T) {
	cat := testCatalog()
	if _, err := cat.AtomTotals(Inventory{"unobtainium": 1}); err == nil {
		t.Fatalf("expected unknown resource error")
	}
}
