package economy

import (
	"voidminer/internal/domain/resource"
	"voidminer/internal/domain/worldgen"
)

type ExtractionResult struct {
	Inventory resource.Inventory
	Gained    resource.Inventory
	Changed   bool
}

// ResolveExtractionHit credits the target's expected yield. Non-positive
// amounts are skipped, so a zero-yield hit reports Changed=false.
func ResolveExtractionHit(inv resource.Inventory, target worldgen.Target) ExtractionResult {
	next := inv.Clone()
	gained := resource.Inventory{}
	for _, id := range resource.Inventory(target.ExpectedYield).Keys() {
		amount := target.ExpectedYield[id]
		if !(amount > 0) {
			continue
		}
		before := next.Get(id)
		next = next.Add(id, amount)
		if delta := next.Get(id) - before; delta > 0 {
			gained = gained.Add(id, delta)
		}
	}
	return ExtractionResult{Inventory: next, Gained: gained, Changed: !next.Equal(inv)}
}

func RecordExtraction(events []ExtractionEvent, targetID string, gained resource.Inventory, nowMs int64) []ExtractionEvent {
	return RecordEvent(events, ExtractionEvent{Kind: EventExtracted, TargetID: targetID, Gained: gained.Clone(), AtMs: nowMs})
}
