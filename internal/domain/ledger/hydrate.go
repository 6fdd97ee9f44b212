package ledger

import "strings"

type HydrateResult struct {
	Ledger      Ledger
	Fresh       bool
	Replenished []string
	LogLine     string
}

// Hydrate turns a persisted record into a usable ledger. A record with a
// foreign version or sector is replaced by a fresh ledger; anything else is
// repaired field by field and the population floor is re-applied.
func Hydrate(record Ledger, sectorID string, seed uint32, totalPopulation int) HydrateResult {
	if record.Version != LedgerVersion || record.SectorID != sectorID {
		return HydrateResult{Ledger: New(sectorID, seed), Fresh: true}
	}
	out := New(sectorID, seed)

	seen := make(map[string]struct{}, len(record.DepletedIDs))
	for _, raw := range record.DepletedIDs {
		id := strings.TrimSpace(raw)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out.DepletedIDs = append(out.DepletedIDs, id)
	}
	out.ZoneCounts = sanitizeCounts(record.ZoneCounts)
	out.ClassCounts = sanitizeCounts(record.ClassCounts)
	for _, z := range record.VisitedZones {
		if z = strings.TrimSpace(z); z != "" {
			out.VisitedZones = addVisited(out.VisitedZones, z)
		}
	}

	out, replenished := enforceFloor(out, totalPopulation)
	return HydrateResult{
		Ledger:      out,
		Replenished: replenished,
		LogLine:     replenishLogLine(sectorID, len(replenished)),
	}
}

func sanitizeCounts(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		if strings.TrimSpace(k) == "" || v <= 0 {
			continue
		}
		out[k] = v
	}
	return out
}
