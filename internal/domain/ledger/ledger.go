package ledger

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"voidminer/internal/domain/worldgen"
)

const (
	LedgerVersion = 1

	MinActiveFloor    = 12
	MinActiveFraction = 0.6
)

// Ledger is the per-sector record of destroyed targets. Targets themselves
// are never mutated; depletion is only an id in DepletedIDs.
type Ledger struct {
	Version      int            `json:"version"`
	SectorID     string         `json:"sector_id"`
	Seed         uint32         `json:"seed"`
	DepletedIDs  []string       `json:"depleted_ids"`
	ZoneCounts   map[string]int `json:"zone_counts"`
	ClassCounts  map[string]int `json:"class_counts"`
	VisitedZones []string       `json:"visited_zones"`
}

type WorldTargetDepletedEvent struct {
	TargetID string `json:"target_id"`
	ClassID  string `json:"class_id"`
	ZoneID   string `json:"zone_id"`
}

type ResultKind string

const (
	Recorded  ResultKind = "recorded"
	Duplicate ResultKind = "duplicate"
)

type DepletionResult struct {
	Kind        ResultKind
	Ledger      Ledger
	Replenished []string
	LogLine     string
}

func New(sectorID string, seed uint32) Ledger {
	return Ledger{
		Version:      LedgerVersion,
		SectorID:     sectorID,
		Seed:         seed,
		DepletedIDs:  []string{},
		ZoneCounts:   map[string]int{},
		ClassCounts:  map[string]int{},
		VisitedZones: []string{},
	}
}

// MinActiveWorldTargetCount is the population floor for a world of total targets.
func MinActiveWorldTargetCount(total int) int {
	if total <= 0 {
		return 0
	}
	floor := int(math.Ceil(float64(total) * MinActiveFraction))
	if floor < MinActiveFloor {
		floor = MinActiveFloor
	}
	if floor > total {
		floor = total
	}
	return floor
}

func (l Ledger) Clone() Ledger {
	out := l
	out.DepletedIDs = append([]string{}, l.DepletedIDs...)
	out.VisitedZones = append([]string{}, l.VisitedZones...)
	out.ZoneCounts = make(map[string]int, len(l.ZoneCounts))
	for k, v := range l.ZoneCounts {
		out.ZoneCounts[k] = v
	}
	out.ClassCounts = make(map[string]int, len(l.ClassCounts))
	for k, v := range l.ClassCounts {
		out.ClassCounts[k] = v
	}
	return out
}

func (l Ledger) IsDepleted(targetID string) bool {
	for _, id := range l.DepletedIDs {
		if id == targetID {
			return true
		}
	}
	return false
}

func (l Ledger) DepletedCount() int {
	return len(l.DepletedIDs)
}

func (l Ledger) ActiveCount(total int) int {
	active := total - len(l.DepletedIDs)
	if active < 0 {
		return 0
	}
	return active
}

// ActiveTargets returns the world's targets that are not currently depleted,
// in world order.
func (l Ledger) ActiveTargets(world worldgen.WorldModel) []worldgen.Target {
	depleted := make(map[string]struct{}, len(l.DepletedIDs))
	for _, id := range l.DepletedIDs {
		depleted[id] = struct{}{}
	}
	out := make([]worldgen.Target, 0, len(world.Targets))
	for _, t := range world.Targets {
		if _, ok := depleted[t.ID]; ok {
			continue
		}
		out = append(out, t)
	}
	return out
}

func RecordDepletion(l Ledger, evt WorldTargetDepletedEvent, totalPopulation int) DepletionResult {
	targetID := strings.TrimSpace(evt.TargetID)
	if targetID == "" || l.IsDepleted(targetID) {
		return DepletionResult{Kind: Duplicate, Ledger: l}
	}
	next := l.Clone()
	next.DepletedIDs = append(next.DepletedIDs, targetID)
	if evt.ZoneID != "" {
		next.ZoneCounts[evt.ZoneID]++
		next.VisitedZones = addVisited(next.VisitedZones, evt.ZoneID)
	}
	if evt.ClassID != "" {
		next.ClassCounts[evt.ClassID]++
	}
	next, replenished := enforceFloor(next, totalPopulation)
	return DepletionResult{
		Kind:        Recorded,
		Ledger:      next,
		Replenished: replenished,
		LogLine:     replenishLogLine(next.SectorID, len(replenished)),
	}
}

// enforceFloor drops the oldest depleted ids until total minus depleted is at
// least the floor. Dropped ids become active again.
func enforceFloor(l Ledger, total int) (Ledger, []string) {
	maxDepleted := total - MinActiveWorldTargetCount(total)
	if maxDepleted < 0 {
		maxDepleted = 0
	}
	over := len(l.DepletedIDs) - maxDepleted
	if over <= 0 {
		return l, nil
	}
	replenished := append([]string{}, l.DepletedIDs[:over]...)
	l.DepletedIDs = append([]string{}, l.DepletedIDs[over:]...)
	return l, replenished
}

func replenishLogLine(sectorID string, n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%d cleanup targets replenished in %s", n, sectorID)
}

func addVisited(visited []string, zoneID string) []string {
	i := sort.SearchStrings(visited, zoneID)
	if i < len(visited) && visited[i] == zoneID {
		return visited
	}
	visited = append(visited, "")
	copy(visited[i+1:], visited[i:])
	visited[i] = zoneID
	return visited
}
