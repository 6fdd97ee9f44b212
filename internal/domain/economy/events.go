package economy

const ExtractionEventLimit = 24

type EventKind string

const (
	EventFired     EventKind = "fired"
	EventBlocked   EventKind = "blocked"
	EventExtracted EventKind = "extracted"
)

type ExtractionEvent struct {
	Kind     EventKind          `json:"kind"`
	TargetID string             `json:"target_id,omitempty"`
	Reason   string             `json:"reason,omitempty"`
	Gained   map[string]float64 `json:"gained,omitempty"`
	AtMs     int64              `json:"at_ms"`
}

// RecordEvent prepends evt, keeping the ring most-recent-first.
func RecordEvent(events []ExtractionEvent, evt ExtractionEvent) []ExtractionEvent {
	n := len(events) + 1
	if n > ExtractionEventLimit {
		n = ExtractionEventLimit
	}
	out := make([]ExtractionEvent, 0, n)
	out = append(out, evt)
	for _, e := range events {
		if len(out) == n {
			break
		}
		out = append(out, e)
	}
	return out
}

func lastFiredAt(events []ExtractionEvent) (int64, bool) {
	for _, e := range events {
		if e.Kind == EventFired {
			return e.AtMs, true
		}
	}
	return 0, false
}

func CountEvents(events []ExtractionEvent, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
