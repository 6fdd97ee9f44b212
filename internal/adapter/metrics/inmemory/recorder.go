package inmemory

import "sync"

type Snapshot struct {
	TicksReplayed  int64             `json:"ticks_replayed"`
	CatchUps       uint64            `json:"catch_ups"`
	ActionTotal    uint64            `json:"action_total"`
	PersistErrors  uint64            `json:"persist_errors"`
	ByActionResult map[string]uint64 `json:"by_action_result"`
	ByFailure      map[string]uint64 `json:"by_failure"`
}

// Recorder is a process-local SessionMetrics sink for the ops endpoint.
type Recorder struct {
	mu            sync.Mutex
	ticks         int64
	catchUps      uint64
	actions       uint64
	persistErrors uint64
	byAction      map[string]uint64
	byFailure     map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byAction:  map[string]uint64{},
		byFailure: map[string]uint64{},
	}
}

func (r *Recorder) RecordTicks(n int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks += n
}

func (r *Recorder) RecordCatchUp() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.catchUps++
}

func (r *Recorder) RecordAction(actionType, result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions++
	r.byAction[actionType+":"+result]++
}

func (r *Recorder) RecordFailure(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byFailure[reason]++
}

func (r *Recorder) RecordPersistError() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.persistErrors++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		TicksReplayed:  r.ticks,
		CatchUps:       r.catchUps,
		ActionTotal:    r.actions,
		PersistErrors:  r.persistErrors,
		ByActionResult: make(map[string]uint64, len(r.byAction)),
		ByFailure:      make(map[string]uint64, len(r.byFailure)),
	}
	for k, v := range r.byAction {
		out.ByActionResult[k] = v
	}
	for k, v := range r.byFailure {
		out.ByFailure[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
