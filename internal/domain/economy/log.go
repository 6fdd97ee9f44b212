package economy

import (
	"strconv"

	"github.com/google/uuid"
)

const SimulationLogLimit = 40

var logNamespace = uuid.MustParse("5b0f5c3e-8a7d-4f4e-9d55-6b1c2f7e0a11")

type LogEntry struct {
	ID          string `json:"id"`
	Message     string `json:"message"`
	TimestampMs int64  `json:"timestamp_ms"`
}

// AppendLog returns a new log with message appended and the oldest entries
// dropped past SimulationLogLimit. Ids chain off the previous entry so a
// replay with the same timestamps yields the same ids.
func AppendLog(log []LogEntry, message string, nowMs int64) []LogEntry {
	if message == "" {
		return log
	}
	prev := ""
	if len(log) > 0 {
		prev = log[len(log)-1].ID
	}
	key := prev + "|" + strconv.FormatInt(nowMs, 10) + "|" + message
	entry := LogEntry{
		ID:          uuid.NewSHA1(logNamespace, []byte(key)).String(),
		Message:     message,
		TimestampMs: nowMs,
	}
	start := 0
	if over := len(log) + 1 - SimulationLogLimit; over > 0 {
		start = over
	}
	out := make([]LogEntry, 0, len(log)-start+1)
	out = append(out, log[start:]...)
	return append(out, entry)
}

// AppendLogs appends each non-empty message with the same timestamp.
func AppendLogs(log []LogEntry, nowMs int64, messages ...string) []LogEntry {
	for _, m := range messages {
		log = AppendLog(log, m, nowMs)
	}
	return log
}
