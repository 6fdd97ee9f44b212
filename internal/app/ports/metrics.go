package ports

type SessionMetrics interface {
	RecordTicks(n int64)
	RecordCatchUp()
	RecordAction(actionType string, result string)
	RecordFailure(reason string)
	RecordPersistError()
}

type NopMetrics struct{}

func (NopMetrics) RecordTicks(int64)           {}
func (NopMetrics) RecordCatchUp()              {}
func (NopMetrics) RecordAction(string, string) {}
func (NopMetrics) RecordFailure(string)        {}
func (NopMetrics) RecordPersistError()         {}
