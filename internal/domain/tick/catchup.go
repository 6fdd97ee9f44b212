package tick

import (
	"voidminer/internal/domain/economy"
	"voidminer/internal/domain/outcome"
)

type CatchUpResult struct {
	Kind             outcome.Kind
	State            State
	Ticks            int64
	PersistInventory bool
	FailureTriggered bool
	FailureReason    economy.FailureReason
	FeedingEvents    int
	HydrationEvents  int
}

// CatchUp replays now-start ticks back to back. Tick i (1-based) is stamped
// (start+i)*1000 ms so replays are reproducible. Only the first failure
// reason is reported.
func CatchUp(start, now int64, state State, cfg Config) CatchUpResult {
	elapsed := now - start
	if elapsed <= 0 {
		return CatchUpResult{Kind: outcome.KindNoOp, State: state}
	}
	res := CatchUpResult{Kind: outcome.KindApplied, State: state}
	for i := int64(1); i <= elapsed; i++ {
		var sig Signals
		res.State, sig = AdvanceOneTick(res.State, cfg, (start+i)*1000)
		res.Ticks++
		res.PersistInventory = res.PersistInventory || sig.PersistInventory
		res.FeedingEvents += sig.FeedingEvents
		res.HydrationEvents += sig.HydrationEvents
		if sig.FailureTriggered && !res.FailureTriggered {
			res.FailureTriggered = true
			res.FailureReason = sig.FailureReason
		}
	}
	return res
}
