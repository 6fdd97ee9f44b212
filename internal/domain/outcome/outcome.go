package outcome

type Kind string

const (
	KindApplied Kind = "applied"
	KindBlocked Kind = "blocked"
	KindNoOp    Kind = "noop"
)

type Outcome struct {
	Kind   Kind   `json:"kind"`
	Reason string `json:"reason,omitempty"`
}

func Applied() Outcome {
	return Outcome{Kind: KindApplied}
}

func Blocked(reason string) Outcome {
	return Outcome{Kind: KindBlocked, Reason: reason}
}

func NoOp(reason string) Outcome {
	return Outcome{Kind: KindNoOp, Reason: reason}
}

func (o Outcome) IsApplied() bool { return o.Kind == KindApplied }
func (o Outcome) IsBlocked() bool { return o.Kind == KindBlocked }
func (o Outcome) IsNoOp() bool    { return o.Kind == KindNoOp }
