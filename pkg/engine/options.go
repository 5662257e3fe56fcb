package engine

import (
	"time"
)

type Limits struct {
	// MaxDepth of zero or less means maxDepth.
	MaxDepth int
	// TimeLimit of zero means no time limit.
	TimeLimit time.Duration
	// EarlyStopDepth stops the search after that many consecutive iterations
	// without a new best move or a better score. Zero disables early stop.
	EarlyStopDepth int
}

func DefaultLimits() Limits {
	return Limits{
		MaxDepth:       10,
		TimeLimit:      3 * time.Second,
		EarlyStopDepth: 4,
	}
}

func (l Limits) depth() int {
	if l.MaxDepth <= 0 || l.MaxDepth > maxDepth {
		return maxDepth
	}
	return l.MaxDepth
}
