package engine

import (
	"context"
	"time"
)

type simpleTimeManager struct {
	ctx    context.Context
	start  time.Time
	limits Limits
	cancel context.CancelFunc
}

func newSimpleTimeManager(ctx context.Context, start time.Time,
	limits Limits) *simpleTimeManager {

	var tm = &simpleTimeManager{
		start:  start,
		limits: limits,
	}

	var cancel context.CancelFunc
	if limits.TimeLimit > 0 {
		ctx, cancel = context.WithDeadline(ctx, start.Add(limits.TimeLimit))
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}

	tm.ctx = ctx
	tm.cancel = cancel
	return tm
}

// IsDone is polled between root moves. The clock is read directly
// so an expired deadline is seen before the context timer fires.
func (tm *simpleTimeManager) IsDone() bool {
	if tm.ctx.Err() != nil {
		return true
	}
	if deadline, ok := tm.ctx.Deadline(); ok && !time.Now().Before(deadline) {
		return true
	}
	return false
}

func (tm *simpleTimeManager) OnIterationComplete(si SearchInfo) {
	if si.Depth >= tm.limits.depth() {
		tm.cancel()
		return
	}
	// a deeper search cannot find a faster win or a longer defence
	if isForcedResult(si.Score) {
		tm.cancel()
		return
	}
}

func (tm *simpleTimeManager) Close() {
	tm.cancel()
}
