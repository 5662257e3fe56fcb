package engine

import (
	"context"
	"time"

	. "github.com/ChizhovVadim/CheckersGo/pkg/common"
	heuristic "github.com/ChizhovVadim/CheckersGo/pkg/eval/heuristic"
)

// Evaluator scores a position for WHITE: positive values favour WHITE.
// Implementations must be safe for concurrent use.
type Evaluator interface {
	Evaluate(p Position, side Side) float64
}

type SearchParams struct {
	Position Position
	Side     Side
	Limits   Limits
	Progress func(SearchInfo)
}

type SearchInfo struct {
	BestMove Move
	Depth    int
	Score    float64
	Nodes    int64
	Time     time.Duration
}

// Engine is immutable after construction. Every Search call keeps its own state,
// so one Engine may serve many goroutines.
type Engine struct {
	evaluator Evaluator
}

func NewEngine(evaluator Evaluator) *Engine {
	return &Engine{evaluator: evaluator}
}

// Search runs iterative deepening until a limit is reached or ctx is done.
// A position without legal moves yields an empty BestMove and depth 0.
func (e *Engine) Search(ctx context.Context, params SearchParams) SearchInfo {
	var start = time.Now()
	var tm = newSimpleTimeManager(ctx, start, params.Limits)
	defer tm.Close()
	var s = &search{
		engine:      e,
		timeManager: tm,
		start:       start,
		position:    params.Position,
		side:        params.Side,
		limits:      params.Limits,
		progress:    params.Progress,
	}
	return s.iterativeDeepening()
}

// SearchBestMove searches with the heuristic evaluator and returns the move with the depth
// of the last completed iteration. The move is MoveEmpty when side has no legal moves.
func SearchBestMove(ctx context.Context, p Position, side Side,
	limits Limits, weights heuristic.Weights) (Move, int) {
	var e = NewEngine(heuristic.NewEvaluationService(weights))
	var si = e.Search(ctx, SearchParams{
		Position: p,
		Side:     side,
		Limits:   limits,
	})
	return si.BestMove, si.Depth
}
