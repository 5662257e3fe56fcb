package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	. "github.com/ChizhovVadim/CheckersGo/pkg/common"
)

// search holds the state of one Search call.
type search struct {
	engine      *Engine
	timeManager *simpleTimeManager
	start       time.Time
	position    Position
	side        Side
	limits      Limits
	progress    func(SearchInfo)
	nodes       int64
}

func (s *search) iterativeDeepening() SearchInfo {
	var ml = s.position.LegalMoves(s.side)
	if len(ml) == 0 {
		return s.searchInfo(MoveEmpty, 0, terminalScore(s.side, 0))
	}
	var result = s.searchInfo(ml[0], 0, 0)
	var buffer [MaxMoves]OrderedMove
	var stale = 0
	for depth := 1; depth <= s.limits.depth(); depth++ {
		var ordered = orderRootMoves(s.engine.evaluator, s.position, s.side, ml, buffer[:0])
		var move, score, ok = s.searchRoot(ordered, depth)
		if !ok {
			break
		}
		var improved = result.Depth == 0 ||
			move != result.BestMove ||
			better(s.side, score, result.Score)
		result = s.searchInfo(move, depth, score)
		log.Debug().
			Int("depth", depth).
			Float64("score", score).
			Str("move", move.String()).
			Int64("nodes", s.nodes).
			Msg("iteration complete")
		if s.progress != nil {
			s.progress(result)
		}
		s.timeManager.OnIterationComplete(result)
		if improved {
			stale = 0
		} else {
			stale++
			if s.limits.EarlyStopDepth > 0 && stale >= s.limits.EarlyStopDepth {
				break
			}
		}
	}
	result.Time = time.Since(s.start)
	return result
}

func (s *search) searchInfo(move Move, depth int, score float64) SearchInfo {
	return SearchInfo{
		BestMove: move,
		Depth:    depth,
		Score:    score,
		Nodes:    s.nodes,
		Time:     time.Since(s.start),
	}
}

// searchRoot returns ok=false when the iteration was interrupted.
func (s *search) searchRoot(ordered []OrderedMove, depth int) (bestMove Move, bestScore float64, ok bool) {
	var alpha, beta float64 = -valueInfinity, valueInfinity
	if s.side == SideWhite {
		bestScore = -valueInfinity
	} else {
		bestScore = valueInfinity
	}
	const height = 0
	for _, om := range ordered {
		if s.timeManager.IsDone() {
			return MoveEmpty, 0, false
		}
		var child = s.position.MakeMove(om.Move, s.side)
		var score = s.alphaBeta(child, s.side.Opponent(), depth-1, height+1, alpha, beta)
		if s.side == SideWhite {
			if score > bestScore {
				bestScore, bestMove = score, om.Move
			}
			alpha = max(alpha, score)
		} else {
			if score < bestScore {
				bestScore, bestMove = score, om.Move
			}
			beta = min(beta, score)
		}
	}
	return bestMove, bestScore, true
}

// alphaBeta is a fail-soft minimax: WHITE maximizes, BLACK minimizes.
func (s *search) alphaBeta(p Position, side Side, depth, height int, alpha, beta float64) float64 {
	s.nodes++
	if depth <= 0 {
		if !p.HasLegalMoves(side) {
			return terminalScore(side, height)
		}
		return s.engine.evaluator.Evaluate(p, side)
	}

	var buffer [MaxMoves]Move
	var ml = p.GenerateMoves(side, buffer[:])
	if len(ml) == 0 {
		return terminalScore(side, height)
	}

	if side == SideWhite {
		var best float64 = -valueInfinity
		for _, m := range ml {
			var score = s.alphaBeta(p.MakeMove(m, side), SideBlack, depth-1, height+1, alpha, beta)
			best = max(best, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	var best float64 = valueInfinity
	for _, m := range ml {
		var score = s.alphaBeta(p.MakeMove(m, side), SideWhite, depth-1, height+1, alpha, beta)
		best = min(best, score)
		beta = min(beta, score)
		if beta <= alpha {
			break
		}
	}
	return best
}
