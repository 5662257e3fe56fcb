package engine

import (
	. "github.com/ChizhovVadim/CheckersGo/pkg/common"
)

// orderRootMoves scores every move by a one ply lookahead, best first for side.
func orderRootMoves(evaluator Evaluator, p Position, side Side, ml []Move, buffer []OrderedMove) []OrderedMove {
	var result = buffer[:0]
	for _, m := range ml {
		var key = evaluator.Evaluate(p.MakeMove(m, side), side.Opponent())
		if side == SideBlack {
			key = -key
		}
		result = append(result, OrderedMove{Move: m, Key: key})
	}
	sortMoves(result)
	return result
}

// sortMoves is a stable insertion sort by descending key.
func sortMoves(moves []OrderedMove) {
	for i := 1; i < len(moves); i++ {
		j, t := i, moves[i]
		for ; j > 0 && moves[j-1].Key < t.Key; j-- {
			moves[j] = moves[j-1]
		}
		moves[j] = t
	}
}
