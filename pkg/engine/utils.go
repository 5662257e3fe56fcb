package engine

import (
	. "github.com/ChizhovVadim/CheckersGo/pkg/common"
)

const (
	maxDepth      = 64
	valueWin      = 1_000_000
	valuePerPly   = 1000
	valueInfinity = 2 * valueWin
	// valueForced is the smallest score of a win reachable within maxDepth plies.
	valueForced = valueWin - maxDepth*valuePerPly
)

// winIn is the score for WHITE when BLACK has no moves height plies from the root.
func winIn(height int) float64 {
	return float64(valueWin - height*valuePerPly)
}

func lossIn(height int) float64 {
	return -winIn(height)
}

// terminalScore scores a position in which side cannot move.
func terminalScore(side Side, height int) float64 {
	if side == SideWhite {
		return lossIn(height)
	}
	return winIn(height)
}

func isForcedResult(score float64) bool {
	return score >= valueForced || score <= -valueForced
}

// better reports whether a is a better score than b for side.
func better(side Side, a, b float64) bool {
	if side == SideWhite {
		return a > b
	}
	return a < b
}
