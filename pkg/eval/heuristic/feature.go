package eval

import (
	. "github.com/ChizhovVadim/CheckersGo/pkg/common"
)

func material(p Position, side Side, w *Weights) float64 {
	return w.ManWeight*float64(PopCount(p.Men(side))) +
		w.KingWeight*float64(PopCount(p.KingsOf(side)))
}

func backRow(p Position, side Side) int {
	return PopCount(p.Pieces(side) & BackRow(side))
}

// captureValue is the value of the best jump sequence available to side.
func captureValue(p Position, side Side, jumps []Move, w *Weights) float64 {
	var best float64
	for _, m := range jumps {
		var to = SquareMask[m.To()]
		var value = float64(m.Captures())
		if p.Kings&SquareMask[m.From()] == 0 && to&PromotionRow(side) != 0 {
			value *= 1 + w.PromotionBonus
		}
		if to&EdgeMask != 0 {
			value *= 1 + w.EdgeBonus
		}
		if p.Kings&m.JumpedSquares() != 0 {
			value *= 1 + w.KingCaptureBonus
		}
		if value > best {
			best = value
		}
	}
	return best
}

func mobility(p Position, side Side, jumps []Move, w *Weights) float64 {
	var buffer [MaxMoves]Move
	var steps = len(p.GenerateSimpleMoves(side, buffer[:0]))
	var captures = 0
	for _, m := range jumps {
		captures += m.Captures()
	}
	return float64(steps) + w.JumpMobilityWeight*float64(captures)
}

// safePieces counts pieces whose backward diagonals are off the board or held by a friendly piece.
func safePieces(p Position, side Side) int {
	var own = p.Pieces(side)
	var safe = own
	for _, dir := range ForwardDirections(side) {
		safe &= Shift(own, dir) | ^Shift(AllSquares, dir)
	}
	return PopCount(safe)
}

func vergeOfKinging(p Position, side Side) int {
	var empty = p.EmptySquares()
	var open uint32
	for _, dir := range ForwardDirections(side) {
		open |= Shift(empty, OppositeDirection(dir))
	}
	return PopCount(p.Men(side) & vergeRow(side) & open)
}

func vergeRow(side Side) uint32 {
	if side == SideWhite {
		return Rank2Mask
	}
	return Rank7Mask
}

// promotionDistance is the number of rows the men of side still have to travel.
func promotionDistance(p Position, side Side) int {
	var result = 0
	for x := p.Men(side); x != 0; x &= x - 1 {
		var row = Row(FirstOne(x))
		if side == SideWhite {
			result += row
		} else {
			result += Rank8 - row
		}
	}
	return result
}

// chase drives the stronger side toward the weaker pieces and rewards
// the weaker side for hiding its kings in the double corners.
func chase(p Position, total int, w *Weights) float64 {
	var whiteKings = PopCount(p.KingsOf(SideWhite))
	var blackKings = PopCount(p.KingsOf(SideBlack))
	if whiteKings == blackKings && total >= w.EndgamePieces {
		return 0
	}
	var stronger float64
	switch {
	case whiteKings > blackKings:
		stronger = 1
	case whiteKings < blackKings:
		stronger = -1
	default:
		var delta = material(p, SideWhite, w) - material(p, SideBlack, w)
		if delta > 0 {
			stronger = 1
		} else if delta < 0 {
			stronger = -1
		} else {
			return 0
		}
	}
	var weaker = SideBlack
	if stronger < 0 {
		weaker = SideWhite
	}
	var distance = 0
	for x := p.White; x != 0; x &= x - 1 {
		var from = FirstOne(x)
		for y := p.Black; y != 0; y &= y - 1 {
			distance += SquareDistance(from, FirstOne(y))
		}
	}
	var corners = PopCount(p.KingsOf(weaker) & doubleCorners)
	return stronger * (-w.ChaseWeight*float64(distance) - w.DoubleCornerWeight*float64(corners))
}
