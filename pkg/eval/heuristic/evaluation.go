package eval

import (
	. "github.com/ChizhovVadim/CheckersGo/pkg/common"
)

const totalPieces = MaxPieces

var (
	centerSquares uint32
	doubleCorners = SquareMask[SquareG1] | SquareMask[SquareH2] | SquareMask[SquareA7] | SquareMask[SquareB8]
)

func init() {
	for file := FileC; file <= FileF; file++ {
		for rank := Rank3; rank <= Rank6; rank++ {
			if sq := MakeSquare(file, rank); sq != SquareNone {
				centerSquares |= SquareMask[sq]
			}
		}
	}
}

type EvaluationService struct {
	Weights
}

func NewEvaluationService(w Weights) *EvaluationService {
	return &EvaluationService{Weights: w}
}

func (e *EvaluationService) Evaluate(p Position, side Side) float64 {
	return Evaluate(p, side, &e.Weights)
}

// Evaluate scores p for WHITE: positive values favour WHITE. side is the side to move.
func Evaluate(p Position, side Side, w *Weights) float64 {
	var total = p.PieceCount()
	var whiteBuffer, blackBuffer [MaxMoves]Move
	var jumps = [2][]Move{
		SideWhite: p.GenerateJumps(SideWhite, whiteBuffer[:0]),
		SideBlack: p.GenerateJumps(SideBlack, blackBuffer[:0]),
	}

	var score = adjustment(total, w.MaterialDecay) *
		(material(p, SideWhite, w) - material(p, SideBlack, w))

	score += adjustment(total, w.BackRowDecay) * w.BackRowWeight *
		float64(backRow(p, SideWhite)-backRow(p, SideBlack))

	score += adjustment(total, w.CaptureDecay) * w.CaptureWeight *
		(captureValue(p, SideWhite, jumps[SideWhite], w) - captureValue(p, SideBlack, jumps[SideBlack], w))

	score += adjustment(total, w.MobilityDecay) * w.MobilityWeight *
		(mobility(p, SideWhite, jumps[SideWhite], w) - mobility(p, SideBlack, jumps[SideBlack], w))

	score += adjustment(total, w.SafetyDecay) * w.SafetyWeight *
		float64(safePieces(p, SideWhite)-safePieces(p, SideBlack))

	if len(jumps[side]) != 0 {
		score += sign(side) * adjustment(total, w.TurnDecay) * w.TurnWeight
	}

	score += adjustment(total, w.VergeDecay) * w.VergeWeight *
		float64(vergeOfKinging(p, SideWhite)-vergeOfKinging(p, SideBlack))

	if total >= w.OpeningPieces {
		var centerDelta = PopCount(p.White&centerSquares) - PopCount(p.Black&centerSquares)
		var edgeDelta = PopCount(p.White&EdgeMask) - PopCount(p.Black&EdgeMask)
		score += adjustment(total, w.CenterDecay) *
			(w.CenterWeight*float64(centerDelta) + w.EdgeWeight*float64(edgeDelta))
	}

	if total <= w.MidgamePieces {
		score += adjustment(total, w.PromotionDistanceDecay) * w.PromotionDistanceWeight *
			float64(promotionDistance(p, SideBlack)-promotionDistance(p, SideWhite))
	}

	score += adjustment(total, w.ChaseDecay) * chase(p, total, w)

	return score
}

func sign(side Side) float64 {
	if side == SideWhite {
		return 1
	}
	return -1
}
