package eval

import (
	"github.com/ChizhovVadim/CheckersGo/pkg/common"
)

type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

func (e *EvaluationService) Evaluate(p common.Position, side common.Side) float64 {
	var eval = 100*(common.PopCount(p.Men(common.SideWhite))-common.PopCount(p.Men(common.SideBlack))) +
		150*(common.PopCount(p.KingsOf(common.SideWhite))-common.PopCount(p.KingsOf(common.SideBlack)))
	return float64(eval)
}
