package eval

import (
	"testing"

	"github.com/ChizhovVadim/CheckersGo/pkg/common"
)

func TestEvaluate(t *testing.T) {
	var tests = []struct {
		white, black []string
		want         float64
	}{
		{nil, nil, 0},
		{[]string{"C5"}, nil, 100},
		{[]string{"C5"}, []string{"KB4"}, -50},
		{[]string{"KC5", "KE5"}, []string{"A1", "C1", "E1"}, 0},
	}
	var e = NewEvaluationService()
	for _, tt := range tests {
		var p, err = common.NewPositionFromSetup(tt.white, tt.black)
		if err != nil {
			t.Fatal(err)
		}
		for _, side := range []common.Side{common.SideWhite, common.SideBlack} {
			if got := e.Evaluate(p, side); got != tt.want {
				t.Errorf("%v %v: got %v, want %v", tt.white, tt.black, got, tt.want)
			}
		}
	}
	if got := e.Evaluate(common.NewInitialPosition(), common.SideBlack); got != 0 {
		t.Errorf("initial position: %v", got)
	}
}
