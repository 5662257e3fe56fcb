package evalbuilder

import (
	"testing"

	"github.com/ChizhovVadim/CheckersGo/pkg/common"
	heuristic "github.com/ChizhovVadim/CheckersGo/pkg/eval/heuristic"
)

func TestGet(t *testing.T) {
	var p, err = common.NewPositionFromSetup([]string{"C5", "E5"}, []string{"B4"})
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range append([]string{""}, Names...) {
		var e, err = Get(name, heuristic.DefaultWeights())
		if err != nil {
			t.Fatalf("%q: %v", name, err)
		}
		if score := e.Evaluate(p, common.SideWhite); score <= 0 {
			t.Errorf("%q: white is a man up, got %v", name, score)
		}
	}
	if _, err := Get("nnue", heuristic.DefaultWeights()); err == nil {
		t.Error("unknown evaluator accepted")
	}
}
