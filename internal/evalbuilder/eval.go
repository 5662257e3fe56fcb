package evalbuilder

import (
	"fmt"

	"github.com/ChizhovVadim/CheckersGo/pkg/engine"
	heuristic "github.com/ChizhovVadim/CheckersGo/pkg/eval/heuristic"
	material "github.com/ChizhovVadim/CheckersGo/pkg/eval/material"
)

// Names lists the evaluators Get knows.
var Names = []string{"heuristic", "material"}

// Get builds the evaluator named key. The empty key selects the heuristic evaluator.
func Get(key string, weights heuristic.Weights) (engine.Evaluator, error) {
	switch key {
	case "", "heuristic":
		return heuristic.NewEvaluationService(weights), nil
	case "material":
		return material.NewEvaluationService(), nil
	}
	return nil, fmt.Errorf("bad eval %v", key)
}
