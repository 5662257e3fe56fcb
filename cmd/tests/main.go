package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ChizhovVadim/CheckersGo/internal/evalbuilder"
	"github.com/ChizhovVadim/CheckersGo/internal/utils"
	"github.com/ChizhovVadim/CheckersGo/pkg/common"
	"github.com/ChizhovVadim/CheckersGo/pkg/engine"
	heuristic "github.com/ChizhovVadim/CheckersGo/pkg/eval/heuristic"
)

func main() {
	var args = NewCommandArgs(os.Args)
	if _, err := utils.InitLogger(os.Stderr, args.GetString("loglevel", "info")); err != nil {
		log.Fatal().Err(err).Msg("bad log level")
	}
	var ch = NewCommandHandler()
	ch.Add("perft", perftHandler)
	ch.Add("benchmark", benchmarkHandler)
	ch.Add("saveweights", saveWeightsHandler)
	var err = ch.Execute(args)
	if err != nil {
		log.Fatal().Err(err).Str("command", args.CommandName()).Msg("command failed")
	}
}

func perftHandler(args *CommandArgs) error {
	var depth = args.GetInt("depth", 8)
	var p = common.NewInitialPosition()
	for d := 1; d <= depth; d++ {
		var start = time.Now()
		var nodes = common.Perft(p, common.SideBlack, d)
		log.Info().
			Int("depth", d).
			Int("nodes", nodes).
			Dur("elapsed", time.Since(start)).
			Msg("perft")
	}
	return nil
}

func benchmarkHandler(args *CommandArgs) error {
	var evalName = args.GetString("eval", "")
	var count = args.GetInt("positions", 20)
	var limits = engine.Limits{MaxDepth: args.GetInt("depth", 8)}

	log.Info().Str("evalName", evalName).Msg("benchmark started")
	defer log.Info().Msg("benchmark finished")

	var evaluator, err = evalbuilder.Get(evalName, heuristic.DefaultWeights())
	if err != nil {
		return err
	}
	var eng = engine.NewEngine(evaluator)
	var ctx = context.Background()
	var start = time.Now()
	var nodes int64
	for _, test := range randomPositions(rand.New(rand.NewSource(1)), count) {
		var si = eng.Search(ctx, engine.SearchParams{
			Position: test.position,
			Side:     test.side,
			Limits:   limits,
		})
		nodes += si.Nodes
	}
	var elapsed = time.Since(start)
	fmt.Println("Time", elapsed)
	fmt.Println("Nodes", nodes)
	if ms := elapsed.Milliseconds(); ms > 0 {
		fmt.Println("kNPS", nodes/ms)
	}
	return nil
}

func saveWeightsHandler(args *CommandArgs) error {
	var path = args.GetString("path", "./weights.json")
	return heuristic.DefaultWeights().Save(utils.MapPath(path))
}

type benchmarkPosition struct {
	position common.Position
	side     common.Side
}

// randomPositions plays random openings of up to 20 plies.
func randomPositions(rnd *rand.Rand, count int) []benchmarkPosition {
	var result []benchmarkPosition
	for len(result) < count {
		var p = common.NewInitialPosition()
		var side = common.SideBlack
		var plies = 4 + rnd.Intn(16)
		for i := 0; i < plies; i++ {
			var ml = p.LegalMoves(side)
			if len(ml) == 0 {
				break
			}
			p = p.MakeMove(ml[rnd.Intn(len(ml))], side)
			side = side.Opponent()
		}
		if p.HasLegalMoves(side) {
			result = append(result, benchmarkPosition{p, side})
		}
	}
	return result
}
