package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/ChizhovVadim/CheckersGo/internal/arena"
	"github.com/ChizhovVadim/CheckersGo/internal/utils"
	heuristic "github.com/ChizhovVadim/CheckersGo/pkg/eval/heuristic"
)

func main() {
	var err = run()
	if err != nil {
		log.Fatal().Err(err).Msg("arena failed")
	}
}

func run() error {
	var config = arena.DefaultConfig()
	var (
		weightsA string
		weightsB string
		logLevel string
	)
	flag.IntVar(&config.Concurrency, "concurrency", config.Concurrency, "Number of games played in parallel")
	flag.IntVar(&config.Limits.MaxDepth, "depth", config.Limits.MaxDepth, "Search depth")
	flag.DurationVar(&config.Limits.TimeLimit, "movetime", config.Limits.TimeLimit, "Time per move")
	flag.IntVar(&config.Limits.EarlyStopDepth, "earlystop", config.Limits.EarlyStopDepth, "Iterations without improvement before stopping")
	flag.IntVar(&config.MaxPlies, "maxplies", config.MaxPlies, "Plies before a game is drawn")
	flag.IntVar(&config.QuietPlies, "quietplies", config.QuietPlies, "Plies without a capture or a man move before a game is drawn")
	flag.IntVar(&config.MaxOpenings, "openings", config.MaxOpenings, "Number of openings, 0 plays all")
	flag.StringVar(&config.EvalA, "evala", config.EvalA, "Evaluation function of engine A")
	flag.StringVar(&config.EvalB, "evalb", "material", "Evaluation function of engine B")
	flag.StringVar(&weightsA, "weightsa", "", "Heuristic weights of engine A")
	flag.StringVar(&weightsB, "weightsb", "", "Heuristic weights of engine B")
	flag.StringVar(&logLevel, "loglevel", "info", "Log level")
	flag.Parse()

	if _, err := utils.InitLogger(os.Stderr, logLevel); err != nil {
		return err
	}

	var err error
	if weightsA != "" {
		config.WeightsA, err = heuristic.LoadWeights(utils.MapPath(weightsA))
		if err != nil {
			return err
		}
	}
	if weightsB != "" {
		config.WeightsB, err = heuristic.LoadWeights(utils.MapPath(weightsB))
		if err != nil {
			return err
		}
	}

	log.Info().Interface("config", config).Msg("arena config")

	a, err := arena.New(config)
	if err != nil {
		return err
	}
	stat, err := a.Run(context.Background())
	if err != nil {
		return err
	}
	log.Info().
		Int("Games", stat.Games).
		Int("Wins", stat.Wins).
		Int("Losses", stat.Losses).
		Int("Draws", stat.Draws).
		Float64("Elo", stat.EloDifference).
		Float64("LOS", stat.LOS).
		Float64("MeanPlies", stat.MeanPlies).
		Msg("match result")
	return nil
}
