package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ChizhovVadim/CheckersGo/internal/evalbuilder"
	"github.com/ChizhovVadim/CheckersGo/internal/server"
	"github.com/ChizhovVadim/CheckersGo/internal/utils"
	"github.com/ChizhovVadim/CheckersGo/pkg/common"
	"github.com/ChizhovVadim/CheckersGo/pkg/engine"
	heuristic "github.com/ChizhovVadim/CheckersGo/pkg/eval/heuristic"
	"github.com/ChizhovVadim/CheckersGo/pkg/protocol"
)

const (
	name   = "Checkers"
	author = "Vadim Chizhov"
)

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
)

func main() {
	var defaults = engine.DefaultLimits()
	var (
		evalName    = flag.String("eval", "", "Evaluation function: heuristic or material")
		weightsPath = flag.String("weights", "", "JSON file with heuristic weights")
		logLevel    = flag.String("loglevel", "info", "Log level")
		depth       = flag.Int("depth", defaults.MaxDepth, "Default search depth")
		moveTime    = flag.Duration("movetime", defaults.TimeLimit, "Default time per move")
		earlyStop   = flag.Int("earlystop", defaults.EarlyStopDepth, "Iterations without improvement before stopping, 0 disables")
		playSide    = flag.String("play", "", "Play a game in the console as white or black")
		listen      = flag.String("listen", "", "Serve the protocol over websocket on this address")
	)
	flag.Parse()

	var logger, err = utils.InitLogger(os.Stderr, *logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("bad log level")
	}

	logger.Info().
		Str("Name", name).
		Str("Author", author).
		Str("Version", versionName).
		Str("BuildDate", buildDate).
		Str("GitRevision", gitRevision).
		Str("RuntimeVersion", runtime.Version()).
		Int("NumCPU", runtime.NumCPU()).
		Msg("engine started")

	var weights = heuristic.DefaultWeights()
	if *weightsPath != "" {
		weights, err = heuristic.LoadWeights(utils.MapPath(*weightsPath))
		if err != nil {
			logger.Fatal().Err(err).Msg("load weights failed")
		}
	}

	var limits = engine.Limits{
		MaxDepth:       *depth,
		TimeLimit:      *moveTime,
		EarlyStopDepth: *earlyStop,
	}

	if *playSide != "" {
		err = playConsole(*playSide, *evalName, weights, limits)
		if err != nil {
			logger.Fatal().Err(err).Msg("play failed")
		}
		return
	}

	var config = protocol.Config{
		Name:     name,
		Author:   author,
		Version:  versionName,
		EvalName: *evalName,
		Weights:  weights,
		Limits:   limits,
	}

	if *listen != "" {
		logger.Info().Str("address", *listen).Msg("websocket server started")
		err = http.ListenAndServe(*listen, server.Handler(config, logger))
		if err != nil {
			logger.Fatal().Err(err).Msg("websocket server failed")
		}
		return
	}

	p, err := protocol.New(config, os.Stdout, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("create protocol failed")
	}
	p.Run(context.Background(), os.Stdin)
}

func playConsole(sideName, evalName string, weights heuristic.Weights, limits engine.Limits) error {
	var humanSide common.Side
	switch sideName {
	case "white", "w":
		humanSide = common.SideWhite
	case "black", "b":
		humanSide = common.SideBlack
	default:
		return fmt.Errorf("bad side %v", sideName)
	}
	var evaluator, err = evalbuilder.Get(evalName, weights)
	if err != nil {
		return err
	}
	var start = time.Now()
	defer func() {
		log.Info().Dur("elapsed", time.Since(start)).Msg("game finished")
	}()
	return utils.PlayCli(context.Background(), engine.NewEngine(evaluator), limits,
		humanSide, os.Stdin, os.Stdout)
}
