package arena

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/ChizhovVadim/CheckersGo/internal/evalbuilder"
	"github.com/ChizhovVadim/CheckersGo/pkg/engine"
	heuristic "github.com/ChizhovVadim/CheckersGo/pkg/eval/heuristic"
)

type Config struct {
	Concurrency int
	Limits      engine.Limits
	// MaxOpenings of zero plays every opening.
	MaxOpenings int
	// MaxPlies ends a game as a draw.
	MaxPlies int
	// QuietPlies without a capture or a man move end a game as a draw.
	QuietPlies int
	EvalA      string
	EvalB      string
	WeightsA   heuristic.Weights
	WeightsB   heuristic.Weights
}

func DefaultConfig() Config {
	return Config{
		Concurrency: runtime.NumCPU(),
		Limits: engine.Limits{
			MaxDepth:       6,
			TimeLimit:      100 * time.Millisecond,
			EarlyStopDepth: 3,
		},
		MaxPlies:   200,
		QuietPlies: 80,
		WeightsA:   heuristic.DefaultWeights(),
		WeightsB:   heuristic.DefaultWeights(),
	}
}

// Arena plays engine A against engine B from every opening with both colour assignments.
type Arena struct {
	config  Config
	engineA *engine.Engine
	engineB *engine.Engine
}

func New(config Config) (*Arena, error) {
	var evaluatorA, err = evalbuilder.Get(config.EvalA, config.WeightsA)
	if err != nil {
		return nil, err
	}
	evaluatorB, err := evalbuilder.Get(config.EvalB, config.WeightsB)
	if err != nil {
		return nil, err
	}
	if config.Concurrency < 1 {
		config.Concurrency = 1
	}
	return &Arena{
		config:  config,
		engineA: engine.NewEngine(evaluatorA),
		engineB: engine.NewEngine(evaluatorB),
	}, nil
}

// Run plays the match and returns the result from engine A's point of view.
func (a *Arena) Run(ctx context.Context) (GameStatistics, error) {
	log.Info().Msg("arena started")
	defer log.Info().Msg("arena finished")

	log.Info().
		Int("NumCPU", runtime.NumCPU()).
		Int("GOMAXPROCS", runtime.GOMAXPROCS(0)).
		Int("gameConcurrency", a.config.Concurrency).
		Msg("arena config")

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)
	var stat GameStatistics

	g.Go(func() error {
		defer close(gameInfos)
		return loadOpenings(ctx, a.config.MaxOpenings, gameInfos)
	})

	g.Go(func() error {
		var err error
		stat, err = showResults(ctx, gameResults)
		return err
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < a.config.Concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return a.playGames(ctx, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	var err = g.Wait()
	return stat, err
}

func (a *Arena) playGames(
	ctx context.Context,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	for gameInfo := range gameInfos {
		var res, err = playGame(ctx, a.engineA, a.engineB, a.config, gameInfo)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}
