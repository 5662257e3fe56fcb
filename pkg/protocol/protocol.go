package protocol

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/ChizhovVadim/CheckersGo/internal/evalbuilder"
	"github.com/ChizhovVadim/CheckersGo/pkg/common"
	"github.com/ChizhovVadim/CheckersGo/pkg/engine"
	heuristic "github.com/ChizhovVadim/CheckersGo/pkg/eval/heuristic"
)

var (
	errSearchRunning          = errors.New("search still run")
	errUnknownPositionCommand = errors.New("unknown position command")
)

type Engine interface {
	Search(ctx context.Context, searchParams engine.SearchParams) engine.SearchInfo
}

type Config struct {
	Name     string
	Author   string
	Version  string
	EvalName string
	Weights  heuristic.Weights
	Limits   engine.Limits
}

// Protocol is a line oriented engine protocol in the spirit of UCI.
// Replies go to out, diagnostics to logger.
type Protocol struct {
	config       Config
	engine       Engine
	out          io.Writer
	logger       zerolog.Logger
	position     common.Position
	side         common.Side
	thinking     bool
	engineOutput chan engine.SearchInfo
	cancel       context.CancelFunc
	searchResult engine.SearchInfo
}

func New(config Config, out io.Writer, logger zerolog.Logger) (*Protocol, error) {
	var evaluator, err = evalbuilder.Get(config.EvalName, config.Weights)
	if err != nil {
		return nil, err
	}
	return &Protocol{
		config:   config,
		engine:   engine.NewEngine(evaluator),
		out:      out,
		logger:   logger,
		position: common.NewInitialPosition(),
		side:     common.SideBlack,
	}, nil
}

// Run reads commands from in until "quit", end of input or ctx is done.
// At end of input a running search is allowed to finish; "quit" stops it.
func (p *Protocol) Run(ctx context.Context, in io.Reader) {
	var commands = make(chan string)
	var done = make(chan struct{})
	defer close(done)

	go func() {
		defer close(commands)
		readCommands(in, commands, done)
	}()

	for {
		select {
		case si, ok := <-p.engineOutput:
			p.onEngineOutput(si, ok)
		case <-ctx.Done():
			p.stopSearch()
			return
		case commandLine, ok := <-commands:
			if !ok {
				p.waitSearch()
				return
			}
			if commandLine == "quit" {
				p.stopSearch()
				return
			}
			var err = p.handle(commandLine)
			if err != nil {
				p.logger.Error().Err(err).Str("command", commandLine).Msg("command failed")
			}
		}
	}
}

func readCommands(in io.Reader, commands chan<- string, done <-chan struct{}) {
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		var commandLine = strings.TrimSpace(scanner.Text())
		if commandLine == "" {
			continue
		}
		select {
		case commands <- commandLine:
		case <-done:
			return
		}
		if commandLine == "quit" {
			return
		}
	}
}

func (p *Protocol) onEngineOutput(si engine.SearchInfo, ok bool) {
	if ok {
		fmt.Fprintln(p.out, searchInfoString(si))
		p.searchResult = si
		return
	}
	fmt.Fprintf(p.out, "bestmove %v\n", p.searchResult.BestMove)
	p.thinking = false
	p.cancel = nil
	p.engineOutput = nil
	p.searchResult = engine.SearchInfo{}
}

func (p *Protocol) waitSearch() {
	for p.engineOutput != nil {
		var si, ok = <-p.engineOutput
		p.onEngineOutput(si, ok)
	}
}

func (p *Protocol) stopSearch() {
	if p.cancel != nil {
		p.cancel()
	}
	p.waitSearch()
}

func (p *Protocol) handle(commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	var commandName = fields[0]
	fields = fields[1:]

	if p.thinking {
		if commandName == "stop" {
			p.cancel()
			return nil
		}
		return errSearchRunning
	}

	var h func(fields []string) error

	switch commandName {
	case "hello":
		h = p.helloCommand
	case "isready":
		h = p.isReadyCommand
	case "newgame":
		h = p.newGameCommand
	case "position":
		h = p.positionCommand
	case "legal":
		h = p.legalCommand
	case "show":
		h = p.showCommand
	case "go":
		h = p.goCommand
	case "weights":
		h = p.weightsCommand
	case "stop":
		return nil
	}

	if h == nil {
		return fmt.Errorf("command not found: %v", commandName)
	}

	return h(fields)
}

func (p *Protocol) helloCommand(fields []string) error {
	fmt.Fprintf(p.out, "id name %s %s\n", p.config.Name, p.config.Version)
	fmt.Fprintf(p.out, "id author %s\n", p.config.Author)
	fmt.Fprintln(p.out, "hellook")
	return nil
}

func (p *Protocol) isReadyCommand(fields []string) error {
	fmt.Fprintln(p.out, "readyok")
	return nil
}

func (p *Protocol) newGameCommand(fields []string) error {
	p.position = common.NewInitialPosition()
	p.side = common.SideBlack
	return nil
}

// positionCommand accepts
//
//	position startpos [moves m1 m2 ...]
//	position setup <side> white <squares> black <squares> [moves m1 m2 ...]
//
// where squares is a comma separated list such as C5,KD4 or "-" for none.
func (p *Protocol) positionCommand(fields []string) error {
	var movesIndex = lo.IndexOf(fields, "moves")
	var args = fields
	if movesIndex >= 0 {
		args = fields[:movesIndex]
	}
	if len(args) == 0 {
		return errUnknownPositionCommand
	}
	var position common.Position
	var side common.Side
	switch args[0] {
	case "startpos":
		position, side = common.NewInitialPosition(), common.SideBlack
	case "setup":
		var err error
		position, side, err = parseSetup(args[1:])
		if err != nil {
			return err
		}
	default:
		return errUnknownPositionCommand
	}
	if movesIndex >= 0 {
		for _, smove := range fields[movesIndex+1:] {
			var m, err = common.ParseMove(smove)
			if err != nil {
				return err
			}
			position, err = position.PlayMove(m, side)
			if err != nil {
				return err
			}
			side = side.Opponent()
		}
	}
	p.position, p.side = position, side
	return nil
}

func parseSetup(args []string) (common.Position, common.Side, error) {
	if len(args) != 5 || args[1] != "white" || args[3] != "black" {
		return common.Position{}, 0, fmt.Errorf("%w: want <side> white <squares> black <squares>", common.ErrInvalidSetup)
	}
	var side, err = parseSide(args[0])
	if err != nil {
		return common.Position{}, 0, err
	}
	position, err := common.NewPositionFromSetup(parseSquares(args[2]), parseSquares(args[4]))
	if err != nil {
		return common.Position{}, 0, err
	}
	return position, side, nil
}

func parseSquares(s string) []string {
	if s == "-" {
		return nil
	}
	return common.ParseSquareList(s)
}

func parseSide(s string) (common.Side, error) {
	switch s {
	case "white", "w":
		return common.SideWhite, nil
	case "black", "b":
		return common.SideBlack, nil
	}
	return 0, fmt.Errorf("%w: unknown side %q", common.ErrInvalidSetup, s)
}

func (p *Protocol) legalCommand(fields []string) error {
	var ml = p.position.LegalMoves(p.side)
	if len(ml) == 0 {
		fmt.Fprintln(p.out, "legal none")
		return nil
	}
	var moves = lo.Map(ml, func(m common.Move, _ int) string { return m.String() })
	fmt.Fprintf(p.out, "legal %v\n", strings.Join(moves, " "))
	return nil
}

func (p *Protocol) showCommand(fields []string) error {
	fmt.Fprintln(p.out, p.position.String())
	fmt.Fprintf(p.out, "side %v\n", p.side)
	return nil
}

func (p *Protocol) goCommand(fields []string) error {
	var limits, err = parseLimits(fields, p.config.Limits)
	if err != nil {
		return err
	}
	var ctx, cancel = context.WithCancel(context.Background())
	p.cancel = cancel
	p.thinking = true
	p.engineOutput = make(chan engine.SearchInfo, 3)
	var params = engine.SearchParams{
		Position: p.position,
		Side:     p.side,
		Limits:   limits,
	}
	var output = p.engineOutput
	params.Progress = func(si engine.SearchInfo) {
		select {
		case output <- si:
		default:
		}
	}
	go func() {
		defer cancel()
		var searchResult = p.engine.Search(ctx, params)
		output <- searchResult
		close(output)
	}()
	return nil
}

func (p *Protocol) weightsCommand(fields []string) error {
	if len(fields) != 1 {
		return errors.New("usage: weights <path>")
	}
	var weights, err = heuristic.LoadWeights(fields[0])
	if err != nil {
		return err
	}
	evaluator, err := evalbuilder.Get(p.config.EvalName, weights)
	if err != nil {
		return err
	}
	p.config.Weights = weights
	p.engine = engine.NewEngine(evaluator)
	p.logger.Info().Str("path", fields[0]).Msg("weights loaded")
	return nil
}

func searchInfoString(si engine.SearchInfo) string {
	return fmt.Sprintf("info depth %v score %.1f nodes %v time %v",
		si.Depth, si.Score, si.Nodes, si.Time.Milliseconds())
}

func parseLimits(args []string, defaults engine.Limits) (engine.Limits, error) {
	var result = defaults
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "infinite":
			result.MaxDepth = 0
			result.TimeLimit = 0
			result.EarlyStopDepth = 0
			continue
		case "depth", "movetime", "earlystop":
		default:
			return result, fmt.Errorf("unknown go argument %q", args[i])
		}
		if i+1 >= len(args) {
			return result, fmt.Errorf("missing value for %v", args[i])
		}
		var value, err = strconv.Atoi(args[i+1])
		if err != nil {
			return result, fmt.Errorf("%v: %w", args[i], err)
		}
		switch args[i] {
		case "depth":
			result.MaxDepth = value
		case "movetime":
			result.TimeLimit = time.Duration(value) * time.Millisecond
		case "earlystop":
			result.EarlyStopDepth = value
		}
		i++
	}
	return result, nil
}
