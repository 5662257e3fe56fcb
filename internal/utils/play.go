package utils

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/ChizhovVadim/CheckersGo/pkg/common"
	"github.com/ChizhovVadim/CheckersGo/pkg/engine"
)

type IEngine interface {
	Search(ctx context.Context, searchParams engine.SearchParams) engine.SearchInfo
}

// PlayCli plays one game from the initial position: the human types moves for humanSide,
// the engine answers for the other side.
func PlayCli(ctx context.Context, eng IEngine, limits engine.Limits,
	humanSide common.Side, in io.Reader, out io.Writer) error {
	return play(ctx, newGame(), eng, limits, humanSide, in, out)
}

func play(ctx context.Context, g *game, eng IEngine, limits engine.Limits,
	humanSide common.Side, in io.Reader, out io.Writer) error {
	var scanner = bufio.NewScanner(in)
	for {
		g.Print(out)
		if !g.position.HasLegalMoves(g.side) {
			fmt.Fprintf(out, "%v wins\n", g.side.Opponent())
			return nil
		}
		if g.side != humanSide {
			var si = eng.Search(ctx, engine.SearchParams{
				Position: g.position,
				Side:     g.side,
				Limits:   limits,
			})
			if err := ctx.Err(); err != nil {
				return err
			}
			fmt.Fprintln(out, si.BestMove.String())
			if err := g.MakeMove(si.BestMove); err != nil {
				return fmt.Errorf("engine move %v: %w", si.BestMove, err)
			}
			continue
		}
		for {
			if !scanner.Scan() {
				return scanner.Err()
			}
			var commandLine = strings.TrimSpace(scanner.Text())
			if commandLine == "" {
				continue
			}
			if commandLine == "quit" {
				return nil
			}
			if commandLine == "legal" {
				fmt.Fprintln(out, movesString(g.position.LegalMoves(g.side)))
				continue
			}
			var move, err = common.ParseMove(commandLine)
			if err == nil {
				err = g.MakeMove(move)
			}
			if err != nil {
				fmt.Fprintln(out, "bad move:", err)
				continue
			}
			break
		}
	}
}

type game struct {
	position common.Position
	side     common.Side
	moves    []common.Move
}

func newGame() *game {
	return &game{
		position: common.NewInitialPosition(),
		side:     common.SideBlack,
	}
}

func (g *game) MakeMove(move common.Move) error {
	var child, err = g.position.PlayMove(move, g.side)
	if err != nil {
		return err
	}
	g.position = child
	g.side = g.side.Opponent()
	g.moves = append(g.moves, move)
	return nil
}

func (g *game) Print(w io.Writer) {
	for rank := common.Rank8; rank >= common.Rank1; rank-- {
		for file := common.FileA; file <= common.FileH; file++ {
			var sq = common.MakeSquare(file, rank)
			fmt.Fprint(w, pieceString(g.position, sq))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "%v to move\n", g.side)
}

func movesString(ml []common.Move) string {
	if len(ml) == 0 {
		return "none"
	}
	return strings.Join(lo.Map(ml, func(m common.Move, _ int) string {
		return m.String()
	}), " ")
}

const (
	whiteMan  = "⛀"
	whiteKing = "⛁"
	blackMan  = "⛂"
	blackKing = "⛃"
)

const (
	fgBlack = 30
)

const (
	bgWhite   = 47
	bgHiWhite = 107
)

var checkersSymbols = [...]string{
	common.Empty:     " ",
	common.WhiteMan:  whiteMan,
	common.WhiteKing: whiteKing,
	common.BlackMan:  blackMan,
	common.BlackKing: blackKing,
}

func pieceString(p common.Position, sq int) string {
	var s string
	var bgColor int
	if sq == common.SquareNone {
		s = " "
		bgColor = bgHiWhite
	} else {
		s = checkersSymbols[p.PieceAt(sq)]
		bgColor = bgWhite
	}
	s += " "
	const escape = "\x1b"
	const reset = 0
	return fmt.Sprintf("%s[%d;%dm%s%s[%dm", escape, fgBlack, bgColor, s, escape, reset)
}
