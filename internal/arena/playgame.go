package arena

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/ChizhovVadim/CheckersGo/pkg/common"
	"github.com/ChizhovVadim/CheckersGo/pkg/engine"
)

type IEngine interface {
	Search(ctx context.Context, searchParams engine.SearchParams) engine.SearchInfo
}

func playGame(
	ctx context.Context,
	engineA, engineB IEngine,
	config Config,
	info gameInfo,
) (gameResult, error) {

	log.Debug().Int("game", info.gameNumber).Str("opening", movesString(info.opening.moves)).Msg("started game")

	var position = info.opening.position
	var side = info.opening.side
	var moves = append([]common.Move(nil), info.opening.moves...)
	var keys = make(map[positionKey]int)
	var quietPlies = 0

	for {
		if !position.HasLegalMoves(side) {
			var result = gameResultWhiteWins
			if side == common.SideWhite {
				result = gameResultBlackWins
			}
			return gameResult{gameInfo: info, moves: moves, comment: "no moves", result: result}, nil
		}
		var key = positionKey{position: position, side: side}
		keys[key] += 1
		if keys[key] == 3 {
			return gameResult{gameInfo: info, moves: moves, comment: "3 fold repetition", result: gameResultDraw}, nil
		}
		if config.QuietPlies > 0 && quietPlies >= config.QuietPlies {
			return gameResult{gameInfo: info, moves: moves, comment: fmt.Sprintf("%v quiet plies", quietPlies), result: gameResultDraw}, nil
		}
		if config.MaxPlies > 0 && len(moves) >= config.MaxPlies {
			return gameResult{gameInfo: info, moves: moves, comment: "ply limit", result: gameResultDraw}, nil
		}
		var eng IEngine
		if (side == common.SideWhite) == info.engineAIsWhite {
			eng = engineA
		} else {
			eng = engineB
		}
		var searchResult = eng.Search(ctx, engine.SearchParams{
			Position: position,
			Side:     side,
			Limits:   config.Limits,
		})
		if err := ctx.Err(); err != nil {
			return gameResult{}, err
		}
		var bestMove = searchResult.BestMove
		var child, err = position.PlayMove(bestMove, side)
		if err != nil {
			return gameResult{}, fmt.Errorf("game %v: %w", info.gameNumber, err)
		}
		if bestMove.IsJump() || position.Men(side)&common.SquareMask[bestMove.From()] != 0 {
			quietPlies = 0
		} else {
			quietPlies++
		}
		moves = append(moves, bestMove)
		position = child
		side = side.Opponent()
	}
}

func movesString(moves []common.Move) string {
	return strings.Join(lo.Map(moves, func(m common.Move, _ int) string { return m.String() }), " ")
}
