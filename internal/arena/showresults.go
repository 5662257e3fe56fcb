package arena

import (
	"context"
	"math"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

func showResults(
	ctx context.Context,
	gameResults <-chan gameResult,
) (GameStatistics, error) {
	var wins, losses, draws int
	var plies []float64
	var result GameStatistics
	for gameResult := range gameResults {
		log.Info().
			Int("game", gameResult.gameInfo.gameNumber).
			Str("result", gameResultString(gameResult.result)).
			Str("comment", gameResult.comment).
			Int("plies", len(gameResult.moves)).
			Msg("finished game")
		if gameResult.result == gameResultDraw {
			draws++
		} else if gameResult.result == gameResultWhiteWins && gameResult.gameInfo.engineAIsWhite ||
			gameResult.result == gameResultBlackWins && !gameResult.gameInfo.engineAIsWhite {
			wins++
		} else {
			losses++
		}
		plies = append(plies, float64(len(gameResult.moves)))
		result = computeStat(wins, losses, draws)
		result.MeanPlies = stat.Mean(plies, nil)
		log.Info().Msgf("Score: %v - %v - %v  [%.3f] %v",
			wins, losses, draws, result.WinningFraction, result.Games)
		log.Info().Msgf("Elo difference: %.1f, LOS: %.1f %%",
			result.EloDifference, result.LOS*100)
	}
	return result, ctx.Err()
}

type GameStatistics struct {
	Games           int
	Wins            int
	Losses          int
	Draws           int
	WinningFraction float64
	EloDifference   float64
	LOS             float64
	MeanPlies       float64
}

// https://www.chessprogramming.org/Match_Statistics
func computeStat(wins, losses, draws int) GameStatistics {
	var games = wins + losses + draws
	var result = GameStatistics{
		Games:  games,
		Wins:   wins,
		Losses: losses,
		Draws:  draws,
		LOS:    0.5,
	}
	if games == 0 {
		return result
	}
	result.WinningFraction = (float64(wins) + 0.5*float64(draws)) / float64(games)
	result.EloDifference = -math.Log(1/result.WinningFraction-1) * 400 / math.Ln10
	if wins+losses != 0 {
		result.LOS = distuv.UnitNormal.CDF(float64(wins-losses) / math.Sqrt(float64(wins+losses)))
	}
	return result
}

func gameResultString(v int) string {
	if v == gameResultWhiteWins {
		return "1-0"
	}
	if v == gameResultBlackWins {
		return "0-1"
	}
	if v == gameResultDraw {
		return "1/2-1/2"
	}
	return ""
}
