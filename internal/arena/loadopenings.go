package arena

import (
	"context"

	"github.com/samber/lo"

	"github.com/ChizhovVadim/CheckersGo/pkg/common"
)

const openingPlies = 2

func loadOpenings(
	ctx context.Context,
	maxOpenings int,
	gameInfos chan<- gameInfo,
) error {

	var openings = getOpenings()
	if maxOpenings > 0 && len(openings) > maxOpenings {
		openings = openings[:maxOpenings]
	}

	for i, opening := range openings {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: opening, engineAIsWhite: true, gameNumber: 1 + 2*i}:
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: opening, engineAIsWhite: false, gameNumber: 1 + 2*i + 1}:
		}
	}

	return nil
}

// getOpenings lists every line of openingPlies plies from the initial position
// that leaves the side to move with a legal move.
func getOpenings() []opening {
	var openings = []opening{{
		position: common.NewInitialPosition(),
		side:     common.SideBlack,
	}}
	for ply := 0; ply < openingPlies; ply++ {
		openings = lo.FlatMap(openings, func(o opening, _ int) []opening {
			return lo.Map(o.position.LegalMoves(o.side), func(m common.Move, _ int) opening {
				return opening{
					moves:    append(append([]common.Move(nil), o.moves...), m),
					position: o.position.MakeMove(m, o.side),
					side:     o.side.Opponent(),
				}
			})
		})
	}
	return lo.Filter(openings, func(o opening, _ int) bool {
		return o.position.HasLegalMoves(o.side)
	})
}
