package arena

import (
	"github.com/ChizhovVadim/CheckersGo/pkg/common"
)

const (
	gameResultDraw = iota
	gameResultWhiteWins
	gameResultBlackWins
)

// opening is a short move sequence played from the initial position before the engines take over.
type opening struct {
	moves    []common.Move
	position common.Position
	side     common.Side
}

type gameInfo struct {
	opening        opening
	engineAIsWhite bool
	gameNumber     int
}

type gameResult struct {
	gameInfo gameInfo
	moves    []common.Move
	comment  string
	result   int
}

// positionKey identifies a position together with the side to move for repetition detection.
type positionKey struct {
	position common.Position
	side     common.Side
}
