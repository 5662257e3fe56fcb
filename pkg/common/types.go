package common

type Side int

const (
	SideWhite Side = iota
	SideBlack
)

func (s Side) Opponent() Side {
	return s ^ 1
}

func (s Side) String() string {
	if s == SideWhite {
		return "white"
	}
	return "black"
}

type Piece int

const (
	Empty Piece = iota
	WhiteMan
	WhiteKing
	BlackMan
	BlackKing
)

// Position is a checkers position. It does not know the side to move.
// Invariants: White&Black == 0, Kings is a subset of White|Black.
type Position struct {
	White, Black, Kings uint32
}

const (
	MaxMoves      = 128
	MaxMoveLength = 13
	MaxPieces     = 24
)

// Move is a path of squares. Two squares is a step or a single jump,
// more squares is a multi-jump. The zero value is MoveEmpty.
type Move struct {
	path [MaxMoveLength]int8
	size int8
}

var MoveEmpty = Move{}

type OrderedMove struct {
	Move Move
	Key  float64
}
