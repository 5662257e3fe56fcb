package common

import "errors"

var (
	ErrInvalidCoordinate   = errors.New("invalid coordinate")
	ErrInvalidMove         = errors.New("invalid move")
	ErrIllegalMoveSelected = errors.New("move is not legal in this position")
	ErrInvalidSetup        = errors.New("invalid setup")
)
