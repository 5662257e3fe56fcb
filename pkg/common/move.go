package common

import (
	"fmt"
	"strings"
)

const moveSeparator = "->"

// NewMove builds a move from square indices.
func NewMove(squares ...int) (Move, error) {
	if len(squares) < 2 || len(squares) > MaxMoveLength {
		return MoveEmpty, fmt.Errorf("%w: path of %d squares", ErrInvalidMove, len(squares))
	}
	var m Move
	for _, sq := range squares {
		if !IsValidSquare(sq) {
			return MoveEmpty, fmt.Errorf("%w: square index %d out of range", ErrInvalidMove, sq)
		}
		m.push(sq)
	}
	return m, nil
}

// ParseMove accepts "A5->C3->E1". The separators "-" and "x" are accepted too.
func ParseMove(s string) (Move, error) {
	var fields = strings.FieldsFunc(strings.ReplaceAll(s, moveSeparator, "-"),
		func(r rune) bool { return r == '-' || r == 'x' || r == 'X' || r == ' ' })
	if len(fields) < 2 || len(fields) > MaxMoveLength {
		return MoveEmpty, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	var m Move
	for _, field := range fields {
		var sq, err = ParseSquare(field)
		if err != nil {
			return MoveEmpty, err
		}
		m.push(sq)
	}
	return m, nil
}

func (m *Move) push(sq int) {
	m.path[m.size] = int8(sq)
	m.size++
}

func (m Move) Len() int {
	return int(m.size)
}

func (m Move) Square(i int) int {
	return int(m.path[i])
}

func (m Move) From() int {
	return int(m.path[0])
}

func (m Move) To() int {
	return int(m.path[m.size-1])
}

// IsJump reports whether the move captures.
func (m Move) IsJump() bool {
	if m.size > 2 {
		return true
	}
	return m.size == 2 && AbsDelta(Row(m.From()), Row(m.To())) == 2
}

// Captures is the number of pieces a jump removes.
func (m Move) Captures() int {
	if !m.IsJump() {
		return 0
	}
	return m.Len() - 1
}

func (m Move) String() string {
	if m.size == 0 {
		return "none"
	}
	var sb strings.Builder
	for i := 0; i < m.Len(); i++ {
		if i > 0 {
			sb.WriteString(moveSeparator)
		}
		sb.WriteString(SquareName(m.Square(i)))
	}
	return sb.String()
}
