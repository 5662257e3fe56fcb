package common

import (
	"fmt"

	"github.com/samber/lo"
)

// step moves a piece of side from one square to another and removes the piece on over,
// if any. The mover is crowned on its promotion row.
func (p *Position) step(side Side, from, to, over int) {
	var fromBB, toBB = SquareMask[from], SquareMask[to]
	if side == SideWhite {
		p.White = p.White&^fromBB | toBB
	} else {
		p.Black = p.Black&^fromBB | toBB
	}
	if p.Kings&fromBB != 0 {
		p.Kings = p.Kings&^fromBB | toBB
	}
	if over != SquareNone {
		var overBB = SquareMask[over]
		if side == SideWhite {
			p.Black &^= overBB
		} else {
			p.White &^= overBB
		}
		p.Kings &^= overBB
	}
	if toBB&PromotionRow(side) != 0 {
		p.Kings |= toBB
	}
}

// jumpedSquare returns the square between from and to when they are a jump apart.
func jumpedSquare(from, to int) int {
	for dir := 0; dir < DirCount; dir++ {
		if Landing(from, dir) == to {
			return Neighbour(from, dir)
		}
	}
	return SquareNone
}

// JumpedSquares returns the squares a jump removes pieces from.
func (m Move) JumpedSquares() uint32 {
	var result uint32
	for i := 1; i < m.Len(); i++ {
		if over := jumpedSquare(m.Square(i-1), m.Square(i)); over != SquareNone {
			result |= SquareMask[over]
		}
	}
	return result
}

func stepDirection(from, to int) (dir int, jump bool, ok bool) {
	for dir = 0; dir < DirCount; dir++ {
		if Neighbour(from, dir) == to {
			return dir, false, true
		}
		if Landing(from, dir) == to {
			return dir, true, true
		}
	}
	return 0, false, false
}

// MakeMove applies a move produced by the move generator without checking it.
func (p Position) MakeMove(m Move, side Side) Position {
	var child = p
	for i := 1; i < m.Len(); i++ {
		var from, to = m.Square(i-1), m.Square(i)
		child.step(side, from, to, jumpedSquare(from, to))
	}
	return child
}

// ApplyMove checks the geometry of m and applies it. On error the position is returned unchanged.
// It does not enforce mandatory capture; see PlayMove.
func (p Position) ApplyMove(m Move, side Side) (Position, error) {
	if m.Len() < 2 {
		return p, fmt.Errorf("%w: path of %d squares", ErrInvalidMove, m.Len())
	}
	var from = m.From()
	if p.Pieces(side)&SquareMask[from] == 0 {
		return p, fmt.Errorf("%w: no %v piece on %v", ErrInvalidMove, side, SquareName(from))
	}
	var child = p
	var king = p.Kings&SquareMask[from] != 0
	var crowned = false
	for i := 1; i < m.Len(); i++ {
		var a, b = m.Square(i-1), m.Square(i)
		if crowned {
			return p, fmt.Errorf("%w: %v continues after crowning on %v", ErrInvalidMove, m, SquareName(a))
		}
		var dir, jump, ok = stepDirection(a, b)
		if !ok {
			return p, fmt.Errorf("%w: %v to %v is not a diagonal step or jump", ErrInvalidMove, SquareName(a), SquareName(b))
		}
		if !king && !isForward(side, dir) {
			return p, fmt.Errorf("%w: man on %v cannot move backward", ErrInvalidMove, SquareName(a))
		}
		if child.Occupied()&SquareMask[b] != 0 {
			return p, fmt.Errorf("%w: %v is occupied", ErrInvalidMove, SquareName(b))
		}
		var over = SquareNone
		if jump {
			over = Neighbour(a, dir)
			if child.Pieces(side.Opponent())&SquareMask[over] == 0 {
				return p, fmt.Errorf("%w: no opponent piece to capture on %v", ErrInvalidMove, SquareName(over))
			}
		} else if m.Len() > 2 {
			return p, fmt.Errorf("%w: %v mixes steps and jumps", ErrInvalidMove, m)
		}
		child.step(side, a, b, over)
		if !king && child.Kings&SquareMask[b] != 0 {
			king = true
			crowned = true
		}
	}
	return child, nil
}

// PlayMove applies m only if it is one of the legal moves of side.
func (p Position) PlayMove(m Move, side Side) (Position, error) {
	var child, err = p.ApplyMove(m, side)
	if err != nil {
		return p, err
	}
	if !lo.Contains(p.LegalMoves(side), m) {
		return p, fmt.Errorf("%w: %v", ErrIllegalMoveSelected, m)
	}
	return child, nil
}
