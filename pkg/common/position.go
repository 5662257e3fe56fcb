package common

import (
	"fmt"
	"strings"
)

func (p Position) Occupied() uint32 {
	return p.White | p.Black
}

func (p Position) EmptySquares() uint32 {
	return ^(p.White | p.Black)
}

func (p Position) Pieces(side Side) uint32 {
	if side == SideWhite {
		return p.White
	}
	return p.Black
}

func (p Position) Men(side Side) uint32 {
	return p.Pieces(side) &^ p.Kings
}

func (p Position) KingsOf(side Side) uint32 {
	return p.Pieces(side) & p.Kings
}

func (p Position) PieceCount() int {
	return PopCount(p.White | p.Black)
}

func (p Position) PieceAt(sq int) Piece {
	var b = SquareMask[sq]
	switch {
	case p.White&b != 0 && p.Kings&b != 0:
		return WhiteKing
	case p.White&b != 0:
		return WhiteMan
	case p.Black&b != 0 && p.Kings&b != 0:
		return BlackKing
	case p.Black&b != 0:
		return BlackMan
	}
	return Empty
}

// Validate checks the bitboard invariants.
func (p Position) Validate() error {
	if p.White&p.Black != 0 {
		return fmt.Errorf("%w: squares %v held by both sides", ErrInvalidSetup, BitboardString(p.White&p.Black))
	}
	if p.Kings&^(p.White|p.Black) != 0 {
		return fmt.Errorf("%w: kings on empty squares %v", ErrInvalidSetup, BitboardString(p.Kings&^(p.White|p.Black)))
	}
	return nil
}

const pieceSymbols = ".wWbB"

// String draws the board with rank 8 on top. Light squares are blank.
func (p Position) String() string {
	var sb strings.Builder
	for rank := Rank8; rank >= Rank1; rank-- {
		sb.WriteByte(rankNames[rank])
		sb.WriteByte(' ')
		for file := FileA; file <= FileH; file++ {
			var sq = MakeSquare(file, rank)
			if sq == SquareNone {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte(pieceSymbols[p.PieceAt(sq)])
			}
			if file != FileH {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for file := FileA; file <= FileH; file++ {
		sb.WriteByte(fileNames[file])
		if file != FileH {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
