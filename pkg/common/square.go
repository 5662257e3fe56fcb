package common

import (
	"fmt"
	"strings"
)

const SquareCount = 32

const SquareNone = -1

const (
	SquareA1 = iota
	SquareC1
	SquareE1
	SquareG1
	SquareB2
	SquareD2
	SquareF2
	SquareH2
	SquareA3
	SquareC3
	SquareE3
	SquareG3
	SquareB4
	SquareD4
	SquareF4
	SquareH4
	SquareA5
	SquareC5
	SquareE5
	SquareG5
	SquareB6
	SquareD6
	SquareF6
	SquareH6
	SquareA7
	SquareC7
	SquareE7
	SquareG7
	SquareB8
	SquareD8
	SquareF8
	SquareH8
)

const (
	FileA = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// Row is the board rank of a playable square, 0 based.
func Row(sq int) int {
	return sq >> 2
}

// File is the board file of a playable square, 0 based.
func File(sq int) int {
	return 2*(sq&3) + (Row(sq) & 1)
}

// MakeSquare returns the playable square on (file, rank) or SquareNone for a light square.
func MakeSquare(file, rank int) int {
	if file < FileA || file > FileH || rank < Rank1 || rank > Rank8 {
		return SquareNone
	}
	if (file & 1) != (rank & 1) {
		return SquareNone
	}
	return rank<<2 | file>>1
}

func IsValidSquare(sq int) bool {
	return sq >= 0 && sq < SquareCount
}

func AbsDelta(x, y int) int {
	if x > y {
		return x - y
	}
	return y - x
}

func Max(l, r int) int {
	if l > r {
		return l
	}
	return r
}

// SquareDistance is the Chebyshev distance between two squares.
func SquareDistance(sq1, sq2 int) int {
	return Max(AbsDelta(File(sq1), File(sq2)), AbsDelta(Row(sq1), Row(sq2)))
}

const (
	fileNames = "ABCDEFGH"
	rankNames = "12345678"
)

var squareNames [SquareCount]string

func initSquareNames() {
	for sq := 0; sq < SquareCount; sq++ {
		squareNames[sq] = string(fileNames[File(sq)]) + string(rankNames[Row(sq)])
	}
}

func SquareName(sq int) string {
	if !IsValidSquare(sq) {
		return "-"
	}
	return squareNames[sq]
}

// ParseSquare accepts "C5" or "c5".
func ParseSquare(s string) (int, error) {
	if len(s) != 2 {
		return SquareNone, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	var file = strings.IndexByte(fileNames, upper(s[0]))
	var rank = strings.IndexByte(rankNames, s[1])
	if file < 0 || rank < 0 {
		return SquareNone, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	var sq = MakeSquare(file, rank)
	if sq == SquareNone {
		return SquareNone, fmt.Errorf("%w: %q is a light square", ErrInvalidCoordinate, s)
	}
	return sq, nil
}

func upper(ch byte) byte {
	if ch >= 'a' && ch <= 'z' {
		return ch - 'a' + 'A'
	}
	return ch
}
