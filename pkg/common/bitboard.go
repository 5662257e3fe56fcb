package common

import (
	"math/bits"
	"strings"
)

const (
	DirNorthWest = iota
	DirNorthEast
	DirSouthWest
	DirSouthEast
	DirCount
)

// North is toward higher square indices (rank 8).

const (
	Rank1Mask uint32 = 0xF << (4 * iota)
	Rank2Mask
	Rank3Mask
	Rank4Mask
	Rank5Mask
	Rank6Mask
	Rank7Mask
	Rank8Mask
)

const (
	FileAMask uint32 = 1<<SquareA1 | 1<<SquareA3 | 1<<SquareA5 | 1<<SquareA7
	FileHMask uint32 = 1<<SquareH2 | 1<<SquareH4 | 1<<SquareH6 | 1<<SquareH8
	EdgeMask         = FileAMask | FileHMask
	AllSquares       = ^uint32(0)
)

// A shift by 4 always stays on the board. A shift by 3 or 5 is safe only
// from the squares of the matching mask.
const (
	evenRanks uint32 = Rank1Mask | Rank3Mask | Rank5Mask | Rank7Mask
	oddRanks  uint32 = Rank2Mask | Rank4Mask | Rank6Mask | Rank8Mask

	MaskNorth3 uint32 = 0x0E0E0E0E
	MaskNorth5 uint32 = 0x00707070
	MaskSouth3 uint32 = 0x70707070
	MaskSouth5 uint32 = 0x0E0E0E00
)

func northWest(b uint32) uint32 {
	return (b&MaskNorth3)<<3 | (b&oddRanks)<<4
}

func northEast(b uint32) uint32 {
	return (b&evenRanks)<<4 | (b&MaskNorth5)<<5
}

func southWest(b uint32) uint32 {
	return (b&MaskSouth5)>>5 | (b&oddRanks)>>4
}

func southEast(b uint32) uint32 {
	return (b&evenRanks)>>4 | (b&MaskSouth3)>>3
}

var shiftByDirection = [DirCount]func(uint32) uint32{
	DirNorthWest: northWest,
	DirNorthEast: northEast,
	DirSouthWest: southWest,
	DirSouthEast: southEast,
}

// Shift moves every square of b one diagonal step in direction dir.
// Squares without a neighbour in that direction are dropped.
func Shift(b uint32, dir int) uint32 {
	return shiftByDirection[dir](b)
}

// OppositeDirection reverses both the file and the rank step: NW <-> SE, NE <-> SW.
func OppositeDirection(dir int) int {
	return dir ^ 3
}

// Tables holds everything derived from board geometry.
type Tables struct {
	SquareMask [SquareCount]uint32
	Neighbour  [DirCount][SquareCount]int8
	Landing    [DirCount][SquareCount]int8
}

// NewTables computes the geometry tables from coordinates only.
func NewTables() *Tables {
	var t = &Tables{}
	var fileDelta = [DirCount]int{DirNorthWest: -1, DirNorthEast: 1, DirSouthWest: -1, DirSouthEast: 1}
	var rankDelta = [DirCount]int{DirNorthWest: 1, DirNorthEast: 1, DirSouthWest: -1, DirSouthEast: -1}
	for sq := 0; sq < SquareCount; sq++ {
		t.SquareMask[sq] = 1 << uint(sq)
		for dir := 0; dir < DirCount; dir++ {
			var f, r = File(sq), Row(sq)
			t.Neighbour[dir][sq] = int8(MakeSquare(f+fileDelta[dir], r+rankDelta[dir]))
			t.Landing[dir][sq] = int8(MakeSquare(f+2*fileDelta[dir], r+2*rankDelta[dir]))
		}
	}
	return t
}

var (
	SquareMask [SquareCount]uint32
	neighbour  [DirCount][SquareCount]int8
	landing    [DirCount][SquareCount]int8
)

func init() {
	initSquareNames()
	var t = NewTables()
	SquareMask = t.SquareMask
	neighbour = t.Neighbour
	landing = t.Landing
}

// Neighbour returns the adjacent square in direction dir or SquareNone.
func Neighbour(sq, dir int) int {
	return int(neighbour[dir][sq])
}

// Landing returns the square two steps away in direction dir or SquareNone.
func Landing(sq, dir int) int {
	return int(landing[dir][sq])
}

func PopCount(b uint32) int {
	return bits.OnesCount32(b)
}

func FirstOne(b uint32) int {
	return bits.TrailingZeros32(b)
}

func BitboardString(b uint32) string {
	var sb strings.Builder
	for x := b; x != 0; x &= x - 1 {
		if sb.Len() != 0 {
			sb.WriteString(",")
		}
		sb.WriteString(SquareName(FirstOne(x)))
	}
	return "(" + sb.String() + ")"
}

// forwardDirections are the directions a man of the side may move in.
var forwardDirections = [2][2]int{
	SideWhite: {DirSouthWest, DirSouthEast},
	SideBlack: {DirNorthWest, DirNorthEast},
}

func ForwardDirections(side Side) [2]int {
	return forwardDirections[side]
}

var allDirections = [DirCount]int{DirNorthWest, DirNorthEast, DirSouthWest, DirSouthEast}

func isForward(side Side, dir int) bool {
	if side == SideWhite {
		return dir == DirSouthWest || dir == DirSouthEast
	}
	return dir == DirNorthWest || dir == DirNorthEast
}

// PromotionRow is the row where men of side become kings.
func PromotionRow(side Side) uint32 {
	if side == SideWhite {
		return Rank1Mask
	}
	return Rank8Mask
}

// BackRow is the row side starts from.
func BackRow(side Side) uint32 {
	return PromotionRow(side.Opponent())
}
