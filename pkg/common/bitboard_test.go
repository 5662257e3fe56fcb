package common

import (
	"testing"
)

func TestTablesAreDeterministic(t *testing.T) {
	var t1, t2 = NewTables(), NewTables()
	if *t1 != *t2 {
		t.Fatal("tables differ between two builds")
	}
}

// The shift masks are the squares whose neighbour lies 3 or 5 indices away.
func TestShiftMasksMatchGeometry(t *testing.T) {
	var deltas = [...]int{3, 5, -3, -5}
	var got [len(deltas)]uint32
	for sq := 0; sq < SquareCount; sq++ {
		for dir := 0; dir < DirCount; dir++ {
			var n = Neighbour(sq, dir)
			if n == SquareNone {
				continue
			}
			for i, delta := range deltas {
				if n-sq == delta {
					got[i] |= SquareMask[sq]
				}
			}
		}
	}
	var want = [len(deltas)]uint32{MaskNorth3, MaskNorth5, MaskSouth3, MaskSouth5}
	if got != want {
		t.Errorf("masks = %#x, want %#x", got, want)
	}
}

func TestShiftMatchesNeighbourTable(t *testing.T) {
	for dir := 0; dir < DirCount; dir++ {
		for sq := 0; sq < SquareCount; sq++ {
			var want uint32
			if n := Neighbour(sq, dir); n != SquareNone {
				want = SquareMask[n]
			}
			if got := Shift(SquareMask[sq], dir); got != want {
				t.Errorf("Shift(%v, %v) = %v, want %v",
					SquareName(sq), dir, BitboardString(got), BitboardString(want))
			}
		}
	}
}

func TestShiftDoesNotWrap(t *testing.T) {
	var tests = []struct {
		name string
		b    uint32
		dir  int
	}{
		{"A-file north-west", FileAMask, DirNorthWest},
		{"A-file south-west", FileAMask, DirSouthWest},
		{"H-file north-east", FileHMask, DirNorthEast},
		{"H-file south-east", FileHMask, DirSouthEast},
		{"rank 8 north-west", Rank8Mask, DirNorthWest},
		{"rank 8 north-east", Rank8Mask, DirNorthEast},
		{"rank 1 south-west", Rank1Mask, DirSouthWest},
		{"rank 1 south-east", Rank1Mask, DirSouthEast},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Shift(tt.b, tt.dir); got != 0 {
				t.Errorf("Shift = %v, want empty", BitboardString(got))
			}
		})
	}
}

func TestLandingIsTwoSteps(t *testing.T) {
	for dir := 0; dir < DirCount; dir++ {
		for sq := 0; sq < SquareCount; sq++ {
			var want = SquareNone
			if n := Neighbour(sq, dir); n != SquareNone {
				want = Neighbour(n, dir)
			}
			if got := Landing(sq, dir); got != want {
				t.Errorf("Landing(%v, %v) = %v, want %v", SquareName(sq), dir, got, want)
			}
		}
	}
}

func TestOppositeDirection(t *testing.T) {
	var pairs = [][2]int{
		{DirNorthWest, DirSouthEast},
		{DirNorthEast, DirSouthWest},
	}
	for _, pair := range pairs {
		if OppositeDirection(pair[0]) != pair[1] || OppositeDirection(pair[1]) != pair[0] {
			t.Errorf("OppositeDirection(%v) = %v", pair[0], OppositeDirection(pair[0]))
		}
	}
	for dir := 0; dir < DirCount; dir++ {
		for sq := 0; sq < SquareCount; sq++ {
			if n := Neighbour(sq, dir); n != SquareNone && Neighbour(n, OppositeDirection(dir)) != sq {
				t.Errorf("%v -> %v has no way back", SquareName(sq), SquareName(n))
			}
		}
	}
}

