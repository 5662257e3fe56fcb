package common

import (
	"errors"
	"testing"
)

func TestSquareNames(t *testing.T) {
	var tests = []struct {
		sq   int
		name string
	}{
		{0, "A1"},
		{1, "C1"},
		{4, "B2"},
		{10, "E3"},
		{17, "C5"},
		{19, "G5"},
		{26, "E7"},
		{31, "H8"},
	}
	for _, tt := range tests {
		if got := SquareName(tt.sq); got != tt.name {
			t.Errorf("SquareName(%v) = %v, want %v", tt.sq, got, tt.name)
		}
		var sq, err = ParseSquare(tt.name)
		if err != nil {
			t.Fatal(err)
		}
		if sq != tt.sq {
			t.Errorf("ParseSquare(%v) = %v, want %v", tt.name, sq, tt.sq)
		}
	}
}

func TestParseSquareRoundTrip(t *testing.T) {
	for sq := 0; sq < SquareCount; sq++ {
		var got, err = ParseSquare(SquareName(sq))
		if err != nil || got != sq {
			t.Errorf("round trip of %v gave %v, %v", sq, got, err)
		}
	}
}

func TestParseSquareInvalid(t *testing.T) {
	for _, s := range []string{"", "B1", "A2", "I3", "A9", "A", "C55", "3C"} {
		if _, err := ParseSquare(s); !errors.Is(err, ErrInvalidCoordinate) {
			t.Errorf("ParseSquare(%q) error = %v, want ErrInvalidCoordinate", s, err)
		}
	}
}

func TestParseSquareLowerCase(t *testing.T) {
	var sq, err = ParseSquare("c5")
	if err != nil || sq != SquareC5 {
		t.Errorf("ParseSquare(c5) = %v, %v", sq, err)
	}
}

func TestSquareDistance(t *testing.T) {
	if d := SquareDistance(SquareA1, SquareH8); d != 7 {
		t.Errorf("distance A1-H8 = %v", d)
	}
	if d := SquareDistance(SquareC5, SquareB4); d != 1 {
		t.Errorf("distance C5-B4 = %v", d)
	}
	if d := SquareDistance(SquareA1, SquareA7); d != 6 {
		t.Errorf("distance A1-A7 = %v", d)
	}
}
