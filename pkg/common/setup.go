package common

import (
	"fmt"
	"strings"
)

const (
	initialBlack uint32 = Rank1Mask | Rank2Mask | Rank3Mask
	initialWhite uint32 = Rank6Mask | Rank7Mask | Rank8Mask
)

// NewInitialPosition returns the standard 12 against 12 setup.
func NewInitialPosition() Position {
	return Position{White: initialWhite, Black: initialBlack}
}

// NewPositionFromSetup places pieces given as coordinates, "K" prefixed for kings,
// for example []string{"C5", "KD4"}.
func NewPositionFromSetup(white, black []string) (Position, error) {
	var p Position
	var sides = [2][]string{SideWhite: white, SideBlack: black}
	for side, squares := range sides {
		for _, s := range squares {
			var sq, king, err = parseSetupSquare(s)
			if err != nil {
				return Position{}, err
			}
			var b = SquareMask[sq]
			if p.Occupied()&b != 0 {
				return Position{}, fmt.Errorf("%w: square %v listed twice", ErrInvalidSetup, SquareName(sq))
			}
			if Side(side) == SideWhite {
				p.White |= b
			} else {
				p.Black |= b
			}
			if king {
				p.Kings |= b
			}
		}
	}
	return p, nil
}

// ParseSquareList splits "C5,KD4 E3" into its coordinates.
func ParseSquareList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == ';'
	})
}

func parseSetupSquare(s string) (sq int, king bool, err error) {
	s = strings.TrimSpace(s)
	if len(s) == 3 && (s[0] == 'K' || s[0] == 'k') {
		king = true
		s = s[1:]
	}
	sq, err = ParseSquare(s)
	return
}
