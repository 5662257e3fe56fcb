package common

import (
	"testing"
)

func TestPerft(t *testing.T) {
	var tests = []struct {
		depth int
		nodes int
	}{
		{1, 7},
		{2, 49},
		{3, 302},
		{4, 1469},
		{5, 7361},
		{6, 36768},
	}
	var p = NewInitialPosition()
	for _, test := range tests {
		var nodes = Perft(p, SideBlack, test.depth)
		if nodes != test.nodes {
			t.Error(test, nodes)
		}
	}
}
