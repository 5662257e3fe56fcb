package arena

import (
	"context"
	"math"
	"testing"

	"github.com/ChizhovVadim/CheckersGo/pkg/common"
	"github.com/ChizhovVadim/CheckersGo/pkg/engine"
	heuristic "github.com/ChizhovVadim/CheckersGo/pkg/eval/heuristic"
)

// firstMoveEngine always plays the first legal move.
type firstMoveEngine struct{}

func (firstMoveEngine) Search(ctx context.Context, searchParams engine.SearchParams) engine.SearchInfo {
	var ml = searchParams.Position.LegalMoves(searchParams.Side)
	if len(ml) == 0 {
		return engine.SearchInfo{}
	}
	return engine.SearchInfo{BestMove: ml[0], Depth: 1}
}

func TestGetOpenings(t *testing.T) {
	var openings = getOpenings()
	if len(openings) != 49 {
		t.Fatalf("got %v openings", len(openings))
	}
	var seen = make(map[string]bool)
	for _, o := range openings {
		if len(o.moves) != openingPlies || o.side != common.SideBlack {
			t.Fatalf("bad opening %v", movesString(o.moves))
		}
		var key = movesString(o.moves)
		if seen[key] {
			t.Fatalf("duplicate opening %v", key)
		}
		seen[key] = true
	}
}

func TestComputeStat(t *testing.T) {
	var tests = []struct {
		wins, losses, draws int
	}{
		{10, 10, 0},
		{10, 5, 5},
		{3, 7, 20},
		{1, 0, 0},
	}
	for _, tt := range tests {
		var stat = computeStat(tt.wins, tt.losses, tt.draws)
		var los = 0.5 + 0.5*math.Erf(float64(tt.wins-tt.losses)/math.Sqrt(2*float64(tt.wins+tt.losses)))
		if math.Abs(stat.LOS-los) > 1e-9 {
			t.Errorf("%+v: LOS %v, want %v", tt, stat.LOS, los)
		}
		var fraction = (float64(tt.wins) + 0.5*float64(tt.draws)) / float64(tt.wins+tt.losses+tt.draws)
		if stat.WinningFraction != fraction {
			t.Errorf("%+v: fraction %v, want %v", tt, stat.WinningFraction, fraction)
		}
	}
	if stat := computeStat(10, 10, 0); math.Abs(stat.EloDifference) > 1e-9 {
		t.Errorf("even match: elo %v", stat.EloDifference)
	}
	if stat := computeStat(0, 0, 0); stat.Games != 0 || stat.LOS != 0.5 {
		t.Errorf("empty match: %+v", stat)
	}
	if stat := computeStat(0, 0, 4); stat.LOS != 0.5 || stat.EloDifference != 0 {
		t.Errorf("all draws: %+v", stat)
	}
}

func TestPlayGame(t *testing.T) {
	var win, err = common.NewPositionFromSetup([]string{"C5"}, []string{"B4"})
	if err != nil {
		t.Fatal(err)
	}
	var kings, _ = common.NewPositionFromSetup([]string{"KH8"}, []string{"KA1"})
	var config = DefaultConfig()
	config.QuietPlies = 10
	var tests = []struct {
		name     string
		position common.Position
		side     common.Side
		aIsWhite bool
		result   int
	}{
		{"white captures", win, common.SideWhite, true, gameResultWhiteWins},
		{"black captures", win, common.SideBlack, false, gameResultBlackWins},
		{"kings shuffle", kings, common.SideWhite, true, gameResultDraw},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var info = gameInfo{
				opening:        opening{position: tt.position, side: tt.side},
				engineAIsWhite: tt.aIsWhite,
				gameNumber:     1,
			}
			var res, err = playGame(context.Background(), firstMoveEngine{}, firstMoveEngine{}, config, info)
			if err != nil {
				t.Fatal(err)
			}
			if res.result != tt.result {
				t.Errorf("got %v {%v}, want %v", gameResultString(res.result), res.comment, gameResultString(tt.result))
			}
		})
	}
}

func TestPlayGamePlyLimit(t *testing.T) {
	var config = DefaultConfig()
	config.QuietPlies = 0
	config.MaxPlies = 6
	var info = gameInfo{
		opening: opening{position: common.NewInitialPosition(), side: common.SideBlack},
	}
	var res, err = playGame(context.Background(), firstMoveEngine{}, firstMoveEngine{}, config, info)
	if err != nil {
		t.Fatal(err)
	}
	if res.result != gameResultDraw || len(res.moves) != 6 {
		t.Errorf("got %v after %v plies {%v}", gameResultString(res.result), len(res.moves), res.comment)
	}
}

func TestPlayGameCancelled(t *testing.T) {
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()
	var info = gameInfo{
		opening: opening{position: common.NewInitialPosition(), side: common.SideBlack},
	}
	if _, err := playGame(ctx, firstMoveEngine{}, firstMoveEngine{}, DefaultConfig(), info); err == nil {
		t.Error("cancelled game finished")
	}
}

func TestRun(t *testing.T) {
	var arena, err = New(Config{
		Concurrency: 2,
		Limits:      engine.Limits{MaxDepth: 2},
		MaxOpenings: 2,
		MaxPlies:    60,
		QuietPlies:  20,
		EvalA:       "material",
		EvalB:       "heuristic",
		WeightsB:    heuristic.DefaultWeights(),
	})
	if err != nil {
		t.Fatal(err)
	}
	stat, err := arena.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stat.Games != 4 || stat.Wins+stat.Losses+stat.Draws != 4 {
		t.Errorf("unexpected stat %+v", stat)
	}
	if stat.MeanPlies < openingPlies || stat.MeanPlies > 60 {
		t.Errorf("mean plies %v", stat.MeanPlies)
	}
}

func TestNewRejectsUnknownEvaluator(t *testing.T) {
	var config = DefaultConfig()
	config.EvalB = "nnue"
	if _, err := New(config); err == nil {
		t.Error("unknown evaluator accepted")
	}
}
