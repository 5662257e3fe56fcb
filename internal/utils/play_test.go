package utils

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/ChizhovVadim/CheckersGo/pkg/common"
	"github.com/ChizhovVadim/CheckersGo/pkg/engine"
)

type firstMoveEngine struct{}

func (firstMoveEngine) Search(ctx context.Context, searchParams engine.SearchParams) engine.SearchInfo {
	var ml = searchParams.Position.LegalMoves(searchParams.Side)
	if len(ml) == 0 {
		return engine.SearchInfo{}
	}
	return engine.SearchInfo{BestMove: ml[0], Depth: 1}
}

func TestPlayCli(t *testing.T) {
	var in = strings.NewReader("Z9-A1\nlegal\nC3-D4\nquit\n")
	var out bytes.Buffer
	var err = PlayCli(context.Background(), firstMoveEngine{}, engine.DefaultLimits(),
		common.SideBlack, in, &out)
	if err != nil {
		t.Fatal(err)
	}
	var s = out.String()
	if !strings.Contains(s, "bad move") {
		t.Error("invalid input accepted")
	}
	if !strings.Contains(s, "C3->D4") {
		t.Error("legal moves not printed")
	}

	var p = common.NewInitialPosition().MakeMove(mustParseMove(t, "C3-D4"), common.SideBlack)
	var reply = p.LegalMoves(common.SideWhite)[0]
	if !strings.Contains(s, reply.String()+"\n") {
		t.Errorf("engine reply %v not printed", reply)
	}
}

func TestPlayCliEngineWins(t *testing.T) {
	var p, err = common.NewPositionFromSetup([]string{"D4"}, []string{"C3"})
	if err != nil {
		t.Fatal(err)
	}
	var g = &game{position: p, side: common.SideWhite}
	var out bytes.Buffer
	err = play(context.Background(), g, firstMoveEngine{}, engine.DefaultLimits(),
		common.SideBlack, strings.NewReader(""), &out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "white wins") {
		t.Errorf("got %q", out.String())
	}
	if len(g.moves) != 1 {
		t.Errorf("got %v moves", len(g.moves))
	}
}

func TestPlayCliCancelled(t *testing.T) {
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()
	var err = PlayCli(ctx, firstMoveEngine{}, engine.DefaultLimits(),
		common.SideWhite, strings.NewReader(""), &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestMapPath(t *testing.T) {
	if got := MapPath("/tmp/weights.json"); got != "/tmp/weights.json" {
		t.Errorf("got %v", got)
	}
	if got := MapPath("./weights.json"); strings.HasPrefix(got, ".") {
		t.Errorf("executable dir not expanded: %v", got)
	}
}

func mustParseMove(t *testing.T, s string) common.Move {
	t.Helper()
	var m, err = common.ParseMove(s)
	if err != nil {
		t.Fatal(err)
	}
	return m
}
