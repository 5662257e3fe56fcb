package server

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/ChizhovVadim/CheckersGo/pkg/engine"
	heuristic "github.com/ChizhovVadim/CheckersGo/pkg/eval/heuristic"
	"github.com/ChizhovVadim/CheckersGo/pkg/protocol"
)

func newTestServer(t *testing.T) *websocket.Conn {
	t.Helper()
	var config = protocol.Config{
		Name:     "Checkers",
		EvalName: "material",
		Weights:  heuristic.DefaultWeights(),
		Limits:   engine.Limits{MaxDepth: 2},
	}
	var srv = httptest.NewServer(Handler(config, zerolog.Nop()))
	t.Cleanup(srv.Close)

	var url = "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, command string) {
	t.Helper()
	if err := conn.WriteMessage(websocket.TextMessage, []byte(command)); err != nil {
		t.Fatal(err)
	}
}

// readUntil returns the first message with the given prefix.
func readUntil(t *testing.T, conn *websocket.Conn, prefix string) string {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(10 * time.Second))
	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			t.Fatal(err)
		}
		if strings.HasPrefix(string(message), prefix) {
			return string(message)
		}
	}
}

func TestHandlerLegal(t *testing.T) {
	var conn = newTestServer(t)
	send(t, conn, "legal")
	var reply = readUntil(t, conn, "legal")
	if got := len(strings.Fields(reply)) - 1; got != 7 {
		t.Errorf("got %v moves in %q", got, reply)
	}
}

func TestHandlerSearch(t *testing.T) {
	var conn = newTestServer(t)
	send(t, conn, "position startpos moves C3-D4")
	send(t, conn, "go depth 2")
	var reply = readUntil(t, conn, "bestmove")
	if strings.Contains(reply, "none") {
		t.Errorf("got %q", reply)
	}
}

func TestHandlerSessionsAreIndependent(t *testing.T) {
	var first = newTestServer(t)
	var second = newTestServer(t)
	send(t, first, "position setup white white - black C3")
	send(t, first, "legal")
	if reply := readUntil(t, first, "legal"); reply != "legal none" {
		t.Errorf("got %q", reply)
	}
	send(t, second, "legal")
	if reply := readUntil(t, second, "legal"); reply == "legal none" {
		t.Errorf("second session saw first session position")
	}
}
