package server

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/ChizhovVadim/CheckersGo/pkg/protocol"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler serves the engine protocol over websocket.
// Every text message is one command line, every reply line is one text message.
// Each connection owns an independent protocol session.
func Handler(config protocol.Config, logger zerolog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Error().Err(err).Msg("websocket upgrade failed")
			return
		}
		defer conn.Close()

		var sessionLogger = logger.With().Str("remote", r.RemoteAddr).Logger()
		p, err := protocol.New(config, &messageWriter{conn: conn}, sessionLogger)
		if err != nil {
			sessionLogger.Error().Err(err).Msg("create protocol failed")
			return
		}

		sessionLogger.Info().Msg("session started")
		defer sessionLogger.Info().Msg("session finished")

		var pr, pw = io.Pipe()
		go readPump(conn, pw)
		p.Run(r.Context(), pr)
		pr.Close()
	})
}

// readPump forwards text messages as command lines until the connection fails.
func readPump(conn *websocket.Conn, pw *io.PipeWriter) {
	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			pw.Close()
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		for _, line := range bytes.Split(message, []byte("\n")) {
			if _, err := fmt.Fprintf(pw, "%s\n", line); err != nil {
				return
			}
		}
	}
}

type messageWriter struct {
	conn *websocket.Conn
}

func (w *messageWriter) Write(p []byte) (int, error) {
	var err = w.conn.WriteMessage(websocket.TextMessage, bytes.TrimRight(p, "\n"))
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
