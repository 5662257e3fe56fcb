package utils

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the global zerolog logger to write human readable lines to w
// and returns it for components that take an injected logger.
func InitLogger(w io.Writer, level string) (zerolog.Logger, error) {
	var lvl, err = zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime}).
		With().Timestamp().Caller().Logger()
	return log.Logger, nil
}
