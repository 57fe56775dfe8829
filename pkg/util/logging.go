package util

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogging configures the global logger: console output unless
// MVG_LOG_FORMAT=JSON, debug level when MVG_DEBUG=YES.
func SetupLogging(out io.Writer, environment map[string]string) {
	if environment["MVG_LOG_FORMAT"] == "JSON" {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	}

	if environment["MVG_DEBUG"] == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}
}
