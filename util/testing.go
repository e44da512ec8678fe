package util

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func ConfigureTestLogger() {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	if lvl, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && lvl != zerolog.NoLevel {
		zerolog.SetGlobalLevel(lvl)
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	log.Logger = zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.TimeFormat = "04:05.000ms"
	})).With().Timestamp().Logger()
}

// CaptureLogs points the global logger at an in-memory buffer at the given
// level and returns the buffer together with a function restoring the previous state.
func CaptureLogs(level zerolog.Level) (*strings.Builder, func()) {
	prevLogger := log.Logger
	prevLevel := zerolog.GlobalLevel()

	var buf strings.Builder
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(&buf)

	return &buf, func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	}
}
