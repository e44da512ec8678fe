//go:build !test

package main

import (
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	// Honour ADJCAT_NOLOGS=1 to silence all zerolog output & allocations
	if os.Getenv("ADJCAT_NOLOGS") == "1" {
		zerolog.SetGlobalLevel(zerolog.Disabled)
		log.Logger = zerolog.New(io.Discard)
	}

	// Honour ADJCAT_NOMETRICS=1 to disable Prometheus metrics completely
	if os.Getenv("ADJCAT_NOMETRICS") == "1" {
		r := prometheus.NewRegistry()
		prometheus.DefaultRegisterer = r
		prometheus.DefaultGatherer = r
	}
}
