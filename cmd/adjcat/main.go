package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/erpc/adjcat/common"
	"github.com/erpc/adjcat/util"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := NewApp(afero.NewOsFs(), os.Stdout)
	if err := app.Run(ctx, os.Args); err != nil {
		log.Error().Err(err).Msg("adjcat failed")
		util.OsExit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, errCasesFailed):
		return util.ExitCodeCheckFailed
	case common.HasErrorCode(err, common.ErrCodeNotAdjacent):
		return util.ExitCodeNotAdjacent
	default:
		return util.ExitCodeBadInput
	}
}
