package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/erpc/adjcat/batch"
	"github.com/erpc/adjcat/common"
	"github.com/erpc/adjcat/telemetry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

var errCasesFailed = errors.New("one or more cases failed")

// NewApp builds the adjcat command tree. Reports and joined text go to out.
func NewApp(fs afero.Fs, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "adjcat",
		Usage: "join text ranges that sit back to back in one buffer, without copying",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "zerolog level (trace, debug, info, warn, error)",
				Value: os.Getenv("ADJCAT_LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			concatCommand(fs, out),
			checkCommand(fs, out),
		},
	}
}

func concatCommand(fs afero.Fs, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "concat",
		Usage:     "join two ranges of one buffer",
		ArgsUsage: "A B (ranges like 0:5 or [5:7])",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "text", Aliases: []string{"t"}, Usage: "inline buffer text"},
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "read the buffer from a file"},
			&cli.BoolFlag{Name: "unordered", Aliases: []string{"u"}, Usage: "accept the ranges in either order"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger := commandLogger(cmd, "")
			if cmd.NArg() != 2 {
				return fmt.Errorf("expected exactly two ranges, got %d", cmd.NArg())
			}
			if !cmd.IsSet("text") && !cmd.IsSet("file") {
				return fmt.Errorf("a buffer is required, pass --text or --file")
			}
			mode := common.CaseModeOrdered
			if cmd.Bool("unordered") {
				mode = common.CaseModeUnordered
			}

			cfg := &common.Config{
				Buffers: []*common.BufferConfig{{
					Id:   "main",
					Text: cmd.String("text"),
					File: cmd.String("file"),
				}},
				Cases: []*common.CaseConfig{{
					Id:   "concat",
					A:    cmd.Args().Get(0),
					B:    cmd.Args().Get(1),
					Mode: mode,
				}},
			}
			if err := prepareConfig(cfg); err != nil {
				return err
			}

			report, err := batch.Run(ctx, &logger, fs, cfg, nil)
			if err != nil {
				return err
			}
			res := report.Cases[0]
			if res.Error != nil {
				return res.Error
			}
			_, err = fmt.Fprintln(out, *res.Joined)
			return err
		},
	}
}

func checkCommand(fs afero.Fs, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "evaluate the cases of a config file and print a json report",
		ArgsUsage: "[config file]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: "./adjcat.yaml", Usage: "config file"},
			&cli.StringFlag{Name: "only", Usage: "only run cases whose id matches this wildcard pattern"},
			&cli.StringFlag{Name: "metrics-out", Usage: "write prometheus metrics in text format to this file"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			configPath := cmd.String("config")
			if cmd.NArg() > 0 {
				configPath = cmd.Args().First()
			}

			cfg, err := common.LoadConfig(fs, configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration from %s: %w", configPath, err)
			}
			logger := commandLogger(cmd, cfg.LogLevel)
			logger.Info().Str("path", configPath).Object("config", cfg).Msg("loaded configuration")

			if path := cmd.String("metrics-out"); path != "" {
				cfg.Metrics = &common.MetricsConfig{OutputFile: path}
			}
			if err := prepareConfig(cfg); err != nil {
				return err
			}

			report, err := batch.Run(ctx, &logger, fs, cfg, &batch.Options{Only: cmd.String("only")})
			if err != nil {
				return err
			}

			data, err := common.SonicCfg.Marshal(report)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(out, string(data)); err != nil {
				return err
			}

			if *cfg.Metrics.Enabled {
				if err := writeMetrics(fs, cfg.Metrics.OutputFile); err != nil {
					return fmt.Errorf("failed to write metrics to %s: %w", cfg.Metrics.OutputFile, err)
				}
				logger.Debug().Str("path", cfg.Metrics.OutputFile).Msg("metrics written")
			}

			if !report.OK() {
				return errCasesFailed
			}
			return nil
		},
	}
}

func prepareConfig(cfg *common.Config) error {
	if err := cfg.SetDefaults(); err != nil {
		return err
	}
	return cfg.Validate()
}

// commandLogger derives the command logger; the --log-level flag wins over the config level.
func commandLogger(cmd *cli.Command, cfgLevel string) zerolog.Logger {
	logger := log.Logger.With().Str("command", cmd.Name).Logger()

	raw := cmd.Root().String("log-level")
	if raw == "" {
		raw = cfgLevel
	}
	if raw == "" {
		return logger
	}
	level, err := zerolog.ParseLevel(raw)
	if err != nil {
		logger.Warn().Msgf("invalid log level '%s', keeping the default: %s", raw, err)
		return logger
	}
	return logger.Level(level)
}

func writeMetrics(fs afero.Fs, path string) error {
	f, err := fs.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return telemetry.WriteText(f, prometheus.DefaultGatherer)
}
