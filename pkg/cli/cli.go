package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/kagglefetch/pkg/cli/config"
	"github.com/m-mizutani/kagglefetch/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Exit codes returned by ExitCode
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitConfigError = 2
)

// DotEnvFile is loaded from the working directory before flags are parsed
const DotEnvFile = ".env"

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout)
}

// ExitCode maps an error returned by Run to a process exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, types.ErrCompetitionNotSet):
		return ExitConfigError
	default:
		return ExitFailure
	}
}

func run(ctx context.Context, args []string, w io.Writer) error {
	var loggerCfg config.Logger
	var logger *slog.Logger
	var fetch fetchCommand

	if err := config.LoadDotEnv(DotEnvFile); err != nil {
		slog.Default().Error("Failed to load env file", slog.Any("error", err))
		return err
	}

	app := &cli.Command{
		Name:    "kagglefetch",
		Usage:   "Download Kaggle competition data and extract archives",
		Version: types.Version,
		Writer:  w,
		Flags:   append(loggerCfg.Flags(), fetch.Flags()...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure(w)
			if err != nil {
				return nil, err
			}

			logger = logger.With("run_id", uuid.NewString())
			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Action: fetch.Run,
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
