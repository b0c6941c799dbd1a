package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kagglefetch/pkg/cli/config"
	"github.com/m-mizutani/kagglefetch/pkg/domain/model"
	"github.com/m-mizutani/kagglefetch/pkg/domain/types"
	"github.com/m-mizutani/kagglefetch/pkg/infra/kaggle"
	"github.com/m-mizutani/kagglefetch/pkg/usecase"
	"github.com/urfave/cli/v3"
)

type fetchCommand struct {
	fetchCfg  config.Fetch
	kaggleCfg config.Kaggle
}

func (x *fetchCommand) Flags() []cli.Flag {
	return append(x.fetchCfg.Flags(), x.kaggleCfg.Flags()...)
}

func (x *fetchCommand) Run(ctx context.Context, c *cli.Command) error {
	logger := ctxlog.From(ctx)
	w := c.Root().Writer

	req := x.fetchCfg.Request()
	if req.Competition == "" {
		fmt.Fprintf(w, "ERROR: %s.\n", types.ErrCompetitionNotSet)
		return goerr.Wrap(types.ErrCompetitionNotSet, "competition identifier is required")
	}

	logger.Debug("Loaded configuration",
		slog.Any("request", req),
		slog.Any("kaggle", x.kaggleCfg),
	)

	opts := []kaggle.Option{
		kaggle.WithAPIURL(x.kaggleCfg.APIURL),
		kaggle.WithHTTPClient(&http.Client{Timeout: x.kaggleCfg.HTTPTimeout}),
		kaggle.WithForceDownload(x.kaggleCfg.ForceDownload),
	}
	hub := kaggle.NewHubClient(x.kaggleCfg.APIToken, x.kaggleCfg.HubCache, opts...)
	legacy := kaggle.NewLegacyClient(model.KaggleCredentials{
		Username: x.kaggleCfg.Username,
		Key:      x.kaggleCfg.Key,
	}, x.kaggleCfg.ConfigDir, opts...)

	uc := usecase.NewFetch(usecase.NewAcquisition(hub, legacy), usecase.NewExpansion())
	report, err := uc.Run(ctx, req)
	if err != nil {
		return err
	}

	if report.Expansion != nil {
		logger.Info("Expanded archives",
			"archive_count", len(report.Expansion.Archives),
			"file_count", len(report.Expansion.Files),
		)
	}

	color.New(color.FgGreen).Fprintf(w, "Downloaded competition data to %s (via %s)\n",
		report.Dest, report.Acquisition.Strategy)
	return nil
}
