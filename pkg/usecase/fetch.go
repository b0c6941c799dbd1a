package usecase

import (
	"context"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kagglefetch/pkg/domain/interfaces"
	"github.com/m-mizutani/kagglefetch/pkg/domain/model"
	"github.com/m-mizutani/kagglefetch/pkg/domain/types"
)

type fetchUseCase struct {
	acquisition interfaces.AcquisitionUseCase
	expansion   interfaces.ExpansionUseCase
}

// NewFetch creates a new instance of FetchUseCase
func NewFetch(acquisition interfaces.AcquisitionUseCase, expansion interfaces.ExpansionUseCase) interfaces.FetchUseCase {
	return &fetchUseCase{
		acquisition: acquisition,
		expansion:   expansion,
	}
}

// Run downloads the competition into req.Dest and expands archives there unless skipped
func (uc *fetchUseCase) Run(ctx context.Context, req *model.DownloadRequest) (*model.FetchReport, error) {
	logger := ctxlog.From(ctx)

	if req.Competition == "" {
		return nil, goerr.Wrap(types.ErrCompetitionNotSet, "competition identifier is required")
	}
	if req.Dest == "" {
		return nil, goerr.New("destination directory is not set")
	}

	if err := os.MkdirAll(req.Dest, 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create destination directory", goerr.V("dest", req.Dest))
	}

	logger.Info("Fetching competition data",
		"competition", req.Competition,
		"dest", req.Dest,
		"skip_extraction", req.SkipExtraction,
	)

	acquired, err := uc.acquisition.Resolve(ctx, req.Competition, req.Dest)
	if err != nil {
		return nil, err
	}

	report := &model.FetchReport{
		Dest:        req.Dest,
		Acquisition: acquired,
	}

	if req.SkipExtraction {
		return report, nil
	}

	expanded, err := uc.expansion.ExpandAll(ctx, req.Dest)
	if err != nil {
		return nil, err
	}
	report.Expansion = expanded

	return report, nil
}
