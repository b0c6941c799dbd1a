package interfaces

import (
	"context"

	"github.com/m-mizutani/kagglefetch/pkg/domain/model"
)

// Strategy is one way of placing competition files into a destination directory
type Strategy interface {
	Name() string
	Fetch(ctx context.Context, competition, destDir string) (*model.Acquisition, error)
}

// AcquisitionUseCase resolves a competition into files in destDir
type AcquisitionUseCase interface {
	Resolve(ctx context.Context, competition, destDir string) (*model.Acquisition, error)
}

// ExpansionUseCase extracts every archive found directly in destDir
type ExpansionUseCase interface {
	ExpandAll(ctx context.Context, destDir string) (*model.Expansion, error)
}

// FetchUseCase runs the whole download workflow
type FetchUseCase interface {
	Run(ctx context.Context, req *model.DownloadRequest) (*model.FetchReport, error)
}
