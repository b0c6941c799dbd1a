package usecase

import (
	"context"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kagglefetch/pkg/domain/interfaces"
	"github.com/m-mizutani/kagglefetch/pkg/domain/model"
	"github.com/m-mizutani/kagglefetch/pkg/utils/fsutil"
)

// Strategy names reported in model.Acquisition
const (
	StrategyHub    = "hub"
	StrategyLegacy = "legacy"
)

type hubStrategy struct {
	client interfaces.HubClient
}

func (s *hubStrategy) Name() string { return StrategyHub }

// Fetch copies the hub result into destDir. Directory results are flattened:
// only base names are kept and later files overwrite earlier ones.
func (s *hubStrategy) Fetch(ctx context.Context, competition, destDir string) (*model.Acquisition, error) {
	path, err := s.client.Fetch(ctx, competition)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to stat hub result", goerr.V("path", path))
	}

	sources := []string{path}
	if info.IsDir() {
		if sources, err = fsutil.RegularFiles(path); err != nil {
			return nil, err
		}
	}

	result := &model.Acquisition{Strategy: s.Name()}
	for _, src := range sources {
		dst := filepath.Join(destDir, filepath.Base(src))
		if err := fsutil.CopyFile(src, dst); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, dst)
	}

	return result, nil
}

type legacyStrategy struct {
	client interfaces.LegacyClient
}

func (s *legacyStrategy) Name() string { return StrategyLegacy }

func (s *legacyStrategy) Fetch(ctx context.Context, competition, destDir string) (*model.Acquisition, error) {
	if err := s.client.Authenticate(ctx); err != nil {
		return nil, goerr.Wrap(err, "failed to authenticate legacy client")
	}

	files, err := s.client.FetchInto(ctx, competition, destDir)
	if err != nil {
		return nil, err
	}

	return &model.Acquisition{Strategy: s.Name(), Files: files}, nil
}

type acquisitionUseCase struct {
	strategies []interfaces.Strategy
}

// NewAcquisition creates the resolver trying the hub client first and the legacy client second
func NewAcquisition(hub interfaces.HubClient, legacy interfaces.LegacyClient) interfaces.AcquisitionUseCase {
	return &acquisitionUseCase{
		strategies: []interfaces.Strategy{
			&hubStrategy{client: hub},
			&legacyStrategy{client: legacy},
		},
	}
}

// Resolve tries each strategy in order. A failure of any strategy but the
// last one is logged and skipped; the last failure is returned.
func (uc *acquisitionUseCase) Resolve(ctx context.Context, competition, destDir string) (*model.Acquisition, error) {
	logger := ctxlog.From(ctx)

	for i, strategy := range uc.strategies {
		result, err := strategy.Fetch(ctx, competition, destDir)
		if err == nil {
			logger.Info("Acquired competition files",
				"competition", competition,
				"strategy", result.Strategy,
				"file_count", len(result.Files),
			)
			return result, nil
		}

		if i == len(uc.strategies)-1 {
			return nil, goerr.Wrap(err, "failed to download competition files",
				goerr.V("competition", competition),
				goerr.V("strategy", strategy.Name()),
			)
		}

		logger.Info("Primary download failed, falling back",
			"competition", competition,
			"strategy", strategy.Name(),
			"error", err,
		)
	}

	return nil, goerr.New("no download strategy configured")
}
