package usecase

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kagglefetch/pkg/domain/interfaces"
	"github.com/m-mizutani/kagglefetch/pkg/domain/model"
	"github.com/m-mizutani/kagglefetch/pkg/utils/archive"
)

type expansionUseCase struct{}

// NewExpansion creates a new instance of ExpansionUseCase
func NewExpansion() interfaces.ExpansionUseCase {
	return &expansionUseCase{}
}

// ExpandAll extracts every *.zip directly inside destDir into destDir.
// Subdirectories are not scanned.
func (uc *expansionUseCase) ExpandAll(ctx context.Context, destDir string) (*model.Expansion, error) {
	logger := ctxlog.From(ctx)

	entries, err := os.ReadDir(destDir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list destination directory", goerr.V("dest", destDir))
	}

	result := &model.Expansion{}
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !strings.HasSuffix(entry.Name(), archive.Suffix) {
			continue
		}

		path := filepath.Join(destDir, entry.Name())
		extracted, err := archive.ExtractZip(ctx, path, destDir)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to expand archive", goerr.V("archive", path))
		}

		logger.Info("Extracted archive",
			"archive", path,
			"file_count", len(extracted.Files),
			"total_size_bytes", extracted.Size,
		)

		result.Archives = append(result.Archives, path)
		result.Files = append(result.Files, extracted.Files...)
		result.Size += extracted.Size
	}

	if len(result.Archives) == 0 {
		logger.Debug("No archive found", "dest", destDir)
	}

	return result, nil
}
