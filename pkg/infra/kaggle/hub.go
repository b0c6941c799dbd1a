package kaggle

import (
	"archive/zip"
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kagglefetch/pkg/domain/interfaces"
	"github.com/m-mizutani/kagglefetch/pkg/domain/types"
	"github.com/m-mizutani/kagglefetch/pkg/utils/archive"
)

type hubClient struct {
	token    string
	cacheDir string
	cfg      *config
}

// NewHubClient creates the managed download client. Downloads are
// authenticated with an API token and kept under cacheDir/competitions/<id>.
func NewHubClient(token, cacheDir string, opts ...Option) interfaces.HubClient {
	return &hubClient{
		token:    token,
		cacheDir: cacheDir,
		cfg:      newConfig(opts),
	}
}

// Fetch returns the cache entry of the competition, downloading it first if needed
func (c *hubClient) Fetch(ctx context.Context, competition string) (string, error) {
	logger := ctxlog.From(ctx)

	if c.token == "" {
		return "", goerr.Wrap(types.ErrMissingCredentials, "hub API token is not set")
	}
	if c.cacheDir == "" {
		return "", goerr.New("hub cache directory is not set")
	}
	if err := validateCompetition(competition); err != nil {
		return "", err
	}

	parent := filepath.Join(c.cacheDir, "competitions")
	entry := filepath.Join(parent, competition)

	if !c.cfg.forceDownload && isPopulated(entry) {
		logger.Debug("Using cached competition files", "path", entry)
		return entry, nil
	}

	if err := os.MkdirAll(parent, 0755); err != nil {
		return "", goerr.Wrap(err, "failed to create hub cache directory", goerr.V("path", parent))
	}

	logger.Info("Downloading competition files via hub", "competition", competition)
	tmp, filename, err := c.cfg.download(ctx, competition, c.authorize, parent, "."+competition+"-*.download")
	if err != nil {
		return "", err
	}
	defer func() {
		_ = os.Remove(tmp)
	}()

	staging := entry + ".staging-" + uuid.NewString()
	if err := os.MkdirAll(staging, 0755); err != nil {
		return "", goerr.Wrap(err, "failed to create staging directory", goerr.V("path", staging))
	}
	defer func() {
		_ = os.RemoveAll(staging)
	}()

	result := entry
	if _, err := archive.ExtractZip(ctx, tmp, staging); err != nil {
		if !errors.Is(err, zip.ErrFormat) {
			return "", goerr.Wrap(err, "failed to unpack hub download", goerr.V("competition", competition))
		}

		// Not a bundle: keep the payload as a single file
		name := filename
		if name == "" {
			name = competition
		}
		if err := os.Rename(tmp, filepath.Join(staging, name)); err != nil {
			return "", goerr.Wrap(err, "failed to store downloaded file", goerr.V("name", name))
		}
		result = filepath.Join(entry, name)
	}

	if err := os.RemoveAll(entry); err != nil {
		return "", goerr.Wrap(err, "failed to remove stale cache entry", goerr.V("path", entry))
	}
	if err := os.Rename(staging, entry); err != nil {
		return "", goerr.Wrap(err, "failed to publish cache entry", goerr.V("path", entry))
	}

	logger.Debug("Stored competition files in hub cache", "path", result)
	return result, nil
}

func (c *hubClient) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
}

func isPopulated(dir string) bool {
	entries, err := os.ReadDir(dir)
	return err == nil && len(entries) > 0
}
