package kaggle

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kagglefetch/pkg/domain/interfaces"
	"github.com/m-mizutani/kagglefetch/pkg/domain/model"
	"github.com/m-mizutani/kagglefetch/pkg/domain/types"
)

// CredentialsFile is the file name looked up in the Kaggle config directory
const CredentialsFile = "kaggle.json"

type legacyClient struct {
	explicit  model.KaggleCredentials
	configDir string
	creds     *model.KaggleCredentials
	cfg       *config
}

// NewLegacyClient creates the credential-file based client. Explicit
// credentials take precedence over configDir/kaggle.json when both fields are set.
func NewLegacyClient(creds model.KaggleCredentials, configDir string, opts ...Option) interfaces.LegacyClient {
	return &legacyClient{
		explicit:  creds,
		configDir: configDir,
		cfg:       newConfig(opts),
	}
}

// Authenticate resolves credentials from explicit values or kaggle.json
func (c *legacyClient) Authenticate(ctx context.Context) error {
	logger := ctxlog.From(ctx)

	if c.explicit.IsValid() {
		creds := c.explicit
		c.creds = &creds
		logger.Debug("Using Kaggle credentials from flags", slog.Any("credentials", c.creds))
		return nil
	}

	if c.configDir == "" {
		return goerr.Wrap(types.ErrMissingCredentials, "no Kaggle config directory")
	}

	path := filepath.Join(c.configDir, CredentialsFile)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return goerr.Wrap(types.ErrMissingCredentials, "credentials file not found", goerr.V("path", path))
		}
		return goerr.Wrap(err, "failed to read credentials file", goerr.V("path", path))
	}

	var creds model.KaggleCredentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return goerr.Wrap(err, "failed to parse credentials file", goerr.V("path", path))
	}
	if !creds.IsValid() {
		return goerr.Wrap(types.ErrMissingCredentials, "credentials file lacks username or key", goerr.V("path", path))
	}

	c.creds = &creds
	logger.Debug("Loaded Kaggle credentials", "path", path, slog.Any("credentials", c.creds))
	return nil
}

// FetchInto downloads the competition bundle into destDir
func (c *legacyClient) FetchInto(ctx context.Context, competition, destDir string) ([]string, error) {
	logger := ctxlog.From(ctx)

	if c.creds == nil {
		return nil, goerr.New("legacy client is not authenticated")
	}
	if err := validateCompetition(competition); err != nil {
		return nil, err
	}

	logger.Info("Downloading competition files via legacy API", "competition", competition)
	tmp, filename, err := c.cfg.download(ctx, competition, c.authorize, destDir, "."+competition+"-*.part")
	if err != nil {
		return nil, err
	}

	name := filename
	if name == "" {
		name = competition + ".zip"
	}
	dst := filepath.Join(destDir, name)
	if err := os.Rename(tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return nil, goerr.Wrap(err, "failed to move downloaded file", goerr.V("dst", dst))
	}

	return []string{dst}, nil
}

func (c *legacyClient) authorize(req *http.Request) {
	req.SetBasicAuth(c.creds.Username, c.creds.Key)
}
