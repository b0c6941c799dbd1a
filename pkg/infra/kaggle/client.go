package kaggle

import (
	"context"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kagglefetch/pkg/domain/types"
)

// DefaultAPIURL is the base URL of the public Kaggle API
const DefaultAPIURL = "https://www.kaggle.com/api/v1"

// config holds settings shared by the hub and legacy clients
type config struct {
	apiURL        string
	httpClient    *http.Client
	forceDownload bool
}

// Option is a functional option for Kaggle clients
type Option func(*config)

// WithAPIURL sets the Kaggle API base URL
func WithAPIURL(apiURL string) Option {
	return func(c *config) {
		c.apiURL = apiURL
	}
}

// WithHTTPClient sets the HTTP client used for downloads
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) {
		c.httpClient = client
	}
}

// WithForceDownload makes the hub client ignore its cache
func WithForceDownload(force bool) Option {
	return func(c *config) {
		c.forceDownload = force
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{
		apiURL:     DefaultAPIURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// validateCompetition rejects identifiers that cannot be used as a single path element
func validateCompetition(competition string) error {
	if competition == "" || competition == "." || competition == ".." ||
		strings.ContainsAny(competition, `/\`) {
		return goerr.New("invalid competition identifier", goerr.V("competition", competition))
	}
	return nil
}

func (c *config) downloadURL(competition string) string {
	return strings.TrimRight(c.apiURL, "/") + "/competitions/data/download-all/" + url.PathEscape(competition)
}

// download streams the competition bundle into a new temporary file in dir.
// It returns the temporary path and the file name suggested by the server, if any.
func (c *config) download(ctx context.Context, competition string, authorize func(*http.Request), dir, pattern string) (string, string, error) {
	target := c.downloadURL(competition)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to create download request", goerr.V("url", target))
	}
	req.Header.Set("User-Agent", "kagglefetch/"+types.Version)
	authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to download competition files", goerr.V("url", target))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", "", goerr.New("unexpected status code",
			goerr.V("status", resp.StatusCode),
			goerr.V("url", target),
			goerr.V("body", string(body)),
		)
	}

	tmp, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to create temporary file", goerr.V("dir", dir))
	}

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", "", goerr.Wrap(err, "failed to read response body", goerr.V("url", target))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", "", goerr.Wrap(err, "failed to close temporary file")
	}

	return tmp.Name(), attachmentName(resp.Header.Get("Content-Disposition")), nil
}

// attachmentName returns the base file name of a Content-Disposition header, or "" if absent or unsafe
func attachmentName(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	name := filepath.Base(filepath.Clean("/" + strings.ReplaceAll(params["filename"], `\`, "/")))
	if name == "/" || name == "." || name == ".." {
		return ""
	}
	return name
}
