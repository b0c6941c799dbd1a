package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/kagglefetch/pkg/infra/kaggle"
	"github.com/urfave/cli/v3"
)

// Kaggle holds endpoint and credential configuration for both download clients
type Kaggle struct {
	APIURL        string
	APIToken      string `masq:"secret"`
	HubCache      string
	ForceDownload bool
	Username      string
	Key           string `masq:"secret"`
	ConfigDir     string
	HTTPTimeout   time.Duration
}

// Flags returns CLI flags for Kaggle configuration
func (c *Kaggle) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "kaggle-api-url",
			Usage:       "Kaggle API base URL",
			Value:       kaggle.DefaultAPIURL,
			Destination: &c.APIURL,
			Sources:     cli.EnvVars("KAGGLE_API_URL"),
		},
		&cli.StringFlag{
			Name:        "kaggle-api-token",
			Usage:       "API token for the hub client",
			Destination: &c.APIToken,
			Sources:     cli.EnvVars("KAGGLE_API_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "hub-cache",
			Usage:       "Cache directory of the hub client",
			Value:       homePath(".cache", "kagglehub"),
			Destination: &c.HubCache,
			Sources:     cli.EnvVars("KAGGLEHUB_CACHE"),
		},
		&cli.BoolFlag{
			Name:        "force-download",
			Usage:       "Ignore the hub cache",
			Destination: &c.ForceDownload,
			Sources:     cli.EnvVars("KAGGLEHUB_FORCE_DOWNLOAD"),
		},
		&cli.StringFlag{
			Name:        "kaggle-username",
			Usage:       "Username for the legacy client (overrides kaggle.json)",
			Destination: &c.Username,
			Sources:     cli.EnvVars("KAGGLE_USERNAME"),
		},
		&cli.StringFlag{
			Name:        "kaggle-key",
			Usage:       "API key for the legacy client (overrides kaggle.json)",
			Destination: &c.Key,
			Sources:     cli.EnvVars("KAGGLE_KEY"),
		},
		&cli.StringFlag{
			Name:        "kaggle-config-dir",
			Usage:       "Directory containing kaggle.json",
			Value:       homePath(".kaggle"),
			Destination: &c.ConfigDir,
			Sources:     cli.EnvVars("KAGGLE_CONFIG_DIR"),
		},
		&cli.DurationFlag{
			Name:        "http-timeout",
			Usage:       "Timeout of each download request (0 means none)",
			Destination: &c.HTTPTimeout,
			Sources:     cli.EnvVars("KAGGLEFETCH_HTTP_TIMEOUT"),
		},
	}
}

func homePath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home}, elem...)...)
}
