package config

import (
	"github.com/m-mizutani/kagglefetch/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// DefaultDest is used when neither --dest nor KAGGLE_DATA_DIR is given
const DefaultDest = "data/raw"

// Fetch holds what to download and where
type Fetch struct {
	Competition string
	Dest        string
	NoUnzip     bool
}

// Flags returns CLI flags for fetch configuration
func (c *Fetch) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "competition",
			Usage:       "Kaggle competition identifier",
			Destination: &c.Competition,
			Sources:     cli.EnvVars("COMPETITION"),
		},
		&cli.StringFlag{
			Name:        "dest",
			Usage:       "Destination directory",
			Value:       DefaultDest,
			Destination: &c.Dest,
			Sources:     cli.EnvVars("KAGGLE_DATA_DIR"),
		},
		&cli.BoolFlag{
			Name:        "no-unzip",
			Usage:       "Do not extract *.zip files in the destination directory",
			Destination: &c.NoUnzip,
		},
	}
}

// Request converts the flags into a download request
func (c *Fetch) Request() *model.DownloadRequest {
	return &model.DownloadRequest{
		Competition:    c.Competition,
		Dest:           c.Dest,
		SkipExtraction: c.NoUnzip,
	}
}
