package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/kagglefetch/pkg/cli/config"
)

func TestFetch_Request(t *testing.T) {
	cfg := &config.Fetch{
		Competition: "titanic",
		Dest:        "/tmp/d",
		NoUnzip:     true,
	}

	req := cfg.Request()
	gt.String(t, req.Competition).Equal("titanic")
	gt.String(t, req.Dest).Equal("/tmp/d")
	gt.Value(t, req.SkipExtraction).Equal(true)
}

func TestFetch_Flags(t *testing.T) {
	cfg := &config.Fetch{}
	names := map[string]bool{}
	for _, flag := range cfg.Flags() {
		names[flag.Names()[0]] = true
	}

	for _, name := range []string{"competition", "dest", "no-unzip"} {
		if !names[name] {
			t.Errorf("Missing %s flag", name)
		}
	}
}
