package interfaces

import "context"

// HubClient is the managed download client. It resolves a competition into a
// local file or directory, handling its own caching and authentication.
type HubClient interface {
	// Fetch returns a local path to a single file or to a directory tree
	Fetch(ctx context.Context, competition string) (string, error)
}

// LegacyClient is the credential-file based Kaggle API client
type LegacyClient interface {
	// Authenticate loads and validates credentials
	Authenticate(ctx context.Context) error

	// FetchInto downloads competition files directly into destDir and returns written paths
	FetchInto(ctx context.Context, competition, destDir string) ([]string, error)
}
