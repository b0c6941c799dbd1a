package types

import "errors"

var (
	// ErrCompetitionNotSet is returned when no competition identifier was given by flag or environment
	ErrCompetitionNotSet = errors.New("COMPETITION is not set")

	// ErrMissingCredentials is returned when a Kaggle client has no usable credentials
	ErrMissingCredentials = errors.New("kaggle credentials are not configured")
)
