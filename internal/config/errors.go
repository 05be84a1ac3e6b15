package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing secret was
	// provided by any configuration source. The server cannot issue or
	// verify tokens without it.
	ErrMissingTokenSignKey = errors.New("missing token sign key")

	// ErrMissingDatabaseDSN indicates that no database connection string
	// was provided by any configuration source.
	ErrMissingDatabaseDSN = errors.New("missing database DSN")
)
