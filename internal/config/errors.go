package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid. Each of these is fatal at
// startup; the process must not serve traffic without them.
var (
	// ErrMissingTokenSignKey indicates that no token signing secret was
	// provided by any configuration source. There is deliberately no
	// default value for this setting.
	ErrMissingTokenSignKey = errors.New("token sign key is required")

	// ErrInvalidTokenDuration indicates a zero or negative token lifetime.
	ErrInvalidTokenDuration = errors.New("token duration must be positive")

	// ErrMissingDatabaseDSN indicates that no database connection string
	// was provided by any configuration source.
	ErrMissingDatabaseDSN = errors.New("database DSN is required")
)
