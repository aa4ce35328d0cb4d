package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidHubConfigs indicates an empty or unparsable Hub endpoint.
	ErrInvalidHubConfigs = errors.New("invalid hub configuration")
	// ErrInvalidUploadConfigs indicates invalid upload defaults
	// (for example, an unknown model kind).
	ErrInvalidUploadConfigs = errors.New("invalid upload configuration")
	// ErrInvalidServerConfigs indicates a missing node service address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
