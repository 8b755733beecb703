package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [BindSettings].
var (
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidSourceConfigs indicates an unusable user configuration
	// location (for example, an absolute user configuration path).
	ErrInvalidSourceConfigs = errors.New("invalid source configuration")
	// ErrInvalidSettings indicates that resolved application settings could
	// not be bound or failed validation.
	ErrInvalidSettings = errors.New("invalid application settings")
)
