package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be
	// parsed into the settings struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into settings")

	// ErrInvalidConfig is returned when parsed settings fail validation.
	ErrInvalidConfig = errors.New("invalid settings")
)
