package config

import "errors"

var (
	// ErrLoadEnv is returned when an explicitly named .env file cannot be read.
	ErrLoadEnv = errors.New("failed to load env file")

	// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrInvalidConfig is returned when parsed values are out of range.
	ErrInvalidConfig = errors.New("invalid configuration")
)
