// Package config loads passgen settings from the environment.
//
// Load optionally reads .env files with github.com/joho/godotenv and then
// parses PASSGEN_* variables into Config with github.com/caarlos0/env/v11.
// Process variables take precedence over file values; CLI flags take
// precedence over both.
//
//	PASSGEN_LENGTH=20
//	PASSGEN_MODE=equal
//	PASSGEN_SYMBOL=true
//	PASSGEN_AVOID_SIMILAR=true
//	PASSGEN_HTTP_ADDR=:9090
//
//	cfg, err := config.Load()
//	if err != nil {
//		return err
//	}
//	req, err := cfg.Request()
//
// # Error Handling
//
//   - ErrLoadEnv       – a named .env file could not be read.
//   - ErrParsingConfig – a variable has the wrong type.
//   - ErrInvalidConfig – a value is out of range (length outside
//     0..MaxLength, count outside 1..MaxCount, unknown mode).
package config
