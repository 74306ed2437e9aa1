// Package logger builds *slog.Logger instances for the passgen CLI and HTTP
// service and provides attribute helpers that keep key names consistent.
//
// New applies functional options (format, level, output, static attributes,
// context extractors) and wraps the chosen handler with NewContextHandler,
// which adds attributes pulled from context.Context on every record. The HTTP
// service uses that to attach the request id.
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithService("passgen"),
//	)
//	log.DebugContext(ctx, "password generated",
//	    logger.Mode("equal"),
//	    logger.Length(16),
//	)
//
// Defaults are text output at INFO on stderr, since stdout carries the
// generated values. Error returns an empty attribute for a nil error, so it
// can be passed unconditionally.
package logger
