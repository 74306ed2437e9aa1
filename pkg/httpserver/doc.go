// Package httpserver runs the passgen HTTP API with graceful shutdown.
//
// Server wraps net/http: Run binds the listener, closes Ready, serves until
// the context is cancelled or SIGINT/SIGTERM arrives, then calls
// http.Server.Shutdown bounded by the shutdown timeout. Construction goes
// through New with functional options or NewFromConfig with a Config parsed
// from the environment.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Errors are wrapped with ErrStart and ErrShutdown for errors.Is checks.
package httpserver
