// Package requestid tags every HTTP request with an identifier.
//
// Middleware accepts a client supplied X-Request-ID when it matches
// [a-zA-Z0-9_-]{1,128}; otherwise it generates a UUIDv7 with
// github.com/google/uuid. The id is echoed in the response header and stored
// in the request context, where FromContext retrieves it and
// LoggerExtractor exposes it to pkg/logger:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
