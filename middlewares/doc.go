// Package middlewares provides net/http middleware for the mailrelay server.
//
// Every middleware has the chi-compatible shape func(http.Handler) http.Handler.
//
// # Request ID
//
// RequestID assigns a unique ID to each request. It reuses an upstream ID
// (X-Request-ID, X-Amzn-Trace-Id, X-Correlation-ID) or generates a UUID, stores
// it in the request context and echoes it in the X-Request-ID response header.
// Pair it with RequestIDExtractor so every log line carries the ID:
//
//	log := logger.New(slog.LevelInfo, middlewares.RequestIDExtractor())
//	r.Use(middlewares.RequestID())
//
// # Logging
//
// Logging records method, path, status, size and duration of each request.
//
// # Recover
//
// Recover turns panics into a logged 500 response. The response body is
// written by a PanicResponder, so the server can reuse its own error format:
//
//	r.Use(middlewares.Recover(
//	    middlewares.WithRecoverLogger(log),
//	    middlewares.WithRecoverResponder(writePanic),
//	))
//
// # CORS
//
// CORS answers preflight OPTIONS requests with 204 and the configured
// Access-Control-Allow-* headers. Defaults allow POST and OPTIONS from any origin.
package middlewares
