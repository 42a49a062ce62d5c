// Package logger provides structured logging with context extraction and Sentry integration.
//
// The package builds log/slog JSON loggers with two additions: context
// extractors that inject request-scoped values (such as request IDs) on every
// log call, and optional Sentry reporting that degrades to stdout-only logging
// when unconfigured.
//
// # Basic Usage
//
//	level, err := logger.ParseLevel("info")
//	if err != nil {
//		return err
//	}
//	log := logger.New(level, middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "email sent", slog.String("message_id", id))
//	// {"level":"INFO","msg":"email sent","message_id":"abc123","request_id":"..."}
//
// # Sentry Integration
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//	}, slog.LevelInfo, extractors...)
//	defer logger.Flush(ctx, 2*time.Second)
//
// Errors create Sentry issues, warnings and errors are stored as Sentry logs.
// If SENTRY_DSN is empty, the logger falls back to stdout only, so the same
// code path runs in development and production.
//
// # Context Extractors
//
// A ContextExtractor returns an attribute and true, or false to skip the
// attribute for that record. Extractors run on every log call.
package logger
