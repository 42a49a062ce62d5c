package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds logger configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Sentry SentryConfig
}

// ParseLevel converts a level name (debug, info, warn, error) into a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("logger: invalid level %q: %w", name, err)
	}
	return level, nil
}

// New creates a JSON logger writing to stdout with optional context extractors.
func New(level slog.Level, extractors ...ContextExtractor) *slog.Logger {
	return NewWithWriter(os.Stdout, level, extractors...)
}

// NewWithWriter creates a JSON logger writing to w.
func NewWithWriter(w io.Writer, level slog.Level, extractors ...ContextExtractor) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(newContextHandler(h, extractors...))
}

// NewNope creates a no-op logger that discards all output.
// Use this as a default when logging is not configured.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
