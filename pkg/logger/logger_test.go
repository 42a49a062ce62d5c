package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailrelay/pkg/logger"
)

type ctxKey struct{}

func requestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if v, ok := ctx.Value(ctxKey{}).(string); ok && v != "" {
		return slog.String("request_id", v), true
	}
	return slog.Attr{}, false
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for name, want := range tests {
		got, err := logger.ParseLevel(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}

	_, err := logger.ParseLevel("verbose")
	require.Error(t, err)
}

func TestNewWithWriter(t *testing.T) {
	t.Parallel()

	t.Run("extractor adds attribute from context", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, slog.LevelInfo, requestIDExtractor)

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
		log.InfoContext(ctx, "email sent", slog.String("message_id", "abc123"))

		entry := decodeLine(t, &buf)
		require.Equal(t, "email sent", entry["msg"])
		require.Equal(t, "abc123", entry["message_id"])
		require.Equal(t, "req-1", entry["request_id"])
	})

	t.Run("extractor skipped when value missing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, slog.LevelInfo, requestIDExtractor, nil)

		log.InfoContext(context.Background(), "hello")

		entry := decodeLine(t, &buf)
		require.NotContains(t, entry, "request_id")
	})

	t.Run("attributes and groups keep extractors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, slog.LevelInfo, requestIDExtractor).
			With(slog.String("component", "sendemail"))

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-2")
		log.InfoContext(ctx, "hello")

		entry := decodeLine(t, &buf)
		require.Equal(t, "sendemail", entry["component"])
		require.Equal(t, "req-2", entry["request_id"])
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, slog.LevelWarn)

		log.Info("dropped")
		require.Zero(t, buf.Len())

		log.Warn("kept")
		require.NotZero(t, buf.Len())
	})
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	require.NotNil(t, log)
	require.False(t, log.Enabled(context.Background(), slog.LevelError))
}

func TestNewWithSentry_NoDSN(t *testing.T) {
	t.Parallel()

	log := logger.NewWithSentry(logger.SentryConfig{}, slog.LevelInfo)
	require.NotNil(t, log)
	require.NoError(t, logger.Flush(context.Background(), 10*time.Millisecond))
}
