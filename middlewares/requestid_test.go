package middlewares_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailrelay/middlewares"
	"github.com/dmitrymomot/mailrelay/pkg/logger"
)

func captureRequestID(dst *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*dst = middlewares.GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates uuid when no header present", func(t *testing.T) {
		t.Parallel()

		var got string
		rec := httptest.NewRecorder()
		middlewares.RequestID()(captureRequestID(&got)).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

		require.NotEmpty(t, got)
		_, err := uuid.Parse(got)
		require.NoError(t, err)
		require.Equal(t, got, rec.Header().Get("X-Request-ID"))
	})

	t.Run("reuses upstream header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("X-Amzn-Trace-Id", "Root=1-abc")

		var got string
		rec := httptest.NewRecorder()
		middlewares.RequestID()(captureRequestID(&got)).ServeHTTP(rec, req)

		require.Equal(t, "Root=1-abc", got)
		require.Equal(t, "Root=1-abc", rec.Header().Get("X-Request-ID"))
	})

	t.Run("header priority follows configuration order", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("X-Request-ID", "first")
		req.Header.Set("X-Correlation-ID", "second")

		var got string
		middlewares.RequestID()(captureRequestID(&got)).ServeHTTP(httptest.NewRecorder(), req)

		require.Equal(t, "first", got)
	})

	t.Run("custom generator and headers", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("X-Request-ID", "ignored")

		var got string
		mw := middlewares.RequestID(
			middlewares.WithRequestIDHeaders("X-Trace"),
			middlewares.WithRequestIDGenerator(func() string { return "fixed" }),
		)
		mw(captureRequestID(&got)).ServeHTTP(httptest.NewRecorder(), req)

		require.Equal(t, "fixed", got)
	})
}

func TestGetRequestID_Empty(t *testing.T) {
	t.Parallel()

	require.Empty(t, middlewares.GetRequestID(context.Background()))
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, slog.LevelInfo, middlewares.RequestIDExtractor())

	log.InfoContext(middlewares.WithRequestID(context.Background(), "req-42"), "hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "req-42", entry["request_id"])
}
