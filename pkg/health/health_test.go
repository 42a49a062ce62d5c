package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailrelay/pkg/health"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("no checks is healthy", func(t *testing.T) {
		t.Parallel()

		resp := health.Run(context.Background(), nil)
		require.Equal(t, health.StatusHealthy, resp.Status)
		require.Empty(t, resp.Checks)
	})

	t.Run("one failing check makes the result unhealthy", func(t *testing.T) {
		t.Parallel()

		resp := health.Run(context.Background(), health.Checks{
			"ok":   func(context.Context) error { return nil },
			"down": func(context.Context) error { return errors.New("access denied") },
		})

		require.Equal(t, health.StatusUnhealthy, resp.Status)
		require.Equal(t, health.Check{Status: health.StatusHealthy}, resp.Checks["ok"])
		require.Equal(t, health.Check{Status: health.StatusUnhealthy, Error: "access denied"}, resp.Checks["down"])
	})

	t.Run("slow check reports timeout", func(t *testing.T) {
		t.Parallel()

		resp := health.Run(context.Background(), health.Checks{
			"slow": func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			},
		}, health.WithTimeout(20*time.Millisecond))

		require.Equal(t, health.StatusUnhealthy, resp.Status)
		require.Equal(t, health.ErrCheckTimeout.Error(), resp.Checks["slow"].Error)
	})
}

func TestLivenessHandler(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	health.LivenessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestReadinessHandler(t *testing.T) {
	t.Parallel()

	t.Run("healthy", func(t *testing.T) {
		t.Parallel()

		h := health.ReadinessHandler(health.Checks{
			"ses": func(context.Context) error { return nil },
		})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var resp health.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, health.StatusHealthy, resp.Status)
	})

	t.Run("unhealthy", func(t *testing.T) {
		t.Parallel()

		h := health.ReadinessHandler(health.Checks{
			"ses": func(context.Context) error { return errors.New("no credentials") },
		})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.JSONEq(t, `{"status":"unhealthy","checks":{"ses":{"status":"unhealthy","error":"no credentials"}}}`, rec.Body.String())
	})
}
