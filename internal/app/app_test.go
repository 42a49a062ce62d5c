package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailrelay/internal/app"
	"github.com/dmitrymomot/mailrelay/internal/config"
	"github.com/dmitrymomot/mailrelay/pkg/logger"
)

func TestNewSender(t *testing.T) {
	t.Parallel()

	t.Run("resend", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.LoadFrom(map[string]string{"MAIL_PROVIDER": "resend", "RESEND_API_KEY": "re_test"})
		require.NoError(t, err)

		sender, err := app.NewSender(context.Background(), cfg)
		require.NoError(t, err)
		require.Equal(t, "resend", sender.Name())
	})

	t.Run("ses with static credentials", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.LoadFrom(map[string]string{
			"AWS_ACCESS_KEY_ID":     "AKIA",
			"AWS_SECRET_ACCESS_KEY": "secret",
		})
		require.NoError(t, err)

		sender, err := app.NewSender(context.Background(), cfg)
		require.NoError(t, err)
		require.Equal(t, "ses", sender.Name())
	})

	t.Run("unsupported provider", func(t *testing.T) {
		t.Parallel()

		_, err := app.NewSender(context.Background(), &config.Config{Provider: "smtp"})
		require.Error(t, err)
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("metrics enabled", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.LoadFrom(map[string]string{"MAIL_PROVIDER": "resend", "RESEND_API_KEY": "re_test"})
		require.NoError(t, err)

		a, err := app.New(context.Background(), cfg)
		require.NoError(t, err)
		require.NotNil(t, a.Handler)
		require.NotNil(t, a.Metrics)
		require.Empty(t, a.ReadinessChecks(), "resend has no ping")
	})

	t.Run("ses exposes readiness check", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.LoadFrom(map[string]string{
			"AWS_ACCESS_KEY_ID":     "AKIA",
			"AWS_SECRET_ACCESS_KEY": "secret",
			"METRICS_ENABLED":       "false",
		})
		require.NoError(t, err)

		a, err := app.New(context.Background(), cfg)
		require.NoError(t, err)
		require.Nil(t, a.Metrics)
		require.Contains(t, a.ReadinessChecks(), "ses")
	})
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := app.NewLogger(logger.Config{Level: "loud"})
	require.Error(t, err)
}
