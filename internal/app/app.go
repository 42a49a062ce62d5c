// Package app wires configuration, logging, the mail provider and the
// request handler. Both entrypoints build their process state here, once.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/mailrelay/internal/config"
	"github.com/dmitrymomot/mailrelay/internal/metrics"
	"github.com/dmitrymomot/mailrelay/internal/sendemail"
	"github.com/dmitrymomot/mailrelay/middlewares"
	"github.com/dmitrymomot/mailrelay/pkg/health"
	"github.com/dmitrymomot/mailrelay/pkg/logger"
	"github.com/dmitrymomot/mailrelay/pkg/mailer"
	"github.com/dmitrymomot/mailrelay/pkg/mailer/resend"
	"github.com/dmitrymomot/mailrelay/pkg/mailer/ses"
)

// App holds the long-lived process state.
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Sender  mailer.Sender
	Metrics *metrics.Metrics
	Handler *sendemail.Handler
}

// New builds the application from cfg.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log, err := NewLogger(cfg.Log)
	if err != nil {
		return nil, err
	}

	sender, err := NewSender(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var m *metrics.Metrics
	opts := []sendemail.Option{
		sendemail.WithLogger(log),
		sendemail.WithMaxBodyBytes(cfg.HTTP.MaxBodyBytes),
	}
	if cfg.MetricsEnabled {
		m = metrics.New()
		opts = append(opts, sendemail.WithRecorder(m))
	}

	log.InfoContext(ctx, "mail provider configured", slog.String("provider", sender.Name()))

	return &App{
		Config:  cfg,
		Logger:  log,
		Sender:  sender,
		Metrics: m,
		Handler: sendemail.New(sender, opts...),
	}, nil
}

// NewLogger builds the JSON logger, with Sentry reporting when a DSN is set.
// Every record carries the request ID when one is in the context.
func NewLogger(cfg logger.Config) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	return logger.NewWithSentry(cfg.Sentry, level, middlewares.RequestIDExtractor()), nil
}

// NewSender creates the provider client selected by cfg.Provider.
func NewSender(ctx context.Context, cfg *config.Config) (mailer.Sender, error) {
	switch cfg.Provider {
	case config.ProviderSES:
		return ses.New(ctx, cfg.SES)
	case config.ProviderResend:
		return resend.New(cfg.Resend)
	default:
		return nil, fmt.Errorf("app: unsupported mail provider %q", cfg.Provider)
	}
}

// ReadinessChecks returns the provider check when the sender supports one.
func (a *App) ReadinessChecks() health.Checks {
	checks := health.Checks{}
	if p, ok := a.Sender.(mailer.Pinger); ok {
		checks[a.Sender.Name()] = p.Ping
	}
	return checks
}
