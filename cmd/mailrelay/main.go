// Command mailrelay serves the send endpoint over HTTP.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/dmitrymomot/mailrelay/internal/app"
	"github.com/dmitrymomot/mailrelay/internal/config"
	"github.com/dmitrymomot/mailrelay/internal/server"
	"github.com/dmitrymomot/mailrelay/pkg/logger"
)

const sentryFlushTimeout = 2 * time.Second

func main() {
	if err := run(context.Background()); err != nil {
		log.Printf("mailrelay: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}

	rc := server.RouterConfig{
		Logger:          a.Logger,
		Send:            a.Handler,
		ReadinessChecks: a.ReadinessChecks(),
		SendPath:        cfg.HTTP.SendPath,
		SendTimeout:     cfg.HTTP.SendTimeout,
	}
	if a.Metrics != nil {
		rc.Metrics = a.Metrics.Handler()
	}

	return server.Run(ctx, server.RunConfig{
		Handler:         server.NewRouter(rc),
		Address:         cfg.HTTP.Address,
		Logger:          a.Logger,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
		ShutdownHooks: []server.ShutdownHook{
			func(ctx context.Context) error {
				return logger.Flush(ctx, sentryFlushTimeout)
			},
		},
	})
}
