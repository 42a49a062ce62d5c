// Package server exposes the send handler over HTTP.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/mailrelay/internal/sendemail"
	"github.com/dmitrymomot/mailrelay/middlewares"
	"github.com/dmitrymomot/mailrelay/pkg/health"
	"github.com/dmitrymomot/mailrelay/pkg/logger"
)

// RouterConfig holds everything the router mounts.
type RouterConfig struct {
	Logger          *slog.Logger
	Send            http.Handler
	Metrics         http.Handler // nil disables /metrics
	ReadinessChecks health.Checks
	SendPath        string
	SendTimeout     time.Duration // zero uses middlewares.DefaultTimeout
}

// NewRouter builds the chi router:
//
//	POST|OPTIONS {SendPath}  send an email / CORS preflight
//	GET /healthz             liveness
//	GET /readyz              readiness (provider ping)
//	GET /metrics             Prometheus metrics
func NewRouter(cfg RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = logger.NewNope()
	}
	sendPath := cfg.SendPath
	if sendPath == "" {
		sendPath = "/send"
	}

	r := chi.NewRouter()
	r.Use(
		middlewares.RequestID(),
		middlewares.Logging(log),
		middlewares.Recover(
			middlewares.WithRecoverLogger(log),
			middlewares.WithRecoverResponder(respondPanic),
		),
		middlewares.CORS(),
	)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.With(middlewares.Timeout(cfg.SendTimeout)).Method(http.MethodPost, sendPath, cfg.Send)

	r.Get("/healthz", health.LivenessHandler())
	r.Get("/readyz", health.ReadinessHandler(cfg.ReadinessChecks, health.WithLogger(log)))

	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}

	return r
}

func respondPanic(w http.ResponseWriter, _ *http.Request, perr *middlewares.PanicError) {
	sendemail.WriteEnvelope(w, sendemail.InternalErrorEnvelope(perr))
}

func writeError(w http.ResponseWriter, status int, message string) {
	sendemail.WriteEnvelope(w, sendemail.ErrorEnvelope(status, message, ""))
}
