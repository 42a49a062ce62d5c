package middlewares

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/dmitrymomot/mailrelay/pkg/logger"
)

// DefaultStackSize is the default maximum stack trace size in bytes.
const DefaultStackSize = 4096

// PanicResponder writes the response for a recovered panic.
type PanicResponder func(w http.ResponseWriter, r *http.Request, perr *PanicError)

// RecoverConfig configures the recover middleware.
type RecoverConfig struct {
	Logger            *slog.Logger
	Responder         PanicResponder
	StackSize         int  // Max stack trace size (default: 4096)
	DisablePrintStack bool // Disable stack trace in logs
}

// RecoverOption configures RecoverConfig.
type RecoverOption func(*RecoverConfig)

// WithRecoverLogger sets the logger used to report panics.
func WithRecoverLogger(l *slog.Logger) RecoverOption {
	return func(cfg *RecoverConfig) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// WithRecoverResponder sets the function that writes the error response.
func WithRecoverResponder(fn PanicResponder) RecoverOption {
	return func(cfg *RecoverConfig) {
		if fn != nil {
			cfg.Responder = fn
		}
	}
}

// WithRecoverStackSize sets the maximum stack trace size.
func WithRecoverStackSize(size int) RecoverOption {
	return func(cfg *RecoverConfig) {
		cfg.StackSize = size
	}
}

// WithRecoverDisablePrintStack disables including stack trace in logs.
func WithRecoverDisablePrintStack() RecoverOption {
	return func(cfg *RecoverConfig) {
		cfg.DisablePrintStack = true
	}
}

// Recover returns middleware that recovers from panics, logs them at ERROR
// and writes a 500 response through the configured responder.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func Recover(opts ...RecoverOption) func(http.Handler) http.Handler {
	cfg := &RecoverConfig{
		Logger:    logger.NewNope(),
		Responder: defaultPanicResponder,
		StackSize: DefaultStackSize,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				var stack []byte
				if !cfg.DisablePrintStack {
					stack = make([]byte, cfg.StackSize)
					stack = stack[:runtime.Stack(stack, false)]
				}

				attrs := []any{slog.Any("panic", rec)}
				if stack != nil {
					attrs = append(attrs, slog.String("stack", string(stack)))
				}
				cfg.Logger.ErrorContext(r.Context(), "panic recovered", attrs...)

				cfg.Responder(w, r, &PanicError{Value: rec, Stack: stack})
			}()

			next.ServeHTTP(w, r)
		})
	}
}

func defaultPanicResponder(w http.ResponseWriter, _ *http.Request, perr *PanicError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":   http.StatusText(http.StatusInternalServerError),
		"details": perr.Error(),
	})
}
