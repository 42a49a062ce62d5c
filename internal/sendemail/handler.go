package sendemail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/mailrelay/internal/metrics"
	"github.com/dmitrymomot/mailrelay/pkg/logger"
	"github.com/dmitrymomot/mailrelay/pkg/mailer"
)

// DefaultMaxBodyBytes matches the SES maximum message size.
const DefaultMaxBodyBytes int64 = 10 << 20

// Recorder receives per-invocation metrics.
type Recorder interface {
	ObserveOutcome(outcome string)
	ObserveProviderCall(provider string, d time.Duration, err error)
}

type nopRecorder struct{}

func (nopRecorder) ObserveOutcome(string)                            {}
func (nopRecorder) ObserveProviderCall(string, time.Duration, error) {}

// Handler validates send requests and forwards them to a mail provider.
// A Handler is safe for concurrent use; the only shared state is the sender.
type Handler struct {
	sender       mailer.Sender
	logger       *slog.Logger
	recorder     Recorder
	maxBodyBytes int64
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(h *Handler) {
		if r != nil {
			h.recorder = r
		}
	}
}

// WithMaxBodyBytes limits the request body size accepted by ServeHTTP.
func WithMaxBodyBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// New creates a Handler that sends through sender.
func New(sender mailer.Sender, opts ...Option) *Handler {
	h := &Handler{
		sender:       sender,
		logger:       logger.NewNope(),
		recorder:     nopRecorder{},
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle processes one raw request body and always returns exactly one envelope.
// The provider is called at most once, and only for a fully valid request.
func (h *Handler) Handle(ctx context.Context, rawBody string) (env Envelope) {
	defer func() {
		if r := recover(); r != nil {
			env = h.fail(ctx, fmt.Errorf("panic: %v", r))
		}
	}()

	req, err := decodeRequest(rawBody)
	if err != nil {
		var reqErr *requestError
		if errors.As(err, &reqErr) {
			return h.reject(ctx, reqErr)
		}
		return h.fail(ctx, err)
	}

	return h.send(ctx, req)
}

func (h *Handler) send(ctx context.Context, req *EmailRequest) Envelope {
	provider := h.sender.Name()

	start := time.Now()
	messageID, err := h.sender.Send(ctx, req.Email())
	h.recorder.ObserveProviderCall(provider, time.Since(start), err)

	if err != nil {
		if perr := mailer.AsProviderError(err); perr != nil {
			h.logger.ErrorContext(ctx, "provider rejected email",
				slog.String("provider", provider),
				slog.String("code", perr.Code),
				slog.String("error", perr.Message),
			)
			h.recorder.ObserveOutcome(metrics.OutcomeProviderError)
			return ErrorEnvelope(http.StatusInternalServerError, msgSendFailed, perr.Message)
		}
		return h.fail(ctx, err)
	}

	h.logger.InfoContext(ctx, "email sent",
		slog.String("provider", provider),
		slog.String("message_id", messageID),
		slog.Int("recipients", len(req.To)),
	)
	h.recorder.ObserveOutcome(metrics.OutcomeSent)

	return newEnvelope(http.StatusOK, successBody{
		Message:   msgSent,
		MessageID: messageID,
		From:      req.From,
		To:        req.To,
	})
}

func (h *Handler) reject(ctx context.Context, err *requestError) Envelope {
	attrs := []any{slog.String("reason", err.Message)}
	if err.Details != "" {
		attrs = append(attrs, slog.String("details", err.Details))
	}
	h.logger.WarnContext(ctx, "invalid send request", attrs...)
	h.recorder.ObserveOutcome(metrics.OutcomeInvalidRequest)
	return ErrorEnvelope(http.StatusBadRequest, err.Message, err.Details)
}

func (h *Handler) fail(ctx context.Context, err error) Envelope {
	h.logger.ErrorContext(ctx, "unexpected error", slog.String("error", err.Error()))
	h.recorder.ObserveOutcome(metrics.OutcomeInternalError)
	return InternalErrorEnvelope(err)
}
