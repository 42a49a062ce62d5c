package sendemail

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/mailrelay/internal/metrics"
)

// ServeHTTP reads the request body, runs Handle and writes the envelope.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.logger.WarnContext(r.Context(), "request body too large", slog.Int64("limit", maxErr.Limit))
			h.recorder.ObserveOutcome(metrics.OutcomeInvalidRequest)
			WriteEnvelope(w, ErrorEnvelope(http.StatusRequestEntityTooLarge, msgBodyTooLarge, ""))
			return
		}
		WriteEnvelope(w, h.fail(r.Context(), err))
		return
	}

	WriteEnvelope(w, h.Handle(r.Context(), string(body)))
}
