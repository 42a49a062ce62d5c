// Package metrics exposes Prometheus metrics for email send requests.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mailrelay"

// Outcome labels for send requests.
const (
	OutcomeSent           = "sent"
	OutcomeInvalidRequest = "invalid_request"
	OutcomeProviderError  = "provider_error"
	OutcomeInternalError  = "internal_error"
)

// Metrics records send outcomes and provider latency.
// It is safe for concurrent use.
type Metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	providerLatency *prometheus.HistogramVec
}

// New creates metrics registered on a private registry that also carries
// the Go runtime and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "send_requests_total",
			Help:      "Email send requests by outcome.",
		}, []string{"outcome"}),
		providerLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_send_duration_seconds",
			Help:      "Latency of provider send calls.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		}, []string{"provider", "result"}),
	}
	registry.MustRegister(m.requests, m.providerLatency)

	// Pre-create outcome series so dashboards see zeros before the first request
	for _, outcome := range []string{OutcomeSent, OutcomeInvalidRequest, OutcomeProviderError, OutcomeInternalError} {
		m.requests.WithLabelValues(outcome)
	}

	return m
}

// ObserveOutcome counts one finished send request.
func (m *Metrics) ObserveOutcome(outcome string) {
	m.requests.WithLabelValues(outcome).Inc()
}

// ObserveProviderCall records the duration of one provider call.
func (m *Metrics) ObserveProviderCall(provider string, d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.providerLatency.WithLabelValues(provider, result).Observe(d.Seconds())
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler serving the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
