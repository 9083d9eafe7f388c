// Package metrics records wallet operations and verifier requests in
// Prometheus collectors.
//
// A nil *Recorder is valid and records nothing, so library callers that do
// not care about metrics can pass nil.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"modhub/internal/domain/types"
)

const namespace = "modhub"

// Outcome labels.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"

	// SchemeUnknown labels operations on schemes that are not supported.
	SchemeUnknown = "unknown"
)

// Recorder owns the collectors. Build one per registry with New.
type Recorder struct {
	operations *prometheus.CounterVec
	requests   *prometheus.HistogramVec
	limited    prometheus.Counter
}

// New creates the collectors and registers them with reg. A nil reg gets a
// private registry.
func New(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	r := &Recorder{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "crypto_operations_total",
			Help:      "Wallet operations by operation, scheme and outcome.",
		}, []string{"op", "scheme", "outcome"}),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "verifier",
			Name:      "request_duration_seconds",
			Help:      "Verifier HTTP request latency by route and status code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "code"}),
		limited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "verifier",
			Name:      "rate_limited_total",
			Help:      "Verifier requests refused by the per-client rate limiter.",
		}),
	}
	reg.MustRegister(r.operations, r.requests, r.limited)
	return r
}

// Operation counts one finished operation.
func (r *Recorder) Operation(op string, scheme types.Scheme, outcome string) {
	if r == nil {
		return
	}
	r.operations.WithLabelValues(op, SchemeLabel(scheme), outcome).Inc()
}

// Request observes one verifier HTTP request.
func (r *Recorder) Request(route string, code int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.requests.WithLabelValues(route, strconv.Itoa(code)).Observe(elapsed.Seconds())
}

// RateLimited counts one refused request.
func (r *Recorder) RateLimited() {
	if r == nil {
		return
	}
	r.limited.Inc()
}

// SchemeLabel maps scheme onto a bounded label value. Names that do not
// parse, which may come from untrusted token headers, become SchemeUnknown.
func SchemeLabel(scheme types.Scheme) string {
	known, err := types.ParseScheme(scheme.String())
	if err != nil {
		return SchemeUnknown
	}
	return known.String()
}

// Outcome maps an operation error onto a bounded label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, types.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, types.ErrUnsupportedScheme):
		return "unsupported_scheme"
	case errors.Is(err, types.ErrDecryptionFailed):
		return "decryption_failed"
	case errors.Is(err, types.ErrExpiredToken):
		return "expired"
	case errors.Is(err, types.ErrInvalidSignature):
		return "invalid_signature"
	case errors.Is(err, types.ErrMalformedToken):
		return "malformed"
	case errors.Is(err, types.ErrDataMismatch):
		return "data_mismatch"
	}
	return "error"
}
