package sanity

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sanity_client",
			Name:      "requests_total",
			Help:      "Requests sent to the Sanity API by endpoint and status code.",
		},
		[]string{"endpoint", "code"},
	)
	latency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "sanity_client",
			Name:      "request_duration_seconds",
			Help:      "Round-trip time of Sanity API requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// Several clients may share a registry; reuse what is already there.
	if err := reg.Register(requests); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, err
		}
		requests = existing
	}

	if err := reg.Register(latency); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(*prometheus.HistogramVec)
		if !ok {
			return nil, err
		}
		latency = existing
	}

	return &metrics{requests: requests, latency: latency}, nil
}

// observe is a no-op on a nil receiver so callers need not check whether
// metrics are enabled.
func (m *metrics) observe(endpoint Endpoint, code string, took time.Duration) {
	if m == nil {
		return
	}

	m.requests.WithLabelValues(string(endpoint), code).Inc()
	m.latency.WithLabelValues(string(endpoint)).Observe(took.Seconds())
}
