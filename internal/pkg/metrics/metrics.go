package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "stayadmin"

// Outcome labels for backend calls.
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeFailOpen = "fail_open"
	OutcomeCacheHit = "cache_hit"
)

type Metrics struct {
	Registry *prometheus.Registry

	BackendRequests *prometheus.CounterVec
	BackendLatency  *prometheus.HistogramVec
	FailOpenReads   *prometheus.CounterVec
	CacheLookups    *prometheus.CounterVec
	StaleDiscards   prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		BackendRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_requests_total",
			Help:      "Requests issued to the remote admin backend.",
		}, []string{"endpoint", "method", "outcome"}),
		BackendLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Latency of requests to the remote admin backend.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.3, 0.6, 1, 3, 6, 10},
		}, []string{"endpoint", "method"}),
		FailOpenReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fail_open_reads_total",
			Help:      "Reads whose failure was replaced by a permissive default (zero booked, no block, base price).",
		}, []string{"read"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Read-through cache lookups by result.",
		}, []string{"key", "result"}),
		StaleDiscards: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_stale_results_total",
			Help:      "Session quote results dropped because a newer input superseded them.",
		}),
	}
	reg.MustRegister(
		m.BackendRequests,
		m.BackendLatency,
		m.FailOpenReads,
		m.CacheLookups,
		m.StaleDiscards,
		prometheus.NewGoCollector(),
	)
	return m
}
