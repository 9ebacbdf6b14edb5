package monitoring

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OutcomeError labels calls that failed without an HTTP status.
const OutcomeError = "error"

// Metrics holds the client's Prometheus collectors.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	InFlight        prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg. Collectors
// already registered by another client on the same registry are shared.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jsonfetch_requests_total",
				Help: "Total number of JSON requests by verb and outcome",
			},
			[]string{"verb", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "jsonfetch_request_duration_seconds",
				Help:    "JSON request duration in seconds, including body parsing",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"verb"},
		),
		InFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "jsonfetch_requests_in_flight",
				Help: "Number of JSON requests currently in progress",
			},
		),
	}

	if reg != nil {
		m.RequestsTotal = register(reg, m.RequestsTotal)
		m.RequestDuration = register(reg, m.RequestDuration)
		m.InFlight = register(reg, m.InFlight)
	}
	return m
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// Begin marks a request as started and returns the function that records
// its outcome.
func (m *Metrics) Begin(verb string) func(outcome string) {
	start := time.Now()
	m.InFlight.Inc()
	return func(outcome string) {
		m.InFlight.Dec()
		m.RecordRequest(verb, outcome, time.Since(start))
	}
}

// RecordRequest records a finished request.
func (m *Metrics) RecordRequest(verb, outcome string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(verb, outcome).Inc()
	m.RequestDuration.WithLabelValues(verb).Observe(duration.Seconds())
}
