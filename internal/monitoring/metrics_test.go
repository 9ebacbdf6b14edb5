package monitoring

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsBegin(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	done := m.Begin("GET")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InFlight))

	done("200")
	assert.Equal(t, 0.0, testutil.ToFloat64(m.InFlight))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
}

func TestMetricsRecordRequest(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordRequest("POST", "404", 10*time.Millisecond)
	m.RecordRequest("POST", "404", 20*time.Millisecond)
	m.RecordRequest("POST", OutcomeError, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("POST", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("POST", "error")))
}

func TestMetricsSharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()

	first := NewMetrics(reg)
	var second *Metrics
	require.NotPanics(t, func() { second = NewMetrics(reg) })

	first.RecordRequest("GET", "200", time.Millisecond)
	second.RecordRequest("GET", "200", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(first.RequestsTotal.WithLabelValues("GET", "200")))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "jsonfetch_requests_total")
	assert.Contains(t, names, "jsonfetch_request_duration_seconds")
	assert.Contains(t, names, "jsonfetch_requests_in_flight")
}

func TestMetricsWithoutRegistry(t *testing.T) {
	m := NewMetrics(nil)
	m.Begin("DELETE")(OutcomeError)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("DELETE", "error")))
}
