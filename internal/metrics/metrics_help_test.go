package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// getTestMetrics creates a Metrics instance backed by an isolated registry
func getTestMetrics() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry(), nil)
}

// getCounterValue reads the current value of a plain counter
func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()

	m := &dto.Metric{}
	if err := counter.Write(m); err != nil {
		t.Fatalf("failed to read counter: %v", err)
	}
	return m.GetCounter().GetValue()
}

// getGaugeValue reads the current value of a gauge
func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()

	m := &dto.Metric{}
	if err := gauge.Write(m); err != nil {
		t.Fatalf("failed to read gauge: %v", err)
	}
	return m.GetGauge().GetValue()
}

// getCounterVecValue reads one labeled series of a counter vector
func getCounterVecValue(t *testing.T, vec *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()

	counter, err := vec.GetMetricWithLabelValues(labels...)
	if err != nil {
		t.Fatalf("failed to resolve counter labels: %v", err)
	}
	return getCounterValue(t, counter)
}
