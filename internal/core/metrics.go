package core

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsRecorder receives operation outcomes and occupancy levels.
type MetricsRecorder interface {
	Observe(ctx context.Context, operation string, success bool, duration time.Duration)
	ObserveOccupancy(occupied, total int)
}

type noopMetrics struct{}

func (noopMetrics) Observe(context.Context, string, bool, time.Duration) {}
func (noopMetrics) ObserveOccupancy(int, int)                            {}

// PrometheusMetrics publishes registry metrics through client_golang collectors.
type PrometheusMetrics struct {
	operations *prometheus.CounterVec
	durations  *prometheus.HistogramVec
	occupied   prometheus.Gauge
	capacity   prometheus.Gauge
}

// NewPrometheusMetrics registers the registry collectors with reg.
func NewPrometheusMetrics(reg prometheus.Registerer) (*PrometheusMetrics, error) {
	m := &PrometheusMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "carehome",
			Name:      "operations_total",
			Help:      "Registry operations by outcome.",
		}, []string{"operation", "status"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "carehome",
			Name:      "operation_duration_seconds",
			Help:      "Registry operation latency.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"operation"}),
		occupied: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "carehome",
			Name:      "beds_occupied",
			Help:      "Beds currently linked to a resident.",
		}),
		capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "carehome",
			Name:      "beds_total",
			Help:      "Beds in the facility topology.",
		}),
	}
	for _, c := range []prometheus.Collector{m.operations, m.durations, m.occupied, m.capacity} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Observe records a registry operation outcome.
func (m *PrometheusMetrics) Observe(_ context.Context, operation string, success bool, duration time.Duration) {
	if operation == "" {
		return
	}
	status := "error"
	if success {
		status = "success"
	}
	m.operations.WithLabelValues(operation, status).Inc()
	m.durations.WithLabelValues(operation).Observe(duration.Seconds())
}

// ObserveOccupancy updates the occupancy gauges.
func (m *PrometheusMetrics) ObserveOccupancy(occupied, total int) {
	m.occupied.Set(float64(occupied))
	m.capacity.Set(float64(total))
}
