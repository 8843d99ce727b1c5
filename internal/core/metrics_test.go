package core

import (
	"context"
	"strings"
	"testing"

	"carehome/pkg/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetricsRecordsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusMetrics(reg)
	require.NoError(t, err)

	r := newTestRegistry(t, WithMetrics(m))
	assert.Equal(t, float64(domain.DefaultTopology().Capacity()), testutil.ToFloat64(m.capacity))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.occupied))

	admit(t, r, "R1", "W1-R1-B1")
	err = r.AddResident(context.Background(), manager, domain.Resident{ID: "R2"}, "W1-R1-B1")
	require.Error(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.occupied))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.operations.WithLabelValues(OpAddResident, "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.operations.WithLabelValues(OpAddResident, "error")))

	expected := `
# HELP carehome_beds_occupied Beds currently linked to a resident.
# TYPE carehome_beds_occupied gauge
carehome_beds_occupied 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "carehome_beds_occupied"))
}

func TestPrometheusMetricsDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusMetrics(reg)
	require.NoError(t, err)
	_, err = NewPrometheusMetrics(reg)
	assert.Error(t, err)
}
