package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopRecorderDoesNothing(t *testing.T) {
	var r NopRecorder
	// Exercised purely for coverage: there is nothing observable to
	// assert on a no-op, beyond it not panicking.
	r.Insert()
	r.Replace()
	r.Relocate()
	r.Grow()
	r.ObserveProbeLength(3)
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestPrometheusRecorderCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewPrometheusRecorder(reg, "bytellmap_test")

	r.Insert()
	r.Insert()
	r.Replace()
	r.Relocate()
	r.Grow()

	assert.Equal(t, float64(2), counterValue(t, r.inserts))
	assert.Equal(t, float64(1), counterValue(t, r.replaces))
	assert.Equal(t, float64(1), counterValue(t, r.relocations))
	assert.Equal(t, float64(1), counterValue(t, r.growths))
}

func TestPrometheusRecorderRegistersMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheusRecorder(reg, "bytellmap_test2")

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 5)
}

func TestPrometheusRecorderObservesProbeLength(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewPrometheusRecorder(reg, "bytellmap_test3")

	r.ObserveProbeLength(0)
	r.ObserveProbeLength(4)

	var m dto.Metric
	require.NoError(t, r.probeLengths.Write(&m))
	assert.Equal(t, uint64(2), m.GetHistogram().GetSampleCount())
}
