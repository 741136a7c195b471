package benchmark

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDurationStatsEmpty(t *testing.T) {
	mc := NewMetricsCalculator(nil)

	stats := mc.CalculateDurationStats(nil)
	assert.Equal(t, &DurationStats{}, stats)
}

func TestCalculateDurationStatsSingle(t *testing.T) {
	mc := NewMetricsCalculator(nil)

	stats := mc.CalculateDurationStats([]time.Duration{25 * time.Millisecond})

	assert.Equal(t, 1, stats.Count)
	assert.InDelta(t, 25.0, stats.Mean, 1e-9)
	assert.InDelta(t, 25.0, stats.Min, 1e-9)
	assert.InDelta(t, 25.0, stats.Max, 1e-9)
	assert.Zero(t, stats.StdDev)
}

func TestCalculateDurationStats(t *testing.T) {
	mc := NewMetricsCalculator(nil)

	durations := []time.Duration{
		40 * time.Millisecond,
		10 * time.Millisecond,
		30 * time.Millisecond,
		20 * time.Millisecond,
	}

	stats := mc.CalculateDurationStats(durations)

	assert.Equal(t, 4, stats.Count)
	assert.InDelta(t, 25.0, stats.Mean, 1e-9)
	assert.InDelta(t, 10.0, stats.Min, 1e-9)
	assert.InDelta(t, 40.0, stats.Max, 1e-9)
	assert.Greater(t, stats.StdDev, 0.0)

	// Quantiles sit inside the observed range and are ordered
	assert.GreaterOrEqual(t, stats.Median, stats.Min)
	assert.LessOrEqual(t, stats.Median, stats.Max)
	assert.GreaterOrEqual(t, stats.P95, stats.Median)
	assert.GreaterOrEqual(t, stats.P99, stats.P95)
	assert.LessOrEqual(t, stats.P99, stats.Max)
}
