package benchmark

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/tunein/compute-benchmark-cli/pkg/logging"
)

// MetricsCalculator reduces raw run durations to summary statistics
type MetricsCalculator struct {
	logger logging.Logger
}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator(logger logging.Logger) *MetricsCalculator {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}

	return &MetricsCalculator{
		logger: logger,
	}
}

// DurationStats represents statistical measures of run durations, in
// milliseconds
type DurationStats struct {
	Mean   float64 `json:"mean" yaml:"mean"`
	Median float64 `json:"median" yaml:"median"`
	P95    float64 `json:"p95" yaml:"p95"`
	P99    float64 `json:"p99" yaml:"p99"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	StdDev float64 `json:"std_dev" yaml:"std_dev"`
	Count  int     `json:"count" yaml:"count"`
}

// CalculateDurationStats reduces the measured wall times of repeated runs
func (mc *MetricsCalculator) CalculateDurationStats(durations []time.Duration) *DurationStats {
	if len(durations) == 0 {
		return &DurationStats{}
	}

	// Work in milliseconds, sorted for the quantile calculations
	ms := make([]float64, len(durations))
	for i, d := range durations {
		ms[i] = float64(d.Microseconds()) / 1000.0
	}
	sort.Float64s(ms)

	stats := &DurationStats{
		Mean:   stat.Mean(ms, nil),
		Median: stat.Quantile(0.5, stat.Empirical, ms, nil),
		P95:    stat.Quantile(0.95, stat.Empirical, ms, nil),
		P99:    stat.Quantile(0.99, stat.Empirical, ms, nil),
		Min:    ms[0],
		Max:    ms[len(ms)-1],
		Count:  len(ms),
	}

	if len(ms) > 1 {
		stats.StdDev = stat.StdDev(ms, nil)
	}

	return mc.sanitizeStats(stats)
}

// sanitizeStats removes infinite and NaN values to prevent serialization
// errors in the output formats
func (mc *MetricsCalculator) sanitizeStats(stats *DurationStats) *DurationStats {
	for _, v := range []*float64{
		&stats.Mean, &stats.Median, &stats.P95, &stats.P99,
		&stats.Min, &stats.Max, &stats.StdDev,
	} {
		if math.IsInf(*v, 0) || math.IsNaN(*v) {
			*v = 0
		}
	}

	return stats
}
