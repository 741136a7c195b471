package benchmark

import (
	"context"
	"fmt"
	"time"

	"github.com/tunein/compute-benchmark-cli/configs"
	"github.com/tunein/compute-benchmark-cli/pkg/integrate"
	"github.com/tunein/compute-benchmark-cli/pkg/logging"
	"github.com/tunein/compute-benchmark-cli/pkg/matrix"
	"github.com/tunein/compute-benchmark-cli/pkg/optimize"
	"github.com/tunein/compute-benchmark-cli/pkg/parsebench"
	"github.com/tunein/compute-benchmark-cli/pkg/spectral"
)

// Runner executes one benchmark and returns its numeric summary. Each call
// allocates fresh buffers; nothing is shared between repetitions.
type Runner func() (interface{}, error)

// RunResult holds the outcome of repeated runs of a single benchmark
type RunResult struct {
	Name        string         `json:"name" yaml:"name"`
	Repetitions int            `json:"repetitions" yaml:"repetitions"`
	Summary     interface{}    `json:"summary" yaml:"summary"`
	Timing      *DurationStats `json:"timing" yaml:"timing"`
}

// SuiteSummary aggregates all benchmark results of one suite invocation
type SuiteSummary struct {
	Results       []*RunResult  `json:"results" yaml:"results"`
	StartTime     time.Time     `json:"start_time" yaml:"start_time"`
	EndTime       time.Time     `json:"end_time" yaml:"end_time"`
	TotalDuration time.Duration `json:"total_duration" yaml:"total_duration"`
}

// Orchestrator coordinates the execution of the benchmark suite
type Orchestrator struct {
	config  *configs.Config
	logger  logging.Logger
	metrics *MetricsCalculator
}

// NewOrchestrator creates a new suite orchestrator
func NewOrchestrator(config *configs.Config, logger logging.Logger) (*Orchestrator, error) {
	if config == nil {
		return nil, fmt.Errorf("orchestrator requires a configuration")
	}
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}

	return &Orchestrator{
		config:  config,
		logger:  logger,
		metrics: NewMetricsCalculator(logger),
	}, nil
}

// runnerFor maps a benchmark name to its configured runner. Every benchmark
// follows the same contract: generate input, run, return a numeric summary.
func (o *Orchestrator) runnerFor(name string) (Runner, error) {
	cfg := o.config

	switch name {
	case "fft":
		return func() (interface{}, error) {
			if cfg.FFT.WithStats {
				return spectral.RunWithStats(cfg.FFT.Size)
			}
			spectrum, err := spectral.Run(cfg.FFT.Size)
			if err != nil {
				return nil, err
			}
			// The spectrum itself is too large to report; summarize anyway
			return spectral.Analyze(spectrum), nil
		}, nil
	case "gradient":
		return func() (interface{}, error) {
			result, err := optimize.Run(cfg.Gradient.Params, cfg.Gradient.Iterations)
			if err != nil {
				return nil, err
			}
			// Drop the full parameter vector from the suite summary
			result.Params = nil
			return result, nil
		}, nil
	case "matmul":
		return func() (interface{}, error) {
			return matrix.Run(cfg.Matrix.Size)
		}, nil
	case "integration":
		return func() (interface{}, error) {
			return integrate.Run(cfg.Integration.Intervals)
		}, nil
	case "csv":
		return func() (interface{}, error) {
			return parsebench.RunCSV(cfg.CSV.SizeMB)
		}, nil
	case "json":
		return func() (interface{}, error) {
			return parsebench.RunJSON(cfg.JSON.SizeMB)
		}, nil
	default:
		return nil, fmt.Errorf("unknown benchmark: %s", name)
	}
}

// RunSuite executes every enabled benchmark with the configured warmup and
// repetition counts. Benchmarks run strictly sequentially; the context is
// only checked between repetitions since a single run cannot be interrupted.
func (o *Orchestrator) RunSuite(ctx context.Context) (*SuiteSummary, error) {
	startTime := time.Now()

	enabled := o.config.Suite.Enabled
	if len(enabled) == 0 {
		enabled = configs.BenchmarkNames
	}

	o.logger.Debug("Starting benchmark suite", logging.Fields{
		"benchmarks":  enabled,
		"repetitions": o.config.Suite.Repetitions,
		"warmup":      o.config.Suite.Warmup,
	})

	summary := &SuiteSummary{StartTime: startTime}

	for _, name := range enabled {
		result, err := o.RunBenchmark(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("benchmark %s failed: %w", name, err)
		}
		summary.Results = append(summary.Results, result)
	}

	summary.EndTime = time.Now()
	summary.TotalDuration = summary.EndTime.Sub(summary.StartTime)

	o.logger.Info("Benchmark suite finished", logging.Fields{
		"benchmarks":     len(summary.Results),
		"total_duration": summary.TotalDuration.Seconds(),
	})

	return summary, nil
}

// RunBenchmark executes a single named benchmark with warmup and repetitions
func (o *Orchestrator) RunBenchmark(ctx context.Context, name string) (*RunResult, error) {
	runner, err := o.runnerFor(name)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("Running benchmark", logging.Fields{
		"benchmark":   name,
		"repetitions": o.config.Suite.Repetitions,
	})

	for i := 0; i < o.config.Suite.Warmup; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, err := runner(); err != nil {
			return nil, err
		}
	}

	durations := make([]time.Duration, 0, o.config.Suite.Repetitions)
	var summary interface{}

	for i := 0; i < o.config.Suite.Repetitions; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		runStart := time.Now()
		result, err := runner()
		if err != nil {
			return nil, err
		}
		durations = append(durations, time.Since(runStart))

		// Deterministic benchmarks return the same summary every run
		summary = result
	}

	timing := o.metrics.CalculateDurationStats(durations)

	o.logger.Debug("Benchmark complete", logging.Fields{
		"benchmark": name,
		"mean_ms":   timing.Mean,
		"p95_ms":    timing.P95,
	})

	return &RunResult{
		Name:        name,
		Repetitions: len(durations),
		Summary:     summary,
		Timing:      timing,
	}, nil
}
