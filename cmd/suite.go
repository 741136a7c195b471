package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tunein/compute-benchmark-cli/configs"
	"github.com/tunein/compute-benchmark-cli/internal/benchmark"
	"github.com/tunein/compute-benchmark-cli/internal/output"
	"github.com/tunein/compute-benchmark-cli/pkg/logging"
)

var (
	suiteRepetitions int
	suiteWarmup      int
	suiteBenchmarks  []string
	suiteTimeout     time.Duration
)

// suiteCmd represents the suite command
var suiteCmd = &cobra.Command{
	Use:   "suite [flags] [benchmarks...]",
	Short: "Run the full benchmark suite",
	Long: `Run every enabled benchmark with warmup and repeated timed runs, and report
per-benchmark numeric summaries together with duration statistics.

Benchmarks can be selected by name as positional arguments; the default set
comes from the configuration.

Examples:
  # Run everything with the configured repetitions
  compute-benchmark suite

  # Only the numeric kernels, ten repetitions each
  compute-benchmark suite --repetitions 10 fft matmul

  # Machine-readable output
  compute-benchmark suite -o json`,
	RunE: runSuite,
}

func init() {
	rootCmd.AddCommand(suiteCmd)

	suiteCmd.Flags().IntVar(&suiteRepetitions, "repetitions", 0,
		"timed repetitions per benchmark (0 = configured default)")
	suiteCmd.Flags().IntVar(&suiteWarmup, "warmup", -1,
		"untimed warmup runs per benchmark (-1 = configured default)")
	suiteCmd.Flags().StringSliceVar(&suiteBenchmarks, "benchmarks", nil,
		"benchmarks to run (default: configured set)")
	suiteCmd.Flags().DurationVar(&suiteTimeout, "timeout", 30*time.Minute,
		"overall suite timeout")
}

func runSuite(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	config, err := configs.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Flag and positional overrides
	if suiteRepetitions > 0 {
		config.Suite.Repetitions = suiteRepetitions
	}
	if suiteWarmup >= 0 {
		config.Suite.Warmup = suiteWarmup
	}
	if len(suiteBenchmarks) > 0 {
		config.Suite.Enabled = suiteBenchmarks
	}
	if len(args) > 0 {
		config.Suite.Enabled = args
	}

	if err := configs.ValidateConfig(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Info("Starting benchmark suite", logging.Fields{
		"benchmarks":  config.Suite.Enabled,
		"repetitions": config.Suite.Repetitions,
		"warmup":      config.Suite.Warmup,
	})

	orchestrator, err := benchmark.NewOrchestrator(config, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), suiteTimeout)
	defer cancel()

	summary, err := orchestrator.RunSuite(ctx)
	if err != nil {
		return fmt.Errorf("suite failed: %w", err)
	}

	return renderSuiteSummary(summary)
}

func renderSuiteSummary(summary *benchmark.SuiteSummary) error {
	formatter, err := newFormatter()
	if err != nil {
		return err
	}

	format, _ := output.ParseFormat(viper.GetString("output_format"))
	if format == output.FormatJSON || format == output.FormatYAML {
		return formatter.Render("", summary, nil)
	}

	for _, result := range summary.Results {
		rows := []output.Row{
			{Name: "repetitions", Value: result.Repetitions},
			{Name: "mean_ms", Value: result.Timing.Mean},
			{Name: "median_ms", Value: result.Timing.Median},
			{Name: "p95_ms", Value: result.Timing.P95},
			{Name: "min_ms", Value: result.Timing.Min},
			{Name: "max_ms", Value: result.Timing.Max},
			{Name: "std_dev_ms", Value: result.Timing.StdDev},
		}

		if err := formatter.Render(result.Name, result, rows); err != nil {
			return err
		}
		fmt.Println()
	}

	fmt.Printf("total: %s across %d benchmarks\n",
		summary.TotalDuration.Round(time.Millisecond), len(summary.Results))

	return nil
}
