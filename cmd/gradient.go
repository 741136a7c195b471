package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tunein/compute-benchmark-cli/internal/output"
	"github.com/tunein/compute-benchmark-cli/pkg/logging"
	"github.com/tunein/compute-benchmark-cli/pkg/optimize"
)

var (
	gradientParams     int
	gradientIterations int
)

// gradientCmd represents the gradient descent benchmark command
var gradientCmd = &cobra.Command{
	Use:   "gradient",
	Short: "Run the gradient descent optimizer benchmark",
	Long: `Run the optimizer benchmark: minimize the n-dimensional Rosenbrock function
with fixed-step gradient descent from a seeded random starting point.

The learning rate adapts to the parameter count as 0.001/sqrt(n). A
convergence rate of 1.0 means the optimizer reached the global minimum.

Examples:
  # Run with defaults
  compute-benchmark gradient

  # Heavier problem
  compute-benchmark gradient --params 500 --iterations 10000`,
	RunE: runGradient,
}

func init() {
	rootCmd.AddCommand(gradientCmd)

	gradientCmd.Flags().IntVar(&gradientParams, "params", 100,
		"number of optimization parameters")
	gradientCmd.Flags().IntVar(&gradientIterations, "iterations", 1000,
		"number of gradient descent iterations")
}

func runGradient(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	logger.Debug("Running optimizer benchmark", logging.Fields{
		"params":     gradientParams,
		"iterations": gradientIterations,
	})

	result, err := optimize.Run(gradientParams, gradientIterations)
	if err != nil {
		return fmt.Errorf("optimizer benchmark failed: %w", err)
	}

	formatter, err := newFormatter()
	if err != nil {
		return err
	}

	// The full parameter vector stays out of the report
	result.Params = nil

	return formatter.Render("Gradient Descent", result, []output.Row{
		{Name: "params", Value: gradientParams},
		{Name: "iterations", Value: gradientIterations},
		{Name: "final_cost", Value: result.FinalCost},
		{Name: "convergence_rate", Value: result.ConvergenceRate},
		{Name: "avg_param", Value: result.AvgParam},
	})
}
