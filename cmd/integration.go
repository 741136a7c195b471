package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tunein/compute-benchmark-cli/internal/output"
	"github.com/tunein/compute-benchmark-cli/pkg/integrate"
	"github.com/tunein/compute-benchmark-cli/pkg/logging"
)

var integrationIntervals int

// integrationCmd represents the numerical integration benchmark command
var integrationCmd = &cobra.Command{
	Use:   "integration",
	Short: "Run the numerical integration benchmark",
	Long: `Run the integration benchmark: integrate (x+1)^2 over [0,1] with both the
trapezoidal rule and Simpson's rule, and report each result against the
analytical value 7/3.

Examples:
  # Run with the default interval count
  compute-benchmark integration

  # Finer grid
  compute-benchmark integration --intervals 10000000`,
	RunE: runIntegration,
}

func init() {
	rootCmd.AddCommand(integrationCmd)

	integrationCmd.Flags().IntVar(&integrationIntervals, "intervals", 1000000,
		"number of integration intervals")
}

func runIntegration(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	logger.Debug("Running integration benchmark", logging.Fields{
		"intervals": integrationIntervals,
	})

	result, err := integrate.Run(integrationIntervals)
	if err != nil {
		return fmt.Errorf("integration benchmark failed: %w", err)
	}

	formatter, err := newFormatter()
	if err != nil {
		return err
	}

	return formatter.Render("Numerical Integration", result, []output.Row{
		{Name: "intervals", Value: integrationIntervals},
		{Name: "trapezoidal", Value: result.Trapezoidal},
		{Name: "simpson", Value: result.Simpson},
		{Name: "analytical", Value: result.Analytical},
		{Name: "trapezoidal_error", Value: result.TrapezoidalError},
		{Name: "simpson_error", Value: result.SimpsonError},
	})
}
