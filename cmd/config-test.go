package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tunein/compute-benchmark-cli/configs"
)

// configTestCmd represents the config test command
var configTestCmd = &cobra.Command{
	Use:   "config-test",
	Short: "Test and display all configuration values",
	Long: `Test configuration loading and display all values to verify proper parsing.

Examples:
  # Test with default config file
  compute-benchmark config-test

  # Test with specific config file
  compute-benchmark --config /path/to/config.yaml config-test`,
	RunE: runConfigTest,
}

func init() {
	rootCmd.AddCommand(configTestCmd)
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	fmt.Println("COMPUTE BENCHMARK CONFIGURATION TEST")
	fmt.Println(strings.Repeat("=", 60))

	config, err := configs.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	printSection("APPLICATION SETTINGS")
	printKeyValue("Verbose", fmt.Sprintf("%t", config.Verbose))
	printKeyValue("Log Level", config.LogLevel)
	printKeyValue("Output Format", config.OutputFormat)

	printSection("SUITE CONFIGURATION")
	printKeyValue("Repetitions", fmt.Sprintf("%d", config.Suite.Repetitions))
	printKeyValue("Warmup", fmt.Sprintf("%d", config.Suite.Warmup))
	printKeyValue("Enabled", strings.Join(config.Suite.Enabled, ", "))

	printSection("BENCHMARK PARAMETERS")
	printKeyValue("FFT Size", fmt.Sprintf("%d", config.FFT.Size))
	printKeyValue("FFT With Stats", fmt.Sprintf("%t", config.FFT.WithStats))
	printKeyValue("Gradient Params", fmt.Sprintf("%d", config.Gradient.Params))
	printKeyValue("Gradient Iterations", fmt.Sprintf("%d", config.Gradient.Iterations))
	printKeyValue("Matrix Size", fmt.Sprintf("%d", config.Matrix.Size))
	printKeyValue("Integration Intervals", fmt.Sprintf("%d", config.Integration.Intervals))
	printKeyValue("CSV Payload", fmt.Sprintf("%d MB", config.CSV.SizeMB))
	printKeyValue("JSON Payload", fmt.Sprintf("%d MB", config.JSON.SizeMB))

	printSection("OUTPUT CONFIGURATION")
	printKeyValue("Precision", fmt.Sprintf("%d", config.Output.Precision))
	printKeyValue("Timestamps", fmt.Sprintf("%t", config.Output.Timestamps))

	fmt.Println()
	if err := configs.ValidateConfig(config); err != nil {
		fmt.Printf("VALIDATION: FAILED (%v)\n", err)
		return err
	}
	fmt.Println("VALIDATION: OK")

	return nil
}

func printSection(name string) {
	fmt.Printf("\n%s\n%s\n", name, strings.Repeat("-", len(name)))
}

func printKeyValue(key, value string) {
	fmt.Printf("  %-24s %s\n", key, value)
}
