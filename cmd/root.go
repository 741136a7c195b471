package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tunein/compute-benchmark-cli/configs"
	"github.com/tunein/compute-benchmark-cli/internal/output"
	"github.com/tunein/compute-benchmark-cli/pkg/logging"
)

var (
	configFile   string
	verbose      bool
	logLevel     string
	outputFormat string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "compute-benchmark",
	Short: "Numeric compute benchmark suite",
	Long: `A suite of standalone numeric micro-benchmarks for measuring raw compute
throughput against reference implementations in other languages.

Each benchmark is self-contained and follows the same contract: generate a
deterministic synthetic input, run the workload, and reduce the output to a
small numeric summary.

Available benchmarks:
- fft          spectral transform (radix-2 FFT) with spectral statistics
- gradient     gradient-descent optimization of the Rosenbrock function
- matmul       dense matrix product with checksum validation
- integration  trapezoidal and Simpson numerical integration
- csv          delimited-text generation and parsing
- json         structured-text generation and parsing`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default is $HOME/.config/compute-benchmark/compute-benchmark.yaml)")

	// Output and logging flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table",
		"output format (table, json, csv, yaml)")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("output_format", rootCmd.PersistentFlags().Lookup("output"))
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if configFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}

		// Search config in home directory and /etc
		viper.AddConfigPath(home)
		viper.AddConfigPath(filepath.Join(home, ".config", "compute-benchmark"))
		viper.AddConfigPath("/etc/compute-benchmark")
		viper.AddConfigPath("./configs")
		viper.SetConfigName("compute-benchmark")
		viper.SetConfigType("yaml")
	}

	// Environment variable support
	viper.SetEnvPrefix("COMPUTE_BENCHMARK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	configs.SetDefaults(viper.GetViper())

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
		}
	}
}

// initializeConfig initializes configuration after flags are parsed
func initializeConfig(cmd *cobra.Command) error {
	return bindFlags(cmd, viper.GetViper())
}

// bindFlags binds each cobra flag to its associated viper configuration
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var lastErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				lastErr = err
			}
		}

		if err := v.BindPFlag(f.Name, f); err != nil {
			lastErr = err
		}

		if err := v.BindEnv(f.Name, "COMPUTE_BENCHMARK_"+envVarSuffix); err != nil {
			lastErr = err
		}
	})

	return lastErr
}

// newLogger builds the logger shared by all subcommands from global flags
func newLogger() logging.Logger {
	level := viper.GetString("log_level")
	if viper.GetBool("verbose") {
		level = "debug"
	}
	return logging.NewLogger(level)
}

// newFormatter builds the result formatter from global flags
func newFormatter() (*output.Formatter, error) {
	return output.NewFormatter(
		viper.GetString("output_format"),
		viper.GetInt("output.precision"),
		os.Stdout,
	)
}
