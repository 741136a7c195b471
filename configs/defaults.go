package configs

import (
	"github.com/spf13/viper"
)

// BenchmarkNames lists every benchmark the suite knows, in execution order.
var BenchmarkNames = []string{"fft", "gradient", "matmul", "integration", "csv", "json"}

// SetDefaults sets default configuration values for all components
func SetDefaults(v *viper.Viper) {
	// Application defaults
	if !v.IsSet("verbose") {
		v.Set("verbose", false)
	}
	if !v.IsSet("log_level") {
		v.Set("log_level", "info")
	}
	if !v.IsSet("output_format") {
		v.Set("output_format", "table")
	}

	// Suite defaults
	if !v.IsSet("suite.repetitions") {
		v.Set("suite.repetitions", 5)
	}
	if !v.IsSet("suite.warmup") {
		v.Set("suite.warmup", 1)
	}
	if !v.IsSet("suite.enabled") {
		v.Set("suite.enabled", BenchmarkNames)
	}

	// Spectral transform defaults
	if !v.IsSet("fft.size") {
		v.Set("fft.size", 4096)
	}
	if !v.IsSet("fft.with_stats") {
		v.Set("fft.with_stats", true)
	}

	// Optimizer defaults
	if !v.IsSet("gradient.params") {
		v.Set("gradient.params", 100)
	}
	if !v.IsSet("gradient.iterations") {
		v.Set("gradient.iterations", 1000)
	}

	// Matrix product defaults
	if !v.IsSet("matrix.size") {
		v.Set("matrix.size", 256)
	}

	// Integration defaults
	if !v.IsSet("integration.intervals") {
		v.Set("integration.intervals", 1000000)
	}

	// Parser defaults
	if !v.IsSet("csv.size_mb") {
		v.Set("csv.size_mb", 5)
	}
	if !v.IsSet("json.size_mb") {
		v.Set("json.size_mb", 5)
	}

	// Output defaults
	if !v.IsSet("output.precision") {
		v.Set("output.precision", 6)
	}
	if !v.IsSet("output.timestamps") {
		v.Set("output.timestamps", true)
	}
}
