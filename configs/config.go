package configs

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	// Application settings
	Verbose      bool   `mapstructure:"verbose"`
	LogLevel     string `mapstructure:"log_level"`
	OutputFormat string `mapstructure:"output_format"`

	// Suite execution settings
	Suite SuiteConfig `mapstructure:"suite"`

	// Per-benchmark settings
	FFT         FFTConfig         `mapstructure:"fft"`
	Gradient    GradientConfig    `mapstructure:"gradient"`
	Matrix      MatrixConfig      `mapstructure:"matrix"`
	Integration IntegrationConfig `mapstructure:"integration"`
	CSV         ParseConfig       `mapstructure:"csv"`
	JSON        ParseConfig       `mapstructure:"json"`

	// Output configuration
	Output OutputConfig `mapstructure:"output"`
}

// SuiteConfig contains suite execution settings
type SuiteConfig struct {
	Repetitions int      `mapstructure:"repetitions"`
	Warmup      int      `mapstructure:"warmup"`
	Enabled     []string `mapstructure:"enabled"`
}

// FFTConfig contains spectral transform benchmark settings
type FFTConfig struct {
	Size      int  `mapstructure:"size"`
	WithStats bool `mapstructure:"with_stats"`
}

// GradientConfig contains optimizer benchmark settings
type GradientConfig struct {
	Params     int `mapstructure:"params"`
	Iterations int `mapstructure:"iterations"`
}

// MatrixConfig contains matrix product benchmark settings
type MatrixConfig struct {
	Size int `mapstructure:"size"`
}

// IntegrationConfig contains numerical integration benchmark settings
type IntegrationConfig struct {
	Intervals int `mapstructure:"intervals"`
}

// ParseConfig contains text parser benchmark settings
type ParseConfig struct {
	SizeMB int `mapstructure:"size_mb"`
}

// OutputConfig contains output formatting settings
type OutputConfig struct {
	Precision  int  `mapstructure:"precision"`
	Timestamps bool `mapstructure:"timestamps"`
}

// LoadConfig loads configuration from viper
func LoadConfig() (*Config, error) {
	config := &Config{}

	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	return config, nil
}

// ValidateConfig validates the configuration
func ValidateConfig(config *Config) error {
	if config.Suite.Repetitions <= 0 {
		return fmt.Errorf("suite repetitions must be positive")
	}

	if config.Suite.Warmup < 0 {
		return fmt.Errorf("suite warmup cannot be negative")
	}

	if config.FFT.Size <= 0 || config.FFT.Size&(config.FFT.Size-1) != 0 {
		return fmt.Errorf("fft size must be a positive power of two")
	}

	if config.Gradient.Params <= 1 {
		return fmt.Errorf("gradient params must be greater than one")
	}

	if config.Gradient.Iterations <= 0 {
		return fmt.Errorf("gradient iterations must be positive")
	}

	if config.Matrix.Size <= 0 {
		return fmt.Errorf("matrix size must be positive")
	}

	if config.Integration.Intervals <= 0 {
		return fmt.Errorf("integration intervals must be positive")
	}

	if config.CSV.SizeMB <= 0 || config.JSON.SizeMB <= 0 {
		return fmt.Errorf("parser payload size must be positive")
	}

	return nil
}
