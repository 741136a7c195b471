package configs

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultsConfig(t *testing.T) *Config {
	t.Helper()

	v := viper.New()
	SetDefaults(v)

	config := &Config{}
	require.NoError(t, v.Unmarshal(config))
	return config
}

func TestDefaultsAreValid(t *testing.T) {
	config := defaultsConfig(t)

	assert.NoError(t, ValidateConfig(config))
	assert.Equal(t, "table", config.OutputFormat)
	assert.Equal(t, BenchmarkNames, config.Suite.Enabled)
	assert.Equal(t, 4096, config.FFT.Size)
}

func TestSetDefaultsKeepsExistingValues(t *testing.T) {
	v := viper.New()
	v.Set("fft.size", 1024)
	SetDefaults(v)

	assert.Equal(t, 1024, v.GetInt("fft.size"))
	assert.Equal(t, 256, v.GetInt("matrix.size"))
}

func TestValidateConfig(t *testing.T) {
	type test struct {
		name   string
		mutate func(*Config)
		valid  bool
	}

	tests := []test{
		{"defaults", func(c *Config) {}, true},
		{"zero repetitions", func(c *Config) { c.Suite.Repetitions = 0 }, false},
		{"negative warmup", func(c *Config) { c.Suite.Warmup = -1 }, false},
		{"fft size not power of two", func(c *Config) { c.FFT.Size = 100 }, false},
		{"fft size zero", func(c *Config) { c.FFT.Size = 0 }, false},
		{"single gradient param", func(c *Config) { c.Gradient.Params = 1 }, false},
		{"zero gradient iterations", func(c *Config) { c.Gradient.Iterations = 0 }, false},
		{"zero matrix size", func(c *Config) { c.Matrix.Size = 0 }, false},
		{"zero intervals", func(c *Config) { c.Integration.Intervals = 0 }, false},
		{"zero csv payload", func(c *Config) { c.CSV.SizeMB = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := defaultsConfig(t)
			tt.mutate(config)

			err := ValidateConfig(config)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
