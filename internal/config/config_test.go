package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"JSONFETCH_TIMEOUT",
	"JSONFETCH_USER_AGENT",
	"JSONFETCH_RATE_LIMIT_RPS",
	"JSONFETCH_RATE_LIMIT_BURST",
	"LOG_LEVEL",
	"LOG_DEV",
	"METRICS_ENABLED",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		if value, ok := os.LookupEnv(key); ok {
			require.NoError(t, os.Unsetenv(key))
			t.Cleanup(func() { os.Setenv(key, value) })
		}
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	// Transport config
	assert.Equal(t, 30*time.Second, cfg.Transport.Timeout)
	assert.Equal(t, "jsonfetch/1.0", cfg.Transport.UserAgent)
	assert.Equal(t, 0.0, cfg.Transport.RateLimitRPS)
	assert.Equal(t, 1, cfg.Transport.RateLimitBurst)

	// Logging config
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	// Metrics config
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadMatchesDefault(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, Default(), LoadOrDefault())
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	clearEnv(t)

	envVars := map[string]string{
		"JSONFETCH_TIMEOUT":          "5s",
		"JSONFETCH_USER_AGENT":       "probe/2",
		"JSONFETCH_RATE_LIMIT_RPS":   "2.5",
		"JSONFETCH_RATE_LIMIT_BURST": "4",
		"LOG_LEVEL":                  "debug",
		"LOG_DEV":                    "true",
		"METRICS_ENABLED":            "true",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Transport.Timeout)
	assert.Equal(t, "probe/2", cfg.Transport.UserAgent)
	assert.Equal(t, 2.5, cfg.Transport.RateLimitRPS)
	assert.Equal(t, 4, cfg.Transport.RateLimitBurst)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadWithInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad duration", "JSONFETCH_TIMEOUT", "soon"},
		{"bad float", "JSONFETCH_RATE_LIMIT_RPS", "fast"},
		{"bad bool", "LOG_DEV", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "failed to load config")

			assert.Equal(t, Default(), LoadOrDefault())
		})
	}
}

func TestConversions(t *testing.T) {
	cfg := Default()
	cfg.Transport.RateLimitRPS = 3
	cfg.Transport.RateLimitBurst = 6

	fetcher := cfg.FetcherConfig()
	assert.Equal(t, 30*time.Second, fetcher.Timeout)
	assert.Equal(t, "jsonfetch/1.0", fetcher.UserAgent)
	assert.Equal(t, 3.0, fetcher.RateLimit)
	assert.Equal(t, 6, fetcher.Burst)

	logCfg := cfg.LoggerConfig()
	assert.Equal(t, "info", logCfg.Level)
	assert.False(t, logCfg.Development)

	cfg.Logging.Development = true
	cfg.Logging.Level = "warn"
	logCfg = cfg.LoggerConfig()
	assert.Equal(t, "warn", logCfg.Level)
	assert.True(t, logCfg.Development)
}
