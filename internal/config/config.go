package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/GriffinCanCode/jsonfetch/internal/logging"
	"github.com/GriffinCanCode/jsonfetch/transport"
)

// Config holds all CLI configuration.
type Config struct {
	Transport TransportConfig
	Logging   LogConfig
	Metrics   MetricsConfig
}

// TransportConfig holds settings for the default fetcher.
type TransportConfig struct {
	Timeout        time.Duration `envconfig:"JSONFETCH_TIMEOUT" default:"30s"`
	UserAgent      string        `envconfig:"JSONFETCH_USER_AGENT" default:"jsonfetch/1.0"`
	RateLimitRPS   float64       `envconfig:"JSONFETCH_RATE_LIMIT_RPS" default:"0"`
	RateLimitBurst int           `envconfig:"JSONFETCH_RATE_LIMIT_BURST" default:"1"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	Enabled bool `envconfig:"METRICS_ENABLED" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Transport: TransportConfig{
			Timeout:        30 * time.Second,
			UserAgent:      "jsonfetch/1.0",
			RateLimitRPS:   0,
			RateLimitBurst: 1,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Metrics: MetricsConfig{
			Enabled: false,
		},
	}
}

// FetcherConfig converts the transport section into fetcher settings.
func (c *Config) FetcherConfig() transport.Config {
	return transport.Config{
		Timeout:   c.Transport.Timeout,
		UserAgent: c.Transport.UserAgent,
		RateLimit: c.Transport.RateLimitRPS,
		Burst:     c.Transport.RateLimitBurst,
	}
}

// LoggerConfig converts the logging section into logger settings.
func (c *Config) LoggerConfig() logging.Config {
	if c.Logging.Development {
		cfg := logging.DevelopmentConfig()
		cfg.Level = c.Logging.Level
		return cfg
	}
	cfg := logging.DefaultConfig()
	cfg.Level = c.Logging.Level
	return cfg
}
