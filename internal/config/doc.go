// Package config provides 12-factor configuration for the jsonfetch CLI.
//
// Configuration is loaded from environment variables with sensible defaults.
// CLI flags can override environment variables. The library packages never
// read the environment; only cmd/jsonfetch calls Load.
//
// Configuration Sections:
//   - Transport: default fetcher settings (timeout, user agent, rate limit)
//   - Logging: Log level and output format
//   - Metrics: Prometheus collection toggle
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fetcher := transport.NewResty(cfg.FetcherConfig())
//
// Environment Variables:
//   - JSONFETCH_TIMEOUT, JSONFETCH_USER_AGENT
//   - JSONFETCH_RATE_LIMIT_RPS, JSONFETCH_RATE_LIMIT_BURST
//   - LOG_LEVEL, LOG_DEV
//   - METRICS_ENABLED
package config
