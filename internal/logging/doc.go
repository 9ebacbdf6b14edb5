// Package logging provides structured logging using uber/zap.
//
// Two modes are supported:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Request logging uses the field helpers in this package so that every
// entry for one call carries the same keys (verb, url, status, request_id).
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Debug("request finished", logging.Verb("GET"), logging.Status(200))
package logging
