/*
Package monitoring provides Prometheus metrics for outbound JSON requests.

# Overview

Every call made through the client is counted by verb and outcome and timed.
The outcome label is the numeric HTTP status ("200", "404") or "error" when
the fetcher failed before a status was received.

# Metrics

  - jsonfetch_requests_total{verb,status}
  - jsonfetch_request_duration_seconds{verb}
  - jsonfetch_requests_in_flight

# Usage

	reg := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(reg)

	done := metrics.Begin("GET")
	// ... perform request ...
	done("200")

Expose them via the standard Prometheus handler:

	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
*/
package monitoring
