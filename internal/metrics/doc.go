// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry via promauto and are
exposed at /metrics in Prometheus text format:

	curl http://localhost:8501/metrics

# Available Metrics

HTTP Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)

Recommendation Metrics:
  - recommend_requests_total, recommend_unknown_titles_total (counters)
  - cache_hits_total, cache_misses_total, cache_entries
    Labels: cache_type ("recommend")

Poster Metrics:
  - poster_fetch_total: Lookups by outcome (ok, no_poster, http_status,
    bad_body, network_error, timeout, circuit_open, canceled)
  - poster_fetch_duration_seconds, poster_batch_size (histograms)
  - circuit_breaker_state, circuit_breaker_requests_total,
    circuit_breaker_state_transitions_total
    Labels: name ("tmdb")

Catalog Metrics:
  - catalog_movies, catalog_snapshot_version (gauges)
  - catalog_reloads_total (counter), Labels: result
  - catalog_load_duration_seconds (histogram), Labels: format

# Usage

	start := time.Now()
	// ... handle request ...
	metrics.RecordAPIRequest("GET", "/api/v1/recommendations", "200", time.Since(start))
*/
package metrics
