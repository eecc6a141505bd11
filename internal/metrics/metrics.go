// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for:
// - API endpoint latency and throughput
// - Recommendation lookups and memo cache efficiency
// - Poster fetch outcomes and circuit breaker state
// - Catalog snapshot reloads

// Poster fetch outcomes
const (
	PosterOutcomeOK          = "ok"
	PosterOutcomeNoPoster    = "no_poster"
	PosterOutcomeHTTPStatus  = "http_status"
	PosterOutcomeBadBody     = "bad_body"
	PosterOutcomeNetwork     = "network_error"
	PosterOutcomeTimeout     = "timeout"
	PosterOutcomeCircuitOpen = "circuit_open"
	PosterOutcomeCanceled    = "canceled"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}, // Poster batches dominate
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation lookups",
		},
	)

	RecommendUnknownTitles = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_unknown_titles_total",
			Help: "Total number of lookups for titles absent from the catalog",
		},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cache entries",
		},
		[]string{"cache_type"},
	)

	// Poster Fetch Metrics
	PosterFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poster_fetch_total",
			Help: "Total number of poster lookups by outcome",
		},
		[]string{"outcome"},
	)

	PosterFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "poster_fetch_duration_seconds",
			Help:    "Duration of a single poster lookup including the courtesy delay",
			Buckets: []float64{0.1, 0.25, 0.5, 0.75, 1, 2.5, 5, 7.5, 10},
		},
	)

	PosterBatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "poster_batch_size",
			Help:    "Number of ids per poster batch",
			Buckets: []float64{1, 5, 10, 20, 50, 100},
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Catalog Metrics
	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_movies",
			Help: "Number of movies in the current catalog snapshot",
		},
	)

	CatalogVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_snapshot_version",
			Help: "Version of the current catalog snapshot",
		},
	)

	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_reloads_total",
			Help: "Total number of catalog reload attempts",
		},
		[]string{"result"}, // "success", "failure"
	)

	CatalogLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_load_duration_seconds",
			Help:    "Duration of catalog artifact loads",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"format"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one recommendation lookup.
func RecordRecommendation(cacheHit, unknown bool) {
	RecommendRequests.Inc()
	if cacheHit {
		CacheHits.WithLabelValues("recommend").Inc()
	} else {
		CacheMisses.WithLabelValues("recommend").Inc()
	}
	if unknown {
		RecommendUnknownTitles.Inc()
	}
}

// UpdateCacheSize sets the entry gauge for a cache.
func UpdateCacheSize(cacheType string, size int) {
	CacheSize.WithLabelValues(cacheType).Set(float64(size))
}

// RecordPosterFetch records the outcome of a single poster lookup.
func RecordPosterFetch(outcome string, duration time.Duration) {
	PosterFetchTotal.WithLabelValues(outcome).Inc()
	PosterFetchDuration.Observe(duration.Seconds())
}

// RecordCatalogLoad records a catalog artifact load attempt.
func RecordCatalogLoad(format string, duration time.Duration, err error) {
	CatalogLoadDuration.WithLabelValues(format).Observe(duration.Seconds())
	if err != nil {
		CatalogReloads.WithLabelValues("failure").Inc()
		return
	}
	CatalogReloads.WithLabelValues("success").Inc()
}

// UpdateCatalogSnapshot publishes the size and version of the live snapshot.
func UpdateCatalogSnapshot(movies int, version uint64) {
	CatalogMovies.Set(float64(movies))
	CatalogVersion.Set(float64(version))
}
