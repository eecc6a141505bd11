// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import "time"

// Config holds all application configuration.
//
// Configuration Sources (in order of precedence, highest first):
//  1. Environment variables (including values from a .env file)
//  2. YAML config file (config.yaml, or CONFIG_PATH)
//  3. Built-in defaults
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	TMDB      TMDBConfig      `koanf:"tmdb"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development", "staging", "production"
}

// CatalogConfig describes the precomputed catalog artifact.
//
// Environment Variables:
//   - CATALOG_PATH: artifact path, .json or .duckdb/.db (default: data/catalog.json)
//   - CATALOG_WATCH: reload the artifact when it changes on disk (default: false)
//   - CATALOG_DEBOUNCE: quiet period before a reload (default: 500ms)
type CatalogConfig struct {
	Path     string        `koanf:"path"`
	Watch    bool          `koanf:"watch"`
	Debounce time.Duration `koanf:"debounce"`
}

// RecommendConfig tunes the recommendation engine.
type RecommendConfig struct {
	// Limit is the maximum number of recommendations per title.
	Limit int `koanf:"limit"`

	// CacheSize bounds the number of memoized titles.
	CacheSize int `koanf:"cache_size"`

	// CacheTTL expires memoized results; 0 keeps them until the catalog reloads.
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// TMDBConfig holds The Movie Database poster lookup settings.
//
// Environment Variables:
//   - TMDB_API_KEY: API key (required for real posters; never commit it)
//   - TMDB_BASE_URL: movie endpoint base (default: https://api.themoviedb.org/3/movie)
//   - TMDB_IMAGE_BASE_URL, TMDB_IMAGE_SIZE: poster URL parts (default: https://image.tmdb.org/t/p, w500)
//   - TMDB_PLACEHOLDER_URL: fallback image (default: https://via.placeholder.com/150)
//   - TMDB_REQUEST_DELAY: courtesy delay per request (default: 500ms)
//   - TMDB_REQUEST_TIMEOUT: per-request timeout (default: 5s)
//   - TMDB_RATE_LIMIT, TMDB_RATE_BURST: shared requests/second limit, 0 disables (default: 0)
//   - TMDB_MAX_CONCURRENCY: in-flight requests per batch, 0 is unbounded (default: 0)
type TMDBConfig struct {
	APIKey         string        `koanf:"api_key"`
	BaseURL        string        `koanf:"base_url"`
	ImageBaseURL   string        `koanf:"image_base_url"`
	ImageSize      string        `koanf:"image_size"`
	PlaceholderURL string        `koanf:"placeholder_url"`
	RequestDelay   time.Duration `koanf:"request_delay"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
	RateLimit      float64       `koanf:"rate_limit"`
	RateBurst      int           `koanf:"rate_burst"`
	MaxConcurrency int           `koanf:"max_concurrency"`
	Breaker        BreakerConfig `koanf:"breaker"`
}

// BreakerConfig holds circuit breaker settings for the TMDB client.
//
// While half-open the breaker admits MaxRequests lookups and rejects the
// rest with the placeholder. A recommendation batch issues up to
// RECOMMEND_LIMIT lookups at once, so MaxRequests must be at least that
// large or a recovered TMDB still yields placeholders for part of the batch.
//
// Environment Variables:
//   - TMDB_BREAKER_ENABLED (default: true)
//   - TMDB_BREAKER_MAX_REQUESTS: half-open probes, >= RECOMMEND_LIMIT (default: 20)
//   - TMDB_BREAKER_MIN_REQUESTS, TMDB_BREAKER_FAILURE_RATIO: trip condition (default: 10, 0.6)
//   - TMDB_BREAKER_INTERVAL, TMDB_BREAKER_TIMEOUT (default: 1m, 2m)
type BreakerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	MaxRequests  uint32        `koanf:"max_requests"` // probes allowed while half-open
	Interval     time.Duration `koanf:"interval"`     // closed-state counter reset period
	Timeout      time.Duration `koanf:"timeout"`      // open-state duration before half-open
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// SecurityConfig holds CORS and rate limiting settings for the HTTP API
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return joinHostPort(s.Host, s.Port)
}

// IsProduction reports whether the server runs in production mode.
func (s ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}
