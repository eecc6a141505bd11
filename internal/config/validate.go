// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

var validEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

var supportedCatalogExts = map[string]bool{
	".json":   true,
	".duckdb": true,
	".db":     true,
}

// Validate checks that configuration values are usable. Every problem is
// reported, joined into one error.
func (c *Config) Validate() error {
	return errors.Join(
		c.validateServer(),
		c.validateCatalog(),
		c.validateRecommend(),
		c.validateTMDB(),
		c.validateSecurity(),
		c.validateLogging(),
	)
}

// Warnings returns settings that are valid but risky. Production deployments
// get stricter advice than development ones.
func (c *Config) Warnings() []string {
	var warnings []string
	if c.TMDB.APIKey == "" {
		warnings = append(warnings, "TMDB_API_KEY is not set; every poster will be the placeholder")
	}
	if c.Server.IsProduction() {
		for _, origin := range c.Security.CORSOrigins {
			if origin == "*" {
				warnings = append(warnings, "CORS_ORIGINS allows every origin in production")
				break
			}
		}
		if c.Security.RateLimitDisabled {
			warnings = append(warnings, "DISABLE_RATE_LIMIT is set in production")
		}
		if c.Logging.Format != "json" {
			warnings = append(warnings, "LOG_FORMAT should be json in production")
		}
	}
	return warnings
}

func (c *Config) validateServer() error {
	var errs []error
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("HTTP_PORT must be between 1 and 65535"))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive"))
	}
	if !validEnvironments[c.Server.Environment] {
		errs = append(errs, fmt.Errorf("ENVIRONMENT must be one of: development, staging, production"))
	}
	return errors.Join(errs...)
}

func (c *Config) validateCatalog() error {
	var errs []error
	if c.Catalog.Path == "" {
		errs = append(errs, fmt.Errorf("CATALOG_PATH is required"))
	} else if ext := strings.ToLower(filepath.Ext(c.Catalog.Path)); !supportedCatalogExts[ext] {
		errs = append(errs, fmt.Errorf("CATALOG_PATH must end in .json, .duckdb or .db, got %q", ext))
	}
	if c.Catalog.Watch && c.Catalog.Debounce <= 0 {
		errs = append(errs, fmt.Errorf("CATALOG_DEBOUNCE must be positive when CATALOG_WATCH=true"))
	}
	return errors.Join(errs...)
}

func (c *Config) validateRecommend() error {
	var errs []error
	if c.Recommend.Limit < 1 {
		errs = append(errs, fmt.Errorf("RECOMMEND_LIMIT must be at least 1"))
	}
	if c.Recommend.CacheSize < 1 {
		errs = append(errs, fmt.Errorf("RECOMMEND_CACHE_SIZE must be at least 1"))
	}
	if c.Recommend.CacheTTL < 0 {
		errs = append(errs, fmt.Errorf("RECOMMEND_CACHE_TTL must not be negative"))
	}
	return errors.Join(errs...)
}

func (c *Config) validateTMDB() error {
	t := c.TMDB
	var errs []error

	for name, raw := range map[string]string{
		"TMDB_BASE_URL":        t.BaseURL,
		"TMDB_IMAGE_BASE_URL":  t.ImageBaseURL,
		"TMDB_PLACEHOLDER_URL": t.PlaceholderURL,
	} {
		if err := validateHTTPURL(raw); err != nil {
			errs = append(errs, fmt.Errorf("%s is invalid: %w", name, err))
		}
	}
	if t.ImageSize == "" {
		errs = append(errs, fmt.Errorf("TMDB_IMAGE_SIZE is required"))
	}
	if t.RequestDelay < 0 {
		errs = append(errs, fmt.Errorf("TMDB_REQUEST_DELAY must not be negative"))
	}
	if t.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("TMDB_REQUEST_TIMEOUT must be positive"))
	}
	if t.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("TMDB_RATE_LIMIT must not be negative"))
	}
	if t.RateLimit > 0 && t.RateBurst < 1 {
		errs = append(errs, fmt.Errorf("TMDB_RATE_BURST must be at least 1 when TMDB_RATE_LIMIT is set"))
	}
	if t.MaxConcurrency < 0 {
		errs = append(errs, fmt.Errorf("TMDB_MAX_CONCURRENCY must not be negative"))
	}
	if t.Breaker.Enabled {
		if t.Breaker.FailureRatio <= 0 || t.Breaker.FailureRatio > 1 {
			errs = append(errs, fmt.Errorf("TMDB_BREAKER_FAILURE_RATIO must be in (0, 1]"))
		}
		if t.Breaker.Timeout <= 0 {
			errs = append(errs, fmt.Errorf("TMDB_BREAKER_TIMEOUT must be positive"))
		}
		if int(t.Breaker.MaxRequests) < c.Recommend.Limit {
			errs = append(errs, fmt.Errorf("TMDB_BREAKER_MAX_REQUESTS (%d) must be at least RECOMMEND_LIMIT (%d)",
				t.Breaker.MaxRequests, c.Recommend.Limit))
		}
	}
	return errors.Join(errs...)
}

func (c *Config) validateSecurity() error {
	var errs []error
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			errs = append(errs, fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1"))
		}
		if c.Security.RateLimitWindow <= 0 {
			errs = append(errs, fmt.Errorf("RATE_LIMIT_WINDOW must be positive"))
		}
	}
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			continue
		}
		if err := validateHTTPURL(origin); err != nil {
			errs = append(errs, fmt.Errorf("CORS_ORIGINS entry %q is invalid: %w", origin, err))
		}
	}
	return errors.Join(errs...)
}

func (c *Config) validateLogging() error {
	var errs []error
	if !validLogLevels[c.Logging.Level] {
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error"))
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of: json, console"))
	}
	return errors.Join(errs...)
}

func validateHTTPURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("must not be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https")
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}
