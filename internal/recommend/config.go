// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"fmt"
	"time"

	"github.com/tomtom215/reelmatch/internal/cache"
)

// DefaultLimit is the number of recommendations returned per title.
const DefaultLimit = 20

// Config contains configuration for the recommendation engine.
type Config struct {
	// Limit is the maximum number of recommendations per query.
	Limit int `json:"limit"`

	// CacheSize bounds the number of memoized results.
	CacheSize int `json:"cache_size"`

	// CacheTTL expires memoized results. Zero keeps them until eviction
	// or the next catalog reload.
	CacheTTL time.Duration `json:"cache_ttl"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Limit:     DefaultLimit,
		CacheSize: cache.DefaultCapacity,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Limit < 1 {
		return fmt.Errorf("limit must be positive, got %d", c.Limit)
	}
	if c.CacheSize < 1 {
		return fmt.Errorf("cache_size must be positive, got %d", c.CacheSize)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must be non-negative, got %v", c.CacheTTL)
	}
	return nil
}
