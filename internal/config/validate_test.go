// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "HTTP_PORT",
		},
		{
			name:    "unknown environment",
			mutate:  func(c *Config) { c.Server.Environment = "qa" },
			wantErr: "ENVIRONMENT",
		},
		{
			name:    "missing catalog path",
			mutate:  func(c *Config) { c.Catalog.Path = "" },
			wantErr: "CATALOG_PATH is required",
		},
		{
			name:    "unsupported catalog extension",
			mutate:  func(c *Config) { c.Catalog.Path = "movie_data.pkl" },
			wantErr: ".pkl",
		},
		{
			name:   "duckdb catalog accepted",
			mutate: func(c *Config) { c.Catalog.Path = "/data/catalog.DUCKDB" },
		},
		{
			name: "watch without debounce",
			mutate: func(c *Config) {
				c.Catalog.Watch = true
				c.Catalog.Debounce = 0
			},
			wantErr: "CATALOG_DEBOUNCE",
		},
		{
			name:    "zero limit",
			mutate:  func(c *Config) { c.Recommend.Limit = 0 },
			wantErr: "RECOMMEND_LIMIT",
		},
		{
			name:    "bad tmdb base url",
			mutate:  func(c *Config) { c.TMDB.BaseURL = "ftp://tmdb" },
			wantErr: "TMDB_BASE_URL",
		},
		{
			name:    "zero request timeout",
			mutate:  func(c *Config) { c.TMDB.RequestTimeout = 0 },
			wantErr: "TMDB_REQUEST_TIMEOUT",
		},
		{
			name:    "negative delay",
			mutate:  func(c *Config) { c.TMDB.RequestDelay = -time.Second },
			wantErr: "TMDB_REQUEST_DELAY",
		},
		{
			name: "rate limit without burst",
			mutate: func(c *Config) {
				c.TMDB.RateLimit = 5
				c.TMDB.RateBurst = 0
			},
			wantErr: "TMDB_RATE_BURST",
		},
		{
			name:    "breaker ratio out of range",
			mutate:  func(c *Config) { c.TMDB.Breaker.FailureRatio = 1.5 },
			wantErr: "TMDB_BREAKER_FAILURE_RATIO",
		},
		{
			name:    "breaker half-open admits fewer than recommend limit",
			mutate:  func(c *Config) { c.TMDB.Breaker.MaxRequests = 3 },
			wantErr: "TMDB_BREAKER_MAX_REQUESTS (3) must be at least RECOMMEND_LIMIT (20)",
		},
		{
			name: "breaker half-open covers a smaller recommend limit",
			mutate: func(c *Config) {
				c.Recommend.Limit = 5
				c.TMDB.Breaker.MaxRequests = 5
			},
		},
		{
			name: "breaker settings ignored when disabled",
			mutate: func(c *Config) {
				c.TMDB.Breaker.Enabled = false
				c.TMDB.Breaker.FailureRatio = 0
				c.TMDB.Breaker.MaxRequests = 0
			},
		},
		{
			name:    "bad cors origin",
			mutate:  func(c *Config) { c.Security.CORSOrigins = []string{"not a url"} },
			wantErr: "CORS_ORIGINS",
		},
		{
			name: "rate limit window ignored when disabled",
			mutate: func(c *Config) {
				c.Security.RateLimitDisabled = true
				c.Security.RateLimitWindow = 0
			},
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "LOG_FORMAT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestServerConfigHelpers(t *testing.T) {
	t.Parallel()

	s := ServerConfig{Host: "::1", Port: 8080, Environment: "production"}
	if s.Addr() != "[::1]:8080" {
		t.Errorf("Addr() = %q, want [::1]:8080", s.Addr())
	}
	if !s.IsProduction() {
		t.Error("IsProduction() should be true")
	}
}

func TestWarnings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(c *Config)
		want   []string
	}{
		{
			name:   "development defaults only miss the key",
			mutate: func(c *Config) {},
			want:   []string{"TMDB_API_KEY"},
		},
		{
			name: "configured development",
			mutate: func(c *Config) {
				c.TMDB.APIKey = "k"
				c.Security.RateLimitDisabled = true
				c.Logging.Format = "console"
			},
		},
		{
			name: "production with open settings",
			mutate: func(c *Config) {
				c.TMDB.APIKey = "k"
				c.Server.Environment = "production"
				c.Security.CORSOrigins = []string{"https://a.example", "*"}
				c.Security.RateLimitDisabled = true
				c.Logging.Format = "console"
			},
			want: []string{"CORS_ORIGINS", "DISABLE_RATE_LIMIT", "LOG_FORMAT"},
		},
		{
			name: "hardened production",
			mutate: func(c *Config) {
				c.TMDB.APIKey = "k"
				c.Server.Environment = "production"
				c.Security.CORSOrigins = []string{"https://a.example"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			tt.mutate(cfg)
			got := cfg.Warnings()

			if len(got) != len(tt.want) {
				t.Fatalf("Warnings() = %q, want %d entries", got, len(tt.want))
			}
			for i, prefix := range tt.want {
				if !strings.HasPrefix(got[i], prefix) {
					t.Errorf("Warnings()[%d] = %q, want prefix %q", i, got[i], prefix)
				}
			}
		})
	}
}
