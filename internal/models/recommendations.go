// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package models

import "time"

// RecommendationCard is one displayable recommendation: a ranked title
// paired with its poster URL.
type RecommendationCard struct {
	Rank      int     `json:"rank"`
	Title     string  `json:"title"`
	MovieID   int     `json:"movie_id"`
	Score     float64 `json:"score"`
	PosterURL string  `json:"poster_url"`
}

// RecommendationsResponse answers GET /api/v1/recommendations.
//
// Recommendations holds the cards in rank order. Grid groups the same
// cards into display rows of Columns cards each, left to right and top to
// bottom; the last row may be shorter.
type RecommendationsResponse struct {
	Query           string                 `json:"query"`
	Count           int                    `json:"count"`
	Columns         int                    `json:"columns"`
	Recommendations []RecommendationCard   `json:"recommendations"`
	Grid            [][]RecommendationCard `json:"grid"`
}

// MoviesResponse answers GET /api/v1/movies, the title picker source.
type MoviesResponse struct {
	Query  string   `json:"query,omitempty"`
	Total  int      `json:"total"`
	Titles []string `json:"titles"`
}

// PosterResult is one resolved poster.
type PosterResult struct {
	MovieID   int    `json:"movie_id"`
	PosterURL string `json:"poster_url"`
}

// PostersResponse answers GET /api/v1/posters, in request order.
type PostersResponse struct {
	Posters []PosterResult `json:"posters"`
}

// HealthStatus answers GET /api/v1/health.
type HealthStatus struct {
	Status             string        `json:"status"` // "healthy" or "degraded"
	Version            string        `json:"version"`
	Uptime             float64       `json:"uptime_seconds"`
	Catalog            CatalogHealth `json:"catalog"`
	PosterBreaker      string        `json:"poster_breaker"`
	TMDBKeyConfigured  bool          `json:"tmdb_key_configured"`
	RecommendRequests  int64         `json:"recommend_requests"`
	RecommendCacheRate float64       `json:"recommend_cache_hit_rate"` // percent
}

// CatalogHealth describes the catalog snapshot currently served.
type CatalogHealth struct {
	Movies   int       `json:"movies"`
	Version  uint64    `json:"version"`
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loaded_at"`
}
