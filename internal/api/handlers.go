// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"time"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// CatalogSource exposes the catalog snapshot currently served.
type CatalogSource interface {
	Current() *catalog.Snapshot
}

// Recommender produces recommendations and title listings.
type Recommender interface {
	Recommend(title string) recommend.Result
	Titles(query string, limit int) []string
	Stats() recommend.Stats
}

// PosterFetcher resolves movie ids to poster URLs, one per id in order.
type PosterFetcher interface {
	FetchPosters(ctx context.Context, ids []int, apiKey string) []string
	PlaceholderURL() string
	BreakerState() string
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_health.go: Health
//   - handlers_movies.go: Movies
//   - handlers_recommend.go: Recommendations, Posters
//   - handlers_helpers.go: shared response and parsing helpers
type Handler struct {
	catalog   CatalogSource
	engine    Recommender
	posters   PosterFetcher
	apiKey    string
	version   string
	startTime time.Time
}

// NewHandler creates an API handler.
//
// apiKey is forwarded to the poster fetcher on every request and never
// written to responses or logs. An empty key is allowed; TMDB then rejects
// every lookup and cards carry the placeholder URL.
func NewHandler(source CatalogSource, engine Recommender, posters PosterFetcher, apiKey string) *Handler {
	return &Handler{
		catalog:   source,
		engine:    engine,
		posters:   posters,
		apiKey:    apiKey,
		version:   "dev",
		startTime: time.Now(),
	}
}

// SetVersion sets the build version reported by the health endpoint.
func (h *Handler) SetVersion(version string) {
	if version != "" {
		h.version = version
	}
}
