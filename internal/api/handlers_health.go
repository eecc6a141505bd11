// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/reelmatch/internal/models"
)

// Health reports service status.
//
// The status is "degraded" when no catalog is loaded or while the TMDB
// circuit breaker is open; recommendations still work in the latter case,
// with placeholder posters. The response is always 200 so load balancers
// can read the body.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	breaker := h.posters.BreakerState()
	stats := h.engine.Stats()

	health := models.HealthStatus{
		Status:             "healthy",
		Version:            h.version,
		Uptime:             time.Since(h.startTime).Seconds(),
		PosterBreaker:      breaker,
		TMDBKeyConfigured:  h.apiKey != "",
		RecommendRequests:  stats.Requests,
		RecommendCacheRate: stats.CacheHitRate,
	}

	snap := h.catalog.Current()
	if snap != nil {
		health.Catalog = models.CatalogHealth{
			Movies:   snap.Len(),
			Version:  snap.Version,
			Source:   snap.Source,
			LoadedAt: snap.LoadedAt,
		}
	}

	if snap == nil || snap.Len() == 0 || breaker == "open" {
		health.Status = "degraded"
	}

	respondSuccess(w, health, models.Metadata{Timestamp: time.Now()})
}
