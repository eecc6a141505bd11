// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/models"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// GridColumns is the number of cards per display row.
const GridColumns = 5

// Recommendations returns the recommendation cards for a title.
//
// Each card pairs result.Items[i] with posters[i]; the poster batch is
// resolved concurrently and bounded by the fetcher's per-request timeout.
// A title with no recommendations answers 404 NO_RECOMMENDATIONS without
// contacting TMDB.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := RecommendationsRequest{Title: r.URL.Query().Get("title")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	logger := logging.Ctx(r.Context())
	result := h.engine.Recommend(req.Title)

	if len(result.Items) == 0 {
		logger.Info().
			Str("title", sanitizeLogValue(req.Title)).
			Bool("unknown_title", result.Unknown).
			Msg("No recommendations for title")
		respondError(w, http.StatusNotFound, CodeNoRecommendations, NoRecommendationsMessage, nil)
		return
	}

	posters := h.posters.FetchPosters(r.Context(), result.MovieIDs(), h.apiKey)
	cards := buildCards(result.Items, posters, h.posters.PlaceholderURL())

	logger.Debug().
		Str("title", sanitizeLogValue(req.Title)).
		Int("count", len(cards)).
		Uint64("catalog_version", result.Version).
		Msg("Served recommendations")

	respondSuccess(w, models.RecommendationsResponse{
		Query:           result.Query,
		Count:           len(cards),
		Columns:         GridColumns,
		Recommendations: cards,
		Grid:            buildGrid(cards, GridColumns),
	}, models.Metadata{
		Timestamp:      time.Now(),
		QueryTimeMS:    time.Since(start).Milliseconds(),
		Cached:         result.Cached,
		CatalogVersion: result.Version,
	})
}

// Posters resolves poster URLs for explicit movie ids, in request order.
func (h *Handler) Posters(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ids, err := parseCommaSeparatedInts(r.URL.Query().Get("ids"))
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeBadRequest, "ids "+err.Error(), nil)
		return
	}

	req := PostersRequest{IDs: ids}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	urls := h.posters.FetchPosters(r.Context(), req.IDs, h.apiKey)
	placeholder := h.posters.PlaceholderURL()

	results := make([]models.PosterResult, len(req.IDs))
	for i, id := range req.IDs {
		results[i] = models.PosterResult{MovieID: id, PosterURL: posterAt(urls, i, placeholder)}
	}

	respondSuccess(w, models.PostersResponse{Posters: results}, models.Metadata{
		Timestamp:   time.Now(),
		QueryTimeMS: time.Since(start).Milliseconds(),
	})
}

// buildCards pairs recommendations with posters by index.
func buildCards(items []recommend.Recommendation, posters []string, placeholder string) []models.RecommendationCard {
	cards := make([]models.RecommendationCard, len(items))
	for i, item := range items {
		cards[i] = models.RecommendationCard{
			Rank:      item.Rank,
			Title:     item.Title,
			MovieID:   item.MovieID,
			Score:     item.Score,
			PosterURL: posterAt(posters, i, placeholder),
		}
	}
	return cards
}

// posterAt returns posters[i], or placeholder when the fetcher returned
// fewer URLs than ids or an empty one.
func posterAt(posters []string, i int, placeholder string) string {
	if i < len(posters) && posters[i] != "" {
		return posters[i]
	}
	return placeholder
}

// buildGrid splits cards into rows of columns cards, left to right and
// top to bottom. The rows share the cards' backing array.
func buildGrid(cards []models.RecommendationCard, columns int) [][]models.RecommendationCard {
	if columns < 1 {
		columns = 1
	}
	rows := make([][]models.RecommendationCard, 0, (len(cards)+columns-1)/columns)
	for start := 0; start < len(cards); start += columns {
		end := min(start+columns, len(cards))
		rows = append(rows, cards[start:end:end])
	}
	return rows
}
