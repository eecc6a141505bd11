// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

// Recommendation is one ranked neighbor of the queried title.
type Recommendation struct {
	// Title is the recommended movie's title.
	Title string `json:"title"`

	// MovieID is the TMDB id used for poster lookup.
	MovieID int `json:"movie_id"`

	// Score is the similarity to the queried title.
	Score float64 `json:"score"`

	// Rank is the 1-based position in the result.
	Rank int `json:"rank"`
}

// Result is the ranked list of neighbors for a query.
// Items is empty when the title is not in the catalog.
type Result struct {
	Query string           `json:"query"`
	Items []Recommendation `json:"items"`

	// Version is the catalog snapshot the result was computed from.
	Version uint64 `json:"catalog_version"`

	// Unknown reports that the title did not match any catalog entry.
	Unknown bool `json:"-"`

	// Cached reports that the result was served from the engine cache.
	Cached bool `json:"-"`
}

// MovieIDs returns the item ids in rank order.
func (r Result) MovieIDs() []int {
	ids := make([]int, len(r.Items))
	for i, item := range r.Items {
		ids[i] = item.MovieID
	}
	return ids
}

// clone returns a copy whose Items slice is not shared with r.
func (r Result) clone() Result {
	out := r
	if r.Items != nil {
		out.Items = make([]Recommendation, len(r.Items))
		copy(out.Items, r.Items)
	}
	return out
}

// Stats summarizes engine activity.
type Stats struct {
	Requests       int64   `json:"requests"`
	CacheHits      int64   `json:"cache_hits"`
	CacheMisses    int64   `json:"cache_misses"`
	CacheHitRate   float64 `json:"cache_hit_rate"`
	UnknownTitles  int64   `json:"unknown_titles"`
	CacheSize      int     `json:"cache_size"`
	CatalogVersion uint64  `json:"catalog_version"`
}
