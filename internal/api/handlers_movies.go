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

// Movies lists catalog titles for the selection box.
//
// q filters by case-insensitive substring; limit caps the number of
// titles (0 or absent returns all). Titles keep catalog order.
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit, err := getIntParam(r, "limit", 0)
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeBadRequest, err.Error(), nil)
		return
	}

	req := MoviesRequest{
		Query: r.URL.Query().Get("q"),
		Limit: limit,
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	titles := h.engine.Titles(req.Query, req.Limit)

	var version uint64
	if snap := h.catalog.Current(); snap != nil {
		version = snap.Version
	}

	respondSuccess(w, models.MoviesResponse{
		Query:  req.Query,
		Total:  len(titles),
		Titles: titles,
	}, models.Metadata{
		Timestamp:      time.Now(),
		QueryTimeMS:    time.Since(start).Milliseconds(),
		CatalogVersion: version,
	})
}
