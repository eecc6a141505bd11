// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

// Request structs carry query parameters through go-playground/validator.
// The `query` tag names the parameter in validation messages.

// MaxTitleLength bounds the title and search query parameters.
const MaxTitleLength = 512

// MaxPosterIDs bounds the ids of one /posters request.
const MaxPosterIDs = 100

// MaxTitlesLimit bounds the limit of one /movies request.
const MaxTitlesLimit = 100000

// RecommendationsRequest holds the parameters of GET /recommendations.
type RecommendationsRequest struct {
	Title string `query:"title" validate:"required,max=512,printable"`
}

// MoviesRequest holds the parameters of GET /movies. Limit 0 returns all titles.
type MoviesRequest struct {
	Query string `query:"q" validate:"max=512,printable"`
	Limit int    `query:"limit" validate:"gte=0,lte=100000"`
}

// PostersRequest holds the parameters of GET /posters.
type PostersRequest struct {
	IDs []int `query:"ids" validate:"required,min=1,max=100,dive,gt=0"`
}
