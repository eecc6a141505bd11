// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package models defines the JSON shapes of the HTTP API.

Every endpoint wraps its payload in APIResponse, so clients can always
branch on the status field and read error.code on failure. The payload
types (RecommendationsResponse, MoviesResponse, PostersResponse and
HealthStatus) contain no behavior; the api package fills them from the
recommendation engine, the poster fetcher and the catalog store.
*/
package models
