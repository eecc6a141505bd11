// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package middleware provides infrastructure HTTP middleware shared by the API
router.

Key Components:

  - RequestID: request and correlation IDs for structured logging
  - AccessLog: one zerolog line per completed request
  - PrometheusMetrics: request count, latency and in-flight gauge, labeled by
    chi route pattern

All middleware use the standard func(http.Handler) http.Handler shape and
plug directly into chi:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)

CORS, rate limiting and security headers live in the api package because
they are configured from config.SecurityConfig.
*/
package middleware
