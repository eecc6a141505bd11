// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package api provides the HTTP JSON API for ReelMatch.

The API is the presentation boundary of the service: it lists catalog
titles for the selection box, asks the recommendation engine for similar
titles, resolves their posters and pairs the two by index into cards laid
out as a 5-column grid.

Endpoints:

	GET /api/v1/health                   service, catalog and breaker status
	GET /api/v1/movies?q=&limit=         titles for the selection box
	GET /api/v1/recommendations?title=   recommendation cards with posters
	GET /api/v1/posters?ids=1,2,3        poster URLs aligned with ids
	GET /metrics                         Prometheus metrics

Every JSON endpoint answers with models.APIResponse. A title without
recommendations (unknown, or alone in the catalog) is a 404 with code
NO_RECOMMENDATIONS. Poster failures are never errors: the card carries the
placeholder URL instead.

Middleware Stack (outermost first):

  - middleware.RequestID: request and correlation IDs
  - chi RealIP: client address from proxy headers
  - middleware.AccessLog: one log line per request
  - chi Recoverer: panics become 500s
  - middleware.PrometheusMetrics: request metrics by route pattern
  - go-chi/cors: CORS from config.SecurityConfig
  - APISecurityHeaders and go-chi/httprate on /api/v1

Usage Example:

	handler := api.NewHandler(store, engine, fetcher, cfg.TMDB.APIKey)
	mw := api.NewChiMiddlewareFromConfig(cfg.Security)
	router := api.NewRouter(handler, mw)
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}

Thread Safety:

Handler holds no mutable request state; all handlers are safe for
concurrent use.
*/
package api
