// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/reelmatch/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler    *Handler
	middleware *ChiMiddleware
}

// NewRouter creates a router. A nil middleware uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:    handler,
		middleware: mw,
	}
}

// SetupChi builds the HTTP handler for the whole service.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(router.middleware.CORS())

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	h := router.handler
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(APISecurityHeaders())

		r.With(router.middleware.RateLimitHealth()).Get("/health", h.Health)

		r.Group(func(r chi.Router) {
			r.Use(router.middleware.RateLimit())

			r.Get("/movies", h.Movies)
			r.Get("/recommendations", h.Recommendations)
			r.Get("/posters", h.Posters)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
