// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/reelmatch/internal/api"
	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/poster"
	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/supervisor"
	"github.com/tomtom215/reelmatch/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("catalog_path", cfg.Catalog.Path).
		Bool("catalog_watch", cfg.Catalog.Watch).
		Msg("Starting ReelMatch")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The service refuses to start without a readable catalog
	snapshot, err := catalog.Load(ctx, cfg.Catalog.Path)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load catalog")
	}
	store := catalog.NewStore(snapshot)
	logging.Info().
		Int("movies", snapshot.Len()).
		Str("format", snapshot.Format).
		Msg("Catalog loaded")

	engine, err := recommend.NewEngine(store, &recommend.Config{
		Limit:     cfg.Recommend.Limit,
		CacheSize: cfg.Recommend.CacheSize,
		CacheTTL:  cfg.Recommend.CacheTTL,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	for _, warning := range cfg.Warnings() {
		logging.Warn().Msg(warning)
	}
	fetcher := poster.NewFetcher(&cfg.TMDB)

	handler := api.NewHandler(store, engine, fetcher, cfg.TMDB.APIKey)
	handler.SetVersion(version)

	mw := api.NewChiMiddlewareFromConfig(cfg.Security)
	if len(cfg.Security.CORSOrigins) == 0 {
		logging.Info().Msg("No CORS origins configured; cross-origin requests are denied")
	}
	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if cfg.Catalog.Watch {
		watcher := catalog.NewWatcher(cfg.Catalog.Path, store, cfg.Catalog.Debounce)
		tree.AddCatalogService(services.NewCatalogWatchService(watcher))
		logging.Info().Dur("debounce", cfg.Catalog.Debounce).Msg("Catalog hot reload enabled")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Err(err).Msg("Supervisor tree stopped with error")
	}

	if report, err := tree.UnstoppedServiceReport(); err == nil && len(report) > 0 {
		for _, svc := range report {
			logging.Warn().Str("service", svc.Name).Msg("Service did not stop within the shutdown timeout")
		}
	}

	logging.Info().Msg("ReelMatch stopped")
}
