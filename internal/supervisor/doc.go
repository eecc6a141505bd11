// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package supervisor provides process supervision for ReelMatch using suture v4.

The tree separates the catalog watcher from the HTTP server so that each
restarts independently:

	RootSupervisor ("reelmatch")
	├── CatalogSupervisor ("catalog-layer")
	│   └── CatalogWatchService (if CATALOG_WATCH)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's failure decay and backoff.
Canceling the context passed to Serve stops every service, waiting up to
ShutdownTimeout for each. Supervisor events are logged through sutureslog
using the zerolog-backed slog handler from the logging package.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddCatalogService(services.NewCatalogWatchService(watcher))
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor stopped with error")
	}

Services live in the services subpackage.
*/
package supervisor
