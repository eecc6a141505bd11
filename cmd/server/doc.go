// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package main is the entry point for the ReelMatch server.

ReelMatch serves "movies similar to X" recommendations from a precomputed
catalog (titles, TMDB ids and a pairwise similarity matrix) and decorates
each recommendation with a TMDB poster URL.

# Application Architecture

	RootSupervisor ("reelmatch")
	├── CatalogSupervisor ("catalog-layer")
	│   └── Catalog watcher (CATALOG_WATCH=true)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Startup order:

 1. Configuration: Koanf v2 (defaults, config.yaml, .env, environment)
 2. Logging: zerolog with JSON or console output
 3. Catalog: JSON or DuckDB artifact, loaded once; failure is fatal
 4. Recommendation engine: ranking plus LRU memoization
 5. Poster fetcher: TMDB client with circuit breaker
 6. Supervisor tree and HTTP server

# Configuration

	HTTP_PORT=8501
	CATALOG_PATH=data/catalog.json
	CATALOG_WATCH=false
	TMDB_API_KEY=<your key>     # keep it in .env or the environment
	LOG_LEVEL=info
	LOG_FORMAT=json

Without TMDB_API_KEY the server still starts and every card shows the
placeholder image.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and drains in-flight requests within HTTP_SHUTDOWN_TIMEOUT.
*/
package main
