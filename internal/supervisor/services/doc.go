// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package services provides suture.Service wrappers for ReelMatch components.

Each wrapper translates a component lifecycle into suture's
Serve(ctx context.Context) error:

  - HTTPServerService: ListenAndServe plus graceful Shutdown
  - CatalogWatchService: the catalog watcher's blocking Run

Wrappers return ctx.Err() after a requested stop and a wrapped error on
failure, which suture answers with a restart. They implement fmt.Stringer
so supervisor events name the service.
*/
package services
