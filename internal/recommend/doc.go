// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package recommend selects the nearest neighbors of a movie from the
// catalog's precomputed similarity matrix.
//
// # Ranking
//
// For a query title the engine finds the first catalog entry with exactly
// that title, reads its matrix row, drops the query's own column, and sorts
// the remaining columns by descending score. Equal scores are ordered by
// ascending catalog index so results are deterministic. The first Limit
// entries (default 20) are returned.
//
// A title that is not in the catalog yields an empty Result. This is not an
// error; callers show a "no recommendations" message.
//
// # Caching
//
// Results are memoized in a bounded LRU owned by the Engine, keyed by
// snapshot version and title. The engine subscribes to catalog reloads and
// purges the cache when a new snapshot is published.
//
// # Usage
//
//	store := catalog.NewStore(snapshot)
//	engine, err := recommend.NewEngine(store, recommend.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//
//	res := engine.Recommend("Avatar")
//	for _, item := range res.Items {
//	    fmt.Println(item.Rank, item.Title, item.Score)
//	}
//
// # Thread Safety
//
// Engine is safe for concurrent use. Each call reads one immutable
// snapshot, so a concurrent reload never produces a mixed result.
package recommend
