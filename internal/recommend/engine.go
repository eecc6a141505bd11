// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// cacheName labels the engine's cache in metrics.
const cacheName = "recommend"

// Engine ranks catalog neighbors for a title. It is safe for concurrent use.
type Engine struct {
	store  *catalog.Store
	cache  *cache.LRU[Result]
	limit  int
	logger zerolog.Logger

	requestCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	unknownCount atomic.Int64
}

// NewEngine creates an engine reading from store. The engine subscribes to
// store reloads and purges its cache on each one.
func NewEngine(store *catalog.Store, cfg *Config) (*Engine, error) {
	if store == nil {
		return nil, fmt.Errorf("catalog store is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		store:  store,
		cache:  cache.NewLRU[Result](cfg.CacheSize, cfg.CacheTTL),
		limit:  cfg.Limit,
		logger: logging.WithComponent("recommend"),
	}
	store.OnReload(func(s *catalog.Snapshot) {
		e.Reload()
		e.logger.Info().Uint64("catalog_version", s.Version).Msg("recommendation cache purged after catalog reload")
	})
	return e, nil
}

// Recommend returns up to Limit titles most similar to title, best first.
// The query itself is never included. An unknown title yields an empty Result.
func (e *Engine) Recommend(title string) Result {
	e.requestCount.Add(1)

	snap := e.store.Current()
	key := cacheKey(snap.Version, title)

	if res, ok := e.cache.Get(key); ok {
		e.cacheHits.Add(1)
		if res.Unknown {
			e.unknownCount.Add(1)
		}
		metrics.RecordRecommendation(true, res.Unknown)
		out := res.clone()
		out.Cached = true
		return out
	}
	e.cacheMisses.Add(1)

	res := e.compute(snap, title)
	if res.Unknown {
		e.unknownCount.Add(1)
		e.logger.Debug().Str("title", title).Msg("title not in catalog")
	}
	metrics.RecordRecommendation(false, res.Unknown)

	e.remember(snap, key, res)

	return res.clone()
}

// remember memoizes res unless snap was replaced while it was computed.
// Entries for a superseded version would never be read again.
func (e *Engine) remember(snap *catalog.Snapshot, key string, res Result) {
	if cur := e.store.Current(); cur == nil || cur.Version != snap.Version {
		return
	}
	e.cache.Add(key, res)
	metrics.UpdateCacheSize(cacheName, e.cache.Len())
}

// compute ranks snap's neighbors of title without touching the cache.
func (e *Engine) compute(snap *catalog.Snapshot, title string) Result {
	res := Result{Query: title, Version: snap.Version, Items: []Recommendation{}}

	idx := snap.IndexOf(title)
	if idx < 0 {
		res.Unknown = true
		return res
	}

	row := snap.Matrix.Row(idx)
	for rank, j := range topNeighbors(row, idx, e.limit) {
		movie := snap.Movies[j]
		res.Items = append(res.Items, Recommendation{
			Title:   movie.Title,
			MovieID: movie.ID,
			Score:   row[j],
			Rank:    rank + 1,
		})
	}
	return res
}

// topNeighbors returns the column indices of row other than self, sorted by
// descending score with ties broken by ascending index, truncated to limit.
func topNeighbors(row []float64, self, limit int) []int {
	candidates := make([]int, 0, len(row))
	for j := range row {
		if j != self {
			candidates = append(candidates, j)
		}
	}

	slices.SortFunc(candidates, func(a, b int) int {
		if c := cmp.Compare(row[b], row[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// Reload purges memoized results.
func (e *Engine) Reload() {
	e.cache.Purge()
	metrics.UpdateCacheSize(cacheName, 0)
}

// Titles lists catalog titles containing query (case-insensitive) in
// catalog order. limit <= 0 returns every match.
func (e *Engine) Titles(query string, limit int) []string {
	snap := e.store.Current()
	needle := strings.ToLower(strings.TrimSpace(query))

	titles := make([]string, 0)
	for _, m := range snap.Movies {
		if needle != "" && !strings.Contains(strings.ToLower(m.Title), needle) {
			continue
		}
		titles = append(titles, m.Title)
		if limit > 0 && len(titles) == limit {
			break
		}
	}
	return titles
}

// Limit returns the maximum number of items per Result.
func (e *Engine) Limit() int {
	return e.limit
}

// Stats returns engine counters.
func (e *Engine) Stats() Stats {
	cs := e.cache.Stats()
	return Stats{
		Requests:       e.requestCount.Load(),
		CacheHits:      e.cacheHits.Load(),
		CacheMisses:    e.cacheMisses.Load(),
		CacheHitRate:   cs.HitRate(),
		UnknownTitles:  e.unknownCount.Load(),
		CacheSize:      cs.Size,
		CatalogVersion: e.store.Current().Version,
	}
}

func cacheKey(version uint64, title string) string {
	return strconv.FormatUint(version, 10) + ":" + title
}
