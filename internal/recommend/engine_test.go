// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

// newTestStore builds a store from movies and a square matrix.
func newTestStore(t *testing.T, movies []catalog.Movie, rows [][]float64) *catalog.Store {
	t.Helper()
	m, err := catalog.NewMatrix(rows)
	if err != nil {
		t.Fatalf("NewMatrix() error = %v", err)
	}
	snap, err := catalog.NewSnapshot(movies, m)
	if err != nil {
		t.Fatalf("NewSnapshot() error = %v", err)
	}
	return catalog.NewStore(snap)
}

func newTestEngine(t *testing.T, store *catalog.Store, cfg *Config) *Engine {
	t.Helper()
	e, err := NewEngine(store, cfg)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func abgStore(t *testing.T) *catalog.Store {
	return newTestStore(t,
		[]catalog.Movie{{Title: "Alpha", ID: 1}, {Title: "Beta", ID: 2}, {Title: "Gamma", ID: 3}},
		[][]float64{
			{1.0, 0.9, 0.1},
			{0.9, 1.0, 0.2},
			{0.1, 0.2, 1.0},
		})
}

// randomStore builds an n-movie catalog with seeded random scores.
func randomStore(t *testing.T, n int, seed int64) *catalog.Store {
	rng := rand.New(rand.NewSource(seed))
	movies := make([]catalog.Movie, n)
	rows := make([][]float64, n)
	for i := range movies {
		movies[i] = catalog.Movie{Title: fmt.Sprintf("Movie %03d", i), ID: 1000 + i}
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()
		}
		rows[i][i] = 1.0
	}
	return newTestStore(t, movies, rows)
}

func TestNewEngine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		store   bool
		cfg     *Config
		wantErr bool
	}{
		{name: "nil config uses defaults", store: true, cfg: nil},
		{name: "valid config", store: true, cfg: &Config{Limit: 5, CacheSize: 10}},
		{name: "nil store", store: false, cfg: nil, wantErr: true},
		{name: "zero limit", store: true, cfg: &Config{Limit: 0, CacheSize: 10}, wantErr: true},
		{name: "zero cache", store: true, cfg: &Config{Limit: 5, CacheSize: 0}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var store *catalog.Store
			if tt.store {
				store = abgStore(t)
			}
			e, err := NewEngine(store, tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewEngine() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && tt.cfg == nil && e.Limit() != DefaultLimit {
				t.Errorf("Limit() = %d, want %d", e.Limit(), DefaultLimit)
			}
		})
	}
}

func TestEngine_Recommend_AlphaBetaGamma(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, abgStore(t), nil)
	res := e.Recommend("Alpha")

	want := []Recommendation{
		{Title: "Beta", MovieID: 2, Score: 0.9, Rank: 1},
		{Title: "Gamma", MovieID: 3, Score: 0.1, Rank: 2},
	}
	if len(res.Items) != len(want) {
		t.Fatalf("Recommend(Alpha) returned %d items, want %d: %+v", len(res.Items), len(want), res.Items)
	}
	for i := range want {
		if res.Items[i] != want[i] {
			t.Errorf("Items[%d] = %+v, want %+v", i, res.Items[i], want[i])
		}
	}
	if res.Query != "Alpha" || res.Unknown || res.Version != 1 {
		t.Errorf("Result metadata = %+v", res)
	}
	if ids := res.MovieIDs(); len(ids) != 2 || ids[0] != 2 || ids[1] != 3 {
		t.Errorf("MovieIDs() = %v, want [2 3]", ids)
	}
}

func TestEngine_Recommend_UnknownTitle(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, abgStore(t), nil)
	res := e.Recommend("NonexistentMovie")

	if !res.Unknown {
		t.Error("Unknown should be true")
	}
	if res.Items == nil || len(res.Items) != 0 {
		t.Errorf("Items = %#v, want empty non-nil slice", res.Items)
	}

	// Memoized like any other result
	_ = e.Recommend("NonexistentMovie")
	stats := e.Stats()
	if stats.UnknownTitles != 2 || stats.CacheHits != 1 {
		t.Errorf("Stats() = %+v, want 2 unknown and 1 hit", stats)
	}
}

func TestEngine_Recommend_SelfExcludedByIndex(t *testing.T) {
	t.Parallel()

	// Beta's self-similarity is not maximal; it must still be excluded
	store := newTestStore(t,
		[]catalog.Movie{{Title: "Alpha", ID: 1}, {Title: "Beta", ID: 2}, {Title: "Gamma", ID: 3}},
		[][]float64{
			{1.0, 0.9, 0.1},
			{0.9, 0.5, 0.7},
			{0.1, 0.2, 1.0},
		})
	e := newTestEngine(t, store, nil)

	res := e.Recommend("Beta")
	if len(res.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(res.Items))
	}
	if res.Items[0].Title != "Alpha" || res.Items[1].Title != "Gamma" {
		t.Errorf("Items = %+v, want Alpha then Gamma", res.Items)
	}
}

func TestEngine_Recommend_DuplicateTitleUsesFirst(t *testing.T) {
	t.Parallel()

	store := newTestStore(t,
		[]catalog.Movie{{Title: "Dup", ID: 1}, {Title: "Other", ID: 2}, {Title: "Dup", ID: 3}},
		[][]float64{
			{1.0, 0.2, 0.9},
			{0.2, 1.0, 0.3},
			{0.9, 0.3, 1.0},
		})
	e := newTestEngine(t, store, nil)

	res := e.Recommend("Dup")
	if len(res.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(res.Items))
	}
	// Row 0 is used, so the second "Dup" (index 2) ranks first
	if res.Items[0].MovieID != 3 || res.Items[1].MovieID != 2 {
		t.Errorf("Items = %+v", res.Items)
	}
}

func TestEngine_Recommend_TieBreakByIndex(t *testing.T) {
	t.Parallel()

	store := newTestStore(t,
		[]catalog.Movie{{Title: "Q", ID: 10}, {Title: "A", ID: 11}, {Title: "B", ID: 12}, {Title: "C", ID: 13}},
		[][]float64{
			{1.0, 0.5, 0.5, 0.8},
			{0.5, 1.0, 0.0, 0.0},
			{0.5, 0.0, 1.0, 0.0},
			{0.8, 0.0, 0.0, 1.0},
		})
	e := newTestEngine(t, store, nil)

	res := e.Recommend("Q")
	got := res.MovieIDs()
	want := []int{13, 11, 12}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MovieIDs() = %v, want %v", got, want)
		}
	}
}

func TestEngine_Recommend_Properties(t *testing.T) {
	t.Parallel()

	store := randomStore(t, 60, 7)
	e := newTestEngine(t, store, nil)
	snap := store.Current()

	for _, movie := range snap.Movies {
		res := e.Recommend(movie.Title)

		if len(res.Items) != DefaultLimit {
			t.Fatalf("%s: %d items, want %d", movie.Title, len(res.Items), DefaultLimit)
		}
		for i, item := range res.Items {
			if item.Title == movie.Title {
				t.Errorf("%s: result contains the query", movie.Title)
			}
			if item.Rank != i+1 {
				t.Errorf("%s: Items[%d].Rank = %d", movie.Title, i, item.Rank)
			}
			if i > 0 && item.Score > res.Items[i-1].Score {
				t.Errorf("%s: scores increase at %d", movie.Title, i)
			}
		}
	}
}

func TestEngine_Recommend_SmallCatalog(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, []catalog.Movie{{Title: "Solo", ID: 1}}, [][]float64{{1.0}})
	e := newTestEngine(t, store, nil)

	res := e.Recommend("Solo")
	if res.Unknown || len(res.Items) != 0 {
		t.Errorf("single-movie catalog: %+v", res)
	}
}

func TestEngine_Recommend_LimitConfig(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, randomStore(t, 30, 3), &Config{Limit: 5, CacheSize: 16})
	if n := len(e.Recommend("Movie 000").Items); n != 5 {
		t.Errorf("got %d items, want 5", n)
	}
}

func TestEngine_Recommend_Idempotent(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, randomStore(t, 40, 11), nil)

	first := e.Recommend("Movie 005")
	second := e.Recommend("Movie 005")

	if first.Cached || !second.Cached {
		t.Errorf("Cached = (%v, %v), want (false, true)", first.Cached, second.Cached)
	}
	if len(first.Items) != len(second.Items) {
		t.Fatalf("lengths differ: %d vs %d", len(first.Items), len(second.Items))
	}
	for i := range first.Items {
		if first.Items[i] != second.Items[i] {
			t.Errorf("Items[%d] differ: %+v vs %+v", i, first.Items[i], second.Items[i])
		}
	}

	stats := e.Stats()
	if stats.Requests != 2 || stats.CacheHits != 1 || stats.CacheMisses != 1 {
		t.Errorf("Stats() = %+v", stats)
	}
	if stats.CacheSize != 1 {
		t.Errorf("CacheSize = %d, want 1", stats.CacheSize)
	}
}

func TestEngine_Recommend_ReturnsCopies(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, abgStore(t), nil)

	res := e.Recommend("Alpha")
	res.Items[0].Title = "Mutated"

	again := e.Recommend("Alpha")
	if again.Items[0].Title != "Beta" {
		t.Errorf("cached result was mutated: %+v", again.Items[0])
	}
}

func TestEngine_SkipsMemoForSupersededSnapshot(t *testing.T) {
	t.Parallel()

	store := abgStore(t)
	e := newTestEngine(t, store, nil)

	stale := store.Current()
	res := e.compute(stale, "Alpha")

	// A reload lands while the result for the old snapshot is in flight
	m, err := catalog.NewMatrix([][]float64{
		{1.0, 0.1, 0.9},
		{0.1, 1.0, 0.2},
		{0.9, 0.2, 1.0},
	})
	if err != nil {
		t.Fatalf("NewMatrix() error = %v", err)
	}
	next, err := catalog.NewSnapshot(stale.Movies, m)
	if err != nil {
		t.Fatalf("NewSnapshot() error = %v", err)
	}
	store.Swap(next)

	e.remember(stale, cacheKey(stale.Version, "Alpha"), res)
	if size := e.Stats().CacheSize; size != 0 {
		t.Errorf("CacheSize = %d after memoizing a superseded result, want 0", size)
	}

	current := store.Current()
	e.remember(current, cacheKey(current.Version, "Alpha"), e.compute(current, "Alpha"))
	if size := e.Stats().CacheSize; size != 1 {
		t.Errorf("CacheSize = %d after memoizing a current result, want 1", size)
	}
}

func TestEngine_ReloadInvalidatesCache(t *testing.T) {
	t.Parallel()

	store := abgStore(t)
	e := newTestEngine(t, store, nil)

	before := e.Recommend("Alpha")
	if before.Items[0].Title != "Beta" {
		t.Fatalf("before reload: %+v", before.Items)
	}

	m, _ := catalog.NewMatrix([][]float64{
		{1.0, 0.1, 0.9},
		{0.1, 1.0, 0.2},
		{0.9, 0.2, 1.0},
	})
	snap, _ := catalog.NewSnapshot(store.Current().Movies, m)
	store.Swap(snap)

	if size := e.Stats().CacheSize; size != 0 {
		t.Errorf("CacheSize after reload = %d, want 0", size)
	}

	after := e.Recommend("Alpha")
	if after.Items[0].Title != "Gamma" {
		t.Errorf("after reload: %+v, want Gamma first", after.Items)
	}
	if after.Version != 2 {
		t.Errorf("Version = %d, want 2", after.Version)
	}
}

func TestEngine_Titles(t *testing.T) {
	t.Parallel()

	store := newTestStore(t,
		[]catalog.Movie{{Title: "The Dark Knight", ID: 1}, {Title: "Avatar", ID: 2}, {Title: "The Dark Knight Rises", ID: 3}},
		[][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	e := newTestEngine(t, store, nil)

	tests := []struct {
		query string
		limit int
		want  []string
	}{
		{"", 0, []string{"The Dark Knight", "Avatar", "The Dark Knight Rises"}},
		{"dark", 0, []string{"The Dark Knight", "The Dark Knight Rises"}},
		{"  DARK ", 1, []string{"The Dark Knight"}},
		{"zzz", 10, []string{}},
	}

	for _, tt := range tests {
		got := e.Titles(tt.query, tt.limit)
		if len(got) != len(tt.want) {
			t.Errorf("Titles(%q, %d) = %v, want %v", tt.query, tt.limit, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Titles(%q, %d)[%d] = %q, want %q", tt.query, tt.limit, i, got[i], tt.want[i])
			}
		}
	}
}

func TestEngine_Concurrent(t *testing.T) {
	t.Parallel()

	store := randomStore(t, 50, 5)
	e := newTestEngine(t, store, &Config{Limit: 10, CacheSize: 8})

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				title := fmt.Sprintf("Movie %03d", (g*7+i)%50)
				if res := e.Recommend(title); len(res.Items) != 10 {
					t.Errorf("%s: %d items", title, len(res.Items))
					return
				}
			}
		}(g)
	}

	for i := 0; i < 5; i++ {
		snap := store.Current()
		next, _ := catalog.NewSnapshot(snap.Movies, snap.Matrix)
		store.Swap(next)
	}
	wg.Wait()

	if size := e.Stats().CacheSize; size > 8 {
		t.Errorf("CacheSize = %d exceeds capacity", size)
	}
}
