// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/logging"
)

// DefaultDebounce is the quiet period after the last write before a reload.
const DefaultDebounce = 500 * time.Millisecond

// LoaderFunc loads a snapshot from path.
type LoaderFunc func(ctx context.Context, path string) (*Snapshot, error)

// Watcher reloads the catalog artifact when it changes on disk.
//
// It watches the artifact's directory rather than the file itself so that
// atomic replacement (write temp file, rename over) is seen as a Create.
// A failed reload keeps the current snapshot.
type Watcher struct {
	path     string
	store    *Store
	debounce time.Duration
	load     LoaderFunc
	logger   zerolog.Logger
}

// NewWatcher creates a watcher for path publishing into store.
func NewWatcher(path string, store *Store, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		path:     filepath.Clean(path),
		store:    store,
		debounce: debounce,
		load:     Load,
		logger:   logging.WithComponent("catalog-watcher"),
	}
}

// WithLoader replaces the loader. Used by tests.
func (w *Watcher) WithLoader(load LoaderFunc) *Watcher {
	w.load = load
	return w
}

// Run blocks until ctx is canceled, reloading after each debounced change.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = fsw.Close() }()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}

	w.logger.Info().Str("path", w.path).Dur("debounce", w.debounce).Msg("Watching catalog artifact")

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return fmt.Errorf("file watcher closed")
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug().Str("op", event.Op.String()).Msg("Catalog artifact changed")
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return fmt.Errorf("file watcher closed")
			}
			w.logger.Warn().Err(err).Msg("File watcher error")

		case <-timer.C:
			w.reload(ctx)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// reload loads the artifact and swaps it in on success.
func (w *Watcher) reload(ctx context.Context) {
	start := time.Now()
	snap, err := w.load(ctx, w.path)
	if err != nil {
		w.logger.Error().Err(err).
			Uint64("kept_version", w.store.Current().Version).
			Msg("Catalog reload failed, keeping current snapshot")
		return
	}

	prev := w.store.Swap(snap)
	w.logger.Info().
		Uint64("version", snap.Version).
		Uint64("previous_version", prev.Version).
		Int("movies", snap.Len()).
		Dur("duration", time.Since(start)).
		Msg("Catalog reloaded")
}

// String implements fmt.Stringer for supervisor logs.
func (w *Watcher) String() string {
	return "catalog-watcher"
}
