// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"sync"
	"sync/atomic"

	"github.com/tomtom215/reelmatch/internal/metrics"
)

// Store publishes the current Snapshot. Readers never block: Current is a
// single atomic load, and a Snapshot is never mutated after Swap.
type Store struct {
	current atomic.Pointer[Snapshot]

	// mu serializes Swap and guards subscribers
	mu          sync.Mutex
	version     uint64
	subscribers []func(*Snapshot)
}

// NewStore publishes initial as version 1.
func NewStore(initial *Snapshot) *Store {
	s := &Store{}
	s.Swap(initial)
	return s
}

// Current returns the live snapshot.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Swap assigns next the following version, publishes it and notifies
// subscribers in registration order. It returns the replaced snapshot
// (nil on the first call). next must not be shared with another Store.
func (s *Store) Swap(next *Snapshot) *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.version++
	next.Version = s.version
	prev := s.current.Swap(next)

	metrics.UpdateCatalogSnapshot(next.Len(), next.Version)

	for _, fn := range s.subscribers {
		fn(next)
	}
	return prev
}

// OnReload registers fn to run after every later Swap. fn must not call Swap.
func (s *Store) OnReload(fn func(*Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}
