// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"context"
	"errors"
	"fmt"
)

// Runner is a component with a blocking, context-aware Run method.
// *catalog.Watcher satisfies it.
type Runner interface {
	Run(ctx context.Context) error
	String() string
}

// CatalogWatchService supervises the catalog artifact watcher.
//
// Run errors (for example an unwatchable directory) are returned wrapped so
// that suture restarts the watcher with backoff. The served snapshot is
// untouched while the watcher is down.
type CatalogWatchService struct {
	watcher Runner
}

// NewCatalogWatchService wraps a catalog watcher.
func NewCatalogWatchService(watcher Runner) *CatalogWatchService {
	return &CatalogWatchService{watcher: watcher}
}

// Serve implements suture.Service.
func (s *CatalogWatchService) Serve(ctx context.Context) error {
	err := s.watcher.Run(ctx)
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ctx.Err()
	}
	return fmt.Errorf("%s failed: %w", s.watcher, err)
}

// String implements fmt.Stringer; suture uses it in log messages.
func (s *CatalogWatchService) String() string {
	return s.watcher.String()
}
