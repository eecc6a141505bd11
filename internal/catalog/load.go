// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tomtom215/reelmatch/internal/metrics"
)

// Artifact formats
const (
	FormatJSON   = "json"
	FormatDuckDB = "duckdb"
)

// FormatOf maps an artifact path to its format by extension.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".duckdb", ".db":
		return FormatDuckDB, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads the artifact at path into an unversioned Snapshot.
func Load(ctx context.Context, path string) (*Snapshot, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	snap, err := load(ctx, path, format)
	metrics.RecordCatalogLoad(format, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	snap.Source = path
	snap.Format = format
	return snap, nil
}

func load(ctx context.Context, path, format string) (*Snapshot, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrArtifactCorrupt, path)
	}

	switch format {
	case FormatJSON:
		return loadJSON(ctx, path)
	case FormatDuckDB:
		return loadDuckDB(ctx, path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
