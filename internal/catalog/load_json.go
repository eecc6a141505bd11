// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// jsonArtifact is the on-disk JSON layout:
//
//	{"movies": [{"title": "Avatar", "movie_id": 19995}, ...],
//	 "similarity": [[1.0, 0.12, ...], ...]}
type jsonArtifact struct {
	Movies     []Movie     `json:"movies"`
	Similarity [][]float64 `json:"similarity"`
}

func loadJSON(ctx context.Context, path string) (*Snapshot, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var artifact jsonArtifact
	if err := json.NewDecoder(bufio.NewReader(f)).DecodeContext(ctx, &artifact); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrArtifactCorrupt, path, err)
	}

	if len(artifact.Movies) == 0 {
		return nil, ErrEmptyCatalog
	}
	if len(artifact.Similarity) != len(artifact.Movies) {
		return nil, fmt.Errorf("%w: %d movies, %d matrix rows", ErrDimensionMismatch, len(artifact.Movies), len(artifact.Similarity))
	}

	matrix, err := NewMatrix(artifact.Similarity)
	if err != nil {
		return nil, err
	}
	return NewSnapshot(artifact.Movies, matrix)
}
