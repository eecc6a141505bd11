// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package catalog holds the movie table and its precomputed similarity matrix.
//
// A Snapshot pairs the two and is immutable once published: index i of
// Movies addresses row i and column i of Matrix. Snapshots are loaded from a
// JSON or DuckDB artifact (Load), published through a Store, and optionally
// replaced by a Watcher when the artifact changes on disk.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Artifact load failures. All are fatal at startup.
var (
	ErrArtifactNotFound  = errors.New("catalog artifact not found")
	ErrArtifactCorrupt   = errors.New("catalog artifact corrupt")
	ErrDimensionMismatch = errors.New("catalog and similarity matrix dimensions disagree")
	ErrUnsupportedFormat = errors.New("unsupported catalog artifact format")
	ErrEmptyCatalog      = errors.New("catalog is empty")
)

// Movie is one catalog entry. ID is the TMDB movie id.
type Movie struct {
	Title string `json:"title"`
	ID    int    `json:"movie_id"`
}

// Matrix is a dense N x N similarity matrix stored row-major.
// Symmetry is not required.
type Matrix struct {
	n    int
	data []float64
}

// NewMatrix copies rows into a Matrix. Every row must have len(rows)
// entries and every value must be finite.
func NewMatrix(rows [][]float64) (*Matrix, error) {
	n := len(rows)
	data := make([]float64, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, i, len(row), n)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: non-finite similarity at [%d][%d]", ErrArtifactCorrupt, i, j)
			}
		}
		data = append(data, row...)
	}
	return &Matrix{n: n, data: data}, nil
}

// Size returns N.
func (m *Matrix) Size() int {
	return m.n
}

// At returns the similarity of movie i to movie j.
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.n+j]
}

// Row returns row i. The slice aliases the matrix and must not be modified.
func (m *Matrix) Row(i int) []float64 {
	return m.data[i*m.n : (i+1)*m.n : (i+1)*m.n]
}

// Snapshot is an immutable catalog plus matrix.
type Snapshot struct {
	Movies   []Movie
	Matrix   *Matrix
	Version  uint64 // assigned by Store
	Source   string
	Format   string
	LoadedAt time.Time

	// first index of each title
	index map[string]int
}

// NewSnapshot validates movies against matrix and builds the title index.
func NewSnapshot(movies []Movie, matrix *Matrix) (*Snapshot, error) {
	if len(movies) == 0 {
		return nil, ErrEmptyCatalog
	}
	if matrix == nil || matrix.Size() != len(movies) {
		size := 0
		if matrix != nil {
			size = matrix.Size()
		}
		return nil, fmt.Errorf("%w: %d movies, %dx%d matrix", ErrDimensionMismatch, len(movies), size, size)
	}

	index := make(map[string]int, len(movies))
	for i, m := range movies {
		if _, seen := index[m.Title]; !seen {
			index[m.Title] = i
		}
	}

	return &Snapshot{
		Movies:   movies,
		Matrix:   matrix,
		LoadedAt: time.Now(),
		index:    index,
	}, nil
}

// Len returns the number of movies.
func (s *Snapshot) Len() int {
	return len(s.Movies)
}

// IndexOf returns the index of the first movie titled exactly title, or -1.
func (s *Snapshot) IndexOf(title string) int {
	if i, ok := s.index[title]; ok {
		return i
	}
	return -1
}
