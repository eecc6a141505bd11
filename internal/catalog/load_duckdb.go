// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"
)

// DuckDB artifact schema:
//
//	CREATE TABLE movies     (idx INTEGER, title VARCHAR, movie_id INTEGER);
//	CREATE TABLE similarity (row_idx INTEGER, col_idx INTEGER, score DOUBLE);
//
// idx must run 0..N-1 and similarity must hold all N*N cells.
const (
	selectMovies     = `SELECT idx, title, movie_id FROM movies ORDER BY idx`
	selectSimilarity = `SELECT row_idx, col_idx, score FROM similarity`
)

func loadDuckDB(ctx context.Context, path string) (*Snapshot, error) {
	// Read-only so a loader never replays or writes the artifact's WAL.
	// Auto-install/auto-load are disabled to avoid network access at startup.
	connStr := fmt.Sprintf("%s?access_mode=read_only&autoinstall_known_extensions=false&autoload_known_extensions=false", path)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %w", ErrArtifactCorrupt, path, err)
	}
	defer func() { _ = conn.Close() }()

	movies, err := queryMovies(ctx, conn)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, ErrEmptyCatalog
	}

	rows, err := querySimilarity(ctx, conn, len(movies))
	if err != nil {
		return nil, err
	}

	matrix, err := NewMatrix(rows)
	if err != nil {
		return nil, err
	}
	return NewSnapshot(movies, matrix)
}

func queryMovies(ctx context.Context, conn *sql.DB) ([]Movie, error) {
	rows, err := conn.QueryContext(ctx, selectMovies)
	if err != nil {
		return nil, fmt.Errorf("%w: query movies: %w", ErrArtifactCorrupt, err)
	}
	defer func() { _ = rows.Close() }()

	var movies []Movie
	for rows.Next() {
		var (
			idx int
			m   Movie
		)
		if err := rows.Scan(&idx, &m.Title, &m.ID); err != nil {
			return nil, fmt.Errorf("%w: scan movie: %w", ErrArtifactCorrupt, err)
		}
		if idx != len(movies) {
			return nil, fmt.Errorf("%w: movie idx %d out of sequence, want %d", ErrArtifactCorrupt, idx, len(movies))
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate movies: %w", ErrArtifactCorrupt, err)
	}
	return movies, nil
}

func querySimilarity(ctx context.Context, conn *sql.DB, n int) ([][]float64, error) {
	rows, err := conn.QueryContext(ctx, selectSimilarity)
	if err != nil {
		return nil, fmt.Errorf("%w: query similarity: %w", ErrArtifactCorrupt, err)
	}
	defer func() { _ = rows.Close() }()

	matrix := make([][]float64, n)
	filled := make([][]bool, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		filled[i] = make([]bool, n)
	}

	cells := 0
	for rows.Next() {
		var (
			r, c  int
			score float64
		)
		if err := rows.Scan(&r, &c, &score); err != nil {
			return nil, fmt.Errorf("%w: scan similarity: %w", ErrArtifactCorrupt, err)
		}
		if r < 0 || r >= n || c < 0 || c >= n {
			return nil, fmt.Errorf("%w: cell (%d,%d) outside %dx%d", ErrDimensionMismatch, r, c, n, n)
		}
		if filled[r][c] {
			return nil, fmt.Errorf("%w: duplicate cell (%d,%d)", ErrArtifactCorrupt, r, c)
		}
		matrix[r][c] = score
		filled[r][c] = true
		cells++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate similarity: %w", ErrArtifactCorrupt, err)
	}

	if cells != n*n {
		return nil, fmt.Errorf("%w: %d of %d similarity cells present", ErrDimensionMismatch, cells, n*n)
	}
	return matrix, nil
}
