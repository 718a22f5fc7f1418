package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/campusops/traslados/internal/domain"
)

// Compile-time check: Store implements domain.SequenceStore.
var _ domain.SequenceStore = (*Store)(nil)

// Next performs the atomic increment-and-fetch for the year's counter,
// creating the row on first use. The single UPSERT statement is what makes
// concurrent allocations safe: there is no read-modify-write pair for two
// callers to interleave.
func (s *Store) Next(ctx context.Context, year int) (int64, error) {
	var seq int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO sequence_counters (year, sequence) VALUES (?, 1)
		 ON CONFLICT(year) DO UPDATE SET sequence = sequence + 1
		 RETURNING sequence`, year,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("incrementing counter for year %d: %w", year, err)
	}
	return seq, nil
}

// Current returns the last issued sequence for the year, zero when the year
// has no counter row yet.
func (s *Store) Current(ctx context.Context, year int) (int64, error) {
	var seq int64
	err := s.db.QueryRowContext(ctx,
		`SELECT sequence FROM sequence_counters WHERE year = ?`, year,
	).Scan(&seq)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading counter for year %d: %w", year, err)
	}
	return seq, nil
}

// Stats returns per-year allocation counts, most recent year first. The
// count equals the last issued sequence because the counter starts at zero
// and only ever increments by one.
func (s *Store) Stats(ctx context.Context) ([]domain.YearCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT year, sequence FROM sequence_counters ORDER BY year DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing counters: %w", err)
	}
	defer rows.Close()

	var stats []domain.YearCount
	for rows.Next() {
		var yc domain.YearCount
		if err := rows.Scan(&yc.Year, &yc.Count); err != nil {
			return nil, fmt.Errorf("scanning counter row: %w", err)
		}
		stats = append(stats, yc)
	}

	return stats, rows.Err()
}
