package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/campusops/traslados/internal/domain"
)

// Compile-time check: Store implements domain.ProgramDirectory.
var _ domain.ProgramDirectory = (*Store)(nil)

// FindByID looks up a program by its identifier.
func (s *Store) FindByID(ctx context.Context, id string) (domain.Program, error) {
	return s.scanProgram(s.db.QueryRowContext(ctx,
		`SELECT id, code, active FROM programs WHERE id = ?`, id,
	))
}

// FindByCode looks up a program by its code.
func (s *Store) FindByCode(ctx context.Context, code string) (domain.Program, error) {
	return s.scanProgram(s.db.QueryRowContext(ctx,
		`SELECT id, code, active FROM programs WHERE code = ?`, code,
	))
}

func (s *Store) scanProgram(row *sql.Row) (domain.Program, error) {
	var p domain.Program
	err := row.Scan(&p.ID, &p.Code, &p.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Program{}, domain.ErrProgramNotFound
	}
	if err != nil {
		return domain.Program{}, fmt.Errorf("scanning program: %w", err)
	}
	return p, nil
}
