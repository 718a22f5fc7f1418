package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/campusops/traslados/internal/domain"
)

func TestFindByID_And_Code(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.DB().ExecContext(ctx,
		`INSERT INTO programs (id, code, active) VALUES ('PROG-MED', 'MED-001', 1)`); err != nil {
		t.Fatalf("seeding program: %v", err)
	}

	byID, err := store.FindByID(ctx, "PROG-MED")
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if byID.Code != "MED-001" || !byID.Active {
		t.Errorf("FindByID = %+v", byID)
	}

	byCode, err := store.FindByCode(ctx, "MED-001")
	if err != nil {
		t.Fatalf("FindByCode failed: %v", err)
	}
	if byCode.ID != "PROG-MED" {
		t.Errorf("FindByCode = %+v", byCode)
	}
}

func TestFind_MissReturnsNotFound(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.FindByID(ctx, "PROG-GHOST"); !errors.Is(err, domain.ErrProgramNotFound) {
		t.Errorf("FindByID miss = %v, want ErrProgramNotFound", err)
	}
	if _, err := store.FindByCode(ctx, "GHOST-001"); !errors.Is(err, domain.ErrProgramNotFound) {
		t.Errorf("FindByCode miss = %v, want ErrProgramNotFound", err)
	}
}

func TestDefaultProgram_Seeded(t *testing.T) {
	store := newTestStore(t)

	p, err := store.FindByID(context.Background(), "PROG-DEFAULT")
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if !p.Active {
		t.Error("default program must be active")
	}
}

func TestInactiveProgram_Returned(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.DB().ExecContext(ctx,
		`INSERT INTO programs (id, code, active) VALUES ('PROG-OLD', 'OLD-001', 0)`); err != nil {
		t.Fatalf("seeding program: %v", err)
	}

	p, err := store.FindByID(ctx, "PROG-OLD")
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if p.Active {
		t.Error("Active = true, want false")
	}
}
