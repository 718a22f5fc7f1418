package sqlite_test

import (
	"context"
	"slices"
	"testing"

	"github.com/campusops/traslados/internal/domain"
)

func TestActiveRules_SeededGraph(t *testing.T) {
	store := newTestStore(t)

	rules, err := store.ActiveRules(context.Background())
	if err != nil {
		t.Fatalf("ActiveRules failed: %v", err)
	}
	if len(rules) != len(domain.SeedRules) {
		t.Fatalf("got %d rules, want %d", len(rules), len(domain.SeedRules))
	}

	find := func(from, to domain.State) *domain.TransitionRule {
		for i := range rules {
			if rules[i].From == from && rules[i].To == to {
				return &rules[i]
			}
		}
		return nil
	}

	for _, seed := range domain.SeedRules {
		got := find(seed.From, seed.To)
		if got == nil {
			t.Errorf("missing seeded rule %s -> %s", seed.From, seed.To)
			continue
		}
		if got.RequiresReason != seed.RequiresReason {
			t.Errorf("%s -> %s: RequiresReason = %t, want %t", seed.From, seed.To, got.RequiresReason, seed.RequiresReason)
		}
		if !slices.Equal(got.RequiredPermissions, seed.RequiredPermissions) {
			t.Errorf("%s -> %s: permissions = %v, want %v", seed.From, seed.To, got.RequiredPermissions, seed.RequiredPermissions)
		}
	}
}

func TestActiveRules_ExcludesDeactivated(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.DB().ExecContext(ctx,
		`UPDATE transition_rules SET active = 0 WHERE from_state = 'PENDING' AND to_state = 'APPROVED'`)
	if err != nil {
		t.Fatalf("deactivating rule: %v", err)
	}

	rules, err := store.ActiveRules(ctx)
	if err != nil {
		t.Fatalf("ActiveRules failed: %v", err)
	}
	for _, r := range rules {
		if r.From == domain.StatePending && r.To == domain.StateApproved {
			t.Error("deactivated rule still returned")
		}
	}
	if len(rules) != len(domain.SeedRules)-1 {
		t.Errorf("got %d rules, want %d", len(rules), len(domain.SeedRules)-1)
	}
}
