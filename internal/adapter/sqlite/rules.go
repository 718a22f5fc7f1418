package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/campusops/traslados/internal/domain"
)

// Compile-time check: Store implements domain.RuleRepository.
var _ domain.RuleRepository = (*Store)(nil)

// ActiveRules returns the active transition rules. The (from_state, to_state)
// primary key guarantees at most one rule per edge.
func (s *Store) ActiveRules(ctx context.Context) ([]domain.TransitionRule, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT from_state, to_state, description, requires_reason, required_permissions
		 FROM transition_rules
		 WHERE active = 1
		 ORDER BY from_state, to_state`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing transition rules: %w", err)
	}
	defer rows.Close()

	var rules []domain.TransitionRule
	for rows.Next() {
		var r domain.TransitionRule
		var from, to, perms string
		if err := rows.Scan(&from, &to, &r.Description, &r.RequiresReason, &perms); err != nil {
			return nil, fmt.Errorf("scanning transition rule: %w", err)
		}

		r.From = domain.State(from)
		r.To = domain.State(to)
		r.Active = true
		if err := json.Unmarshal([]byte(perms), &r.RequiredPermissions); err != nil {
			return nil, fmt.Errorf("decoding permissions for %s -> %s: %w", from, to, err)
		}

		rules = append(rules, r)
	}

	return rules, rows.Err()
}
