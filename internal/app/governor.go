package app

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/campusops/traslados/internal/domain"
)

type edgeKey struct {
	from domain.State
	to   domain.State
}

// Governor validates proposed state transitions against the rule table and
// the actor's permissions. The graph is data-driven: validation is a single
// table lookup plus two independent predicate checks (reason present,
// permissions satisfied), so new states and edges are additive data changes.
//
// The governor snapshots the rule set at construction. Rules are read-mostly
// reference data; administrative edits require building a new governor.
type Governor struct {
	rules map[edgeKey]domain.TransitionRule
	edges domain.EdgeValidator
}

// NewGovernor indexes the active rules by (from, to) and pairs them with the
// compiled edge validator. It rejects rule sets that violate the table
// invariants: duplicate active rules for a pair, or rules leaving a terminal
// state.
func NewGovernor(rules []domain.TransitionRule, edges domain.EdgeValidator) (*Governor, error) {
	indexed := make(map[edgeKey]domain.TransitionRule, len(rules))
	for _, r := range rules {
		if !r.Active {
			continue
		}
		if r.From.IsTerminal() {
			return nil, fmt.Errorf("rule %s -> %s leaves a terminal state", r.From, r.To)
		}
		k := edgeKey{from: r.From, to: r.To}
		if _, dup := indexed[k]; dup {
			return nil, fmt.Errorf("duplicate active rule for %s -> %s", r.From, r.To)
		}
		indexed[k] = r
	}
	return &Governor{rules: indexed, edges: edges}, nil
}

// Validate checks a proposed transition and returns the matched rule's
// description for audit purposes. It performs no storage mutation; acting on
// the result and recording it in the ledger remains the caller's
// responsibility. Violations come back as *domain.TransitionError with the
// precise kind, never silently downgraded.
func (g *Governor) Validate(ctx context.Context, from, to domain.State, actorPerms []domain.Permission, reason string) (string, error) {
	ok, err := g.edges.Allowed(ctx, from, to)
	if err != nil {
		return "", fmt.Errorf("checking edge %s -> %s: %w", from, to, err)
	}

	rule, found := g.rules[edgeKey{from: from, to: to}]
	if !ok || !found {
		return "", &domain.TransitionError{Kind: domain.NoSuchEdge, From: from, To: to}
	}

	if rule.RequiresReason && strings.TrimSpace(reason) == "" {
		return "", &domain.TransitionError{Kind: domain.MissingReason, From: from, To: to}
	}

	var missing []domain.Permission
	for _, p := range rule.RequiredPermissions {
		if !slices.Contains(actorPerms, p) {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return "", &domain.TransitionError{
			Kind:    domain.InsufficientPermission,
			From:    from,
			To:      to,
			Missing: missing,
		}
	}

	return rule.Description, nil
}
