package domain_test

import (
	"testing"

	"github.com/campusops/traslados/internal/domain"
)

func TestSeedRules_NoEdgeLeavesTerminalState(t *testing.T) {
	for _, r := range domain.SeedRules {
		if r.Active && r.From.IsTerminal() {
			t.Errorf("rule %s -> %s leaves terminal state %s", r.From, r.To, r.From)
		}
	}
}

func TestSeedRules_AtMostOneActiveRulePerEdge(t *testing.T) {
	seen := make(map[[2]domain.State]bool)
	for _, r := range domain.SeedRules {
		if !r.Active {
			continue
		}
		k := [2]domain.State{r.From, r.To}
		if seen[k] {
			t.Errorf("duplicate active rule for %s -> %s", r.From, r.To)
		}
		seen[k] = true
	}
}

func TestSeedRules_RejectionsRequireReason(t *testing.T) {
	for _, r := range domain.SeedRules {
		if r.To == domain.StateRejected && !r.RequiresReason {
			t.Errorf("rule %s -> REJECTED does not require a reason", r.From)
		}
	}
}

func TestSeedRules_StatesAreKnown(t *testing.T) {
	known := make(map[domain.State]bool, len(domain.States))
	for _, s := range domain.States {
		known[s] = true
	}
	for _, r := range domain.SeedRules {
		if !known[r.From] {
			t.Errorf("rule references unknown from state %q", r.From)
		}
		if !known[r.To] {
			t.Errorf("rule references unknown to state %q", r.To)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		state domain.State
		want  bool
	}{
		{domain.StatePending, false},
		{domain.StateInReview, false},
		{domain.StateWaitingInfo, false},
		{domain.StateApproved, true},
		{domain.StateRejected, true},
	}

	for _, tt := range tests {
		if got := tt.state.IsTerminal(); got != tt.want {
			t.Errorf("IsTerminal(%s) = %t, want %t", tt.state, got, tt.want)
		}
	}
}
