package fsm

import (
	"context"
	"errors"

	loopfsm "github.com/looplab/fsm"

	"github.com/campusops/traslados/internal/domain"
)

// Compile-time check: Validator implements domain.EdgeValidator.
var _ domain.EdgeValidator = (*Validator)(nil)

// eventName derives a synthetic FSM event name from a destination state.
// Rules are keyed by (from, to) pairs rather than named events, so every
// edge into the same destination shares one event with multiple sources.
func eventName(to domain.State) string {
	switch to {
	case domain.StateInReview:
		return "review"
	case domain.StateWaitingInfo:
		return "request_info"
	case domain.StateApproved:
		return "approve"
	case domain.StateRejected:
		return "reject"
	default:
		return "reopen"
	}
}

// buildEvents compiles active transition rules into looplab/fsm EventDesc
// format, consolidating rules with the same destination into a single
// EventDesc with multiple source states.
func buildEvents(rules []domain.TransitionRule) []loopfsm.EventDesc {
	grouped := make(map[domain.State][]string)
	order := make([]domain.State, 0)

	for _, r := range rules {
		if !r.Active {
			continue
		}
		if _, exists := grouped[r.To]; !exists {
			order = append(order, r.To)
		}
		grouped[r.To] = append(grouped[r.To], string(r.From))
	}

	out := make([]loopfsm.EventDesc, 0, len(order))
	for _, to := range order {
		out = append(out, loopfsm.EventDesc{
			Name: eventName(to),
			Src:  grouped[to],
			Dst:  string(to),
		})
	}
	return out
}

// Validator implements domain.EdgeValidator using looplab/fsm. It creates a
// short-lived FSM instance per Allowed call, initialized with the request's
// current state. This is necessary because looplab/fsm is stateful (it
// tracks the current state internally).
type Validator struct {
	events []loopfsm.EventDesc
}

// New compiles the given rule set into an FSM-backed edge validator. The
// compiled graph is immutable; rebuild the validator after administrative
// rule changes.
func New(rules []domain.TransitionRule) *Validator {
	return &Validator{events: buildEvents(rules)}
}

// Allowed reports whether the state graph permits moving from one state to
// the other. Terminal states have no outgoing events, so any attempt to
// leave them is rejected here.
func (v *Validator) Allowed(ctx context.Context, from, to domain.State) (bool, error) {
	machine := loopfsm.NewFSM(string(from), v.events, nil)

	if err := machine.Event(ctx, eventName(to)); err != nil {
		var invalidEvent loopfsm.InvalidEventError
		var noTransition loopfsm.NoTransitionError
		if errors.As(err, &invalidEvent) || errors.As(err, &noTransition) {
			return false, nil
		}
		return false, err
	}

	return machine.Current() == string(to), nil
}
