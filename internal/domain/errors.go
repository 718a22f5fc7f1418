package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for simple conditions without extra context.
var (
	// ErrAllocationExhausted is returned when the allocator could not obtain
	// a unique sequence value within its retry budget. Callers should surface
	// it as a retryable server error, never fabricate an identifier.
	ErrAllocationExhausted = errors.New("radicado allocation exhausted")

	// ErrProgramNotFound is returned by directory lookups that miss.
	ErrProgramNotFound = errors.New("program not found")
)

// TransitionErrorKind distinguishes the ways a transition can be rejected by
// the governor.
type TransitionErrorKind int

const (
	// NoSuchEdge: no active rule permits the (from, to) pair, including any
	// attempt to leave a terminal state.
	NoSuchEdge TransitionErrorKind = iota

	// MissingReason: the matched rule requires a justification and none was
	// supplied.
	MissingReason

	// InsufficientPermission: the actor lacks at least one required
	// permission.
	InsufficientPermission
)

// TransitionError is returned when a state transition violates the rule
// table. It carries enough detail for the caller to present an actionable
// message: the edge, the missing field, or the missing permissions.
type TransitionError struct {
	Kind    TransitionErrorKind
	From    State
	To      State
	Missing []Permission
}

func (e *TransitionError) Error() string {
	switch e.Kind {
	case MissingReason:
		return fmt.Sprintf("transition %s -> %s requires a justification", e.From, e.To)
	case InsufficientPermission:
		return fmt.Sprintf("transition %s -> %s requires permissions %v", e.From, e.To, e.Missing)
	default:
		return fmt.Sprintf("no rule permits transition %s -> %s", e.From, e.To)
	}
}
