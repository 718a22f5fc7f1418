package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusops/traslados/internal/domain"
)

// Resolver assigns a request to a target academic program with a three-tier
// fallback chain: the proposed candidate, a configured default, and finally a
// hard emergency sentinel. Resolution is total: every request gets a program
// assignment, and degraded outcomes are values on the result, not errors. The
// resolver is a pure read+compute component; recording the outcome in the
// ledger is the caller's responsibility.
type Resolver struct {
	dir              domain.ProgramDirectory
	defaultProgram   string
	emergencyProgram string
}

// NewResolver creates a resolver. defaultProgram is validated like any
// candidate before use; emergencyProgram is assumed valid and never checked.
func NewResolver(dir domain.ProgramDirectory, defaultProgram, emergencyProgram string) *Resolver {
	return &Resolver{
		dir:              dir,
		defaultProgram:   defaultProgram,
		emergencyProgram: emergencyProgram,
	}
}

// Resolve validates the candidate program reference and applies the fallback
// chain. IsValid=false only on the emergency tier; FallbackUsed=true on any
// tier past the first. Infrastructure errors at any tier degrade to the next
// tier instead of surfacing.
func (r *Resolver) Resolve(ctx context.Context, candidate, requestID string) domain.RoutingValidationResult {
	tag, err := r.validate(ctx, candidate)
	if err == nil && tag == "" {
		return domain.RoutingValidationResult{
			IsValid:           true,
			AssignedProgramID: candidate,
		}
	}
	if err != nil {
		// Directory unreachable or similar: existence cannot be confirmed.
		tag = domain.ReasonProgramNotExists
	}

	defTag, defErr := r.validate(ctx, r.defaultProgram)
	if defErr == nil && defTag == "" {
		return domain.RoutingValidationResult{
			IsValid:           true,
			AssignedProgramID: r.defaultProgram,
			FallbackUsed:      true,
			Reason:            fmt.Sprintf("%s: program %q failed validation for request %s; routed to default program %q", tag, candidate, requestID, r.defaultProgram),
		}
	}

	reason := fmt.Sprintf("%s: program %q and default program %q both failed validation for request %s; routed to emergency program %q", tag, candidate, r.defaultProgram, requestID, r.emergencyProgram)
	if defErr != nil {
		reason = fmt.Sprintf("%s: critical error validating fallback for request %s; routed to emergency program %q", tag, requestID, r.emergencyProgram)
	}

	return domain.RoutingValidationResult{
		IsValid:           false,
		AssignedProgramID: r.emergencyProgram,
		FallbackUsed:      true,
		Reason:            reason,
	}
}

// validate checks that the reference resolves to an existing, active program.
// It returns a reason tag for business invalidity, or an error for
// infrastructure failures. Lookup is by identifier first, then by code.
func (r *Resolver) validate(ctx context.Context, ref string) (string, error) {
	if ref == "" {
		return domain.ReasonProgramNotExists, nil
	}

	program, err := r.dir.FindByID(ctx, ref)
	if errors.Is(err, domain.ErrProgramNotFound) {
		program, err = r.dir.FindByCode(ctx, ref)
	}
	if errors.Is(err, domain.ErrProgramNotFound) {
		return domain.ReasonProgramNotExists, nil
	}
	if err != nil {
		return "", err
	}
	if !program.Active {
		return domain.ReasonProgramInactive, nil
	}
	return "", nil
}
