package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campusops/traslados/internal/domain"
)

// NetworkMeta carries optional client network metadata for audited actions.
type NetworkMeta struct {
	IPAddress string
	UserAgent string
}

// Ledger is the append-only system of record for every lifecycle event.
// Entries are never updated or removed, and a store failure is always
// propagated: an action whose audit entry cannot be durably recorded must
// not be reported as completed.
type Ledger struct {
	store domain.AuditStore
}

// NewLedger creates a ledger over the given audit store.
func NewLedger(store domain.AuditStore) *Ledger {
	return &Ledger{store: store}
}

// Append persists one entry, defaulting its id and timestamp when unset, and
// returns the stored entry. Well-formed entries are never rejected for
// business reasons; the only failure mode is the storage layer.
func (l *Ledger) Append(ctx context.Context, entry domain.AuditEntry) (domain.AuditEntry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	if entry.ActorID == "" {
		entry.ActorID = domain.SystemActor
	}

	if err := l.store.Append(ctx, entry); err != nil {
		return domain.AuditEntry{}, fmt.Errorf("appending audit entry: %w", err)
	}
	return entry, nil
}

// History returns the request's entries, newest first. A request with no
// history yields an empty slice, never an error.
func (l *Ledger) History(ctx context.Context, requestID string) ([]domain.AuditEntry, error) {
	return l.store.History(ctx, requestID)
}

// LogCreation records the creation of a request with the actor-supplied
// payload and optional network metadata.
func (l *Ledger) LogCreation(ctx context.Context, requestID, actorID string, payload map[string]any, meta NetworkMeta) (domain.AuditEntry, error) {
	return l.Append(ctx, domain.AuditEntry{
		RequestID: requestID,
		EventType: domain.EventCreate,
		ActorID:   actorID,
		Details:   payload,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
	})
}

// LogRadicacion records a numbering event: the issued identifier, the
// computed priority, and the criteria that produced it. Always attributed to
// the system actor.
func (l *Ledger) LogRadicacion(ctx context.Context, requestID, radicado, priority string, criteria map[string]any) (domain.AuditEntry, error) {
	return l.Append(ctx, domain.AuditEntry{
		RequestID: requestID,
		EventType: domain.EventRadicate,
		ActorID:   domain.SystemActor,
		Details: map[string]any{
			"radicado": radicado,
			"priority": priority,
			"criteria": criteria,
		},
	})
}

// LogRouting records a routing decision: the assigned program and the
// rationale behind the decision.
func (l *Ledger) LogRouting(ctx context.Context, requestID, programID, rationale string) (domain.AuditEntry, error) {
	return l.Append(ctx, domain.AuditEntry{
		RequestID: requestID,
		EventType: domain.EventRoute,
		ActorID:   domain.SystemActor,
		Details: map[string]any{
			"assigned_program": programID,
			"rationale":        rationale,
		},
	})
}

// LogFallback records that routing fell back from the originally requested
// program to another one.
func (l *Ledger) LogFallback(ctx context.Context, requestID, originalRef, fallbackRef, reason string) (domain.AuditEntry, error) {
	return l.Append(ctx, domain.AuditEntry{
		RequestID: requestID,
		EventType: domain.EventFallback,
		ActorID:   domain.SystemActor,
		Details: map[string]any{
			"original_program": originalRef,
			"fallback_program": fallbackRef,
			"reason":           reason,
		},
	})
}

// LogRouteAssigned records the fully resolved route: the final program, the
// decision taken, a snapshot of the validation result, and free-form
// diagnostic context for troubleshooting.
func (l *Ledger) LogRouteAssigned(ctx context.Context, requestID, programID, decision string, result domain.RoutingValidationResult, diagnostics map[string]any) (domain.AuditEntry, error) {
	return l.Append(ctx, domain.AuditEntry{
		RequestID: requestID,
		EventType: domain.EventRouteAssigned,
		ActorID:   domain.SystemActor,
		Details: map[string]any{
			"final_program": programID,
			"decision":      decision,
			"validation": map[string]any{
				"is_valid":            result.IsValid,
				"assigned_program_id": result.AssignedProgramID,
				"fallback_used":       result.FallbackUsed,
				"reason":              result.Reason,
			},
			"diagnostics": diagnostics,
		},
	})
}
