package domain

import "context"

// SequenceStore is the durable counter behind radicado numbering. Next is the
// only mutation in this core and must be a single atomic increment at the
// store, never a read-modify-write pair performed by the caller.
type SequenceStore interface {
	// Next increments and returns the counter for the given year, creating it
	// on first use. Two concurrent calls for the same year are guaranteed
	// distinct, monotonically increasing results.
	Next(ctx context.Context, year int) (int64, error)

	// Current returns the last issued sequence for the year, zero when no
	// allocation has ever occurred. Read-only.
	Current(ctx context.Context, year int) (int64, error)

	// Stats returns per-year allocation counts ordered by year descending.
	Stats(ctx context.Context) ([]YearCount, error)
}

// YearCount is one row of allocation statistics.
type YearCount struct {
	Year  int
	Count int64
}

// AuditStore is the append-only persistence contract for the ledger.
type AuditStore interface {
	Append(ctx context.Context, entry AuditEntry) error

	// History returns every entry for the request ordered by timestamp
	// descending. An empty slice, not an error, when there is no history.
	History(ctx context.Context, requestID string) ([]AuditEntry, error)
}

// ProgramDirectory is the read-only lookup of academic programs. Lookups that
// miss return ErrProgramNotFound; any other error is infrastructure-level.
type ProgramDirectory interface {
	FindByID(ctx context.Context, id string) (Program, error)
	FindByCode(ctx context.Context, code string) (Program, error)
}

// RuleRepository loads the transition rule table.
type RuleRepository interface {
	ActiveRules(ctx context.Context) ([]TransitionRule, error)
}

// EdgeValidator checks (from, to) legality against the compiled state graph.
type EdgeValidator interface {
	Allowed(ctx context.Context, from, to State) (bool, error)
}

// AlertPublisher emits administrative alerts for degraded routing outcomes.
type AlertPublisher interface {
	PublishFallback(ctx context.Context, requestID string, result RoutingValidationResult) error
}
