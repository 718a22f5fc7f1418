package river

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"

	"github.com/campusops/traslados/internal/domain"
)

// Compile-time check: Publisher implements domain.AlertPublisher.
var _ domain.AlertPublisher = (*Publisher)(nil)

// FallbackAlertArgs carries a routing fallback to the alert queue. River
// serializes this as JSON into its job queue table. It includes a snapshot
// of the routing result at publish time, so the worker never needs to query
// the database (and results must not be re-resolved anyway: program validity
// can change between calls).
type FallbackAlertArgs struct {
	RequestID         string `json:"request_id"`
	AssignedProgramID string `json:"assigned_program_id"`
	IsValid           bool   `json:"is_valid"`
	FallbackUsed      bool   `json:"fallback_used"`
	Reason            string `json:"reason"`
}

// Kind returns the unique job type identifier used by River's job routing.
func (FallbackAlertArgs) Kind() string { return "routing.fallback_alert" }

// Client is the River client type parameterized for SQLite (*sql.Tx).
type Client = river.Client[*sql.Tx]

// Publisher implements domain.AlertPublisher by enqueuing River jobs.
type Publisher struct {
	client *Client
}

// NewPublisher creates a publisher backed by the given River client.
func NewPublisher(client *Client) *Publisher {
	return &Publisher{client: client}
}

// PublishFallback enqueues a fallback alert as an async job in River.
func (p *Publisher) PublishFallback(ctx context.Context, requestID string, result domain.RoutingValidationResult) error {
	_, err := p.client.Insert(ctx, FallbackAlertArgs{
		RequestID:         requestID,
		AssignedProgramID: result.AssignedProgramID,
		IsValid:           result.IsValid,
		FallbackUsed:      result.FallbackUsed,
		Reason:            result.Reason,
	}, nil)
	if err != nil {
		return fmt.Errorf("enqueuing fallback alert: %w", err)
	}
	return nil
}
