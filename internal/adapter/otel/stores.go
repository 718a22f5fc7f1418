package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/campusops/traslados/internal/domain"
)

const tracerName = "github.com/campusops/traslados/internal/adapter/otel"

// TracingSequenceStore wraps a domain.SequenceStore with OpenTelemetry
// tracing. Each method creates a span with semantic attributes and records
// errors.
type TracingSequenceStore struct {
	next   domain.SequenceStore
	tracer trace.Tracer
}

// Compile-time check: TracingSequenceStore implements domain.SequenceStore.
var _ domain.SequenceStore = (*TracingSequenceStore)(nil)

// NewTracingSequenceStore creates a tracing decorator around the given store.
func NewTracingSequenceStore(next domain.SequenceStore) *TracingSequenceStore {
	return &TracingSequenceStore{
		next:   next,
		tracer: otel.Tracer(tracerName),
	}
}

func (s *TracingSequenceStore) Next(ctx context.Context, year int) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "SequenceStore.Next",
		trace.WithAttributes(attribute.Int("counter.year", year)),
	)
	defer span.End()

	seq, err := s.next.Next(ctx, year)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(attribute.Int64("counter.sequence", seq))
	}
	return seq, err
}

func (s *TracingSequenceStore) Current(ctx context.Context, year int) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "SequenceStore.Current",
		trace.WithAttributes(attribute.Int("counter.year", year)),
	)
	defer span.End()

	seq, err := s.next.Current(ctx, year)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return seq, err
}

func (s *TracingSequenceStore) Stats(ctx context.Context) ([]domain.YearCount, error) {
	ctx, span := s.tracer.Start(ctx, "SequenceStore.Stats")
	defer span.End()

	stats, err := s.next.Stats(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(attribute.Int("result.count", len(stats)))
	}
	return stats, err
}

// TracingAuditStore wraps a domain.AuditStore with OpenTelemetry tracing.
type TracingAuditStore struct {
	next   domain.AuditStore
	tracer trace.Tracer
}

// Compile-time check: TracingAuditStore implements domain.AuditStore.
var _ domain.AuditStore = (*TracingAuditStore)(nil)

// NewTracingAuditStore creates a tracing decorator around the given store.
func NewTracingAuditStore(next domain.AuditStore) *TracingAuditStore {
	return &TracingAuditStore{
		next:   next,
		tracer: otel.Tracer(tracerName),
	}
}

func (s *TracingAuditStore) Append(ctx context.Context, entry domain.AuditEntry) error {
	ctx, span := s.tracer.Start(ctx, "AuditStore.Append",
		trace.WithAttributes(
			attribute.String("audit.request_id", entry.RequestID),
			attribute.String("audit.event_type", string(entry.EventType)),
			attribute.String("audit.actor_id", entry.ActorID),
		),
	)
	defer span.End()

	err := s.next.Append(ctx, entry)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (s *TracingAuditStore) History(ctx context.Context, requestID string) ([]domain.AuditEntry, error) {
	ctx, span := s.tracer.Start(ctx, "AuditStore.History",
		trace.WithAttributes(attribute.String("audit.request_id", requestID)),
	)
	defer span.End()

	entries, err := s.next.History(ctx, requestID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(attribute.Int("result.count", len(entries)))
	}
	return entries, err
}
