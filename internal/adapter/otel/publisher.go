package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/campusops/traslados/internal/domain"
)

// TracingAlertPublisher wraps a domain.AlertPublisher with OpenTelemetry
// tracing.
type TracingAlertPublisher struct {
	next   domain.AlertPublisher
	tracer trace.Tracer
}

// Compile-time check: TracingAlertPublisher implements domain.AlertPublisher.
var _ domain.AlertPublisher = (*TracingAlertPublisher)(nil)

// NewTracingAlertPublisher creates a tracing decorator around the given
// publisher.
func NewTracingAlertPublisher(next domain.AlertPublisher) *TracingAlertPublisher {
	return &TracingAlertPublisher{
		next:   next,
		tracer: otel.Tracer(tracerName),
	}
}

func (p *TracingAlertPublisher) PublishFallback(ctx context.Context, requestID string, result domain.RoutingValidationResult) error {
	ctx, span := p.tracer.Start(ctx, "AlertPublisher.PublishFallback",
		trace.WithAttributes(
			attribute.String("routing.request_id", requestID),
			attribute.String("routing.assigned_program", result.AssignedProgramID),
			attribute.Bool("routing.is_valid", result.IsValid),
			attribute.Bool("routing.fallback_used", result.FallbackUsed),
		),
	)
	defer span.End()

	err := p.next.PublishFallback(ctx, requestID, result)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
