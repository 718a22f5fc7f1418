package river

import (
	"context"
	"log/slog"

	"github.com/riverqueue/river"
)

// FallbackAlertWorker processes fallback alerts from the River queue. It
// surfaces degraded routing outcomes to monitoring consumers via the log;
// actual notification delivery belongs to external systems.
type FallbackAlertWorker struct {
	river.WorkerDefaults[FallbackAlertArgs]
}

// Work processes a single fallback alert.
func (w *FallbackAlertWorker) Work(ctx context.Context, job *river.Job[FallbackAlertArgs]) error {
	slog.WarnContext(ctx, "routing fallback",
		"request_id", job.Args.RequestID,
		"assigned_program", job.Args.AssignedProgramID,
		"is_valid", job.Args.IsValid,
		"reason", job.Args.Reason,
		"job_id", job.ID,
		"attempt", job.Attempt,
	)
	return nil
}
