package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/campusops/traslados/internal/domain"
)

// Retry budget for one allocation: 3 attempts with 100/200/400ms between them.
const (
	allocateMaxAttempts    = 3
	allocateInitialBackoff = 100 * time.Millisecond
)

// errCounterMissing signals that the store acknowledged the increment but
// returned no counter value. Treated as transient and retried.
var errCounterMissing = errors.New("sequence store returned no counter value")

// newAllocateBackoff builds the retry schedule for one allocation.
// BackOff implementations are stateful; always return a fresh instance.
func newAllocateBackoff() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = allocateInitialBackoff
	bo.RandomizationFactor = 0
	bo.Multiplier = 2
	return backoff.WithMaxRetries(bo, allocateMaxAttempts-1)
}

// Allocator issues radicado identifiers of the form YYYY-NNNNNN. Correctness
// under concurrency rests entirely on the store's atomic increment; the
// allocator holds no locks and keeps no state between calls, because
// allocation can occur from many independent processes.
type Allocator struct {
	store domain.SequenceStore
}

// NewAllocator creates an allocator over the given sequence store.
func NewAllocator(store domain.SequenceStore) *Allocator {
	return &Allocator{store: store}
}

// Allocate durably advances the current year's counter and returns the new
// identifier. Every successful call consumes shared state: never call it
// speculatively or more than once per identifier needed. Transient store
// failures are retried within the fixed budget; on exhaustion the error wraps
// domain.ErrAllocationExhausted and no identifier is returned. An in-flight
// retry sequence runs to its budget or success; there is no abort hook, since
// an incremented counter whose identifier was never delivered is a harmless
// gap.
func (a *Allocator) Allocate(ctx context.Context) (string, error) {
	year := time.Now().UTC().Year()

	var seq int64
	op := func() error {
		n, err := a.store.Next(ctx, year)
		if err != nil {
			return err
		}
		if n <= 0 {
			return errCounterMissing
		}
		seq = n
		return nil
	}

	if err := backoff.Retry(op, newAllocateBackoff()); err != nil {
		return "", fmt.Errorf("%w after %d attempts: %v", domain.ErrAllocationExhausted, allocateMaxAttempts, err)
	}

	return FormatIdentifier(year, seq), nil
}

// LastIssued returns the most recent identifier issued for the year. The
// second return is false when no allocation has ever occurred for that year.
func (a *Allocator) LastIssued(ctx context.Context, year int) (string, bool, error) {
	seq, err := a.store.Current(ctx, year)
	if err != nil {
		return "", false, fmt.Errorf("reading counter for %d: %w", year, err)
	}
	if seq == 0 {
		return "", false, nil
	}
	return FormatIdentifier(year, seq), true, nil
}

// Stats returns per-year allocation counts, most recent year first.
func (a *Allocator) Stats(ctx context.Context) ([]domain.YearCount, error) {
	return a.store.Stats(ctx)
}

// FormatIdentifier renders the public radicado format: 4-digit year, hyphen,
// sequence zero-padded to 6 digits. Consumers must not reformat it.
func FormatIdentifier(year int, seq int64) string {
	return fmt.Sprintf("%04d-%06d", year, seq)
}
