package app_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/campusops/traslados/internal/app"
	"github.com/campusops/traslados/internal/domain"
)

// --- Mocks ---

// mockSequenceStore is an in-memory SequenceStore with a scriptable failure
// schedule: the first failBefore calls to Next return a transient error.
type mockSequenceStore struct {
	mu         sync.Mutex
	counters   map[int]int64
	calls      int
	failBefore int
	failAlways bool
}

func newMockSequenceStore() *mockSequenceStore {
	return &mockSequenceStore{counters: make(map[int]int64)}
}

func (m *mockSequenceStore) Next(_ context.Context, year int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if m.failAlways || m.calls <= m.failBefore {
		return 0, errors.New("store timeout")
	}

	m.counters[year]++
	return m.counters[year], nil
}

func (m *mockSequenceStore) Current(_ context.Context, year int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[year], nil
}

func (m *mockSequenceStore) Stats(_ context.Context) ([]domain.YearCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := []domain.YearCount{}
	for year, count := range m.counters {
		stats = append(stats, domain.YearCount{Year: year, Count: count})
	}
	return stats, nil
}

// --- Tests ---

func TestAllocate_FormatsIdentifier(t *testing.T) {
	store := newMockSequenceStore()
	alloc := app.NewAllocator(store)

	id, err := alloc.Allocate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := app.FormatIdentifier(time.Now().UTC().Year(), 1)
	if id != want {
		t.Errorf("Allocate() = %q, want %q", id, want)
	}
}

func TestAllocate_RetriesThenSucceeds(t *testing.T) {
	store := newMockSequenceStore()
	store.failBefore = 2
	year := time.Now().UTC().Year()
	store.counters[year] = 4 // next successful increment yields 5

	alloc := app.NewAllocator(store)

	id, err := alloc.Allocate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := app.FormatIdentifier(year, 5); id != want {
		t.Errorf("Allocate() = %q, want %q", id, want)
	}
	if store.calls != 3 {
		t.Errorf("store called %d times, want 3", store.calls)
	}
}

func TestAllocate_ExhaustsAfterThreeAttempts(t *testing.T) {
	store := newMockSequenceStore()
	store.failAlways = true

	alloc := app.NewAllocator(store)

	_, err := alloc.Allocate(context.Background())
	if !errors.Is(err, domain.ErrAllocationExhausted) {
		t.Fatalf("expected ErrAllocationExhausted, got %v", err)
	}
	if store.calls != 3 {
		t.Errorf("store called %d times, want 3", store.calls)
	}
}

// zeroSequenceStore acknowledges every increment but returns no value,
// simulating a store consistency failure.
type zeroSequenceStore struct {
	calls int
}

func (z *zeroSequenceStore) Next(_ context.Context, _ int) (int64, error) {
	z.calls++
	return 0, nil
}

func (z *zeroSequenceStore) Current(_ context.Context, _ int) (int64, error) { return 0, nil }

func (z *zeroSequenceStore) Stats(_ context.Context) ([]domain.YearCount, error) { return nil, nil }

func TestAllocate_MissingCounterIsTransient(t *testing.T) {
	store := &zeroSequenceStore{}
	alloc := app.NewAllocator(store)

	_, err := alloc.Allocate(context.Background())
	if !errors.Is(err, domain.ErrAllocationExhausted) {
		t.Fatalf("expected ErrAllocationExhausted, got %v", err)
	}
	if store.calls != 3 {
		t.Errorf("store called %d times, want 3", store.calls)
	}
}

func TestAllocate_ConcurrentCallsAreDistinct(t *testing.T) {
	store := newMockSequenceStore()
	alloc := app.NewAllocator(store)

	const n = 25
	ids := make(chan string, n)
	var wg sync.WaitGroup

	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := alloc.Allocate(context.Background())
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool, n)
	for id := range ids {
		if seen[id] {
			t.Errorf("duplicate identifier %q", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Errorf("got %d distinct identifiers, want %d", len(seen), n)
	}
}

func TestLastIssued_NoneForFreshYear(t *testing.T) {
	alloc := app.NewAllocator(newMockSequenceStore())

	_, ok, err := alloc.LastIssued(context.Background(), 2031)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected no identifier for a year with no allocations")
	}
}

func TestLastIssued_ReturnsCurrentValue(t *testing.T) {
	store := newMockSequenceStore()
	store.counters[2025] = 999999

	alloc := app.NewAllocator(store)

	id, ok, err := alloc.LastIssued(context.Background(), 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected an identifier")
	}
	if id != "2025-999999" {
		t.Errorf("LastIssued = %q, want %q", id, "2025-999999")
	}
}

func TestFormatIdentifier(t *testing.T) {
	tests := []struct {
		year int
		seq  int64
		want string
	}{
		{2025, 1, "2025-000001"},
		{2025, 999999, "2025-999999"},
		{2026, 42, "2026-000042"},
	}

	for _, tt := range tests {
		if got := app.FormatIdentifier(tt.year, tt.seq); got != tt.want {
			t.Errorf("FormatIdentifier(%d, %d) = %q, want %q", tt.year, tt.seq, got, tt.want)
		}
	}
}
