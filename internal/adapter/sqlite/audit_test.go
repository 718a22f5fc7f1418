package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/campusops/traslados/internal/domain"
)

func entryAt(id, requestID string, et domain.EventType, ts time.Time) domain.AuditEntry {
	return domain.AuditEntry{
		ID:        id,
		RequestID: requestID,
		EventType: et,
		ActorID:   domain.SystemActor,
		Timestamp: ts,
	}
}

func TestAppend_And_History(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ts := time.Date(2025, 3, 1, 10, 0, 0, 123456789, time.UTC)
	entry := domain.AuditEntry{
		ID:         "e-1",
		RequestID:  "REQ-1",
		EventType:  domain.EventCreate,
		ActorID:    "student-9",
		Timestamp:  ts,
		Details:    map[string]any{"course": "CS101", "seats": float64(2)},
		IPAddress:  "10.0.0.1",
		UserAgent:  "cli",
		SourceData: map[string]any{"group": "A"},
		TargetData: map[string]any{"group": "B"},
	}

	if err := store.Append(ctx, entry); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	history, err := store.History(ctx, "REQ-1")
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("got %d entries, want 1", len(history))
	}

	got := history[0]
	if got.ID != "e-1" || got.ActorID != "student-9" || got.EventType != domain.EventCreate {
		t.Errorf("entry = %+v", got)
	}
	if !got.Timestamp.Equal(ts) {
		t.Errorf("Timestamp = %v, want %v", got.Timestamp, ts)
	}
	if got.Details["course"] != "CS101" || got.Details["seats"] != float64(2) {
		t.Errorf("Details = %v", got.Details)
	}
	if got.IPAddress != "10.0.0.1" || got.UserAgent != "cli" {
		t.Errorf("network metadata = %q / %q", got.IPAddress, got.UserAgent)
	}
	if got.SourceData["group"] != "A" || got.TargetData["group"] != "B" {
		t.Errorf("snapshots = %v / %v", got.SourceData, got.TargetData)
	}
}

func TestHistory_NewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	// Append out of chronological order; History must sort at read time.
	for _, e := range []domain.AuditEntry{
		entryAt("e-2", "REQ-1", domain.EventRadicate, base.Add(2*time.Second)),
		entryAt("e-1", "REQ-1", domain.EventCreate, base.Add(1*time.Second)),
		entryAt("e-3", "REQ-1", domain.EventRoute, base.Add(3*time.Second)),
	} {
		if err := store.Append(ctx, e); err != nil {
			t.Fatalf("Append(%s) failed: %v", e.ID, err)
		}
	}

	history, err := store.History(ctx, "REQ-1")
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}

	want := []string{"e-3", "e-2", "e-1"}
	if len(history) != len(want) {
		t.Fatalf("got %d entries, want %d", len(history), len(want))
	}
	for i, id := range want {
		if history[i].ID != id {
			t.Errorf("history[%d].ID = %q, want %q", i, history[i].ID, id)
		}
	}
}

func TestHistory_SubSecondOrdering(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	// A whole second sorts after any fraction of it only if the stored
	// format is fixed-width.
	for _, e := range []domain.AuditEntry{
		entryAt("e-1", "REQ-1", domain.EventCreate, base.Add(100*time.Millisecond)),
		entryAt("e-2", "REQ-1", domain.EventRadicate, base.Add(time.Second)),
	} {
		if err := store.Append(ctx, e); err != nil {
			t.Fatalf("Append(%s) failed: %v", e.ID, err)
		}
	}

	history, err := store.History(ctx, "REQ-1")
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if history[0].ID != "e-2" || history[1].ID != "e-1" {
		t.Errorf("order = [%s %s], want [e-2 e-1]", history[0].ID, history[1].ID)
	}
}

func TestHistory_EmptyForUnknownRequest(t *testing.T) {
	store := newTestStore(t)

	history, err := store.History(context.Background(), "REQ-GHOST")
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if history == nil {
		t.Fatal("History should return an empty slice, not nil")
	}
	if len(history) != 0 {
		t.Errorf("got %d entries, want 0", len(history))
	}
}

func TestHistory_ScopedToRequest(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ts := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	if err := store.Append(ctx, entryAt("e-1", "REQ-1", domain.EventCreate, ts)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := store.Append(ctx, entryAt("e-2", "REQ-2", domain.EventCreate, ts)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	history, err := store.History(ctx, "REQ-1")
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 1 || history[0].ID != "e-1" {
		t.Errorf("history = %+v, want only e-1", history)
	}
}
