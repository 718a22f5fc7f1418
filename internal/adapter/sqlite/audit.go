package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/campusops/traslados/internal/domain"
)

// Compile-time check: Store implements domain.AuditStore.
var _ domain.AuditStore = (*Store)(nil)

// timeFormat is fixed-width to the nanosecond so stored timestamps sort
// lexicographically; RFC3339Nano trims trailing zeros and does not.
const timeFormat = "2006-01-02T15:04:05.000000000Z"

// Append inserts one audit entry. Entries are insert-only: no update or
// delete statement exists anywhere in this package.
func (s *Store) Append(ctx context.Context, e domain.AuditEntry) error {
	details, err := marshalPayload(e.Details)
	if err != nil {
		return fmt.Errorf("encoding details: %w", err)
	}
	source, err := marshalPayload(e.SourceData)
	if err != nil {
		return fmt.Errorf("encoding source data: %w", err)
	}
	target, err := marshalPayload(e.TargetData)
	if err != nil {
		return fmt.Errorf("encoding target data: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO audit_entries
		   (id, request_id, event_type, actor_id, timestamp, details, ip_address, user_agent, source_data, target_data)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.RequestID, string(e.EventType), e.ActorID,
		e.Timestamp.UTC().Format(timeFormat),
		details, nullable(e.IPAddress), nullable(e.UserAgent), source, target,
	)
	if err != nil {
		return fmt.Errorf("inserting audit entry: %w", err)
	}
	return nil
}

// History returns every entry for the request, newest first. Timestamp
// ordering is applied at read time; the entry id breaks ties
// deterministically.
func (s *Store) History(ctx context.Context, requestID string) ([]domain.AuditEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, request_id, event_type, actor_id, timestamp, details, ip_address, user_agent, source_data, target_data
		 FROM audit_entries
		 WHERE request_id = ?
		 ORDER BY timestamp DESC, id DESC`, requestID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying audit history: %w", err)
	}
	defer rows.Close()

	entries := []domain.AuditEntry{}
	for rows.Next() {
		e, err := scanAuditEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func scanAuditEntry(rows *sql.Rows) (domain.AuditEntry, error) {
	var e domain.AuditEntry
	var eventType, timestamp string
	var details, ip, userAgent, source, target sql.NullString

	err := rows.Scan(&e.ID, &e.RequestID, &eventType, &e.ActorID, &timestamp,
		&details, &ip, &userAgent, &source, &target)
	if err != nil {
		return domain.AuditEntry{}, fmt.Errorf("scanning audit entry: %w", err)
	}

	e.EventType = domain.EventType(eventType)
	e.Timestamp, err = time.Parse(timeFormat, timestamp)
	if err != nil {
		return domain.AuditEntry{}, fmt.Errorf("parsing audit timestamp: %w", err)
	}
	e.IPAddress = ip.String
	e.UserAgent = userAgent.String

	if e.Details, err = unmarshalPayload(details); err != nil {
		return domain.AuditEntry{}, fmt.Errorf("decoding details: %w", err)
	}
	if e.SourceData, err = unmarshalPayload(source); err != nil {
		return domain.AuditEntry{}, fmt.Errorf("decoding source data: %w", err)
	}
	if e.TargetData, err = unmarshalPayload(target); err != nil {
		return domain.AuditEntry{}, fmt.Errorf("decoding target data: %w", err)
	}

	return e, nil
}

func marshalPayload(m map[string]any) (any, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func unmarshalPayload(v sql.NullString) (map[string]any, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(v.String), &m); err != nil {
		return nil, err
	}
	return m, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
