package domain

import "time"

// EventType classifies an audit ledger entry. The strings are a public
// contract consumed by reporting tools; never rename them.
type EventType string

const (
	EventCreate        EventType = "CREATE"
	EventUpdate        EventType = "UPDATE"
	EventDelete        EventType = "DELETE"
	EventApprove       EventType = "APPROVE"
	EventReject        EventType = "REJECT"
	EventRadicate      EventType = "RADICATE"
	EventRoute         EventType = "ROUTE"
	EventFallback      EventType = "FALLBACK"
	EventRouteAssigned EventType = "ROUTE_ASSIGNED"
)

// SystemActor is the actor id recorded for automated events.
const SystemActor = "system"

// AuditEntry is one immutable record of a domain event. The ledger only
// observes requests; RequestID is a reference, not ownership. Once appended
// an entry is never updated or removed.
type AuditEntry struct {
	ID         string
	RequestID  string
	EventType  EventType
	ActorID    string
	Timestamp  time.Time
	Details    map[string]any
	IPAddress  string
	UserAgent  string
	SourceData map[string]any
	TargetData map[string]any
}
