package domain

// Program is the directory's read-only view of an academic program.
type Program struct {
	ID     string
	Code   string
	Active bool
}

// Machine-parseable reason tags. When a routing result carries a reason, it
// starts with one of these, followed by ": " and human-readable text.
const (
	ReasonProgramNotExists = "PROGRAM_NOT_EXISTS"
	ReasonProgramInactive  = "PROGRAM_INACTIVE"
)

// RoutingValidationResult is the outcome of resolving a request to a target
// program. Routing invalidity is a value, never an error: every request ends
// up assigned to something usable. Results are produced fresh per call and
// must not be cached, since program validity can change between calls.
type RoutingValidationResult struct {
	IsValid           bool
	AssignedProgramID string
	FallbackUsed      bool
	Reason            string
}

// ShouldNotifyAdmins reports whether a routing result warrants an
// administrative alert: any fallback, even a successful one, means the
// catalog data for the original candidate was bad or missing.
func ShouldNotifyAdmins(r RoutingValidationResult) bool {
	return r.FallbackUsed
}
