package domain

// State is a lifecycle state of a group change request. The enumeration is
// closed: stores and callers must not invent states outside this set.
type State string

const (
	StatePending     State = "PENDING"
	StateInReview    State = "IN_REVIEW"
	StateWaitingInfo State = "WAITING_INFO"
	StateApproved    State = "APPROVED"
	StateRejected    State = "REJECTED"
)

// States lists every valid lifecycle state.
var States = []State{
	StatePending,
	StateInReview,
	StateWaitingInfo,
	StateApproved,
	StateRejected,
}

// IsTerminal reports whether the state has no permitted outgoing transitions.
func (s State) IsTerminal() bool {
	return s == StateApproved || s == StateRejected
}

// Permission is a tag an actor must hold to perform certain transitions.
type Permission string

const (
	PermUpdateEnrollment Permission = "UPDATE_ENROLLMENT"
	PermViewReports      Permission = "VIEW_REPORTS"
)

// TransitionRule defines one permitted edge of the request state graph.
// Identity is the (From, To) pair; at most one active rule may exist per pair.
type TransitionRule struct {
	From                State
	To                  State
	Description         string
	RequiresReason      bool
	RequiredPermissions []Permission
	Active              bool
}

// SeedRules is the permitted state graph shipped at system setup. Rules are
// reference data: administrative reconfiguration may extend them, request
// processing never mutates them. Rejections always require a justification.
var SeedRules = []TransitionRule{
	{From: StatePending, To: StateInReview, Description: "send request to review", RequiredPermissions: []Permission{PermViewReports}, Active: true},
	{From: StatePending, To: StateWaitingInfo, Description: "request additional information", RequiresReason: true, RequiredPermissions: []Permission{PermViewReports}, Active: true},
	{From: StatePending, To: StateApproved, Description: "approve request directly", RequiredPermissions: []Permission{PermUpdateEnrollment}, Active: true},
	{From: StatePending, To: StateRejected, Description: "reject request directly", RequiresReason: true, RequiredPermissions: []Permission{PermUpdateEnrollment}, Active: true},
	{From: StateInReview, To: StateWaitingInfo, Description: "request additional information during review", RequiresReason: true, RequiredPermissions: []Permission{PermViewReports}, Active: true},
	{From: StateInReview, To: StateApproved, Description: "approve reviewed request", RequiredPermissions: []Permission{PermUpdateEnrollment}, Active: true},
	{From: StateInReview, To: StateRejected, Description: "reject reviewed request", RequiresReason: true, RequiredPermissions: []Permission{PermUpdateEnrollment}, Active: true},
	{From: StateWaitingInfo, To: StateInReview, Description: "resume review with supplied information", RequiredPermissions: []Permission{PermViewReports}, Active: true},
	{From: StateWaitingInfo, To: StateApproved, Description: "approve request after information received", RequiredPermissions: []Permission{PermUpdateEnrollment}, Active: true},
	{From: StateWaitingInfo, To: StateRejected, Description: "reject request after information received", RequiresReason: true, RequiredPermissions: []Permission{PermUpdateEnrollment}, Active: true},
}
