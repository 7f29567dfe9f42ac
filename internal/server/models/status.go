package models

// Status is a share's position in the disclosure state machine.
type Status string

const (
	StatusSent          Status = "SENT"
	StatusOpened        Status = "OPENED"
	StatusCodeRequested Status = "CODE_REQUESTED"
	StatusCodeProvided  Status = "CODE_PROVIDED"
	StatusFullAccess    Status = "FULL_ACCESS"
	StatusReading       Status = "READING"
	StatusRevoked       Status = "REVOKED"
)

// Statuses lists every status in disclosure order.
var Statuses = []Status{
	StatusSent, StatusOpened, StatusCodeRequested, StatusCodeProvided,
	StatusFullAccess, StatusReading, StatusRevoked,
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// HasFullAccess reports whether the recipient redeemed a code.
func (s Status) HasFullAccess() bool {
	return s == StatusFullAccess || s == StatusReading
}

// Event names a state machine input.
type Event string

const (
	EventOpen          Event = "open"
	EventPreviewRead   Event = "preview_read"
	EventRequestAccess Event = "request_access"
	EventApprove       Event = "approve"
	EventRedeem        Event = "redeem"
	EventProgress      Event = "progress"
	EventRevoke        Event = "revoke"
	EventCodeDead      Event = "code_dead"
)

// Outcome is what the transition table says about a (status, event) pair.
type Outcome int

const (
	// Reject means the event is not accepted in this status.
	Reject Outcome = iota
	// Move means the event is accepted and leads to the returned status,
	// which may equal the current one.
	Move
	// Ignore means the event is an idempotent no-op in this status.
	Ignore
)

type edge struct {
	outcome Outcome
	to      Status
}

// transitions is the single source of truth for status changes. Guards
// that depend on more than the status (code liveness, attempt counts,
// already-set timestamps) are applied by the caller.
var transitions = map[Status]map[Event]edge{
	StatusSent: {
		EventOpen:          {Move, StatusOpened},
		EventRequestAccess: {Move, StatusCodeRequested},
		EventRevoke:        {Move, StatusRevoked},
	},
	StatusOpened: {
		EventOpen:          {Ignore, StatusOpened},
		EventPreviewRead:   {Move, StatusOpened},
		EventRequestAccess: {Move, StatusCodeRequested},
		EventRevoke:        {Move, StatusRevoked},
	},
	StatusCodeRequested: {
		EventOpen:          {Ignore, StatusCodeRequested},
		EventPreviewRead:   {Move, StatusCodeRequested},
		EventRequestAccess: {Ignore, StatusCodeRequested},
		EventApprove:       {Move, StatusCodeProvided},
		EventRevoke:        {Move, StatusRevoked},
	},
	StatusCodeProvided: {
		EventOpen:          {Ignore, StatusCodeProvided},
		EventPreviewRead:   {Move, StatusCodeProvided},
		EventRequestAccess: {Move, StatusCodeRequested},
		EventApprove:       {Move, StatusCodeProvided},
		EventRedeem:        {Move, StatusFullAccess},
		EventCodeDead:      {Move, StatusCodeRequested},
		EventRevoke:        {Move, StatusRevoked},
	},
	StatusFullAccess: {
		EventOpen:        {Ignore, StatusFullAccess},
		EventPreviewRead: {Move, StatusFullAccess},
		EventProgress:    {Move, StatusReading},
		EventRevoke:      {Move, StatusRevoked},
	},
	StatusReading: {
		EventOpen:        {Ignore, StatusReading},
		EventPreviewRead: {Move, StatusReading},
		EventProgress:    {Move, StatusReading},
		EventRevoke:      {Move, StatusRevoked},
	},
	StatusRevoked: {
		EventRevoke: {Ignore, StatusRevoked},
	},
}

// Transition looks up the table. For Reject the returned status is from.
func Transition(from Status, ev Event) (Status, Outcome) {
	e, ok := transitions[from][ev]
	if !ok {
		return from, Reject
	}
	return e.to, e.outcome
}
