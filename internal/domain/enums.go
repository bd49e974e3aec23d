package domain

type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionReturned SubmissionStatus = "returned"
)

// ValidSubmissionStatuses is the canonical set of accepted status strings.
var ValidSubmissionStatuses = map[string]bool{
	"pending": true, "approved": true, "returned": true,
}

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
)

type SessionOutcome string

const (
	SessionCompleted SessionOutcome = "completed"
	SessionCanceled  SessionOutcome = "canceled"
	SessionPending   SessionOutcome = "pending"
)
