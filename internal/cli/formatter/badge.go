package formatter

import (
	"strings"

	"github.com/helenrobert/mentordesk/internal/domain"
)

// StatusBadge returns a colored submission-status pill like "● PENDING".
func (t Theme) StatusBadge(status domain.SubmissionStatus) string {
	label := strings.ToUpper(string(status))
	switch status {
	case domain.SubmissionApproved:
		return t.StyleSuccess.Render("● " + label)
	case domain.SubmissionReturned:
		return t.StyleAlert.Render("● " + label)
	default:
		return t.StyleCTA.Render("● " + label)
	}
}

// SeverityIcon returns the feed icon for a notification severity.
func (t Theme) SeverityIcon(sev domain.Severity) string {
	switch sev {
	case domain.SeveritySuccess:
		return t.StyleSuccess.Render("✔")
	case domain.SeverityWarning:
		return t.StyleAlert.Render("!")
	default:
		return t.StyleAccent.Render("i")
	}
}

// OutcomeLabel returns a colored session-tracker outcome.
func (t Theme) OutcomeLabel(outcome domain.SessionOutcome) string {
	switch outcome {
	case domain.SessionCompleted:
		return t.StyleSuccess.Render("Completed")
	case domain.SessionCanceled:
		return t.StyleAlert.Render("Canceled")
	default:
		return t.StyleCTA.Render("Pending")
	}
}
