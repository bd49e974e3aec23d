package cli

import (
	"github.com/helenrobert/mentordesk/internal/cli/formatter"
	"github.com/helenrobert/mentordesk/internal/domain"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Overlay is the coordinator's state record. Views read it to decide
	// what to draw and mutate it only through overlay actions handled by
	// the appModel.
	Overlay overlayState

	// Profile is the signed-in mentor. Edits from the account-settings
	// form land here and last for the session only.
	Profile domain.MentorProfile

	// Terminal dimensions
	Width  int
	Height int
}

// Theme returns the style set for the current display mode.
func (s *SharedState) Theme() formatter.Theme {
	return formatter.NewTheme(s.Overlay.Dark)
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and the
// status/shortcut bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}

// defaultProfile is the seeded mentor account.
func defaultProfile() domain.MentorProfile {
	return domain.MentorProfile{
		Name:  "Helen Robert",
		Email: "helen.robert@email.com",
		Role:  "Senior Mentor",
	}
}
