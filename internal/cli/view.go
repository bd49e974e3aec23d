package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each addressable view in the TUI.
type ViewID int

const (
	ViewDashboard ViewID = iota
	ViewNotifications
)

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// inputCapturer is implemented by views that sometimes own the keyboard
// (a focused search box, an open form). While capturing, global shortcut
// keys are forwarded to the view instead.
type inputCapturer interface {
	capturesInput() bool
}

// viewCapturesInput reports whether the view currently owns all key events.
func viewCapturesInput(v View) bool {
	if c, ok := v.(inputCapturer); ok {
		return c.capturesInput()
	}
	return false
}
