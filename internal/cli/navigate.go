package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// overlayMsg dispatches one overlay action through the coordinator.
type overlayMsg struct {
	action overlayAction
}

// overlayAppliedMsg is broadcast to every view on the stack after the
// coordinator has processed an action, so dependent widgets (open forms,
// cursors) can sync themselves to the new state.
type overlayAppliedMsg struct {
	action overlayAction
	before overlayState
	after  overlayState
}

// statusMsg sets a transient status line above the shortcut bar
// (the user-feedback surface for fire-and-forget confirmations).
type statusMsg struct {
	text string
}

// recommendationSavedMsg reports a confirmed course recommendation.
type recommendationSavedMsg struct {
	mentee string
	course string
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// dispatchOverlay returns a tea.Cmd that applies an overlay action.
func dispatchOverlay(a overlayAction) tea.Cmd {
	return func() tea.Msg { return overlayMsg{action: a} }
}
