package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationsPageListsFeed(t *testing.T) {
	d := newTestDriver(t)
	d.PressKey('n')
	d.PressKey('v')
	m := model(d)
	require.Equal(t, ViewNotifications, m.activeView().ID())

	view := d.View()
	assert.Contains(t, view, "ALL NOTIFICATIONS (4)")
	assert.Contains(t, view, "New mentee assignment submitted.")
	assert.Contains(t, view, "Admin shared new resources for mentors.")
	assert.Contains(t, view, "2025-09-15")
}

func TestNotificationsPageDetailSelection(t *testing.T) {
	d := newTestDriver(t)
	d.PressKey('n')
	d.PressKey('v')

	d.PressDown() // cursor to n2
	d.PressEnter()
	require.Equal(t, "n2", model(d).state.Overlay.SelectedNoteID)
	assert.Contains(t, d.View(), "Scheduled mentorship session with John Doe")

	// Selecting another entry replaces the detail.
	d.PressDown()
	d.PressEnter()
	assert.Equal(t, "n3", model(d).state.Overlay.SelectedNoteID)
	assert.Contains(t, d.View(), "Average rating is now 4.8")

	d.PressEsc()
	assert.Empty(t, model(d).state.Overlay.SelectedNoteID)
	assert.NotContains(t, d.View(), "Average rating is now 4.8")
}

func TestNotificationsPageStaleSelectionCleared(t *testing.T) {
	d := newTestDriver(t)
	d.PressKey('n')
	d.PressKey('v')

	d.Send(overlayMsg{action: overlayAction{Kind: actSelectNote, ID: "n1"}})
	require.Equal(t, "n1", model(d).state.Overlay.SelectedNoteID)

	// An id that is no longer in the feed clears the selection entirely.
	d.Send(overlayMsg{action: overlayAction{Kind: actSelectNote, ID: "gone"}})
	assert.Empty(t, model(d).state.Overlay.SelectedNoteID)
}

func TestNotificationsPageEscReturnsToDashboard(t *testing.T) {
	d := newTestDriver(t)
	d.PressKey('n')
	d.PressKey('v')
	require.Len(t, model(d).viewStack, 2)

	// First Esc clears an open detail, second leaves the page.
	d.PressEnter()
	d.PressEsc()
	require.Len(t, model(d).viewStack, 2)

	d.PressEsc()
	require.Len(t, model(d).viewStack, 1)
	popped := model(d)
	assert.Equal(t, ViewDashboard, popped.activeView().ID())
}

func TestNotificationsPageSelectionSurvivesNavigation(t *testing.T) {
	d := newTestDriver(t)
	d.PressKey('n')
	d.PressKey('v')
	d.PressEnter() // select n1

	// Leaving the page does not clear the selection; it lives in the
	// coordinator, not the page.
	d.Send(popViewMsg{})
	assert.Equal(t, "n1", model(d).state.Overlay.SelectedNoteID)
}
