package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardShowsSeededData(t *testing.T) {
	d := newTestDriver(t)
	view := d.View()

	assert.Contains(t, view, "MENTEES")
	assert.Contains(t, view, "Aisha Bello")
	assert.Contains(t, view, "72%")
	assert.Contains(t, view, "SUBMISSIONS")
	assert.Contains(t, view, "Reflection - Glory")
	assert.Contains(t, view, "Utilization")
	assert.Contains(t, view, "UPCOMING SESSIONS")
	assert.Contains(t, view, "SESSION TRACKER")
	assert.Contains(t, view, "REVIEWS & RATINGS")
}

func TestDashboardSearchFiltersRoster(t *testing.T) {
	d := newTestDriver(t)

	d.PressKey('/')
	m := model(d)
	assert.True(t, viewCapturesInput(m.activeView()))

	d.Type("ngozi")
	d.PressEnter() // blur

	view := d.View()
	assert.Contains(t, view, "Ngozi Eze")
	assert.NotContains(t, view, "John Okoro")
	assert.NotContains(t, view, "David Musa")
	assert.Contains(t, view, "1 results")
}

func TestDashboardSearchNoMatch(t *testing.T) {
	d := newTestDriver(t)

	d.PressKey('/')
	d.Type("zzz")
	d.PressEnter()

	assert.Contains(t, d.View(), "No mentees match the search.")
}

func TestDashboardSelectMenteeOpensDrawer(t *testing.T) {
	d := newTestDriver(t)

	d.PressEnter() // cursor starts on Aisha
	require.Equal(t, "m1", model(d).state.Overlay.SelectedMenteeID)

	view := d.View()
	assert.Contains(t, view, "AISHA BELLO")
	assert.Contains(t, view, "Intake Assessment")
	assert.Contains(t, view, "r: recommend course")

	// Switching to another mentee swaps the drawer content in place.
	d.PressDown()
	d.PressEnter()
	assert.Equal(t, "m2", model(d).state.Overlay.SelectedMenteeID)
	assert.Contains(t, d.View(), "JOHN OKORO")

	d.PressEsc()
	assert.False(t, model(d).state.Overlay.DrawerOpen())
	assert.NotContains(t, d.View(), "Intake Assessment")
}

func TestDashboardApproveAndReturnSubmissions(t *testing.T) {
	d := newTestDriver(t)

	// Seed: s1 pending, s2 pending, s3 approved.
	require.Equal(t, 2, strings.Count(d.View(), "PENDING"))
	require.Equal(t, 1, strings.Count(d.View(), "APPROVED"))

	d.PressTab() // focus the submission queue
	d.PressKey('a')

	view := d.View()
	assert.Equal(t, 1, strings.Count(view, "PENDING"))
	assert.Equal(t, 2, strings.Count(view, "APPROVED"))

	// Returning the same submission overrides the approval.
	d.PressKey('x')
	view = d.View()
	assert.Equal(t, 1, strings.Count(view, "RETURNED"))
	assert.Equal(t, 1, strings.Count(view, "APPROVED"))
}

func TestDashboardNotificationsDropdown(t *testing.T) {
	d := newTestDriver(t)

	d.PressKey('n')
	require.True(t, model(d).state.Overlay.NotificationsOpen)

	view := d.View()
	assert.Contains(t, view, "NOTIFICATIONS (4)")
	assert.Contains(t, view, "New mentee assignment submitted.")
	assert.Contains(t, view, "v: view all")

	// Same key toggles it closed.
	d.PressKey('n')
	assert.False(t, model(d).state.Overlay.NotificationsOpen)
	assert.NotContains(t, d.View(), "v: view all")
}

func TestDashboardViewAllOpensFeedPage(t *testing.T) {
	d := newTestDriver(t)

	d.PressKey('n')
	d.PressKey('v')

	m := model(d)
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, ViewNotifications, m.activeView().ID())
	assert.False(t, m.state.Overlay.NotificationsOpen, "the dropdown closes on navigation")
	assert.Contains(t, d.View(), "ALL NOTIFICATIONS (4)")
}

func TestDashboardProfileMenu(t *testing.T) {
	d := newTestDriver(t)

	// Settings is unreachable while the menu is closed.
	d.PressKey('s')
	assert.False(t, model(d).state.Overlay.SettingsOpen)

	d.PressKey('p')
	view := d.View()
	assert.Contains(t, view, "helen.robert@email.com")
	assert.Contains(t, view, "s: account settings")
	assert.Contains(t, view, "l: log out")

	d.PressKey('s')
	m := model(d)
	assert.True(t, m.state.Overlay.SettingsOpen)
	assert.False(t, m.state.Overlay.ProfileOpen, "opening settings swallows the menu")
	assert.Contains(t, d.View(), "UPDATE ACCOUNT SETTINGS")
	assert.True(t, viewCapturesInput(m.activeView()))
}

func TestDashboardSettingsEscCancels(t *testing.T) {
	d := newTestDriver(t)

	d.PressKey('p')
	d.PressKey('s')
	require.True(t, model(d).state.Overlay.SettingsOpen)

	d.PressEsc()
	m := model(d)
	assert.False(t, m.state.Overlay.SettingsOpen)
	assert.Equal(t, "Helen Robert", m.state.Profile.Name, "cancelling keeps the profile untouched")
	assert.NotContains(t, d.View(), "UPDATE ACCOUNT SETTINGS")
}

func TestDashboardSettingsSubmitUpdatesProfile(t *testing.T) {
	d := newTestDriver(t)

	d.PressKey('p')
	d.PressKey('s')
	require.True(t, model(d).state.Overlay.SettingsOpen)

	// Accept the prefilled name, email and role.
	d.PressEnter()
	d.PressEnter()
	d.PressEnter()

	m := model(d)
	assert.False(t, m.state.Overlay.SettingsOpen)
	assert.Equal(t, "Helen Robert", m.state.Profile.Name)
	assert.Contains(t, d.View(), "Account settings updated")
}

func TestDashboardRecommendFlow(t *testing.T) {
	d := newTestDriver(t)

	// Recommend is gated on the drawer.
	d.PressKey('p') // make sure an unrelated dropdown doesn't interfere
	d.PressKey('p')
	require.False(t, model(d).state.Overlay.DrawerOpen())

	d.PressEnter() // open Aisha's drawer
	d.PressKey('r')
	m := model(d)
	require.True(t, m.state.Overlay.RecommendOpen)
	assert.Contains(t, d.View(), "RECOMMEND COURSE")

	d.Type("UI Fundamentals")
	d.PressEnter()

	m = model(d)
	assert.False(t, m.state.Overlay.RecommendOpen)
	assert.True(t, m.state.Overlay.DrawerOpen(), "confirming keeps the drawer open")
	view := d.View()
	assert.Contains(t, view, "Course recommended to Aisha Bello: UI Fundamentals")
	assert.Contains(t, view, "UI Fundamentals", "the drawer lists the recorded recommendation")
}

func TestDashboardRecommendEscKeepsDrawer(t *testing.T) {
	d := newTestDriver(t)

	d.PressEnter()
	d.PressKey('r')
	require.True(t, model(d).state.Overlay.RecommendOpen)

	d.PressEsc()
	m := model(d)
	assert.False(t, m.state.Overlay.RecommendOpen)
	assert.True(t, m.state.Overlay.DrawerOpen())

	// Dismissing again closes the drawer itself.
	d.PressEsc()
	assert.False(t, model(d).state.Overlay.DrawerOpen())
}

func TestDashboardModalExclusionEndToEnd(t *testing.T) {
	d := newTestDriver(t)

	d.PressEnter()  // drawer
	d.PressKey('r') // recommend modal
	require.True(t, model(d).state.Overlay.RecommendOpen)

	// The modal captures input, so the profile shortcut cannot fire while
	// it is open; cancel it first, then go through the menu.
	d.PressEsc()
	d.PressKey('p')
	d.PressKey('s')

	m := model(d)
	assert.True(t, m.state.Overlay.SettingsOpen)
	assert.False(t, m.state.Overlay.RecommendOpen)
}

func TestDashboardRefreshReloads(t *testing.T) {
	d := newTestDriver(t)

	d.PressKey('r') // no drawer open: plain refresh
	assert.Contains(t, d.View(), "Aisha Bello")
	assert.False(t, model(d).state.Overlay.RecommendOpen)
}
