package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// appModel is the root bubbletea Model for the TUI.
// It owns the view stack (dashboard at the bottom, the notifications page
// pushed above it) and routes every overlay action through the coordinator.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool

	// Transient confirmation line shown above the shortcut bar.
	status string
}

func newAppModel(app *App) appModel {
	state := &SharedState{
		App:     app,
		Profile: defaultProfile(),
	}
	// MENTORDESK_THEME=dark starts in dark mode; "t" toggles either way.
	state.Overlay.Dark = os.Getenv("MENTORDESK_THEME") == "dark"

	m := appModel{state: state}

	// Start with the dashboard as the home view.
	m.viewStack = []View{newDashboardView(state)}

	return m
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// overlayEnv builds the existence checks the coordinator needs. Lookups hit
// the in-memory store synchronously; the event loop is single-threaded.
func (m *appModel) overlayEnv() overlayEnv {
	app := m.state.App
	return overlayEnv{
		HasMentee: func(id string) bool {
			_, err := app.Mentees.GetByID(context.Background(), id)
			return err == nil
		},
		HasNotification: func(id string) bool {
			_, err := app.Notifications.GetByID(context.Background(), id)
			return err == nil
		},
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if v := m.activeView(); v != nil {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.status = ""
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case overlayMsg:
		return m.applyAction(msg.action)

	case statusMsg:
		m.status = msg.text
		return m, nil

	case recommendationSavedMsg:
		m.status = fmt.Sprintf("Course recommended to %s: %s", msg.mentee, msg.course)
		return m, nil
	}

	// Forward other messages (data loads, form ticks) to the active view.
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

// applyAction runs one action through the coordinator and tells every view
// on the stack what changed so dependent widgets (open forms, cursors) can
// sync themselves.
func (m appModel) applyAction(a overlayAction) (tea.Model, tea.Cmd) {
	before := m.state.Overlay
	m.state.Overlay = applyOverlay(before, a, m.overlayEnv())

	m.state.App.logger().Debug("overlay action",
		zap.String("action", a.name()),
		zap.String("target", a.ID),
		zap.Bool("changed", before != m.state.Overlay),
	)

	var cmds []tea.Cmd
	applied := overlayAppliedMsg{action: a, before: before, after: m.state.Overlay}
	for i, v := range m.viewStack {
		updated, cmd := v.Update(applied)
		m.viewStack[i] = updated.(View)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// A focused search box or an open form owns the keyboard.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	m.status = ""

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "t":
		// Theme toggle works from every view.
		return m.applyAction(overlayAction{Kind: actToggleTheme})
	}

	if msg.Type == tea.KeyEsc && len(m.viewStack) > 1 && !m.state.Overlay.AnyOpen() {
		// Back from the notifications page to the dashboard.
		m.viewStack = m.viewStack[:len(m.viewStack)-1]
		return m, nil
	}

	// Forward to active view
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	sections = append(sections, m.renderHeader())

	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}

	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	th := m.state.Theme()
	title := th.StyleAccent.Bold(true).Render("mentordesk")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	breadcrumb := ""
	if len(crumbs) > 0 {
		breadcrumb = " " + th.Dim("›") + " " + th.Dim(strings.Join(crumbs, " › "))
	}

	header := title + breadcrumb + "  " + th.Dim("[") +
		th.StyleSuccess.Render(m.state.Profile.Name) + th.Dim("]")

	return header + "\n" + th.Rule(max(m.state.Width, 20))
}

func (m *appModel) renderStatusBar() string {
	th := m.state.Theme()

	var hints []string
	if m.status != "" {
		hints = append(hints, th.StyleSuccess.Render(m.status))
	} else if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, th.Dim(b.Help().Key+": "+b.Help().Desc))
		}
		hints = append(hints, th.Dim("t: theme"), th.Dim("q: quit"))
	}

	return th.Rule(max(m.state.Width, 20)) + "\n" + strings.Join(hints, "  ")
}
