package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/helenrobert/mentordesk/internal/domain"
)

// notificationsLoadedMsg signals that the full feed has been loaded.
type notificationsLoadedMsg struct {
	notes []*domain.Notification
	err   error
}

// notificationsView is the full-page notification feed, pushed above the
// dashboard by "view all". Selecting an entry opens its detail panel through
// the coordinator so the selection survives navigation.
type notificationsView struct {
	state   *SharedState
	notes   []*domain.Notification
	loading bool
	err     error
	cursor  int
}

func newNotificationsView(state *SharedState) *notificationsView {
	return &notificationsView{state: state, loading: true}
}

func (v *notificationsView) ID() ViewID    { return ViewNotifications }
func (v *notificationsView) Title() string { return "Notifications" }

func (v *notificationsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *notificationsView) Init() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		notes, err := app.Notifications.List(context.Background())
		return notificationsLoadedMsg{notes: notes, err: err}
	}
}

func (v *notificationsView) selectedNote() *domain.Notification {
	id := v.state.Overlay.SelectedNoteID
	if id == "" {
		return nil
	}
	for _, n := range v.notes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

func (v *notificationsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notificationsLoadedMsg:
		v.loading = false
		v.notes = msg.notes
		v.err = msg.err
		if v.cursor >= len(v.notes) {
			v.cursor = 0
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.notes)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(v.notes) {
				return v, dispatchOverlay(overlayAction{Kind: actSelectNote, ID: v.notes[v.cursor].ID})
			}
		case "esc":
			// An open surface absorbs the dismissal; the appModel only pops
			// this page once nothing is left open.
			if v.state.Overlay.AnyOpen() {
				return v, dispatchOverlay(overlayAction{Kind: actDismissTop})
			}
		}
	}
	return v, nil
}

func (v *notificationsView) View() string {
	th := v.state.Theme()

	if v.loading {
		return "\n  " + th.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + th.StyleAlert.Render("Error: "+v.err.Error())
	}

	var b strings.Builder
	b.WriteString(th.Header(fmt.Sprintf("ALL NOTIFICATIONS (%d)", len(v.notes))) + "\n\n")

	if len(v.notes) == 0 {
		b.WriteString("  " + th.Dim("The feed is empty.") + "\n")
	}

	selected := v.state.Overlay.SelectedNoteID
	for i, n := range v.notes {
		cursor := "  "
		msgStyle := th.StyleFg
		if i == v.cursor {
			cursor = th.StyleSuccess.Render("▸ ")
			msgStyle = th.StyleBold
		}
		marker := " "
		if n.ID == selected {
			marker = th.StyleCTA.Render("•")
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s %s\n",
			cursor, th.SeverityIcon(n.Severity), msgStyle.Render(n.Message), th.Dim(n.Date), marker))
	}

	if n := v.selectedNote(); n != nil {
		details := n.Details
		if details == "" {
			details = n.Message
		}
		body := th.StyleFg.Render(details) + "\n" + th.Dim(n.Date) + "\n\n" + th.Dim("esc: close")
		b.WriteString("\n" + th.RenderBox("Details", body))
	}

	return b.String()
}
