package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/helenrobert/mentordesk/internal/cli/formatter"
	"github.com/helenrobert/mentordesk/internal/domain"
	"github.com/helenrobert/mentordesk/internal/service"
)

// ── static card data ─────────────────────────────────────────────────────────

// statCards is the KPI row. Like the rest of the dataset these are fixed
// display values for the session.
var statCards = []struct {
	title, value, hint string
}{
	{"Utilization", "72%", "Sessions booked vs available"},
	{"Avg. Rating", "4.7", "From learners"},
	{"Active Mentees", "24", "Currently active"},
	{"At-risk", "3", "Needs attention"},
}

var reviews = []domain.Review{
	{Quote: "Excellent mentor — very helpful!", Author: "Aisha"},
	{Quote: "Great feedback on assignments", Author: "John"},
}

var resources = []string{"Onboarding Guide", "Help Center", "Contact Admin"}

var intakeAnswers = []domain.IntakeAnswer{
	{Question: "What motivates you?", Answer: "To build a career in product design."},
	{Question: "Time availability?", Answer: "10 hours/week."},
}

// ── data types ───────────────────────────────────────────────────────────────

// dashboardData holds the loaded entity collections for the dashboard view.
type dashboardData struct {
	roster        []*domain.Mentee
	submissions   []*domain.Submission
	notifications []*domain.Notification
	entries       []*domain.SessionEntry
	events        []*domain.ScheduleEvent
}

// dashboardLoadedMsg signals that dashboard data has been loaded.
type dashboardLoadedMsg struct {
	data dashboardData
	err  error
}

// dashboardPanel identifies which left-column pane owns the cursor.
type dashboardPanel int

const (
	panelMentees dashboardPanel = iota
	panelSubmissions
)

// ── view ─────────────────────────────────────────────────────────────────────

// dashboardView is the home screen: the roster pane with its search filter,
// the submission review queue, the KPI/schedule/tracker columns, and every
// overlay surface the coordinator can open on top of them.
type dashboardView struct {
	state   *SharedState
	data    *dashboardData
	loading bool
	err     error

	search       textinput.Model
	focus        dashboardPanel
	menteeCursor int
	subCursor    int

	// Open modal forms; nil while the corresponding slot is closed.
	settingsForm  *huh.Form
	recommendForm *huh.Form

	// Form value holders.
	profileName  string
	profileEmail string
	profileRole  string
	courseQuery  string
}

func newDashboardView(state *SharedState) *dashboardView {
	search := textinput.New()
	search.Placeholder = "Search mentees..."
	search.Prompt = "/ "
	search.CharLimit = 64

	return &dashboardView{
		state:   state,
		loading: true,
		search:  search,
	}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "view mentee")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "approve")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "return")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "notifications")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "profile")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.loadData()
}

// capturesInput reports whether the search box or an open form owns the
// keyboard right now.
func (v *dashboardView) capturesInput() bool {
	return v.search.Focused() || v.settingsForm != nil || v.recommendForm != nil
}

// ── data loading ─────────────────────────────────────────────────────────────

func (v *dashboardView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()

		roster, err := app.Mentees.List(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		subs, err := app.Submissions.List(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		notes, err := app.Notifications.List(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		entries, err := app.Schedule.Entries(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		events, err := app.Schedule.Events(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		return dashboardLoadedMsg{data: dashboardData{
			roster:        roster,
			submissions:   subs,
			notifications: notes,
			entries:       entries,
			events:        events,
		}}
	}
}

// filteredRoster recomputes the visible mentee subset from the current
// query on every observation; there is no cached copy to drift.
func (v *dashboardView) filteredRoster() []*domain.Mentee {
	if v.data == nil {
		return nil
	}
	return service.FilterMentees(v.data.roster, v.search.Value())
}

func (v *dashboardView) selectedMentee() *domain.Mentee {
	if v.data == nil || v.state.Overlay.SelectedMenteeID == "" {
		return nil
	}
	for _, m := range v.data.roster {
		if m.ID == v.state.Overlay.SelectedMenteeID {
			return m
		}
	}
	return nil
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.data = &msg.data
		v.clampCursors()
		return v, nil

	case overlayAppliedMsg:
		return v, v.syncForms(msg.after)

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	// Forward non-key messages (blink ticks etc.) to whichever widget is active.
	if v.settingsForm != nil {
		return v, v.updateSettingsForm(msg)
	}
	if v.recommendForm != nil {
		return v, v.updateRecommendForm(msg)
	}
	if v.search.Focused() {
		var cmd tea.Cmd
		v.search, cmd = v.search.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *dashboardView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Open modals own the keyboard outright. Escape cancels the modal
	// before the form sees it.
	if v.settingsForm != nil {
		if msg.Type == tea.KeyEsc {
			return v, dispatchOverlay(overlayAction{Kind: actCloseSettings})
		}
		return v, v.updateSettingsForm(msg)
	}
	if v.recommendForm != nil {
		if msg.Type == tea.KeyEsc {
			return v, dispatchOverlay(overlayAction{Kind: actCloseRecommend})
		}
		return v, v.updateRecommendForm(msg)
	}

	if v.search.Focused() {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			v.search.Blur()
			return v, nil
		}
		var cmd tea.Cmd
		v.search, cmd = v.search.Update(msg)
		v.clampCursors()
		return v, cmd
	}

	ov := v.state.Overlay
	switch msg.String() {
	case "/":
		return v, v.search.Focus()

	case "tab":
		if v.focus == panelMentees {
			v.focus = panelSubmissions
		} else {
			v.focus = panelMentees
		}

	case "up", "k":
		v.moveCursor(-1)

	case "down", "j":
		v.moveCursor(1)

	case "enter":
		if v.focus == panelMentees {
			filtered := v.filteredRoster()
			if v.menteeCursor < len(filtered) {
				return v, dispatchOverlay(overlayAction{Kind: actSelectMentee, ID: filtered[v.menteeCursor].ID})
			}
		}

	case "a":
		return v, v.actOnSubmission(v.state.App.Submissions.Approve)

	case "x":
		return v, v.actOnSubmission(v.state.App.Submissions.Return)

	case "n":
		if ov.NotificationsOpen {
			return v, dispatchOverlay(overlayAction{Kind: actCloseNotifications})
		}
		return v, dispatchOverlay(overlayAction{Kind: actOpenNotifications})

	case "p":
		if ov.ProfileOpen {
			return v, dispatchOverlay(overlayAction{Kind: actCloseProfile})
		}
		return v, dispatchOverlay(overlayAction{Kind: actOpenProfile})

	case "v":
		// "View all" in the notifications dropdown navigates to the feed.
		if ov.NotificationsOpen {
			return v, tea.Batch(
				dispatchOverlay(overlayAction{Kind: actCloseNotifications}),
				pushView(newNotificationsView(v.state)),
			)
		}

	case "s":
		if ov.ProfileOpen {
			return v, dispatchOverlay(overlayAction{Kind: actOpenSettings})
		}

	case "l":
		// Log out: in a real deployment this would bounce to sign-in.
		if ov.ProfileOpen {
			return v, tea.Quit
		}

	case "r":
		if ov.DrawerOpen() {
			return v, dispatchOverlay(overlayAction{Kind: actOpenRecommend})
		}
		v.loading = true
		v.err = nil
		return v, v.loadData()

	case "esc":
		if ov.AnyOpen() {
			return v, dispatchOverlay(overlayAction{Kind: actDismissTop})
		}
	}

	return v, nil
}

func (v *dashboardView) moveCursor(delta int) {
	if v.focus == panelMentees {
		v.menteeCursor = clamp(v.menteeCursor+delta, 0, len(v.filteredRoster())-1)
		return
	}
	if v.data != nil {
		v.subCursor = clamp(v.subCursor+delta, 0, len(v.data.submissions)-1)
	}
}

func (v *dashboardView) clampCursors() {
	v.menteeCursor = clamp(v.menteeCursor, 0, len(v.filteredRoster())-1)
	if v.data != nil {
		v.subCursor = clamp(v.subCursor, 0, len(v.data.submissions)-1)
	}
}

func clamp(n, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// actOnSubmission applies a workflow transition to the submission under the
// cursor, then reloads the queue. Acting on an id that has vanished is a
// silent no-op inside the service.
func (v *dashboardView) actOnSubmission(fn func(context.Context, string) error) tea.Cmd {
	if v.data == nil || v.subCursor >= len(v.data.submissions) {
		return nil
	}
	v.focus = panelSubmissions
	id := v.data.submissions[v.subCursor].ID
	load := v.loadData()
	return func() tea.Msg {
		if err := fn(context.Background(), id); err != nil {
			return dashboardLoadedMsg{err: err}
		}
		return load()
	}
}

// ── modal form lifecycle ─────────────────────────────────────────────────────

// syncForms creates or tears down modal forms to match the coordinator's
// state after an action was applied.
func (v *dashboardView) syncForms(after overlayState) tea.Cmd {
	var cmds []tea.Cmd

	if after.SettingsOpen && v.settingsForm == nil {
		v.settingsForm = v.newSettingsForm()
		cmds = append(cmds, v.settingsForm.Init())
	}
	if !after.SettingsOpen {
		v.settingsForm = nil
	}

	if after.RecommendOpen && v.recommendForm == nil {
		v.recommendForm = v.newRecommendForm()
		cmds = append(cmds, v.recommendForm.Init())
	}
	if !after.RecommendOpen {
		v.recommendForm = nil
	}

	v.clampCursors()
	return tea.Batch(cmds...)
}

func (v *dashboardView) newSettingsForm() *huh.Form {
	v.profileName = v.state.Profile.Name
	v.profileEmail = v.state.Profile.Email
	v.profileRole = v.state.Profile.Role

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Full Name").Value(&v.profileName).Validate(required("name")),
			huh.NewInput().Title("Email Address").Value(&v.profileEmail).Validate(required("email")),
			huh.NewInput().Title("Role").Value(&v.profileRole),
		),
	).WithTheme(huhTheme(v.state.Theme())).WithShowHelp(false)
}

func (v *dashboardView) newRecommendForm() *huh.Form {
	v.courseQuery = ""

	library := v.state.App.Recommend.Library()
	suggestions := make([]string, len(library))
	for i, c := range library {
		suggestions[i] = c.Title
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Recommend Course").
				Placeholder("Search library...").
				Suggestions(suggestions).
				Value(&v.courseQuery).
				Validate(required("course")),
		),
	).WithTheme(huhTheme(v.state.Theme())).WithShowHelp(false)
}

func (v *dashboardView) updateSettingsForm(msg tea.Msg) tea.Cmd {
	form, cmd := v.settingsForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.settingsForm = f
	}

	switch v.settingsForm.State {
	case huh.StateCompleted:
		v.state.Profile.Name = strings.TrimSpace(v.profileName)
		v.state.Profile.Email = strings.TrimSpace(v.profileEmail)
		v.state.Profile.Role = strings.TrimSpace(v.profileRole)
		return tea.Batch(cmd,
			dispatchOverlay(overlayAction{Kind: actCloseSettings}),
			func() tea.Msg { return statusMsg{text: "Account settings updated"} },
		)
	case huh.StateAborted:
		return tea.Batch(cmd, dispatchOverlay(overlayAction{Kind: actCloseSettings}))
	}
	return cmd
}

func (v *dashboardView) updateRecommendForm(msg tea.Msg) tea.Cmd {
	form, cmd := v.recommendForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.recommendForm = f
	}

	switch v.recommendForm.State {
	case huh.StateCompleted:
		menteeID := v.state.Overlay.SelectedMenteeID
		mentee := v.selectedMentee()
		course := strings.TrimSpace(v.courseQuery)
		app := v.state.App
		confirm := func() tea.Msg {
			if _, err := app.Recommend.Recommend(context.Background(), menteeID, course); err != nil {
				return statusMsg{text: "Recommendation failed: " + err.Error()}
			}
			name := menteeID
			if mentee != nil {
				name = mentee.Name
			}
			return recommendationSavedMsg{mentee: name, course: course}
		}
		return tea.Batch(cmd,
			dispatchOverlay(overlayAction{Kind: actCloseRecommend}),
			confirm,
		)
	case huh.StateAborted:
		return tea.Batch(cmd, dispatchOverlay(overlayAction{Kind: actCloseRecommend}))
	}
	return cmd
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// ── view rendering ───────────────────────────────────────────────────────────

const (
	dashLeftPaneWidth  = 40
	dashRightPaneWidth = 32
	drawerWidth        = 44
)

func (v *dashboardView) View() string {
	th := v.state.Theme()

	if v.loading {
		return "\n  " + th.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + th.StyleAlert.Render("Error: "+v.err.Error())
	}
	if v.data == nil {
		return ""
	}

	// Full-screen modals replace the content area; only one can be open.
	if v.settingsForm != nil {
		return v.renderModal(th, "Update Account Settings", v.settingsForm.View())
	}
	if v.recommendForm != nil {
		return v.renderModal(th, "Recommend Course", v.renderRecommendBody(th))
	}

	var b strings.Builder

	if v.state.Overlay.NotificationsOpen {
		b.WriteString(v.renderNotificationsDropdown(th) + "\n")
	}
	if v.state.Overlay.ProfileOpen {
		b.WriteString(v.renderProfileDropdown(th) + "\n")
	}

	left := v.renderLeftColumn(th)
	center := v.renderCenterColumn(th)

	right := v.renderRightColumn(th)
	rightWidth := dashRightPaneWidth
	if v.state.Overlay.DrawerOpen() {
		right = v.renderDrawer(th)
		rightWidth = drawerWidth
	}

	useSplit := v.state.Width >= 110
	if !useSplit {
		b.WriteString(left + "\n" + center + "\n" + right)
		return b.String()
	}

	centerWidth := v.state.Width - dashLeftPaneWidth - rightWidth - 6
	if centerWidth < 24 {
		centerWidth = 24
	}

	divider := th.StyleDim.Render("│")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(dashLeftPaneWidth).Render(left),
		" "+divider+" ",
		lipgloss.NewStyle().Width(centerWidth).Render(center),
		" "+divider+" ",
		lipgloss.NewStyle().Width(rightWidth).Render(right),
	))

	return b.String()
}

// ── left column: roster + review queue ───────────────────────────────────────

func (v *dashboardView) renderLeftColumn(th formatter.Theme) string {
	var b strings.Builder

	filtered := v.filteredRoster()
	b.WriteString(th.Header("MENTEES") + " " + th.Dim(fmt.Sprintf("%d results", len(filtered))) + "\n")
	b.WriteString(v.search.View() + "\n\n")

	if len(filtered) == 0 {
		b.WriteString("  " + th.Dim("No mentees match the search.") + "\n")
	}
	for i, m := range filtered {
		cursor := "  "
		nameStyle := th.StyleFg
		if v.focus == panelMentees && i == v.menteeCursor {
			cursor = th.StyleSuccess.Render("▸ ")
			nameStyle = th.StyleBold
		}
		ring := th.RenderRing(formatter.Ring(m.ClampedProgress(), formatter.DefaultRingSize, formatter.DefaultRingStroke))
		b.WriteString(fmt.Sprintf("%s%s %s %s\n",
			cursor,
			th.StyleAccent.Render(m.Initials()),
			nameStyle.Render(formatter.PadRight(m.Name, 14)),
			ring,
		))
		b.WriteString("     " + th.Dim(m.Stage+" • "+m.LastLogin) + "\n")
	}

	b.WriteString("\n" + th.Header("SUBMISSIONS") + " " + th.Dim(fmt.Sprintf("%d", len(v.data.submissions))) + "\n\n")
	for i, s := range v.data.submissions {
		cursor := "  "
		titleStyle := th.StyleFg
		if v.focus == panelSubmissions && i == v.subCursor {
			cursor = th.StyleSuccess.Render("▸ ")
			titleStyle = th.StyleBold
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor,
			titleStyle.Render(formatter.PadRight(s.Title, 22)), th.StatusBadge(s.Status)))
		b.WriteString("     " + th.Dim(s.Mentee+" • "+s.Type) + "\n")
	}

	return b.String()
}

// ── center column: KPIs, schedule, tracker ───────────────────────────────────

func (v *dashboardView) renderCenterColumn(th formatter.Theme) string {
	var b strings.Builder

	for _, c := range statCards {
		b.WriteString(fmt.Sprintf("  %s %s  %s\n",
			th.StyleCTA.Render(formatter.PadRight(c.title, 15)),
			th.Bold(formatter.PadRight(c.value, 5)),
			th.Dim(c.hint)))
	}

	b.WriteString("\n" + th.Header("UPCOMING SESSIONS") + "\n")
	b.WriteString(th.RenderWeekGrid(v.data.events) + "\n")

	b.WriteString("\n" + th.Header("SESSION TRACKER") + "\n")
	for _, e := range v.data.entries {
		b.WriteString(fmt.Sprintf("  %s • %s  %s\n",
			th.Dim(e.Date), th.StyleFg.Render(formatter.PadRight(e.Mentee, 8)), th.OutcomeLabel(e.Outcome)))
	}

	return b.String()
}

// ── right column: engagement, reviews, resources ─────────────────────────────

func (v *dashboardView) renderRightColumn(th formatter.Theme) string {
	var b strings.Builder

	b.WriteString(th.Header("ENGAGEMENT") + "\n")
	b.WriteString("  " + th.Bold("82%") + " " + th.Dim("Attendance") + "\n")
	b.WriteString("  " + th.Dim("Assignment completion") + "\n")
	b.WriteString("  " + th.RenderProgress(0.68, 16) + "\n")

	b.WriteString("\n" + th.Header("REVIEWS & RATINGS") + "\n")
	b.WriteString("  " + th.Bold("4.7") + " " + th.Dim("Average rating") + "\n")
	for _, r := range reviews {
		b.WriteString("  " + th.StyleFg.Render("“"+r.Quote+"”") + " " + th.Dim("— "+r.Author) + "\n")
	}

	b.WriteString("\n" + th.Header("RESOURCES") + "\n")
	for _, r := range resources {
		b.WriteString("  " + th.Dim("·") + " " + th.StyleFg.Render(r) + "\n")
	}

	return b.String()
}

// ── overlays ─────────────────────────────────────────────────────────────────

func (v *dashboardView) renderNotificationsDropdown(th formatter.Theme) string {
	var b strings.Builder
	for _, n := range v.data.notifications {
		b.WriteString(fmt.Sprintf("%s %s\n  %s\n", th.SeverityIcon(n.Severity), n.Message, th.Dim(n.Date)))
	}
	b.WriteString("\n" + th.StyleCTA.Render("v: view all"))
	title := fmt.Sprintf("Notifications (%d)", len(v.data.notifications))
	return th.RenderBox(title, strings.TrimRight(b.String(), "\n"))
}

func (v *dashboardView) renderProfileDropdown(th formatter.Theme) string {
	p := v.state.Profile
	var b strings.Builder
	b.WriteString(th.Bold(p.Name) + "\n")
	b.WriteString(th.Dim(p.Email) + "\n")
	b.WriteString(th.Dim(p.Role) + "\n\n")
	b.WriteString(th.StyleCTA.Render("s: account settings") + "\n")
	b.WriteString(th.StyleAlert.Render("l: log out"))
	return th.RenderBox("Profile", b.String())
}

func (v *dashboardView) renderDrawer(th formatter.Theme) string {
	m := v.selectedMentee()
	if m == nil {
		return th.Dim("Mentee not found.")
	}

	var b strings.Builder
	b.WriteString(th.Header(strings.ToUpper(m.Name)) + "\n")
	b.WriteString("  " + th.Dim(m.Stage+" • "+m.LastLogin) + "\n\n")

	progress := m.ClampedProgress()
	b.WriteString("  " + th.RenderRing(formatter.Ring(progress, formatter.DefaultRingSize, formatter.DefaultRingStroke)) + "\n")
	b.WriteString("  " + th.RenderProgress(float64(progress)/100, 16) + "\n")

	b.WriteString("\n" + th.Dim("Intake Assessment") + "\n")
	for _, qa := range intakeAnswers {
		b.WriteString("  " + th.StyleFg.Render("Q: "+qa.Question) + "\n")
		b.WriteString("  " + th.Dim("A: "+qa.Answer) + "\n")
	}

	b.WriteString("\n" + th.Dim("Courses & Assignments") + "\n")
	b.WriteString("  " + th.StyleFg.Render("UI Fundamentals") + " " + th.Dim("Assignment 2 • Due 2025-09-20") + "\n")
	b.WriteString("  " + th.StyleFg.Render("Product Design") + " " + th.Dim("Reflection • Submitted") + "\n")

	if recs, err := v.state.App.Recommend.ListByMentee(context.Background(), m.ID); err == nil && len(recs) > 0 {
		b.WriteString("\n" + th.Dim("Recommended") + "\n")
		for _, rec := range recs {
			b.WriteString("  " + th.StyleSuccess.Render("✔") + " " + th.StyleFg.Render(rec.Course) + "\n")
		}
	}

	b.WriteString("\n" + th.StyleCTA.Render("r: recommend course") + "  " + th.Dim("esc: close"))
	return b.String()
}

func (v *dashboardView) renderRecommendBody(th formatter.Theme) string {
	var b strings.Builder
	b.WriteString(v.recommendForm.View() + "\n")

	matches := v.state.App.Recommend.SearchLibrary(v.courseQuery)
	if len(matches) > 0 {
		b.WriteString("\n" + th.Dim("Library") + "\n")
		for _, c := range matches {
			b.WriteString("  " + th.StyleFg.Render(c.Title) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (v *dashboardView) renderModal(th formatter.Theme, title, body string) string {
	box := th.RenderBox(title, body)
	w := max(v.state.Width, lipgloss.Width(box))
	h := max(v.state.ContentHeight(), lipgloss.Height(box))
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, box)
}
