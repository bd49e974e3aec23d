package cli

// The overlay coordinator. Every dismissible surface on the dashboard and
// the notifications page (dropdowns, the mentee drawer, the two full-screen
// modals, the notification detail) lives in one explicit state record, and
// every trigger goes through a single pure transition function. The
// mutual-exclusion and cascade rules are enforced here, not at call sites.

// overlayState is the record of which surfaces are open. The mentee detail
// drawer has no flag of its own: it is open exactly when SelectedMenteeID
// is non-empty. The theme flag rides along so that every user-facing
// trigger is a transition of the same machine.
type overlayState struct {
	NotificationsOpen bool
	ProfileOpen       bool
	SettingsOpen      bool
	RecommendOpen     bool
	SelectedMenteeID  string
	SelectedNoteID    string
	Dark              bool
}

// DrawerOpen reports whether the mentee detail drawer is open.
func (s overlayState) DrawerOpen() bool { return s.SelectedMenteeID != "" }

// ModalOpen reports whether a full-screen modal is showing. At most one of
// the two can ever be open.
func (s overlayState) ModalOpen() bool { return s.SettingsOpen || s.RecommendOpen }

// AnyOpen reports whether any dismissible surface is showing.
func (s overlayState) AnyOpen() bool {
	return s.NotificationsOpen || s.ProfileOpen || s.ModalOpen() ||
		s.DrawerOpen() || s.SelectedNoteID != ""
}

type overlayActionKind int

const (
	actOpenNotifications overlayActionKind = iota
	actCloseNotifications
	actOpenProfile
	actCloseProfile
	actOpenSettings
	actCloseSettings
	actSelectMentee
	actCloseDrawer
	actOpenRecommend
	actCloseRecommend
	actToggleTheme
	actSelectNote
	actClearNote
	actDismissTop
)

var overlayActionNames = map[overlayActionKind]string{
	actOpenNotifications:  "open_notifications",
	actCloseNotifications: "close_notifications",
	actOpenProfile:        "open_profile",
	actCloseProfile:       "close_profile",
	actOpenSettings:       "open_settings",
	actCloseSettings:      "close_settings",
	actSelectMentee:       "select_mentee",
	actCloseDrawer:        "close_drawer",
	actOpenRecommend:      "open_recommend",
	actCloseRecommend:     "close_recommend",
	actToggleTheme:        "toggle_theme",
	actSelectNote:         "select_note",
	actClearNote:          "clear_note",
	actDismissTop:         "dismiss_top",
}

// overlayAction is one user trigger. ID carries the target for the select
// actions and is ignored otherwise.
type overlayAction struct {
	Kind overlayActionKind
	ID   string
}

func (a overlayAction) name() string { return overlayActionNames[a.Kind] }

// overlayEnv supplies the existence checks the transition function needs.
// It keeps the reducer pure: callers decide what "exists" means.
type overlayEnv struct {
	HasMentee       func(id string) bool
	HasNotification func(id string) bool
}

// applyOverlay is the transition function: (state, action) -> state.
// It is total: an action whose precondition does not hold returns the
// state unchanged. User input arrives in unpredictable order, so an
// out-of-order trigger must never be an error.
func applyOverlay(s overlayState, a overlayAction, env overlayEnv) overlayState {
	switch a.Kind {

	case actOpenNotifications:
		// Independent slot: the profile dropdown stays as it is.
		s.NotificationsOpen = true

	case actCloseNotifications:
		s.NotificationsOpen = false

	case actOpenProfile:
		s.ProfileOpen = true

	case actCloseProfile:
		s.ProfileOpen = false

	case actOpenSettings:
		// Account settings is reachable only through the profile menu,
		// and opening it swallows the dropdown. Full-screen modals are
		// mutually exclusive, so any open recommend modal closes too.
		if !s.ProfileOpen {
			return s
		}
		s.ProfileOpen = false
		s.RecommendOpen = false
		s.SettingsOpen = true

	case actCloseSettings:
		s.SettingsOpen = false

	case actSelectMentee:
		if env.HasMentee == nil || !env.HasMentee(a.ID) {
			return s
		}
		s.SelectedMenteeID = a.ID

	case actCloseDrawer:
		// The recommend modal belongs to the drawer; closing the drawer
		// cascades.
		if !s.DrawerOpen() {
			return s
		}
		s.SelectedMenteeID = ""
		s.RecommendOpen = false

	case actOpenRecommend:
		if !s.DrawerOpen() {
			return s
		}
		s.SettingsOpen = false
		s.RecommendOpen = true

	case actCloseRecommend:
		// Dismissing the modal keeps the drawer's mentee selection.
		s.RecommendOpen = false

	case actToggleTheme:
		s.Dark = !s.Dark

	case actSelectNote:
		// Selecting an id that is not in the feed clears the selection
		// instead of erroring; the feed may have been re-rendered under
		// a stale cursor.
		if env.HasNotification == nil || !env.HasNotification(a.ID) {
			s.SelectedNoteID = ""
			return s
		}
		s.SelectedNoteID = a.ID

	case actClearNote:
		s.SelectedNoteID = ""

	case actDismissTop:
		// Outside interaction dismisses the topmost surface: modals stack
		// above the notification detail, which stacks above the drawer,
		// which stacks above the header dropdowns. A pointer press outside
		// both dropdowns is outside each of them, so both close together.
		switch {
		case s.SettingsOpen:
			s.SettingsOpen = false
		case s.RecommendOpen:
			s.RecommendOpen = false
		case s.SelectedNoteID != "":
			s.SelectedNoteID = ""
		case s.DrawerOpen():
			s.SelectedMenteeID = ""
			s.RecommendOpen = false
		case s.NotificationsOpen || s.ProfileOpen:
			s.NotificationsOpen = false
			s.ProfileOpen = false
		}
	}

	return s
}
