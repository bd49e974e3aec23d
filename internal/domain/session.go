package domain

import "time"

// SessionEntry is a row in the session tracker: one past or pending
// mentorship session with its outcome.
type SessionEntry struct {
	ID      string
	Date    string
	Mentee  string
	Outcome SessionOutcome
}

// ScheduleEvent is a time-ranged calendar entry handed verbatim to the
// schedule grid. The grid renders the sequence and sends nothing back.
type ScheduleEvent struct {
	ID    string
	Title string
	Start time.Time
	End   time.Time
}
