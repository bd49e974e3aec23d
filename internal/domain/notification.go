package domain

// Notification is one entry in the read-only notification feed.
// Selecting a notification for detail display is transient UI state and
// never mutates the notification itself.
type Notification struct {
	ID       string
	Message  string
	Date     string
	Severity Severity
	Details  string
}
