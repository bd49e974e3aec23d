package domain

import "time"

// Recommendation records a confirmed course recommendation for a mentee.
// These are the only entities created at runtime; like everything else they
// vanish when the session ends.
type Recommendation struct {
	ID        string
	MenteeID  string
	Course    string
	CreatedAt time.Time
}
