package domain

import "strings"

// Mentee is a member of the mentor's roster. The roster is seeded at startup
// and read-only for the lifetime of the session.
type Mentee struct {
	ID        string
	Name      string
	Progress  int // 0..100
	LastLogin string
	Stage     string
}

// Initials returns up to two uppercase initials for avatar display.
func (m *Mentee) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(m.Name) {
		if b.Len() >= 2 {
			break
		}
		b.WriteString(strings.ToUpper(part[:1]))
	}
	return b.String()
}

// ClampedProgress returns Progress bounded to [0, 100]. Seeded data is
// expected in range already; this guards against bad values at render time.
func (m *Mentee) ClampedProgress() int {
	if m.Progress < 0 {
		return 0
	}
	if m.Progress > 100 {
		return 100
	}
	return m.Progress
}
