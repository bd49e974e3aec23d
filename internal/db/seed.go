package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Seed loads the fixed mock dataset into a freshly migrated database.
// The console has no backend; this dataset is the entire universe of
// entities for the session.
func Seed(db *sql.DB) error {
	mentees := []struct {
		id, name  string
		progress  int
		lastLogin string
		stage     string
	}{
		{"m1", "Aisha Bello", 72, "2d ago", "Module 3"},
		{"m2", "John Okoro", 45, "4d ago", "Module 2"},
		{"m3", "Ngozi Eze", 88, "1d ago", "Module 4"},
		{"m4", "David Musa", 23, "8d ago", "Module 1"},
	}
	for i, m := range mentees {
		_, err := db.Exec(
			`INSERT INTO mentees (id, name, progress, last_login, stage, seq) VALUES (?, ?, ?, ?, ?, ?)`,
			m.id, m.name, m.progress, m.lastLogin, m.stage, i,
		)
		if err != nil {
			return fmt.Errorf("seeding mentee %s: %w", m.id, err)
		}
	}

	submissions := []struct {
		id, mentee, title, typ, status string
	}{
		{"s1", "Aisha Bello", "Reflection - Glory", "Reflection", "pending"},
		{"s2", "John Okoro", "Assignment 2", "Assignment", "pending"},
		{"s3", "Ngozi Eze", "Assessment - Intake", "Assessment", "approved"},
	}
	for i, s := range submissions {
		_, err := db.Exec(
			`INSERT INTO submissions (id, mentee, title, type, status, seq) VALUES (?, ?, ?, ?, ?, ?)`,
			s.id, s.mentee, s.title, s.typ, s.status, i,
		)
		if err != nil {
			return fmt.Errorf("seeding submission %s: %w", s.id, err)
		}
	}

	notifications := []struct {
		id, message, date, severity, details string
	}{
		{"n1", "New mentee assignment submitted.", "2025-09-15", "info",
			"Glory submitted Assignment 2 for review in Web Development track."},
		{"n2", "Upcoming session with John tomorrow at 10 AM.", "2025-09-16", "warning",
			"Scheduled mentorship session with John Doe on frontend basics."},
		{"n3", "Your average mentor rating has increased!", "2025-09-17", "success",
			"Congrats! Your mentees have rated your recent sessions highly. Average rating is now 4.8."},
		{"n4", "Admin shared new resources for mentors.", "2025-09-18", "info",
			"Check out the new mentorship resources uploaded to the resource center."},
	}
	for i, n := range notifications {
		_, err := db.Exec(
			`INSERT INTO notifications (id, message, date, severity, details, seq) VALUES (?, ?, ?, ?, ?, ?)`,
			n.id, n.message, n.date, n.severity, n.details, i,
		)
		if err != nil {
			return fmt.Errorf("seeding notification %s: %w", n.id, err)
		}
	}

	sessions := []struct {
		id, date, mentee, outcome string
	}{
		{"t1", "2025-09-10", "Aisha", "completed"},
		{"t2", "2025-09-08", "John", "canceled"},
		{"t3", "2025-09-02", "Ngozi", "pending"},
	}
	for i, s := range sessions {
		_, err := db.Exec(
			`INSERT INTO session_entries (id, date, mentee, outcome, seq) VALUES (?, ?, ?, ?, ?)`,
			s.id, s.date, s.mentee, s.outcome, i,
		)
		if err != nil {
			return fmt.Errorf("seeding session entry %s: %w", s.id, err)
		}
	}

	events := []struct {
		id, title  string
		start, end time.Time
	}{
		{"e1", "Mentorship Session with John",
			time.Date(2025, time.September, 20, 10, 0, 0, 0, time.UTC),
			time.Date(2025, time.September, 20, 11, 0, 0, 0, time.UTC)},
		{"e2", "Assignment Review",
			time.Date(2025, time.September, 22, 14, 0, 0, 0, time.UTC),
			time.Date(2025, time.September, 22, 15, 0, 0, 0, time.UTC)},
	}
	for i, e := range events {
		_, err := db.Exec(
			`INSERT INTO schedule_events (id, title, start_at, end_at, seq) VALUES (?, ?, ?, ?, ?)`,
			e.id, e.title, e.start.Format(time.RFC3339), e.end.Format(time.RFC3339), i,
		)
		if err != nil {
			return fmt.Errorf("seeding schedule event %s: %w", e.id, err)
		}
	}

	return nil
}
