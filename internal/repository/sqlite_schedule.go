package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/helenrobert/mentordesk/internal/db"
	"github.com/helenrobert/mentordesk/internal/domain"
)

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
type SQLiteScheduleRepo struct {
	db db.DBTX
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(conn db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: conn}
}

func (r *SQLiteScheduleRepo) ListEntries(ctx context.Context) ([]*domain.SessionEntry, error) {
	query := `SELECT id, date, mentee, outcome
		FROM session_entries ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing session entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.SessionEntry
	for rows.Next() {
		var e domain.SessionEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.Mentee, &e.Outcome); err != nil {
			return nil, fmt.Errorf("scanning session entry: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

func (r *SQLiteScheduleRepo) ListEvents(ctx context.Context) ([]*domain.ScheduleEvent, error) {
	query := `SELECT id, title, start_at, end_at
		FROM schedule_events ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing schedule events: %w", err)
	}
	defer rows.Close()

	var events []*domain.ScheduleEvent
	for rows.Next() {
		var e domain.ScheduleEvent
		var start, end string
		if err := rows.Scan(&e.ID, &e.Title, &start, &end); err != nil {
			return nil, fmt.Errorf("scanning schedule event: %w", err)
		}
		if e.Start, err = time.Parse(time.RFC3339, start); err != nil {
			return nil, fmt.Errorf("parsing event %s start: %w", e.ID, err)
		}
		if e.End, err = time.Parse(time.RFC3339, end); err != nil {
			return nil, fmt.Errorf("parsing event %s end: %w", e.ID, err)
		}
		events = append(events, &e)
	}
	return events, rows.Err()
}
