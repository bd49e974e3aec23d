package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/helenrobert/mentordesk/internal/db"
	"github.com/helenrobert/mentordesk/internal/domain"
)

// SQLiteNotificationRepo implements NotificationRepo using a SQLite database.
type SQLiteNotificationRepo struct {
	db db.DBTX
}

// NewSQLiteNotificationRepo creates a new SQLiteNotificationRepo.
func NewSQLiteNotificationRepo(conn db.DBTX) *SQLiteNotificationRepo {
	return &SQLiteNotificationRepo{db: conn}
}

func (r *SQLiteNotificationRepo) List(ctx context.Context) ([]*domain.Notification, error) {
	query := `SELECT id, message, date, severity, details
		FROM notifications ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	var notes []*domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.Message, &n.Date, &n.Severity, &n.Details); err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		notes = append(notes, &n)
	}
	return notes, rows.Err()
}

func (r *SQLiteNotificationRepo) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	query := `SELECT id, message, date, severity, details
		FROM notifications WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var n domain.Notification
	err := row.Scan(&n.ID, &n.Message, &n.Date, &n.Severity, &n.Details)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("notification %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning notification: %w", err)
	}
	return &n, nil
}
