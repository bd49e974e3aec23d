package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/helenrobert/mentordesk/internal/db"
	"github.com/helenrobert/mentordesk/internal/domain"
)

// SQLiteMenteeRepo implements MenteeRepo using a SQLite database.
type SQLiteMenteeRepo struct {
	db db.DBTX
}

// NewSQLiteMenteeRepo creates a new SQLiteMenteeRepo.
func NewSQLiteMenteeRepo(conn db.DBTX) *SQLiteMenteeRepo {
	return &SQLiteMenteeRepo{db: conn}
}

func (r *SQLiteMenteeRepo) List(ctx context.Context) ([]*domain.Mentee, error) {
	query := `SELECT id, name, progress, last_login, stage
		FROM mentees ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing mentees: %w", err)
	}
	defer rows.Close()

	var mentees []*domain.Mentee
	for rows.Next() {
		var m domain.Mentee
		if err := rows.Scan(&m.ID, &m.Name, &m.Progress, &m.LastLogin, &m.Stage); err != nil {
			return nil, fmt.Errorf("scanning mentee: %w", err)
		}
		mentees = append(mentees, &m)
	}
	return mentees, rows.Err()
}

func (r *SQLiteMenteeRepo) GetByID(ctx context.Context, id string) (*domain.Mentee, error) {
	query := `SELECT id, name, progress, last_login, stage
		FROM mentees WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var m domain.Mentee
	err := row.Scan(&m.ID, &m.Name, &m.Progress, &m.LastLogin, &m.Stage)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("mentee %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning mentee: %w", err)
	}
	return &m, nil
}
