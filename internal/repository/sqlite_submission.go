package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/helenrobert/mentordesk/internal/db"
	"github.com/helenrobert/mentordesk/internal/domain"
)

// SQLiteSubmissionRepo implements SubmissionRepo using a SQLite database.
type SQLiteSubmissionRepo struct {
	db db.DBTX
}

// NewSQLiteSubmissionRepo creates a new SQLiteSubmissionRepo.
func NewSQLiteSubmissionRepo(conn db.DBTX) *SQLiteSubmissionRepo {
	return &SQLiteSubmissionRepo{db: conn}
}

func (r *SQLiteSubmissionRepo) List(ctx context.Context) ([]*domain.Submission, error) {
	query := `SELECT id, mentee, title, type, status
		FROM submissions ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	defer rows.Close()

	var subs []*domain.Submission
	for rows.Next() {
		var s domain.Submission
		if err := rows.Scan(&s.ID, &s.Mentee, &s.Title, &s.Type, &s.Status); err != nil {
			return nil, fmt.Errorf("scanning submission: %w", err)
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}

func (r *SQLiteSubmissionRepo) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	query := `SELECT id, mentee, title, type, status
		FROM submissions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var s domain.Submission
	err := row.Scan(&s.ID, &s.Mentee, &s.Title, &s.Type, &s.Status)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("submission %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning submission: %w", err)
	}
	return &s, nil
}

// UpdateStatus sets the status of a single submission. Other rows and the
// queue order are untouched. Returns ErrNotFound if no row matches.
func (r *SQLiteSubmissionRepo) UpdateStatus(ctx context.Context, id string, status domain.SubmissionStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE submissions SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("updating submission %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update of submission %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("submission %s: %w", id, ErrNotFound)
	}
	return nil
}
