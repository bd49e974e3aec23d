package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/helenrobert/mentordesk/internal/db"
	"github.com/helenrobert/mentordesk/internal/domain"
)

// SQLiteRecommendationRepo implements RecommendationRepo using a SQLite database.
type SQLiteRecommendationRepo struct {
	db db.DBTX
}

// NewSQLiteRecommendationRepo creates a new SQLiteRecommendationRepo.
func NewSQLiteRecommendationRepo(conn db.DBTX) *SQLiteRecommendationRepo {
	return &SQLiteRecommendationRepo{db: conn}
}

func (r *SQLiteRecommendationRepo) Create(ctx context.Context, rec *domain.Recommendation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO recommendations (id, mentee_id, course, created_at) VALUES (?, ?, ?, ?)`,
		rec.ID, rec.MenteeID, rec.Course, rec.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("creating recommendation: %w", err)
	}
	return nil
}

func (r *SQLiteRecommendationRepo) ListByMentee(ctx context.Context, menteeID string) ([]*domain.Recommendation, error) {
	query := `SELECT id, mentee_id, course, created_at
		FROM recommendations WHERE mentee_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, menteeID)
	if err != nil {
		return nil, fmt.Errorf("listing recommendations: %w", err)
	}
	defer rows.Close()

	var recs []*domain.Recommendation
	for rows.Next() {
		var rec domain.Recommendation
		var created string
		if err := rows.Scan(&rec.ID, &rec.MenteeID, &rec.Course, &created); err != nil {
			return nil, fmt.Errorf("scanning recommendation: %w", err)
		}
		if rec.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
			return nil, fmt.Errorf("parsing recommendation %s timestamp: %w", rec.ID, err)
		}
		recs = append(recs, &rec)
	}
	return recs, rows.Err()
}
