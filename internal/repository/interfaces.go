package repository

import (
	"context"

	"github.com/helenrobert/mentordesk/internal/domain"
)

type MenteeRepo interface {
	List(ctx context.Context) ([]*domain.Mentee, error)
	GetByID(ctx context.Context, id string) (*domain.Mentee, error)
}

type SubmissionRepo interface {
	List(ctx context.Context) ([]*domain.Submission, error)
	GetByID(ctx context.Context, id string) (*domain.Submission, error)
	UpdateStatus(ctx context.Context, id string, status domain.SubmissionStatus) error
}

type NotificationRepo interface {
	List(ctx context.Context) ([]*domain.Notification, error)
	GetByID(ctx context.Context, id string) (*domain.Notification, error)
}

type ScheduleRepo interface {
	ListEntries(ctx context.Context) ([]*domain.SessionEntry, error)
	ListEvents(ctx context.Context) ([]*domain.ScheduleEvent, error)
}

type RecommendationRepo interface {
	Create(ctx context.Context, r *domain.Recommendation) error
	ListByMentee(ctx context.Context, menteeID string) ([]*domain.Recommendation, error)
}
