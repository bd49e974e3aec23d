package service

import (
	"context"

	"github.com/helenrobert/mentordesk/internal/domain"
)

type MenteeService interface {
	List(ctx context.Context) ([]*domain.Mentee, error)
	GetByID(ctx context.Context, id string) (*domain.Mentee, error)
	Search(ctx context.Context, query string) ([]*domain.Mentee, error)
}

type SubmissionService interface {
	List(ctx context.Context) ([]*domain.Submission, error)
	Approve(ctx context.Context, id string) error
	Return(ctx context.Context, id string) error
}

type NotificationService interface {
	List(ctx context.Context) ([]*domain.Notification, error)
	GetByID(ctx context.Context, id string) (*domain.Notification, error)
}

type ScheduleService interface {
	Entries(ctx context.Context) ([]*domain.SessionEntry, error)
	Events(ctx context.Context) ([]*domain.ScheduleEvent, error)
}

type RecommendService interface {
	Library() []domain.Course
	SearchLibrary(query string) []domain.Course
	Recommend(ctx context.Context, menteeID, course string) (*domain.Recommendation, error)
	ListByMentee(ctx context.Context, menteeID string) ([]*domain.Recommendation, error)
}
