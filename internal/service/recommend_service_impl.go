package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"

	"github.com/helenrobert/mentordesk/internal/domain"
	"github.com/helenrobert/mentordesk/internal/repository"
)

// DefaultCourseLibrary is the recommendable course catalog.
var DefaultCourseLibrary = []domain.Course{
	{ID: "c1", Title: "UI Fundamentals"},
	{ID: "c2", Title: "Product Design"},
	{ID: "c3", Title: "Career Skills"},
}

type recommendService struct {
	recommendations repository.RecommendationRepo
	mentees         repository.MenteeRepo
	library         []domain.Course
}

func NewRecommendService(recommendations repository.RecommendationRepo, mentees repository.MenteeRepo) RecommendService {
	return &recommendService{
		recommendations: recommendations,
		mentees:         mentees,
		library:         DefaultCourseLibrary,
	}
}

func (s *recommendService) Library() []domain.Course {
	return append([]domain.Course(nil), s.library...)
}

// SearchLibrary fuzzy-matches the course catalog. An empty query returns
// the whole library in catalog order.
func (s *recommendService) SearchLibrary(query string) []domain.Course {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.Library()
	}
	titles := make([]string, len(s.library))
	for i, c := range s.library {
		titles[i] = c.Title
	}
	matches := fuzzy.Find(query, titles)
	results := make([]domain.Course, 0, len(matches))
	for _, m := range matches {
		results = append(results, s.library[m.Index])
	}
	return results
}

// Recommend records a confirmed course recommendation for a mentee.
// The course text must be non-empty and the mentee must exist.
func (s *recommendService) Recommend(ctx context.Context, menteeID, course string) (*domain.Recommendation, error) {
	course = strings.TrimSpace(course)
	if course == "" {
		return nil, fmt.Errorf("course is required")
	}
	if _, err := s.mentees.GetByID(ctx, menteeID); err != nil {
		return nil, err
	}

	rec := &domain.Recommendation{
		ID:        uuid.New().String(),
		MenteeID:  menteeID,
		Course:    course,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.recommendations.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *recommendService) ListByMentee(ctx context.Context, menteeID string) ([]*domain.Recommendation, error) {
	return s.recommendations.ListByMentee(ctx, menteeID)
}
