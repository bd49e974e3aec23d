package service

import (
	"context"
	"strings"

	"github.com/helenrobert/mentordesk/internal/domain"
	"github.com/helenrobert/mentordesk/internal/repository"
)

type menteeService struct {
	mentees repository.MenteeRepo
}

func NewMenteeService(mentees repository.MenteeRepo) MenteeService {
	return &menteeService{mentees: mentees}
}

func (s *menteeService) List(ctx context.Context) ([]*domain.Mentee, error) {
	return s.mentees.List(ctx)
}

func (s *menteeService) GetByID(ctx context.Context, id string) (*domain.Mentee, error) {
	return s.mentees.GetByID(ctx, id)
}

func (s *menteeService) Search(ctx context.Context, query string) ([]*domain.Mentee, error) {
	roster, err := s.mentees.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterMentees(roster, query), nil
}

// FilterMentees returns the mentees whose name contains query as a
// case-insensitive substring, preserving roster order. An empty query
// returns the roster unchanged; no match returns an empty slice.
// The result is always a fresh slice so callers can't drift the roster.
func FilterMentees(roster []*domain.Mentee, query string) []*domain.Mentee {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]*domain.Mentee(nil), roster...)
	}
	filtered := make([]*domain.Mentee, 0, len(roster))
	for _, m := range roster {
		if strings.Contains(strings.ToLower(m.Name), q) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
