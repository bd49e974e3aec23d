package service

import (
	"context"

	"github.com/helenrobert/mentordesk/internal/domain"
	"github.com/helenrobert/mentordesk/internal/repository"
)

type scheduleService struct {
	schedule repository.ScheduleRepo
}

func NewScheduleService(schedule repository.ScheduleRepo) ScheduleService {
	return &scheduleService{schedule: schedule}
}

func (s *scheduleService) Entries(ctx context.Context) ([]*domain.SessionEntry, error) {
	return s.schedule.ListEntries(ctx)
}

// Events returns the seeded calendar events in order. The schedule grid
// receives this sequence verbatim.
func (s *scheduleService) Events(ctx context.Context) ([]*domain.ScheduleEvent, error) {
	return s.schedule.ListEvents(ctx)
}
