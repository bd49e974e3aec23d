package service

import (
	"context"
	"errors"

	"github.com/helenrobert/mentordesk/internal/domain"
	"github.com/helenrobert/mentordesk/internal/repository"
)

type submissionService struct {
	submissions repository.SubmissionRepo
}

func NewSubmissionService(submissions repository.SubmissionRepo) SubmissionService {
	return &submissionService{submissions: submissions}
}

func (s *submissionService) List(ctx context.Context) ([]*domain.Submission, error) {
	return s.submissions.List(ctx)
}

// Approve sets the submission's status to approved. Re-approving is a no-op
// in effect, and an unknown id is silently ignored: the UI may act on stale
// ids and must never surface that as a fault.
func (s *submissionService) Approve(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, domain.SubmissionApproved)
}

// Return sets the submission's status to returned. Transitions are not
// one-way: a previously approved submission may still be returned
// (last write wins).
func (s *submissionService) Return(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, domain.SubmissionReturned)
}

func (s *submissionService) setStatus(ctx context.Context, id string, status domain.SubmissionStatus) error {
	err := s.submissions.UpdateStatus(ctx, id, status)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	return err
}
