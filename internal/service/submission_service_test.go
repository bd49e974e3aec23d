package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helenrobert/mentordesk/internal/domain"
	"github.com/helenrobert/mentordesk/internal/repository"
	"github.com/helenrobert/mentordesk/internal/testutil"
)

func newSubmissionFixture(t *testing.T) (SubmissionService, repository.SubmissionRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSubmissionRepo(database)
	return NewSubmissionService(repo), repo
}

func submissionStatus(t *testing.T, repo repository.SubmissionRepo, id string) domain.SubmissionStatus {
	t.Helper()
	s, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	return s.Status
}

func TestSubmissionApprove(t *testing.T) {
	svc, repo := newSubmissionFixture(t)
	ctx := context.Background()

	require.Equal(t, domain.SubmissionPending, submissionStatus(t, repo, "s1"))

	require.NoError(t, svc.Approve(ctx, "s1"))
	assert.Equal(t, domain.SubmissionApproved, submissionStatus(t, repo, "s1"))

	// Approving again is idempotent.
	require.NoError(t, svc.Approve(ctx, "s1"))
	assert.Equal(t, domain.SubmissionApproved, submissionStatus(t, repo, "s1"))
}

func TestSubmissionReturnAfterApproveLastWriteWins(t *testing.T) {
	svc, repo := newSubmissionFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Approve(ctx, "s2"))
	require.NoError(t, svc.Return(ctx, "s2"))
	assert.Equal(t, domain.SubmissionReturned, submissionStatus(t, repo, "s2"))

	require.NoError(t, svc.Approve(ctx, "s2"))
	assert.Equal(t, domain.SubmissionApproved, submissionStatus(t, repo, "s2"))
}

func TestSubmissionUnknownIDIsSilentNoOp(t *testing.T) {
	svc, repo := newSubmissionFixture(t)
	ctx := context.Background()

	assert.NoError(t, svc.Approve(ctx, "ghost"))
	assert.NoError(t, svc.Return(ctx, "ghost"))

	// The rest of the queue is untouched.
	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, domain.SubmissionPending, all[0].Status)
	assert.Equal(t, domain.SubmissionPending, all[1].Status)
	assert.Equal(t, domain.SubmissionApproved, all[2].Status)
}

func TestSubmissionActionsDoNotReorderQueue(t *testing.T) {
	svc, repo := newSubmissionFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Return(ctx, "s1"))
	require.NoError(t, svc.Approve(ctx, "s2"))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "s1", all[0].ID)
	assert.Equal(t, "s2", all[1].ID)
	assert.Equal(t, "s3", all[2].ID)
}
