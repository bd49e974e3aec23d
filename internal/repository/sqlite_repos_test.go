package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helenrobert/mentordesk/internal/domain"
	"github.com/helenrobert/mentordesk/internal/testutil"
)

func TestMenteeRepoSeedOrder(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteMenteeRepo(database)
	ctx := context.Background()

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)

	// Roster order is fixed by the seed sequence, not alphabetical.
	assert.Equal(t, []string{"m1", "m2", "m3", "m4"},
		[]string{all[0].ID, all[1].ID, all[2].ID, all[3].ID})
	assert.Equal(t, 72, all[0].Progress)
	assert.Equal(t, "Module 3", all[0].Stage)

	m, err := repo.GetByID(ctx, "m4")
	require.NoError(t, err)
	assert.Equal(t, "David Musa", m.Name)

	_, err = repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmissionRepoUpdateStatus(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSubmissionRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.UpdateStatus(ctx, "s1", domain.SubmissionReturned))

	s, err := repo.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionReturned, s.Status)

	err = repo.UpdateStatus(ctx, "missing", domain.SubmissionApproved)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNotificationRepoSeed(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteNotificationRepo(database)
	ctx := context.Background()

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, domain.SeverityWarning, all[1].Severity)
	assert.Equal(t, "2025-09-18", all[3].Date)

	n, err := repo.GetByID(ctx, "n3")
	require.NoError(t, err)
	assert.Equal(t, domain.SeveritySuccess, n.Severity)
	assert.NotEmpty(t, n.Details)

	_, err = repo.GetByID(ctx, "n99")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScheduleRepoSeed(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteScheduleRepo(database)
	ctx := context.Background()

	entries, err := repo.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, domain.SessionCanceled, entries[1].Outcome)

	events, err := repo.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Mentorship Session with John", events[0].Title)
	assert.Equal(t, time.Date(2025, time.September, 20, 10, 0, 0, 0, time.UTC), events[0].Start)
	assert.True(t, events[0].End.After(events[0].Start))
}

func TestRecommendationRepoRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteRecommendationRepo(database)
	ctx := context.Background()

	first := &domain.Recommendation{
		ID:        uuid.New().String(),
		MenteeID:  "m1",
		Course:    "UI Fundamentals",
		CreatedAt: time.Now().UTC().Add(-time.Minute),
	}
	second := &domain.Recommendation{
		ID:        uuid.New().String(),
		MenteeID:  "m1",
		Course:    "Career Skills",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	got, err := repo.ListByMentee(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "UI Fundamentals", got[0].Course)
	assert.Equal(t, "Career Skills", got[1].Course)

	none, err := repo.ListByMentee(ctx, "m4")
	require.NoError(t, err)
	assert.Empty(t, none)
}
