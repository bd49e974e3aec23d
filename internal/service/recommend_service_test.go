package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helenrobert/mentordesk/internal/repository"
	"github.com/helenrobert/mentordesk/internal/testutil"
)

func newRecommendFixture(t *testing.T) RecommendService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewRecommendService(
		repository.NewSQLiteRecommendationRepo(database),
		repository.NewSQLiteMenteeRepo(database),
	)
}

func TestRecommendSearchLibrary(t *testing.T) {
	svc := newRecommendFixture(t)

	all := svc.SearchLibrary("")
	require.Len(t, all, 3)
	assert.Equal(t, "UI Fundamentals", all[0].Title)

	got := svc.SearchLibrary("design")
	require.Len(t, got, 1)
	assert.Equal(t, "Product Design", got[0].Title)

	// Fuzzy: scattered characters still match.
	got = svc.SearchLibrary("crr")
	require.NotEmpty(t, got)
	assert.Equal(t, "Career Skills", got[0].Title)

	assert.Empty(t, svc.SearchLibrary("zzzz"))
}

func TestRecommendRecordsForMentee(t *testing.T) {
	svc := newRecommendFixture(t)
	ctx := context.Background()

	rec, err := svc.Recommend(ctx, "m1", "UI Fundamentals")
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "m1", rec.MenteeID)

	got, err := svc.ListByMentee(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "UI Fundamentals", got[0].Course)

	// Other mentees are unaffected.
	other, err := svc.ListByMentee(ctx, "m2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestRecommendValidation(t *testing.T) {
	svc := newRecommendFixture(t)
	ctx := context.Background()

	_, err := svc.Recommend(ctx, "m1", "   ")
	assert.Error(t, err, "blank course text must be rejected")

	_, err = svc.Recommend(ctx, "ghost", "UI Fundamentals")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	got, err := svc.ListByMentee(ctx, "m1")
	require.NoError(t, err)
	assert.Empty(t, got, "failed confirmations must record nothing")
}

func TestRecommendLibraryIsCopied(t *testing.T) {
	svc := newRecommendFixture(t)

	lib := svc.Library()
	require.Len(t, lib, 3)
	lib[0].Title = "mutated"

	assert.Equal(t, "UI Fundamentals", svc.Library()[0].Title)
}
