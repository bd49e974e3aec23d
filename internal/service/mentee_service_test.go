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

func testRoster() []*domain.Mentee {
	return []*domain.Mentee{
		testutil.NewTestMentee("Aisha Bello"),
		testutil.NewTestMentee("John Okoro"),
		testutil.NewTestMentee("Ngozi Eze"),
		testutil.NewTestMentee("David Musa"),
	}
}

func names(mentees []*domain.Mentee) []string {
	out := make([]string, len(mentees))
	for i, m := range mentees {
		out[i] = m.Name
	}
	return out
}

func TestFilterMentees(t *testing.T) {
	roster := testRoster()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query returns full roster", "", []string{"Aisha Bello", "John Okoro", "Ngozi Eze", "David Musa"}},
		{"whitespace query returns full roster", "   ", []string{"Aisha Bello", "John Okoro", "Ngozi Eze", "David Musa"}},
		{"case-insensitive match", "aIsHa", []string{"Aisha Bello"}},
		{"substring anywhere in the name", "oko", []string{"John Okoro"}},
		{"shared substring keeps roster order", "o", []string{"Aisha Bello", "John Okoro", "Ngozi Eze"}},
		{"no match yields empty", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterMentees(roster, tt.query)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestFilterMenteesNarrowThenWiden(t *testing.T) {
	roster := testRoster()

	assert.Len(t, FilterMentees(roster, "jo"), 1)
	assert.Len(t, FilterMentees(roster, "jox"), 0)

	// Deleting the extra character restores the previous result: the filter
	// is a pure function of the current query, with no residue.
	assert.Equal(t, names(FilterMentees(roster, "jo")), []string{"John Okoro"})
	assert.Len(t, FilterMentees(roster, ""), 4)
}

func TestFilterMenteesReturnsFreshSlice(t *testing.T) {
	roster := testRoster()

	got := FilterMentees(roster, "")
	require.Len(t, got, 4)
	got[0] = nil

	assert.NotNil(t, roster[0], "mutating the result must not touch the roster")
}

func TestMenteeServiceSearchAgainstSeed(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewMenteeService(repository.NewSQLiteMenteeRepo(database))
	ctx := context.Background()

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "Aisha Bello", all[0].Name)

	got, err := svc.Search(ctx, "ngozi")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "m3", got[0].ID)

	m, err := svc.GetByID(ctx, "m2")
	require.NoError(t, err)
	assert.Equal(t, "John Okoro", m.Name)

	_, err = svc.GetByID(ctx, "ghost")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
