package testutil

import (
	"database/sql"
	"testing"

	"github.com/helenrobert/mentordesk/internal/db"
)

// NewTestDB opens a fresh in-memory database with the schema applied and the
// session dataset seeded. The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB()
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}
