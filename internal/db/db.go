package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// OpenDB opens the in-memory SQLite database that backs the session's
// entity store. The console never persists anything: every run starts from
// a fresh database that lives exactly as long as the process.
// Runs migrations and seeds the mock dataset automatically.
func OpenDB() (*sql.DB, error) {
	database, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// The in-memory store is touched only from the event loop, but the
	// database/sql pool would otherwise hand out separate connections,
	// each with its own empty :memory: database.
	database.SetMaxOpenConns(1)

	if _, err := database.Exec("PRAGMA foreign_keys = ON"); err != nil {
		database.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := Migrate(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	if err := Seed(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("seeding data: %w", err)
	}

	return database, nil
}
