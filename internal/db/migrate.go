package db

import (
	"database/sql"
	"fmt"
)

// migrations holds the full schema as ordered DDL statements. The database
// is always created from scratch, so there is no versioning to track.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS mentees (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		progress    INTEGER NOT NULL DEFAULT 0 CHECK (progress BETWEEN 0 AND 100),
		last_login  TEXT NOT NULL DEFAULT '',
		stage       TEXT NOT NULL DEFAULT '',
		seq         INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS submissions (
		id       TEXT PRIMARY KEY,
		mentee   TEXT NOT NULL,
		title    TEXT NOT NULL,
		type     TEXT NOT NULL DEFAULT '',
		status   TEXT NOT NULL DEFAULT 'pending'
			CHECK (status IN ('pending', 'approved', 'returned')),
		seq      INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id        TEXT PRIMARY KEY,
		message   TEXT NOT NULL,
		date      TEXT NOT NULL DEFAULT '',
		severity  TEXT NOT NULL DEFAULT 'info'
			CHECK (severity IN ('info', 'warning', 'success')),
		details   TEXT NOT NULL DEFAULT '',
		seq       INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS session_entries (
		id       TEXT PRIMARY KEY,
		date     TEXT NOT NULL,
		mentee   TEXT NOT NULL,
		outcome  TEXT NOT NULL DEFAULT 'pending'
			CHECK (outcome IN ('completed', 'canceled', 'pending')),
		seq      INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS schedule_events (
		id        TEXT PRIMARY KEY,
		title     TEXT NOT NULL,
		start_at  TEXT NOT NULL,
		end_at    TEXT NOT NULL,
		seq       INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS recommendations (
		id          TEXT PRIMARY KEY,
		mentee_id   TEXT NOT NULL REFERENCES mentees(id),
		course      TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
