package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/helenrobert/mentordesk/internal/cli"
	"github.com/helenrobert/mentordesk/internal/db"
	"github.com/helenrobert/mentordesk/internal/debuglog"
	"github.com/helenrobert/mentordesk/internal/repository"
	"github.com/helenrobert/mentordesk/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for MENTORDESK_* settings; absence is fine.
	_ = godotenv.Load()

	logger := debuglog.New()
	defer func() { _ = logger.Sync() }()

	// The store is in-memory and freshly seeded on every launch; nothing is
	// written to disk.
	database, err := db.OpenDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	menteeRepo := repository.NewSQLiteMenteeRepo(database)
	submissionRepo := repository.NewSQLiteSubmissionRepo(database)
	notificationRepo := repository.NewSQLiteNotificationRepo(database)
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	recommendationRepo := repository.NewSQLiteRecommendationRepo(database)

	// Wire services
	app := &cli.App{
		Mentees:       service.NewMenteeService(menteeRepo),
		Submissions:   service.NewSubmissionService(submissionRepo),
		Notifications: service.NewNotificationService(notificationRepo),
		Schedule:      service.NewScheduleService(scheduleRepo),
		Recommend:     service.NewRecommendService(recommendationRepo, menteeRepo),
		Logger:        logger,
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
