package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/helenrobert/mentordesk/internal/service"
)

// App holds references to all service interfaces used by the console.
type App struct {
	Mentees       service.MenteeService
	Submissions   service.SubmissionService
	Notifications service.NotificationService
	Schedule      service.ScheduleService
	Recommend     service.RecommendService

	Logger *zap.Logger

	// IsInteractive reports whether stdin is an interactive terminal.
	IsInteractive func() bool
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

// NewRootCmd creates the top-level "mentordesk" command. Running it without
// a subcommand starts the dashboard TUI.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:     "mentordesk",
		Short:   "Mentor console for mentees, submissions and sessions",
		Version: "0.1.0",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("the dashboard needs an interactive terminal; try 'mentordesk notifications' for plain output")
			}
			p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running dashboard: %w", err)
			}
			return nil
		},
	}

	root.AddCommand(newNotificationsCmd(app))

	return root
}
