package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/helenrobert/mentordesk/internal/cli/formatter"
	"github.com/helenrobert/mentordesk/internal/domain"
)

// addSeverityFlag registers the shared --severity filter flag.
func addSeverityFlag(fs *pflag.FlagSet, value *string) {
	fs.StringVarP(value, "severity", "s", "", "filter by severity (info, warning, success)")
}

// newNotificationsCmd prints the notification feed without starting the TUI.
func newNotificationsCmd(app *App) *cobra.Command {
	var severity string

	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Print the notification feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := app.Notifications.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("loading notifications: %w", err)
			}

			th := formatter.NewTheme(false)
			for _, n := range notes {
				if severity != "" && n.Severity != domain.Severity(severity) {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					th.SeverityIcon(n.Severity), n.Message, th.Dim(n.Date))
				if n.Details != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", th.Dim(n.Details))
				}
			}
			return nil
		},
	}

	addSeverityFlag(cmd.Flags(), &severity)
	return cmd
}
