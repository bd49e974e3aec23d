package cli

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/helenrobert/mentordesk/internal/cli/formatter"
)

// huhTheme returns a huh theme derived from the active brand palette, so
// modal forms follow the light/dark toggle with the rest of the screen.
func huhTheme(th formatter.Theme) *huh.Theme {
	p := th.Palette
	t := huh.ThemeBase()

	// Focused state: accent highlight
	t.Focused.Title = lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(p.Accent)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(p.Success)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(p.Text)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(p.Background).Background(p.CallToAction).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(p.Dim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(p.CallToAction)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(p.CallToAction)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(p.Text)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(p.Dim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(p.Dim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(p.Alert)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(p.Dim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(p.Dim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(p.Dim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(p.Dim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(p.Dim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(p.Dim)

	return t
}
