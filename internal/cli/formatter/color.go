package formatter

import "github.com/charmbracelet/lipgloss"

// Palette is the set of semantic brand tokens every visual component reads.
// Two palettes exist, one per display mode; components never hold raw hex
// values of their own.
type Palette struct {
	Background   lipgloss.Color // page background / whitespace
	CallToAction lipgloss.Color // high-visibility actions
	Success      lipgloss.Color // growth / positive
	Text         lipgloss.Color // main text and headers
	Accent       lipgloss.Color // logo accents / premium
	Alert        lipgloss.Color // alerts / urgency
	Dim          lipgloss.Color // secondary text
}

// Light is the default brand palette.
func Light() Palette {
	return Palette{
		Background:   lipgloss.Color("#F6F3EE"),
		CallToAction: lipgloss.Color("#F5B82E"),
		Success:      lipgloss.Color("#32B768"),
		Text:         lipgloss.Color("#2E3438"),
		Accent:       lipgloss.Color("#C48A6A"),
		Alert:        lipgloss.Color("#E54B3B"),
		Dim:          lipgloss.Color("#8B9096"),
	}
}

// Dark swaps background and text and keeps the accent tokens.
func Dark() Palette {
	return Palette{
		Background:   lipgloss.Color("#2E3438"),
		CallToAction: lipgloss.Color("#F5B82E"),
		Success:      lipgloss.Color("#32B768"),
		Text:         lipgloss.Color("#F6F3EE"),
		Accent:       lipgloss.Color("#C48A6A"),
		Alert:        lipgloss.Color("#E54B3B"),
		Dim:          lipgloss.Color("#9BA1A6"),
	}
}

// Theme bundles a palette with the derived lipgloss styles.
type Theme struct {
	Palette Palette

	StyleFg      lipgloss.Style
	StyleBold    lipgloss.Style
	StyleDim     lipgloss.Style
	StyleHeader  lipgloss.Style
	StyleCTA     lipgloss.Style
	StyleSuccess lipgloss.Style
	StyleAccent  lipgloss.Style
	StyleAlert   lipgloss.Style
}

// NewTheme derives the style set for the given display mode.
func NewTheme(dark bool) Theme {
	p := Light()
	if dark {
		p = Dark()
	}
	return Theme{
		Palette:      p,
		StyleFg:      lipgloss.NewStyle().Foreground(p.Text),
		StyleBold:    lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		StyleDim:     lipgloss.NewStyle().Foreground(p.Dim),
		StyleHeader:  lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		StyleCTA:     lipgloss.NewStyle().Foreground(p.CallToAction),
		StyleSuccess: lipgloss.NewStyle().Foreground(p.Success),
		StyleAccent:  lipgloss.NewStyle().Foreground(p.Accent),
		StyleAlert:   lipgloss.NewStyle().Foreground(p.Alert),
	}
}

// Dim renders text in the muted color.
func (t Theme) Dim(text string) string { return t.StyleDim.Render(text) }

// Bold renders text in bold foreground.
func (t Theme) Bold(text string) string { return t.StyleBold.Render(text) }

// Header renders a section header in the accent style.
func (t Theme) Header(text string) string { return t.StyleHeader.Render(text) }
