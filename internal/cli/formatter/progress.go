package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45%.
// The bar is colored by percentage: success above 66%, call-to-action
// between 33 and 66, alert below.
func (t Theme) RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := t.StyleSuccess
	if pct < 0.33 {
		style = t.StyleAlert
	} else if pct < 0.66 {
		style = t.StyleCTA
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}
