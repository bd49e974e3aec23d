package formatter

import (
	"fmt"
	"math"
)

// RingSpec is the deterministic visual descriptor of a circular progress
// indicator. Identical input always yields an identical spec, and the arc
// length grows linearly with progress.
type RingSpec struct {
	Progress      int // clamped to 0..100
	Size          int
	StrokeWidth   int
	Radius        float64
	Circumference float64
	ArcLength     float64
	// GradientStops is the fixed gradient order: success, accent, cta.
	GradientStops [3]string
}

// DefaultRingSize and DefaultRingStroke match the original indicator.
const (
	DefaultRingSize   = 48
	DefaultRingStroke = 6
)

// Ring computes the ring geometry for a progress percentage.
// Out-of-range progress is clamped to the nearest bound, never an error.
func Ring(progress, size, stroke int) RingSpec {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	r := float64(size-stroke) / 2
	c := 2 * math.Pi * r

	return RingSpec{
		Progress:      progress,
		Size:          size,
		StrokeWidth:   stroke,
		Radius:        r,
		Circumference: c,
		ArcLength:     float64(progress) / 100 * c,
		GradientStops: [3]string{"success", "accent", "cta"},
	}
}

// ring glyphs by completed quarter, ○ through ●.
var ringGlyphs = [...]string{"○", "◔", "◑", "◕", "●"}

// RenderRing draws a compact terminal stand-in for the ring: a fill glyph
// plus the percentage, colored along the gradient stop order.
func (t Theme) RenderRing(spec RingSpec) string {
	quarter := spec.Progress * 4 / 100
	glyph := ringGlyphs[quarter]

	style := t.StyleSuccess
	switch {
	case spec.Progress >= 67:
		style = t.StyleCTA
	case spec.Progress >= 34:
		style = t.StyleAccent
	}
	return style.Render(glyph) + " " + t.StyleBold.Render(fmt.Sprintf("%d%%", spec.Progress))
}
