package formatter

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingGeometry(t *testing.T) {
	spec := Ring(50, DefaultRingSize, DefaultRingStroke)

	wantRadius := float64(DefaultRingSize-DefaultRingStroke) / 2
	assert.Equal(t, wantRadius, spec.Radius)
	assert.InDelta(t, 2*math.Pi*wantRadius, spec.Circumference, 1e-9)
	assert.InDelta(t, spec.Circumference/2, spec.ArcLength, 1e-9)
	assert.Equal(t, [3]string{"success", "accent", "cta"}, spec.GradientStops)
}

func TestRingClampsProgress(t *testing.T) {
	assert.Equal(t, 0, Ring(-20, 48, 6).Progress)
	assert.Equal(t, 100, Ring(140, 48, 6).Progress)
	assert.Equal(t, 0.0, Ring(-20, 48, 6).ArcLength)

	full := Ring(140, 48, 6)
	assert.InDelta(t, full.Circumference, full.ArcLength, 1e-9)
}

func TestRingDeterministic(t *testing.T) {
	a := Ring(72, 48, 6)
	b := Ring(72, 48, 6)
	assert.Equal(t, a, b)
}

func TestRingArcMonotonic(t *testing.T) {
	prev := -1.0
	for p := 0; p <= 100; p += 5 {
		arc := Ring(p, 48, 6).ArcLength
		require.Greater(t, arc, prev, "arc length must grow with progress (p=%d)", p)
		prev = arc
	}
}

func TestRenderRingShowsPercentage(t *testing.T) {
	th := NewTheme(false)

	out := th.RenderRing(Ring(72, DefaultRingSize, DefaultRingStroke))
	assert.Contains(t, out, "72%")
	assert.Contains(t, th.RenderRing(Ring(0, 48, 6)), "○")
	assert.Contains(t, th.RenderRing(Ring(100, 48, 6)), "●")
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "abcd…", PadRight("abcdef", 5))
	assert.Len(t, PadRight("abcdef", 5), len("abcd")+len("…"))
	assert.Equal(t, strings.Repeat(" ", 3), PadRight("", 3))
}
