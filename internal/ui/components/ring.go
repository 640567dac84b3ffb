package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathfinder/internal/ui/theme"
)

// ringSegments is the number of cells the readiness ring is drawn with.
const ringSegments = 12

// ReadinessRing renders a plan's readiness as a segmented gauge.
type ReadinessRing struct {
	// Fill is the readiness fraction in [0,1].
	Fill      float64
	Readiness int
}

// View renders the ring as a single line.
func (r ReadinessRing) View() string {
	lit := clampCells(int(r.Fill*ringSegments+0.5), ringSegments)

	c := theme.Error
	switch {
	case r.Readiness >= 70:
		c = theme.Success
	case r.Readiness >= 40:
		c = theme.Accent
	}

	on := lipgloss.NewStyle().Foreground(c).Render(strings.Repeat("●", lit))
	off := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("○", ringSegments-lit))
	pct := lipgloss.NewStyle().Foreground(c).Bold(true).Render(fmt.Sprintf(" %d%%", r.Readiness))
	return on + off + pct
}
