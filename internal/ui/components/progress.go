package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathfinder/internal/ui/theme"
)

// ScoreBar displays a horizontal bar filled to the current score with a
// marker at the target score.
type ScoreBar struct {
	// Percent is the fill width in [0,100].
	Percent float64

	// Target is the target score, drawn as a marker. Negative hides it.
	Target int

	Label string
	Width int
}

// NewScoreBar creates a new score bar.
func NewScoreBar(percent float64, target int, label string, width int) ScoreBar {
	return ScoreBar{
		Percent: percent,
		Target:  target,
		Label:   label,
		Width:   width,
	}
}

// View renders the score bar.
func (p ScoreBar) View() string {
	labelWidth := 0
	if p.Label != "" {
		labelWidth = lipgloss.Width(p.Label) + 2
	}

	barWidth := p.Width - labelWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := clampCells(int(float64(barWidth)*p.Percent/100), barWidth)
	marker := -1
	if p.Target >= 0 {
		marker = clampCells(int(float64(barWidth)*float64(p.Target)/100), barWidth-1)
	}

	var b strings.Builder
	for i := 0; i < barWidth; i++ {
		switch {
		case i == marker:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("│"))
		case i < filled:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render("█"))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("░"))
		}
	}

	result := b.String()
	if p.Label != "" {
		result += "  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(p.Label)
	}
	return result
}

// Slider renders a 0-100 score picker for the setup screen.
type Slider struct {
	Value int
	Width int
}

// View renders the slider.
func (s Slider) View() string {
	width := s.Width
	if width < 4 {
		width = 4
	}
	pos := clampCells(int(float64(width)*float64(s.Value)/100), width-1)
	track := lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("━", pos)) +
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("●") +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-pos-1))
	return track + lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf(" %3d", s.Value))
}

func clampCells(n, limit int) int {
	if n < 0 {
		return 0
	}
	if n > limit {
		return limit
	}
	return n
}
