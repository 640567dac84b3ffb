package components

import (
	"github.com/abhisek/pathfinder/internal/ui/theme"
)

// Button is a styled button. Disabled buttons render dimmed.
type Button struct {
	Label    string
	Focused  bool
	Disabled bool
}

// View renders the button.
func (b Button) View() string {
	label := b.Label
	if b.Focused {
		label = "▸ " + label
	}
	if b.Focused && !b.Disabled {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
