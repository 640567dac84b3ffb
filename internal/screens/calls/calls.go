// Package calls runs session plan requests as bubbletea commands.
package calls

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathfinder/internal/learnpath"
	"github.com/abhisek/pathfinder/internal/pathsession"
	"github.com/abhisek/pathfinder/internal/ui/theme"
)

// DoneMsg carries the outcome of a plan request back to the event loop,
// where it must be passed to Session.Complete.
type DoneMsg struct {
	Call *pathsession.Call
	Plan *learnpath.Plan
	Err  error
}

// Run performs call off the event loop.
func Run(call *pathsession.Call) tea.Cmd {
	return func() tea.Msg {
		plan, err := call.Do(context.Background())
		return DoneMsg{Call: call, Plan: plan, Err: err}
	}
}

// NewSpinner returns the spinner shown while a call is in flight.
func NewSpinner() spinner.Model {
	return spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
	)
}
