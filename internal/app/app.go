package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/pathfinder/internal/logging"
	"github.com/abhisek/pathfinder/internal/pathsession"
	"github.com/abhisek/pathfinder/internal/router"
	"github.com/abhisek/pathfinder/internal/screen"
	"github.com/abhisek/pathfinder/internal/screens/plan"
	"github.com/abhisek/pathfinder/internal/screens/setup"
	"github.com/abhisek/pathfinder/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Session            *pathsession.Session
	DefaultWeeklyHours int
	Logger             *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	sess   *pathsession.Session
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	sess := opts.Session
	planFactory := func() screen.Screen { return plan.New(sess, opts.DefaultWeeklyHours) }

	var initial screen.Screen = setup.New(sess, opts.DefaultWeeklyHours, planFactory)
	r := router.New(initial)
	if sess.Plan() != nil {
		r.Push(planFactory())
	}
	return AppModel{router: r, sess: sess}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if !m.capturing() {
				return m, tea.Quit
			}
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) capturing() bool {
	c, ok := m.router.Active().(screen.InputCapturer)
	return ok && c.CapturingInput()
}

// status summarizes the session for the header.
func (m AppModel) status() string {
	phase := m.sess.Phase()
	p := m.sess.Plan()
	switch {
	case phase.InFlight():
		return phase.String() + "…"
	case p == nil:
		return ""
	case m.sess.AdaptationPending():
		return fmt.Sprintf("%d%% · scores changed", p.OverallReadiness)
	}
	return fmt.Sprintf("%d%% ready", p.OverallReadiness)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}
	header := layout.RenderHeader(title, m.status(), m.width)

	footerHints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	logger := logging.OrNop(opts.Logger)
	logger.Info("tui start", zap.String("session_id", opts.Session.ID()))

	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		logger.Error("tui exited with error", zap.Error(err))
		return fmt.Errorf("run tui: %w", err)
	}
	logger.Info("tui exit", zap.Stringer("phase", opts.Session.Phase()))
	return nil
}
