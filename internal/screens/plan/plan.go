package plan

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathfinder/internal/learnpath"
	"github.com/abhisek/pathfinder/internal/pathsession"
	"github.com/abhisek/pathfinder/internal/pathview"
	"github.com/abhisek/pathfinder/internal/screen"
	"github.com/abhisek/pathfinder/internal/screens/calls"
	"github.com/abhisek/pathfinder/internal/ui/components"
	"github.com/abhisek/pathfinder/internal/ui/layout"
	"github.com/abhisek/pathfinder/internal/ui/theme"
)

const scoreStep = 5

// PlanScreen shows the current plan and drives adaptation.
type PlanScreen struct {
	sess         *pathsession.Session
	defaultHours int
	cursor       int
	spinner      spinner.Model
	errMsg       string
}

var _ screen.Screen = (*PlanScreen)(nil)
var _ screen.KeyHintProvider = (*PlanScreen)(nil)

// New creates a PlanScreen over sess. defaultHours is used to regenerate a
// plan that was not generated in this session, such as a resumed one.
func New(sess *pathsession.Session, defaultHours int) *PlanScreen {
	return &PlanScreen{
		sess:         sess,
		defaultHours: defaultHours,
		spinner:      calls.NewSpinner(),
	}
}

func (s *PlanScreen) Init() tea.Cmd {
	return nil
}

func (s *PlanScreen) Title() string {
	return "Your Learning Path"
}

func (s *PlanScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Expand"},
		{Key: "←→", Description: "Score"},
	}
	if s.sess.CanAdapt() {
		hints = append(hints, layout.KeyHint{Key: "a", Description: "Adapt"})
	}
	if f := s.sess.LastFailure(); f != nil && f.Retryable() {
		hints = append(hints, layout.KeyHint{Key: "r", Description: "Retry"})
	}
	return append(hints,
		layout.KeyHint{Key: "g", Description: "Regenerate"},
		layout.KeyHint{Key: "Esc", Description: "Edit"},
	)
}

func (s *PlanScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case calls.DoneMsg:
		if err := s.sess.Complete(msg.Call, msg.Plan, msg.Err); err != nil {
			if !errors.Is(err, pathsession.ErrStaleCall) {
				s.errMsg = err.Error()
			}
			return s, nil
		}
		s.errMsg = ""
		s.clampCursor()
		return s, nil

	case spinner.TickMsg:
		if !s.sess.Phase().InFlight() {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *PlanScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	plan := s.sess.Plan()
	if plan == nil {
		return nil
	}

	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(plan.Modules)-1 {
			s.cursor++
		}
	case "enter", "space":
		s.sess.ToggleModule(s.cursor)
	case "left", "h":
		s.nudge(plan, -scoreStep)
	case "right", "l":
		s.nudge(plan, scoreStep)
	case "a":
		return s.start(s.sess.BeginAdapt(s.sess.LastTouched()))
	case "r":
		return s.start(s.sess.BeginRetry())
	case "g":
		return s.start(s.regenerate(plan))
	}
	return nil
}

// regenerate begins a full generation with the last accepted inputs,
// falling back to the plan's role and the configured weekly hours.
func (s *PlanScreen) regenerate(plan *learnpath.Plan) (*pathsession.Call, error) {
	role, hours := s.sess.LastInputs()
	if role == "" {
		role = plan.TargetRole
	}
	if hours <= 0 {
		hours = s.defaultHours
	}
	return s.sess.BeginGenerate(role, hours)
}

// nudge changes the score of the selected module's domain. A domain with
// no recorded score starts from the module's current score.
func (s *PlanScreen) nudge(plan *learnpath.Plan, delta int) {
	if s.cursor >= len(plan.Modules) {
		return
	}
	m := plan.Modules[s.cursor]
	e, ok := s.sess.Score(m.Domain)
	if !ok {
		e = learnpath.ScoreEntry{Domain: m.Domain, Score: m.CurrentScore}
	}
	s.sess.SetScore(m.Domain, e.Score+delta, e.Difficulty)
}

func (s *PlanScreen) start(call *pathsession.Call, err error) tea.Cmd {
	if err != nil {
		if pathsession.IsBusy(err) {
			return nil
		}
		s.errMsg = err.Error()
		return nil
	}
	s.errMsg = ""
	return tea.Batch(calls.Run(call), s.spinner.Tick)
}

func (s *PlanScreen) clampCursor() {
	plan := s.sess.Plan()
	if plan == nil || len(plan.Modules) == 0 {
		s.cursor = 0
		return
	}
	if s.cursor >= len(plan.Modules) {
		s.cursor = len(plan.Modules) - 1
	}
}

func (s *PlanScreen) View(width, height int) string {
	tree := s.sess.View()
	if tree.Empty {
		return theme.Hint.Render("  No plan yet. Press Esc to set one up.")
	}

	var lines []string
	add := func(block string) {
		lines = append(lines, strings.Split(block, "\n")...)
	}

	add(s.renderHeader(tree.Header))
	add(s.renderStatus())
	add("")

	cursorLine := 0
	for _, m := range tree.Modules {
		if m.Index == s.cursor {
			cursorLine = len(lines)
		}
		add(s.renderModule(m, width))
	}

	if tree.Motivation != "" {
		add("")
		add(theme.Hint.Render(tree.Motivation))
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(strings.Join(scroll(lines, cursorLine, height), "\n"))
}

// scroll returns the window of lines of the given height that keeps the
// cursor line in the upper third.
func scroll(lines []string, cursorLine, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	offset := cursorLine - height/3
	if offset < 0 {
		offset = 0
	}
	if offset > len(lines)-height {
		offset = len(lines) - height
	}
	return lines[offset : offset+height]
}

func (s *PlanScreen) renderHeader(h pathview.Header) string {
	ring := components.ReadinessRing{Fill: h.RingFill, Readiness: h.Readiness}.View()
	title := theme.Title.Render(h.TargetRole)
	meta := theme.Subtitle.Render(fmt.Sprintf("%d weeks", h.TotalWeeks))
	if h.Adapted {
		meta += "  " + lipgloss.NewStyle().Foreground(theme.Secondary).Render("↻ adapted")
	}

	out := title + "   " + ring + "\n" + meta
	if h.NextAction != "" {
		out += "\n" + theme.Body.Render("Next: ") + theme.Hint.Render(h.NextAction)
	}
	return out
}

func (s *PlanScreen) renderStatus() string {
	switch s.sess.Phase() {
	case pathsession.PhaseAdapting:
		return s.spinner.View() + " " + theme.Hint.Render("Adapting your path…")
	case pathsession.PhaseGenerating:
		return s.spinner.View() + " " + theme.Hint.Render("Regenerating your path…")
	}

	if s.errMsg != "" {
		msg := theme.ErrorText.Render(s.errMsg)
		if f := s.sess.LastFailure(); f != nil && f.Retryable() {
			msg += theme.Hint.Render("  press r to retry")
		}
		return msg
	}
	if s.sess.AdaptationPending() {
		return theme.Banner.Render(fmt.Sprintf("Scores changed: press a to adapt from %s", s.sess.LastTouched()))
	}
	return ""
}

func (s *PlanScreen) renderModule(m pathview.ModuleView, width int) string {
	var b strings.Builder

	marker := "▸"
	if m.Expanded {
		marker = "▾"
	}
	title := theme.Body.Bold(true).Render(m.Title)
	b.WriteString(fmt.Sprintf("%s %s %s  %s\n", marker, theme.PriorityBadge(m.Priority), title,
		theme.Subtitle.Render(fmt.Sprintf("%s · ~%dw", m.Domain, m.EstimatedWeeks))))

	barWidth := width - 12
	if barWidth > 50 {
		barWidth = 50
	}
	b.WriteString(components.NewScoreBar(m.ScoreBarWidth, m.TargetScore, m.ScoreLabel, barWidth).View())

	if m.Expanded {
		if m.WhyThisNow != "" {
			b.WriteString("\n" + theme.Body.Render("Why now: ") + theme.Hint.Render(m.WhyThisNow))
		}
		if m.Milestone != "" {
			b.WriteString("\n" + theme.Body.Render("Milestone: ") + theme.Hint.Render(m.Milestone))
		}
		for _, r := range m.Resources {
			b.WriteString("\n" + renderResource(r))
		}
	}

	style := theme.Card
	if m.Index == s.cursor {
		style = theme.CardSelected
	}
	return style.Width(width - 4).Render(b.String())
}

func renderResource(r pathview.ResourceView) string {
	line := fmt.Sprintf("  %s %s %s", r.Icon, theme.Subtitle.Render(r.TypeTag), theme.Body.Render(r.Title))
	if r.Duration != "" {
		line += theme.Subtitle.Render(" (" + r.Duration + ")")
	}
	if r.Navigable {
		line += "\n     " + theme.Link.Render(r.Href)
	}
	return line
}
