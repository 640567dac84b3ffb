package setup

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathfinder/internal/learnpath"
	"github.com/abhisek/pathfinder/internal/pathsession"
	"github.com/abhisek/pathfinder/internal/planclient"
	"github.com/abhisek/pathfinder/internal/router"
	"github.com/abhisek/pathfinder/internal/screen"
	"github.com/abhisek/pathfinder/internal/screens/calls"
	"github.com/abhisek/pathfinder/internal/ui/components"
	"github.com/abhisek/pathfinder/internal/ui/layout"
	"github.com/abhisek/pathfinder/internal/ui/theme"
)

const (
	scoreStep    = 5
	initialScore = 50
	sliderWidth  = 20
)

const (
	focusRole = iota
	focusHours
	focusDomains // first domain row; the button follows the last one
)

var difficulties = []learnpath.Difficulty{
	learnpath.DifficultyEasy,
	learnpath.DifficultyMedium,
	learnpath.DifficultyHard,
}

// SetupScreen collects the target role, weekly hours and self-assessed
// scores, and starts plan generation.
type SetupScreen struct {
	sess        *pathsession.Session
	planFactory func() screen.Screen

	role    components.TextInput
	hours   components.TextInput
	domains []learnpath.DomainInfo
	focus   int

	spinner spinner.Model
	errMsg  string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)
var _ screen.InputCapturer = (*SetupScreen)(nil)

// New creates a SetupScreen. planFactory builds the screen pushed once a
// plan is ready.
func New(sess *pathsession.Session, defaultHours int, planFactory func() screen.Screen) *SetupScreen {
	role := components.NewTextInput("e.g. Backend Engineer", false, 60)
	hours := components.NewTextInput("hours / week", true, 3)

	prevRole, prevHours := sess.LastInputs()
	if prevRole != "" {
		role.SetValue(prevRole)
	}
	if prevHours > 0 {
		defaultHours = prevHours
	}
	if defaultHours > 0 {
		hours.SetValue(strconv.Itoa(defaultHours))
	}
	role.Focus()

	return &SetupScreen{
		sess:        sess,
		planFactory: planFactory,
		role:        role,
		hours:       hours,
		domains:     learnpath.DefaultDomains(),
		spinner:     calls.NewSpinner(),
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.role.Focus()
}

func (s *SetupScreen) Title() string {
	return "Build Your Path"
}

func (s *SetupScreen) CapturingInput() bool {
	return s.focus == focusRole || s.focus == focusHours
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Tab/↑↓", Description: "Move"}}
	if s.onDomain() {
		hints = append(hints,
			layout.KeyHint{Key: "←→", Description: "Score"},
			layout.KeyHint{Key: "d", Description: "Difficulty"},
		)
	}
	hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Generate"})
	if s.sess.Plan() != nil {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+P", Description: "View plan"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (s *SetupScreen) buttonIndex() int {
	return focusDomains + len(s.domains)
}

func (s *SetupScreen) onDomain() bool {
	return s.focus >= focusDomains && s.focus < s.buttonIndex()
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case calls.DoneMsg:
		return s, s.handleDone(msg)

	case spinner.TickMsg:
		if !s.sess.Phase().InFlight() {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		if s.sess.Phase().InFlight() {
			return s, nil
		}
		return s, s.handleKey(msg)
	}

	return s, s.updateInput(msg)
}

func (s *SetupScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		return s.moveFocus(1)
	case "shift+tab", "up":
		return s.moveFocus(-1)
	case "ctrl+p":
		if s.sess.Plan() != nil {
			return s.pushPlan()
		}
		return nil
	case "enter":
		if s.focus == s.buttonIndex() {
			return s.generate()
		}
		if s.onDomain() {
			s.adjust(0)
			return nil
		}
		return s.moveFocus(1)
	}

	if s.onDomain() {
		switch msg.String() {
		case "left", "h":
			s.adjust(-scoreStep)
		case "right", "l":
			s.adjust(scoreStep)
		case "d":
			s.cycleDifficulty()
		}
		return nil
	}

	return s.updateInput(msg)
}

func (s *SetupScreen) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus {
	case focusRole:
		s.role, cmd = s.role.Update(msg)
	case focusHours:
		s.hours, cmd = s.hours.Update(msg)
	}
	return cmd
}

func (s *SetupScreen) moveFocus(delta int) tea.Cmd {
	n := s.buttonIndex() + 1
	s.focus = (s.focus + delta + n) % n

	s.role.Blur()
	s.hours.Blur()
	switch s.focus {
	case focusRole:
		return s.role.Focus()
	case focusHours:
		return s.hours.Focus()
	}
	return nil
}

// adjust moves the focused domain's score by delta. An unrated domain is
// first rated at initialScore.
func (s *SetupScreen) adjust(delta int) {
	d := s.domains[s.focus-focusDomains].Domain
	e, ok := s.sess.Score(d)
	if !ok {
		s.sess.SetScore(d, initialScore, learnpath.DefaultDifficulty)
		return
	}
	if delta != 0 {
		s.sess.SetScore(d, e.Score+delta, e.Difficulty)
	}
}

func (s *SetupScreen) cycleDifficulty() {
	d := s.domains[s.focus-focusDomains].Domain
	e, ok := s.sess.Score(d)
	if !ok {
		return
	}
	next := learnpath.DefaultDifficulty
	for i, diff := range difficulties {
		if diff == e.Difficulty {
			next = difficulties[(i+1)%len(difficulties)]
			break
		}
	}
	s.sess.SetScore(d, e.Score, next)
}

func (s *SetupScreen) generate() tea.Cmd {
	hours, err := s.hours.NumericValue()
	if err != nil {
		hours = 0
	}
	call, err := s.sess.BeginGenerate(s.role.Value(), hours)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.errMsg = ""
	return tea.Batch(calls.Run(call), s.spinner.Tick)
}

func (s *SetupScreen) handleDone(msg calls.DoneMsg) tea.Cmd {
	if err := s.sess.Complete(msg.Call, msg.Plan, msg.Err); err != nil {
		if errors.Is(err, pathsession.ErrStaleCall) {
			return nil
		}
		s.errMsg = err.Error()
		if learnpath.IsRetryable(err) {
			s.errMsg += retryHint(msg.Call)
		}
		return nil
	}
	s.errMsg = ""
	return s.pushPlan()
}

// retryHint names the key that retries call. Only generation is retried
// from this screen; adaptation is retried from the plan screen.
func retryHint(call *pathsession.Call) string {
	if call != nil && call.Op == planclient.OpAdapt {
		return "  (ctrl+p for the plan, then r to retry)"
	}
	return "  (press Enter to retry)"
}

func (s *SetupScreen) pushPlan() tea.Cmd {
	next := s.planFactory()
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Where are you headed?"))
	b.WriteString("\n\n")

	b.WriteString(s.fieldLabel("Target role", focusRole))
	b.WriteString(s.role.View())
	b.WriteString("\n")
	b.WriteString(s.fieldLabel("Weekly hours", focusHours))
	b.WriteString(s.hours.View())
	b.WriteString("\n\n")

	b.WriteString(theme.Subtitle.Render("Rate yourself (skip what you haven't touched)"))
	b.WriteString("\n")
	for i, info := range s.domains {
		b.WriteString(s.domainRow(i, info, width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	btn := components.Button{
		Label:    "Generate plan",
		Focused:  s.focus == s.buttonIndex(),
		Disabled: !s.sess.CanGenerate(),
	}
	b.WriteString(btn.View())
	b.WriteString("\n")

	switch {
	case s.sess.Phase().InFlight():
		b.WriteString(s.spinner.View() + " " + theme.Hint.Render("Generating your path…"))
	case s.errMsg != "":
		b.WriteString(theme.ErrorText.Render(s.errMsg))
	}

	return lipgloss.NewStyle().Padding(1, 2).MaxWidth(width).Render(b.String())
}

func (s *SetupScreen) fieldLabel(label string, idx int) string {
	style := theme.Unselected
	if s.focus == idx {
		style = theme.Selected
	}
	return style.Width(16).Render(label)
}

func (s *SetupScreen) domainRow(i int, info learnpath.DomainInfo, width int) string {
	focused := s.focus == focusDomains+i
	cursor := "  "
	nameStyle := theme.Unselected
	if focused {
		cursor = theme.Selected.Render("▸ ")
		nameStyle = theme.Selected
	}

	name := nameStyle.Width(22).Render(fmt.Sprintf("%s %s", info.Icon, info.Domain))
	e, ok := s.sess.Score(info.Domain)
	if !ok {
		return cursor + name + theme.Hint.Render("not rated")
	}

	slider := components.Slider{Value: e.Score, Width: sliderWidth}
	if layout.IsCompactWidth(width) {
		slider.Width = sliderWidth / 2
	}
	return cursor + name + slider.View() + "  " + theme.Subtitle.Render(string(e.Difficulty))
}
