package setup

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pathfinder/internal/learnpath"
	"github.com/abhisek/pathfinder/internal/pathsession"
	"github.com/abhisek/pathfinder/internal/planclient"
	"github.com/abhisek/pathfinder/internal/router"
	"github.com/abhisek/pathfinder/internal/screen"
	"github.com/abhisek/pathfinder/internal/screens/calls"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "plan" }
func (s *stubScreen) Title() string                          { return "Plan" }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestSetup(responses ...planclient.MockResponse) (*SetupScreen, *pathsession.Session, *planclient.MockClient) {
	mock := planclient.NewMockClient(responses...)
	sess := pathsession.New(mock, nil)
	s := New(sess, 10, func() screen.Screen { return &stubScreen{} })
	s.Init()
	return s, sess, mock
}

func typeText(s *SetupScreen, text string) {
	for _, r := range text {
		s.Update(keyPress(r))
	}
}

// findDone runs cmd, descending into batches, and returns the first DoneMsg.
func findDone(t *testing.T, cmd tea.Cmd) calls.DoneMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	switch msg := cmd().(type) {
	case calls.DoneMsg:
		return msg
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if done, ok := c().(calls.DoneMsg); ok {
				return done
			}
		}
	}
	t.Fatal("no DoneMsg produced")
	return calls.DoneMsg{}
}

func focusButton(s *SetupScreen) {
	s.focus = s.buttonIndex()
	s.role.Blur()
	s.hours.Blur()
}

func TestSetup_Title(t *testing.T) {
	s, _, _ := newTestSetup()
	if s.Title() != "Build Your Path" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestSetup_PrefillsHours(t *testing.T) {
	s, _, _ := newTestSetup()
	if s.hours.Value() != "10" {
		t.Errorf("hours = %q, want 10", s.hours.Value())
	}
}

func TestSetup_EmptyRoleShowsValidationError(t *testing.T) {
	s, sess, mock := newTestSetup()
	focusButton(s)

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no command for invalid input")
	}
	if !strings.Contains(s.errMsg, "target_role") {
		t.Errorf("errMsg = %q", s.errMsg)
	}
	if sess.Phase() != pathsession.PhaseEmpty {
		t.Errorf("phase = %v, want empty", sess.Phase())
	}
	if mock.CallCount() != 0 {
		t.Errorf("calls = %d, want 0", mock.CallCount())
	}
}

func TestSetup_GenerateFlow(t *testing.T) {
	plan := &learnpath.Plan{OverallReadiness: 45, TargetRole: "Backend Engineer", TotalWeeks: 10}
	s, sess, mock := newTestSetup(planclient.MockResponse{Plan: plan})

	typeText(s, "Backend Engineer")
	focusButton(s)

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if sess.Phase() != pathsession.PhaseGenerating {
		t.Fatalf("phase = %v, want generating", sess.Phase())
	}

	// Input is ignored while generating.
	s.Update(specialKey(tea.KeyEnter))

	done := findDone(t, cmd)
	_, next := s.Update(done)
	if sess.Phase() != pathsession.PhaseReady {
		t.Fatalf("phase = %v, want ready", sess.Phase())
	}
	if next == nil {
		t.Fatal("expected navigation command")
	}
	if _, ok := next().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg")
	}
	if len(mock.GenerateCalls) != 1 || mock.GenerateCalls[0].WeeklyHours != 10 {
		t.Errorf("generate calls = %+v", mock.GenerateCalls)
	}
}

func TestSetup_GenerateFailureShowsRetry(t *testing.T) {
	s, sess, _ := newTestSetup(planclient.MockResponse{
		Err: &learnpath.PlanGenerationError{Op: planclient.OpGenerate, Err: errors.New("connection refused")},
	})
	typeText(s, "SRE")
	focusButton(s)

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	_, next := s.Update(findDone(t, cmd))
	if next != nil {
		t.Error("expected no navigation on failure")
	}
	if sess.Phase() != pathsession.PhaseEmpty {
		t.Errorf("phase = %v, want empty", sess.Phase())
	}
	if !strings.Contains(s.errMsg, "retry") {
		t.Errorf("errMsg = %q, want retry hint", s.errMsg)
	}
}

func TestSetup_AdaptFailurePointsToPlanScreen(t *testing.T) {
	s, sess, _ := newTestSetup(planclient.MockResponse{
		Err: &learnpath.PlanGenerationError{Op: planclient.OpAdapt, Err: errors.New("connection refused")},
	})
	plan := &learnpath.Plan{
		OverallReadiness: 40,
		TargetRole:       "SRE",
		TotalWeeks:       6,
		Modules:          []learnpath.Module{{Domain: "Linux", Title: "Processes", CurrentScore: 40, TargetScore: 80}},
	}
	if err := sess.Resume(plan); err != nil {
		t.Fatal(err)
	}
	sess.SetScore("Linux", 55, learnpath.DifficultyMedium)
	call, err := sess.BeginAdapt("Linux")
	if err != nil {
		t.Fatal(err)
	}

	s.Update(calls.Run(call)())
	if sess.Phase() != pathsession.PhaseReady {
		t.Errorf("phase = %v, want ready", sess.Phase())
	}
	if strings.Contains(s.errMsg, "Enter") {
		t.Errorf("errMsg = %q, adapt is not retried with Enter", s.errMsg)
	}
	if !strings.Contains(s.errMsg, "r to retry") {
		t.Errorf("errMsg = %q, want plan screen retry hint", s.errMsg)
	}
}

func TestSetup_ScoreAdjust(t *testing.T) {
	s, sess, _ := newTestSetup()
	s.moveFocus(2) // first domain
	domain := s.domains[0].Domain

	s.Update(specialKey(tea.KeyEnter))
	e, ok := sess.Score(domain)
	if !ok || e.Score != initialScore {
		t.Fatalf("score = %+v, %v; want %d", e, ok, initialScore)
	}

	s.Update(specialKey(tea.KeyRight))
	s.Update(specialKey(tea.KeyRight))
	s.Update(specialKey(tea.KeyLeft))
	e, _ = sess.Score(domain)
	if e.Score != initialScore+scoreStep {
		t.Errorf("score = %d, want %d", e.Score, initialScore+scoreStep)
	}

	s.Update(keyPress('d'))
	e, _ = sess.Score(domain)
	if e.Difficulty != learnpath.DifficultyHard {
		t.Errorf("difficulty = %q, want hard", e.Difficulty)
	}
}

func TestSetup_CapturingInput(t *testing.T) {
	s, _, _ := newTestSetup()
	if !s.CapturingInput() {
		t.Error("role field should capture input")
	}
	s.moveFocus(2)
	if s.CapturingInput() {
		t.Error("domain rows should not capture input")
	}
}

func TestSetup_ViewListsDomains(t *testing.T) {
	s, _, _ := newTestSetup()
	view := s.View(100, 40)
	for _, d := range learnpath.DefaultDomains() {
		if !strings.Contains(view, string(d.Domain)) {
			t.Errorf("view missing domain %q", d.Domain)
		}
	}
	if !strings.Contains(view, "Generate plan") {
		t.Error("view missing generate button")
	}
}
