package plan

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pathfinder/internal/learnpath"
	"github.com/abhisek/pathfinder/internal/pathsession"
	"github.com/abhisek/pathfinder/internal/planclient"
	"github.com/abhisek/pathfinder/internal/screens/calls"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testPlan() *learnpath.Plan {
	return &learnpath.Plan{
		OverallReadiness: 45,
		TargetRole:       "Backend Engineer",
		TotalWeeks:       10,
		NextAction:       "Read the caching chapter",
		MotivationalNote: "Small steps.",
		Modules: []learnpath.Module{
			{
				Domain: "System Design", Title: "Caching", Priority: learnpath.PriorityCritical,
				CurrentScore: 30, TargetScore: 80, EstimatedWeeks: 3, WhyThisNow: "Interviews lean on it",
				Resources: []learnpath.Resource{
					{Type: learnpath.ResourceArticle, Title: "Cache patterns", URL: "https://example.com/cache"},
				},
			},
			{Domain: "DSA", Title: "Graphs", Priority: learnpath.PriorityHigh, CurrentScore: 50, TargetScore: 75},
		},
	}
}

func newTestPlanScreen(t *testing.T, responses ...planclient.MockResponse) (*PlanScreen, *pathsession.Session, *planclient.MockClient) {
	t.Helper()
	mock := planclient.NewMockClient(responses...)
	sess := pathsession.New(mock, nil)
	if err := sess.Resume(testPlan()); err != nil {
		t.Fatal(err)
	}
	return New(sess, 10), sess, mock
}

func runDone(t *testing.T, cmd tea.Cmd) calls.DoneMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if batch, ok := cmd().(tea.BatchMsg); ok {
		for _, c := range batch {
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

func TestPlanScreen_ViewShowsPlan(t *testing.T) {
	s, _, _ := newTestPlanScreen(t)
	view := s.View(100, 60)
	for _, want := range []string{"Backend Engineer", "45%", "Caching", "Graphs", "Critical", "Small steps."} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "Cache patterns") {
		t.Error("collapsed module should not list resources")
	}
}

func TestPlanScreen_ToggleExpandsOne(t *testing.T) {
	s, sess, _ := newTestPlanScreen(t)

	s.Update(specialKey(tea.KeyEnter))
	if !sess.Expansion().IsExpanded(0) {
		t.Fatal("module 0 should be expanded")
	}
	if !strings.Contains(s.View(100, 60), "Cache patterns") {
		t.Error("expanded module should list resources")
	}

	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyEnter))
	if sess.Expansion().IsExpanded(0) || !sess.Expansion().IsExpanded(1) {
		t.Error("expanding module 1 should collapse module 0")
	}
}

func TestPlanScreen_NudgeRaisesPending(t *testing.T) {
	s, sess, _ := newTestPlanScreen(t)

	s.Update(specialKey(tea.KeyRight))
	e, ok := sess.Score("System Design")
	if !ok || e.Score != 35 {
		t.Fatalf("score = %+v, %v; want 35", e, ok)
	}
	if !sess.AdaptationPending() {
		t.Error("expected pending after score change")
	}
	if !strings.Contains(s.View(100, 60), "press a to adapt") {
		t.Error("view should offer adaptation")
	}
}

func TestPlanScreen_AdaptFlow(t *testing.T) {
	adapted := testPlan()
	adapted.OverallReadiness = 60
	adapted.AdaptedFromScores = true
	s, sess, mock := newTestPlanScreen(t, planclient.MockResponse{Plan: adapted})

	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyLeft))
	_, cmd := s.Update(keyPress('a'))
	if sess.Phase() != pathsession.PhaseAdapting {
		t.Fatalf("phase = %v, want adapting", sess.Phase())
	}

	// A second trigger while adapting is ignored.
	if _, again := s.Update(keyPress('a')); again != nil {
		t.Error("second adapt should not issue a command")
	}

	s.Update(runDone(t, cmd))
	if sess.Phase() != pathsession.PhaseReady || sess.AdaptationPending() {
		t.Errorf("phase = %v pending = %v", sess.Phase(), sess.AdaptationPending())
	}
	if len(mock.AdaptCalls) != 1 {
		t.Fatalf("adapt calls = %d, want 1", len(mock.AdaptCalls))
	}
	q := mock.AdaptCalls[0].NewQuiz
	if q.Domain != "DSA" || q.Score != 45 {
		t.Errorf("new_quiz = %+v, want DSA 45", q)
	}
	if !strings.Contains(s.View(100, 60), "adapted") {
		t.Error("view should mark the plan as adapted")
	}
}

func TestPlanScreen_AdaptFailureOffersRetry(t *testing.T) {
	s, sess, _ := newTestPlanScreen(t, planclient.MockResponse{
		Err: &learnpath.PlanGenerationError{Op: planclient.OpAdapt, Err: errors.New("timeout")},
	})
	before := sess.Plan()

	s.Update(specialKey(tea.KeyRight))
	_, cmd := s.Update(keyPress('a'))
	s.Update(runDone(t, cmd))

	if sess.Plan() != before {
		t.Error("failed adapt must keep the previous plan")
	}
	if !sess.AdaptationPending() {
		t.Error("pending should stay set after failure")
	}
	if !strings.Contains(s.View(100, 60), "press r to retry") {
		t.Error("view should offer retry")
	}
}

func TestPlanScreen_AdaptWithoutChangeShowsError(t *testing.T) {
	s, _, mock := newTestPlanScreen(t)
	_, cmd := s.Update(keyPress('a'))
	if cmd != nil {
		t.Error("expected no command")
	}
	if s.errMsg == "" {
		t.Error("expected a validation message")
	}
	if mock.CallCount() != 0 {
		t.Errorf("calls = %d, want 0", mock.CallCount())
	}
}

func TestPlanScreen_RegenerateResumedPlan(t *testing.T) {
	regenerated := testPlan()
	regenerated.OverallReadiness = 50
	s, sess, mock := newTestPlanScreen(t, planclient.MockResponse{Plan: regenerated})

	_, cmd := s.Update(keyPress('g'))
	if s.errMsg != "" {
		t.Fatalf("errMsg = %q", s.errMsg)
	}
	if sess.Phase() != pathsession.PhaseGenerating {
		t.Fatalf("phase = %v, want generating", sess.Phase())
	}
	s.Update(runDone(t, cmd))

	if len(mock.GenerateCalls) != 1 {
		t.Fatalf("generate calls = %d, want 1", len(mock.GenerateCalls))
	}
	req := mock.GenerateCalls[0]
	if req.TargetRole != "Backend Engineer" || req.WeeklyHours != 10 {
		t.Errorf("request = %+v, want resumed role and default hours", req)
	}
	if sess.Plan() != regenerated {
		t.Error("expected the regenerated plan")
	}
}

func TestScroll(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = string(rune('a' + i%26))
	}
	got := scroll(lines, 20, 9)
	if len(got) != 9 {
		t.Fatalf("len = %d, want 9", len(got))
	}
	if got[3] != lines[20] {
		t.Errorf("cursor line not in upper third")
	}
	if len(scroll(lines[:5], 4, 10)) != 5 {
		t.Error("short content should not be cut")
	}
}
