package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pathfinder/internal/learnpath"
	"github.com/abhisek/pathfinder/internal/pathsession"
	"github.com/abhisek/pathfinder/internal/planclient"
	"github.com/abhisek/pathfinder/internal/router"
)

func newTestModel(t *testing.T, withPlan bool) AppModel {
	t.Helper()
	sess := pathsession.New(planclient.NewMockClient(), nil)
	if withPlan {
		if err := sess.Resume(&learnpath.Plan{OverallReadiness: 45, TargetRole: "SRE", TotalWeeks: 6}); err != nil {
			t.Fatal(err)
		}
	}
	return newAppModel(Options{Session: sess, DefaultWeeklyHours: 10})
}

func TestNewAppModel_StartsOnSetup(t *testing.T) {
	m := newTestModel(t, false)
	if m.router.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", m.router.Depth())
	}
	if got := m.router.Active().Title(); got != "Build Your Path" {
		t.Errorf("active = %q", got)
	}
}

func TestNewAppModel_ResumedPlanOpensPlanScreen(t *testing.T) {
	m := newTestModel(t, true)
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}
	if got := m.router.Active().Title(); got != "Your Learning Path" {
		t.Errorf("active = %q", got)
	}
}

func TestEscPopsToSetup(t *testing.T) {
	m := newTestModel(t, true)
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg")
	}
}

func TestQDoesNotQuitWhileTyping(t *testing.T) {
	m := newTestModel(t, false)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Fatal("q should be typed into the role field, not quit")
		}
	}
}

func TestStatus(t *testing.T) {
	m := newTestModel(t, false)
	if s := m.status(); s != "" {
		t.Errorf("empty status = %q", s)
	}

	m = newTestModel(t, true)
	if s := m.status(); s != "45% ready" {
		t.Errorf("status = %q", s)
	}
	m.sess.SetScore("DSA", 70, "")
	if s := m.status(); !strings.Contains(s, "scores changed") {
		t.Errorf("status = %q", s)
	}
}

func TestWindowSizeRecorded(t *testing.T) {
	m := newTestModel(t, false)
	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if cmd != nil {
		t.Error("expected no command on resize")
	}
	am := updated.(AppModel)
	if am.width != 120 || am.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", am.width, am.height)
	}
}
