package pathview

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/abhisek/pathfinder/internal/learnpath"
)

func samplePlan() *learnpath.Plan {
	return &learnpath.Plan{
		OverallReadiness: 42,
		TargetRole:       "Backend Engineer",
		TotalWeeks:       12,
		NextAction:       "Start with Redis",
		MotivationalNote: "Keep going",
		Modules: []learnpath.Module{
			{
				ID: 1, Domain: "System Design", Title: "Caching", Priority: learnpath.PriorityCritical,
				CurrentScore: 30, TargetScore: 80, EstimatedWeeks: 3,
				Resources: []learnpath.Resource{
					{Type: learnpath.ResourceYouTube, Title: "Intro", URL: "https://youtube.com/watch?v=x"},
					{Type: learnpath.ResourceArticle, Title: "Paper", URL: "javascript:alert(1)"},
					{Type: "podcast", Title: "Talk", URL: "not a url"},
				},
			},
			{ID: 2, Domain: "DSA", Title: "Graphs", Priority: learnpath.PriorityMedium, CurrentScore: 120, TargetScore: 90},
			{ID: 3, Domain: "Python", Title: "Async", Priority: learnpath.PriorityHigh, CurrentScore: -5, TargetScore: 70},
		},
	}
}

func TestProject_NilPlan(t *testing.T) {
	tree := Project(nil, NoneExpanded())
	if !tree.Empty {
		t.Fatal("expected empty tree")
	}
	if len(tree.Modules) != 0 {
		t.Fatalf("modules = %d, want 0", len(tree.Modules))
	}
}

func TestProject_Header(t *testing.T) {
	tree := Project(samplePlan(), NoneExpanded())
	h := tree.Header
	if h.RingFill != 0.42 {
		t.Errorf("RingFill = %v, want 0.42", h.RingFill)
	}
	want := RingCircumference - RingCircumference*0.42
	if h.RingDashOffset != want {
		t.Errorf("RingDashOffset = %v, want %v", h.RingDashOffset, want)
	}
	if h.TargetRole != "Backend Engineer" || h.TotalWeeks != 12 {
		t.Errorf("header = %+v", h)
	}
	if tree.Motivation != "Keep going" {
		t.Errorf("Motivation = %q", tree.Motivation)
	}
}

func TestProject_RingBounds(t *testing.T) {
	for _, tc := range []struct {
		readiness int
		fill      float64
	}{
		{0, 0}, {100, 1}, {150, 1}, {-10, 0},
	} {
		tree := Project(&learnpath.Plan{OverallReadiness: tc.readiness}, NoneExpanded())
		if tree.Header.RingFill != tc.fill {
			t.Errorf("readiness %d: RingFill = %v, want %v", tc.readiness, tree.Header.RingFill, tc.fill)
		}
	}
}

func TestProject_ModulesKeepOrderAndClampBars(t *testing.T) {
	tree := Project(samplePlan(), NoneExpanded())
	if len(tree.Modules) != 3 {
		t.Fatalf("modules = %d, want 3", len(tree.Modules))
	}
	titles := []string{tree.Modules[0].Title, tree.Modules[1].Title, tree.Modules[2].Title}
	if !reflect.DeepEqual(titles, []string{"Caching", "Graphs", "Async"}) {
		t.Errorf("order = %v", titles)
	}
	if w := tree.Modules[0].ScoreBarWidth; w != 30 {
		t.Errorf("bar[0] = %v, want 30", w)
	}
	if w := tree.Modules[1].ScoreBarWidth; w != 100 {
		t.Errorf("bar[1] = %v, want 100", w)
	}
	if w := tree.Modules[2].ScoreBarWidth; w != 0 {
		t.Errorf("bar[2] = %v, want 0", w)
	}
	if l := tree.Modules[1].PriorityLabel; l != "Polish" {
		t.Errorf("label = %q, want Polish", l)
	}
	if l := tree.Modules[0].ScoreLabel; l != "30% → 80%" {
		t.Errorf("score label = %q", l)
	}
}

func TestProject_Resources(t *testing.T) {
	res := Project(samplePlan(), NoneExpanded()).Modules[0].Resources
	if len(res) != 3 {
		t.Fatalf("resources = %d, want 3", len(res))
	}
	if !res[0].Navigable || res[0].Href == "" || res[0].Icon != "▶" || res[0].TypeTag != "YOUTUBE" {
		t.Errorf("res[0] = %+v", res[0])
	}
	if res[1].Navigable || res[1].Href != "" {
		t.Errorf("javascript URL should be inert: %+v", res[1])
	}
	if res[2].Navigable || res[2].Icon != defaultResourceIcon {
		t.Errorf("unknown type should be inert with fallback icon: %+v", res[2])
	}
}

func TestProject_Idempotent(t *testing.T) {
	plan := samplePlan()
	exp := NoneExpanded().Toggle(1)
	a := Project(plan, exp)
	b := Project(plan, exp)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("projection is not idempotent")
	}
}

func TestProject_AtMostOneExpanded(t *testing.T) {
	plan := samplePlan()
	exp := NoneExpanded()
	for _, i := range []int{0, 2, 1, 1, 2, 0, 0} {
		exp = exp.Toggle(i)
		count := 0
		for _, m := range Project(plan, exp).Modules {
			if m.Expanded {
				count++
			}
		}
		if count > 1 {
			t.Fatalf("after toggle %d: %d modules expanded", i, count)
		}
	}
}

func TestExpansion_Toggle(t *testing.T) {
	exp := NoneExpanded().Toggle(2)
	if !exp.IsExpanded(2) {
		t.Fatal("module 2 should be expanded")
	}
	exp = exp.Toggle(0)
	if exp.IsExpanded(2) || !exp.IsExpanded(0) {
		t.Fatal("expanding 0 should collapse 2")
	}
	exp = exp.Toggle(0)
	if _, ok := exp.Expanded(); ok {
		t.Fatal("toggling the expanded module should collapse it")
	}
	if _, ok := NoneExpanded().Toggle(-1).Expanded(); ok {
		t.Fatal("negative index should collapse")
	}
}

func TestIsNavigable(t *testing.T) {
	for raw, want := range map[string]bool{
		"https://example.com/a": true,
		"http://example.com":    true,
		"  https://x.io  ":      true,
		"ftp://example.com":     false,
		"/relative/path":        false,
		"":                      false,
		"https://":              false,
	} {
		if got := IsNavigable(raw); got != want {
			t.Errorf("IsNavigable(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	tree := Project(samplePlan(), NoneExpanded().Toggle(0))
	if err := RenderText(&buf, tree, true); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Backend Engineer", "42% ready", "[Critical] Caching", "https://youtube.com/watch?v=x", "Keep going"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "javascript:") {
		t.Error("inert link should not be printed")
	}

	buf.Reset()
	if err := RenderText(&buf, Project(nil, NoneExpanded()), false); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "No plan.\n" {
		t.Errorf("empty render = %q", buf.String())
	}
}

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown(Project(samplePlan(), NoneExpanded()))
	for _, want := range []string{
		"# Backend Engineer",
		"**42% ready**",
		"## 1. Caching",
		"[Intro](<https://youtube.com/watch?v=x>)",
		"- 📄 Paper",
		"_Keep going_",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "](javascript:") {
		t.Error("inert link rendered as a link")
	}
	if got := RenderMarkdown(Project(nil, NoneExpanded())); got != "_No plan._\n" {
		t.Errorf("empty markdown = %q", got)
	}
}

func TestMarkdownLinkDestinationStaysIntact(t *testing.T) {
	plan := &learnpath.Plan{
		TargetRole: "SRE",
		Modules: []learnpath.Module{{
			Title: "Linux",
			Resources: []learnpath.Resource{
				{Type: learnpath.ResourceArticle, Title: "Wiki", URL: "https://en.wikipedia.org/wiki/Init_(Unix)"},
				{Type: learnpath.ResourceArticle, Title: "Notes", URL: "https://example.com/a b>c<d"},
			},
		}},
	}
	out := RenderMarkdown(Project(plan, NoneExpanded()))
	for _, want := range []string{
		"[Wiki](<https://en.wikipedia.org/wiki/Init_(Unix)>)",
		"[Notes](<https://example.com/a%20b%3Ec%3Cd>)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownEscapesModelText(t *testing.T) {
	plan := &learnpath.Plan{TargetRole: "C++ [lead]", Modules: []learnpath.Module{{Title: "a_b*c"}}}
	out := RenderMarkdown(Project(plan, NoneExpanded()))
	if !strings.Contains(out, `C++ \[lead\]`) || !strings.Contains(out, `a\_b\*c`) {
		t.Errorf("text not escaped:\n%s", out)
	}
}
