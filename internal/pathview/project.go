package pathview

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/abhisek/pathfinder/internal/learnpath"
)

// RingCircumference is the arc length of the readiness ring.
const RingCircumference = 188.0

var resourceIcons = map[learnpath.ResourceType]string{
	learnpath.ResourceYouTube:  "▶",
	learnpath.ResourceCoursera: "🎓",
	learnpath.ResourceArticle:  "📄",
	learnpath.ResourcePractice: "💻",
}

const defaultResourceIcon = "📚"

// Project maps a plan and expansion state to a DisplayTree. It has no side
// effects and returns equal trees for equal inputs.
func Project(plan *learnpath.Plan, exp Expansion) DisplayTree {
	if plan == nil {
		return DisplayTree{Empty: true}
	}

	fill := float64(learnpath.ClampScore(plan.OverallReadiness)) / 100
	tree := DisplayTree{
		Header: Header{
			Readiness:      plan.OverallReadiness,
			RingFill:       fill,
			RingDashOffset: RingCircumference - RingCircumference*fill,
			TargetRole:     plan.TargetRole,
			TotalWeeks:     plan.TotalWeeks,
			Adapted:        plan.AdaptedFromScores,
			NextAction:     plan.NextAction,
		},
		Motivation: plan.MotivationalNote,
		Modules:    make([]ModuleView, 0, len(plan.Modules)),
	}

	for i, m := range plan.Modules {
		tree.Modules = append(tree.Modules, projectModule(i, m, exp.IsExpanded(i)))
	}
	return tree
}

func projectModule(i int, m learnpath.Module, expanded bool) ModuleView {
	mv := ModuleView{
		Index:          i,
		ID:             m.ID,
		Domain:         m.Domain,
		Title:          m.Title,
		Priority:       m.Priority,
		PriorityLabel:  m.Priority.Label(),
		WhyThisNow:     m.WhyThisNow,
		CurrentScore:   m.CurrentScore,
		TargetScore:    m.TargetScore,
		ScoreBarWidth:  float64(learnpath.ClampScore(m.CurrentScore)),
		ScoreLabel:     fmt.Sprintf("%d%% → %d%%", m.CurrentScore, m.TargetScore),
		EstimatedWeeks: m.EstimatedWeeks,
		Milestone:      m.Milestone,
		Expanded:       expanded,
		Resources:      make([]ResourceView, 0, len(m.Resources)),
	}
	for _, r := range m.Resources {
		mv.Resources = append(mv.Resources, projectResource(r))
	}
	return mv
}

// ProjectResources projects a standalone resource list.
func ProjectResources(rs []learnpath.Resource) []ResourceView {
	out := make([]ResourceView, 0, len(rs))
	for _, r := range rs {
		out = append(out, projectResource(r))
	}
	return out
}

func projectResource(r learnpath.Resource) ResourceView {
	icon, ok := resourceIcons[r.Type]
	if !ok {
		icon = defaultResourceIcon
	}
	rv := ResourceView{
		Type:       r.Type,
		TypeTag:    strings.ToUpper(string(r.Type)),
		Icon:       icon,
		Title:      r.Title,
		Why:        r.Why,
		Duration:   r.Duration,
		Difficulty: r.Difficulty,
		URL:        r.URL,
	}
	if IsNavigable(r.URL) {
		rv.Href = r.URL
		rv.Navigable = true
	}
	return rv
}

// IsNavigable reports whether raw is an absolute http(s) URL with a host.
func IsNavigable(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
