package learnpath

import "testing"

const validPlanJSON = `{
	"overall_readiness": 45,
	"target_role": "Backend Engineer",
	"total_weeks": 12,
	"next_action": "Solve two graph problems today",
	"motivational_note": "You're on the right path!",
	"adapted_from_scores": false,
	"modules": [
		{
			"id": 1,
			"domain": "DSA",
			"title": "Graphs and Trees",
			"priority": "critical",
			"why_this_now": "Interviews lean on graph traversal",
			"current_score": 30,
			"target_score": 75,
			"estimated_weeks": 4,
			"milestone": "Solve medium graph problems in 30 minutes",
			"resources": [
				{"type": "youtube", "title": "Graph playlist", "why": "Visual", "url": "https://youtube.com/x", "duration": "6h", "difficulty": "intermediate"}
			]
		}
	]
}`

func TestDecodePlan_Valid(t *testing.T) {
	p, err := DecodePlan([]byte(validPlanJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.OverallReadiness != 45 || p.TotalWeeks != 12 {
		t.Errorf("unexpected header: %+v", p)
	}
	if len(p.Modules) != 1 || p.Modules[0].Priority != PriorityCritical {
		t.Fatalf("unexpected modules: %+v", p.Modules)
	}
	if p.Modules[0].Resources[0].Type != ResourceYouTube {
		t.Errorf("resource type = %q", p.Modules[0].Resources[0].Type)
	}
}

func TestDecodePlan_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"overall_readiness":`},
		{"missing modules", `{"overall_readiness": 10, "target_role": "x", "total_weeks": 3}`},
		{"readiness out of range", `{"overall_readiness": 140, "target_role": "x", "total_weeks": 3, "modules": []}`},
		{"zero weeks", `{"overall_readiness": 40, "target_role": "x", "total_weeks": 0, "modules": []}`},
		{"bad priority", `{"overall_readiness": 40, "target_role": "x", "total_weeks": 3, "modules": [
			{"domain": "DSA", "title": "t", "priority": "urgent", "current_score": 1, "target_score": 2}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodePlan([]byte(tt.raw)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestDecodePlan_EmptyModulesNonNil(t *testing.T) {
	p, err := DecodePlan([]byte(`{"overall_readiness": 0, "target_role": "x", "total_weeks": 1, "modules": []}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Modules == nil {
		t.Fatal("modules should be non-nil")
	}
}

func TestDecodeResources(t *testing.T) {
	res, err := DecodeResources([]byte(`[{"type":"coursera","title":"Cloud Fundamentals","url":"https://coursera.org/x"}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 1 || res[0].Type != ResourceCoursera {
		t.Fatalf("unexpected resources: %+v", res)
	}

	if _, err := DecodeResources([]byte(`{"type":"coursera"}`)); err == nil {
		t.Fatal("expected error for non-array")
	}
}
