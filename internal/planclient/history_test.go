package planclient

import (
	"context"
	"testing"

	"github.com/abhisek/pathfinder/internal/learnpath"
	"github.com/abhisek/pathfinder/internal/store"
)

func TestLatestPlan_Empty(t *testing.T) {
	repo := openHistory(t)
	p, e, err := LatestPlan(context.Background(), repo)
	if err != nil {
		t.Fatal(err)
	}
	if p != nil || e != nil {
		t.Fatalf("expected no plan, got %+v %+v", p, e)
	}
}

func TestLatestPlan_RoundTripsThroughLogging(t *testing.T) {
	repo := openHistory(t)
	first := &learnpath.Plan{OverallReadiness: 30, TargetRole: "SRE", TotalWeeks: 4}
	second := &learnpath.Plan{
		OverallReadiness: 55, TargetRole: "SRE", TotalWeeks: 4, AdaptedFromScores: true,
		Modules: []learnpath.Module{{Domain: "DevOps / Cloud", Title: "K8s", Priority: learnpath.PriorityHigh}},
	}
	mock := NewMockClient(MockResponse{Plan: first}, MockResponse{Plan: second})
	c := WithLogging(mock, repo, nil)

	ctx := context.Background()
	if _, err := c.Generate(ctx, learnpath.GenerateRequest{TargetRole: "SRE", WeeklyHours: 5}); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Adapt(ctx, learnpath.AdaptRequest{CurrentPath: *first, NewQuiz: learnpath.ScoreEntry{Domain: "DevOps / Cloud", Score: 70}}); err != nil {
		t.Fatal(err)
	}

	p, e, err := LatestPlan(ctx, repo)
	if err != nil {
		t.Fatal(err)
	}
	if e.Op != OpAdapt {
		t.Errorf("op = %q, want adapt", e.Op)
	}
	if p.OverallReadiness != 55 || !p.AdaptedFromScores || len(p.Modules) != 1 {
		t.Errorf("plan = %+v", p)
	}
}

func TestPlanFromEvent_Rejects(t *testing.T) {
	for name, e := range map[string]*store.PlanEvent{
		"nil":       nil,
		"failed":    {PlanEventData: store.PlanEventData{Op: OpGenerate, Success: false}},
		"resources": {PlanEventData: store.PlanEventData{Op: OpResources, Success: true, ResponseBody: "[]"}},
		"empty":     {PlanEventData: store.PlanEventData{Op: OpGenerate, Success: true}},
		"garbage":   {PlanEventData: store.PlanEventData{Op: OpGenerate, Success: true, ResponseBody: "{"}},
	} {
		if _, err := PlanFromEvent(e); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
