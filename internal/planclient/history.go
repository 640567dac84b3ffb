package planclient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/pathfinder/internal/learnpath"
	"github.com/abhisek/pathfinder/internal/store"
)

// PlanFromEvent decodes the plan recorded in a successful generate or adapt
// event. Recorded plans were validated when received, so they are decoded
// without re-validation.
func PlanFromEvent(e *store.PlanEvent) (*learnpath.Plan, error) {
	if e == nil {
		return nil, fmt.Errorf("no event")
	}
	if !e.Success || (e.Op != OpGenerate && e.Op != OpAdapt) {
		return nil, fmt.Errorf("event %d holds no plan", e.ID)
	}
	if e.ResponseBody == "" {
		return nil, fmt.Errorf("event %d: response not captured", e.ID)
	}
	var p learnpath.Plan
	if err := json.Unmarshal([]byte(e.ResponseBody), &p); err != nil {
		return nil, fmt.Errorf("event %d: decode plan: %w", e.ID, err)
	}
	if p.Modules == nil {
		p.Modules = []learnpath.Module{}
	}
	return &p, nil
}

// LatestPlan returns the newest plan in history and the event it came
// from. Both are nil when history holds no plan.
func LatestPlan(ctx context.Context, repo store.EventRepo) (*learnpath.Plan, *store.PlanEvent, error) {
	e, err := repo.LatestPlanResponse(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("query latest plan: %w", err)
	}
	if e == nil {
		return nil, nil, nil
	}
	p, err := PlanFromEvent(e)
	if err != nil {
		return nil, nil, err
	}
	return p, e, nil
}
