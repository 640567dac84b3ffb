package planclient

import (
	"context"

	"github.com/abhisek/pathfinder/internal/learnpath"
)

// Client is the boundary to the external plan generator. Every failure is
// reported as a *learnpath.PlanGenerationError; callers never receive a
// partial plan. Implementations do not retry.
type Client interface {
	// Generate requests a full plan.
	Generate(ctx context.Context, req learnpath.GenerateRequest) (*learnpath.Plan, error)

	// Adapt requests a replacement plan driven by one new score.
	Adapt(ctx context.Context, req learnpath.AdaptRequest) (*learnpath.Plan, error)

	// Resources requests curated resources for a topic.
	Resources(ctx context.Context, req learnpath.ResourceRequest) ([]learnpath.Resource, error)
}

// Operation names used in errors, logs and history.
const (
	OpGenerate  = "generate"
	OpAdapt     = "adapt"
	OpResources = "resources"
)
