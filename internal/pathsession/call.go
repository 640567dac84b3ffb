package pathsession

import (
	"context"

	"github.com/abhisek/pathfinder/internal/learnpath"
	"github.com/abhisek/pathfinder/internal/planclient"
)

// Call is an in-flight plan request handed out by BeginGenerate or
// BeginAdapt. Do performs the network call; the result must be handed back
// to the matching Complete method.
type Call struct {
	Op string

	seq       uint64
	sessionID string
	client    planclient.Client

	generate learnpath.GenerateRequest
	adapt    learnpath.AdaptRequest
}

// GenerateRequest returns the request of a generate call.
func (c *Call) GenerateRequest() learnpath.GenerateRequest { return c.generate }

// AdaptRequest returns the request of an adapt call.
func (c *Call) AdaptRequest() learnpath.AdaptRequest { return c.adapt }

// Do issues the request. It does not touch session state and is safe to run
// off the event loop.
func (c *Call) Do(ctx context.Context) (*learnpath.Plan, error) {
	ctx = planclient.WithSessionID(ctx, c.sessionID)
	switch c.Op {
	case planclient.OpAdapt:
		return c.client.Adapt(ctx, c.adapt)
	default:
		return c.client.Generate(ctx, c.generate)
	}
}
