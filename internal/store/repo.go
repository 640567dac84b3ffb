package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int    // max results (0 = unlimited)
	Op    string // "" = all operations
	From  time.Time
	To    time.Time
}

// Operations whose successful responses carry a plan.
const (
	opGenerate = "generate"
	opAdapt    = "adapt"
)

// PlanEventData captures one call to the plan generator.
type PlanEventData struct {
	RequestID    string
	SessionID    string
	Op           string
	Success      bool
	Status       int
	LatencyMs    int64
	ErrorMessage string
	// Readiness is the returned plan's overall readiness, -1 when no plan
	// was returned.
	Readiness    int
	RequestBody  string
	ResponseBody string
}

// PlanEvent is a stored PlanEventData with its identity.
type PlanEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	PlanEventData
}

// OpStats aggregates calls for a single operation.
type OpStats struct {
	Op           string
	Calls        int
	Failures     int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to plan generator events.
type EventRepo interface {
	// AppendPlanEvent records one call to the plan generator.
	AppendPlanEvent(ctx context.Context, data PlanEventData) error

	// QueryPlanEvents returns events newest first.
	QueryPlanEvents(ctx context.Context, opts QueryOpts) ([]PlanEvent, error)

	// GetPlanEvent returns a single event, or nil if it does not exist.
	GetPlanEvent(ctx context.Context, id int) (*PlanEvent, error)

	// LatestPlanResponse returns the newest successful generate or adapt
	// event, or nil if there is none.
	LatestPlanResponse(ctx context.Context) (*PlanEvent, error)

	// StatsByOp aggregates calls per operation.
	StatsByOp(ctx context.Context) ([]OpStats, error)
}
