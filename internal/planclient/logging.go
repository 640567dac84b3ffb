package planclient

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/pathfinder/internal/learnpath"
	"github.com/abhisek/pathfinder/internal/store"
)

// LoggingClient is a decorator that logs every call and records it as a
// plan event in the history store.
type LoggingClient struct {
	inner  Client
	repo   store.EventRepo
	logger *zap.Logger
}

var _ Client = (*LoggingClient)(nil)

// WithLogging wraps c with logging. repo may be nil when history is
// disabled; logger may be nil.
func WithLogging(c Client, repo store.EventRepo, logger *zap.Logger) Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingClient{inner: c, repo: repo, logger: logger}
}

func (l *LoggingClient) Generate(ctx context.Context, req learnpath.GenerateRequest) (*learnpath.Plan, error) {
	ctx, call := l.begin(ctx, OpGenerate, req)
	plan, err := l.inner.Generate(ctx, req)
	l.finish(ctx, call, plan, err)
	return plan, err
}

func (l *LoggingClient) Adapt(ctx context.Context, req learnpath.AdaptRequest) (*learnpath.Plan, error) {
	ctx, call := l.begin(ctx, OpAdapt, req)
	plan, err := l.inner.Adapt(ctx, req)
	l.finish(ctx, call, plan, err)
	return plan, err
}

func (l *LoggingClient) Resources(ctx context.Context, req learnpath.ResourceRequest) ([]learnpath.Resource, error) {
	ctx, call := l.begin(ctx, OpResources, req)
	res, err := l.inner.Resources(ctx, req)
	l.finish(ctx, call, res, err)
	return res, err
}

type callRecord struct {
	op        string
	requestID string
	start     time.Time
	request   string
}

func (l *LoggingClient) begin(ctx context.Context, op string, req any) (context.Context, callRecord) {
	id := RequestIDFrom(ctx)
	if id == "" {
		id = uuid.NewString()
		ctx = WithRequestID(ctx, id)
	}
	l.logger.Debug("plan request issued",
		zap.String("op", op),
		zap.String("request_id", id),
		zap.String("session_id", SessionIDFrom(ctx)),
	)
	return ctx, callRecord{
		op:        op,
		requestID: id,
		start:     time.Now(),
		request:   marshalBody(req),
	}
}

func (l *LoggingClient) finish(ctx context.Context, call callRecord, result any, err error) {
	latency := time.Since(call.start)

	data := store.PlanEventData{
		RequestID:   call.requestID,
		SessionID:   SessionIDFrom(ctx),
		Op:          call.op,
		Success:     err == nil,
		LatencyMs:   latency.Milliseconds(),
		Readiness:   -1,
		RequestBody: call.request,
	}

	fields := []zap.Field{
		zap.String("op", call.op),
		zap.String("request_id", call.requestID),
		zap.Duration("latency", latency),
	}

	if err != nil {
		data.ErrorMessage = err.Error()
		var pe *learnpath.PlanGenerationError
		if errors.As(err, &pe) {
			data.Status = pe.Status
			fields = append(fields, zap.Int("status", pe.Status))
		}
		l.logger.Warn("plan request failed", append(fields, zap.Error(err))...)
	} else {
		data.Status = 200
		data.ResponseBody = marshalBody(result)
		if plan, ok := result.(*learnpath.Plan); ok && plan != nil {
			data.Readiness = plan.OverallReadiness
			fields = append(fields, zap.Int("readiness", plan.OverallReadiness), zap.Int("modules", len(plan.Modules)))
		}
		l.logger.Info("plan request completed", fields...)
	}

	if l.repo == nil {
		return
	}
	// History is best effort; a failed write never fails the call.
	if logErr := l.repo.AppendPlanEvent(context.WithoutCancel(ctx), data); logErr != nil {
		l.logger.Warn("failed to record plan event", zap.String("request_id", call.requestID), zap.Error(logErr))
	}
}

func marshalBody(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
