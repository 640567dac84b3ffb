package store

import (
	"context"
	"fmt"
	"sort"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/pathfinder/ent"
	"github.com/abhisek/pathfinder/ent/planevent"
)

// eventRepo implements EventRepo backed by ent and the sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendPlanEvent(ctx context.Context, data PlanEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PlanEvent.Create().
		SetSequence(seqNum).
		SetRequestID(data.RequestID).
		SetSessionID(data.SessionID).
		SetOp(data.Op).
		SetSuccess(data.Success).
		SetStatus(data.Status).
		SetLatencyMs(data.LatencyMs).
		SetErrorMessage(data.ErrorMessage).
		SetReadiness(data.Readiness).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save plan event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryPlanEvents(ctx context.Context, opts QueryOpts) ([]PlanEvent, error) {
	q := r.client.PlanEvent.Query()
	if opts.Op != "" {
		q = q.Where(planevent.Op(opts.Op))
	}
	if !opts.From.IsZero() {
		q = q.Where(planevent.TimestampGTE(opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		q = q.Where(planevent.TimestampLTE(opts.To.UTC()))
	}
	q = q.Order(ent.Desc(planevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query plan events: %w", err)
	}
	out := make([]PlanEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toPlanEvent(row))
	}
	return out, nil
}

func (r *eventRepo) GetPlanEvent(ctx context.Context, id int) (*PlanEvent, error) {
	row, err := r.client.PlanEvent.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get plan event: %w", err)
	}
	return toPlanEvent(row), nil
}

func (r *eventRepo) LatestPlanResponse(ctx context.Context) (*PlanEvent, error) {
	row, err := r.client.PlanEvent.Query().
		Where(
			planevent.Success(true),
			planevent.OpIn(opGenerate, opAdapt),
		).
		Order(ent.Desc(planevent.FieldSequence)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest plan: %w", err)
	}
	return toPlanEvent(row), nil
}

// opAggregate is a row of the per-op aggregate query.
type opAggregate struct {
	Op       string  `json:"op"`
	Calls    int     `json:"calls"`
	Failures int     `json:"failures"`
	Latency  float64 `json:"latency"`
}

func (r *eventRepo) StatsByOp(ctx context.Context) ([]OpStats, error) {
	var rows []opAggregate
	err := r.client.PlanEvent.Query().
		GroupBy(planevent.FieldOp).
		Aggregate(
			func(s *entsql.Selector) string {
				return entsql.As(entsql.Count("*"), "calls")
			},
			func(s *entsql.Selector) string {
				return entsql.As("SUM(CASE WHEN "+s.C(planevent.FieldSuccess)+" THEN 0 ELSE 1 END)", "failures")
			},
			func(s *entsql.Selector) string {
				return entsql.As(entsql.Avg(s.C(planevent.FieldLatencyMs)), "latency")
			},
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("query op stats: %w", err)
	}

	out := make([]OpStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, OpStats{
			Op:           row.Op,
			Calls:        row.Calls,
			Failures:     row.Failures,
			AvgLatencyMs: int64(row.Latency),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Op < out[j].Op })
	return out, nil
}

func toPlanEvent(row *ent.PlanEvent) *PlanEvent {
	return &PlanEvent{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		PlanEventData: PlanEventData{
			RequestID:    row.RequestID,
			SessionID:    row.SessionID,
			Op:           row.Op,
			Success:      row.Success,
			Status:       row.Status,
			LatencyMs:    row.LatencyMs,
			ErrorMessage: row.ErrorMessage,
			Readiness:    row.Readiness,
			RequestBody:  row.RequestBody,
			ResponseBody: row.ResponseBody,
		},
	}
}
