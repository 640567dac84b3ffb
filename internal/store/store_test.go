package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestWALModeFileDB(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("query journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want %q", mode, "wal")
	}
}

func TestAppendAndQueryPlanEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []PlanEventData{
		{RequestID: "r1", Op: "generate", Success: true, Status: 200, LatencyMs: 120, Readiness: 45, ResponseBody: `{"overall_readiness":45}`},
		{RequestID: "r2", Op: "adapt", Success: false, Status: 500, LatencyMs: 80, Readiness: -1, ErrorMessage: "boom"},
		{RequestID: "r3", Op: "resources", Success: true, Status: 200, LatencyMs: 40, Readiness: -1},
	}
	for _, e := range events {
		if err := repo.AppendPlanEvent(ctx, e); err != nil {
			t.Fatalf("append %s: %v", e.RequestID, err)
		}
	}

	all, err := repo.QueryPlanEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	if all[0].RequestID != "r3" {
		t.Errorf("expected newest first, got %q", all[0].RequestID)
	}
	if all[0].Sequence <= all[1].Sequence {
		t.Errorf("sequence not increasing: %d <= %d", all[0].Sequence, all[1].Sequence)
	}

	limited, err := repo.QueryPlanEvents(ctx, QueryOpts{Limit: 1, Op: "adapt"})
	if err != nil {
		t.Fatalf("query adapt: %v", err)
	}
	if len(limited) != 1 || limited[0].ErrorMessage != "boom" || limited[0].Success {
		t.Fatalf("unexpected adapt events: %+v", limited)
	}

	got, err := repo.GetPlanEvent(ctx, all[2].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.RequestID != "r1" || got.Readiness != 45 {
		t.Fatalf("unexpected event: %+v", got)
	}

	missing, err := repo.GetPlanEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestLatestPlanResponse(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	latest, err := repo.LatestPlanResponse(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if latest != nil {
		t.Fatal("expected nil when no events exist")
	}

	_ = repo.AppendPlanEvent(ctx, PlanEventData{RequestID: "g", Op: "generate", Success: true, ResponseBody: "first"})
	_ = repo.AppendPlanEvent(ctx, PlanEventData{RequestID: "a1", Op: "adapt", Success: true, ResponseBody: "second"})
	_ = repo.AppendPlanEvent(ctx, PlanEventData{RequestID: "a2", Op: "adapt", Success: false})
	_ = repo.AppendPlanEvent(ctx, PlanEventData{RequestID: "res", Op: "resources", Success: true, ResponseBody: "[]"})

	latest, err = repo.LatestPlanResponse(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest == nil || latest.ResponseBody != "second" {
		t.Fatalf("expected latest successful plan response, got %+v", latest)
	}
}

func TestStatsByOp(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	_ = repo.AppendPlanEvent(ctx, PlanEventData{RequestID: "1", Op: "generate", Success: true, LatencyMs: 100})
	_ = repo.AppendPlanEvent(ctx, PlanEventData{RequestID: "2", Op: "generate", Success: false, LatencyMs: 300})
	_ = repo.AppendPlanEvent(ctx, PlanEventData{RequestID: "3", Op: "adapt", Success: true, LatencyMs: 50})

	stats, err := repo.StatsByOp(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 ops, got %d", len(stats))
	}
	// Ordered by op name.
	if stats[0].Op != "adapt" || stats[1].Op != "generate" {
		t.Fatalf("unexpected order: %+v", stats)
	}
	if stats[1].Calls != 2 || stats[1].Failures != 1 || stats[1].AvgLatencyMs != 200 {
		t.Errorf("unexpected generate stats: %+v", stats[1])
	}
}

func TestPlanEventsGoThroughClient(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendPlanEvent(ctx, PlanEventData{RequestID: "r1", Op: "generate", Success: true}); err != nil {
		t.Fatalf("append: %v", err)
	}

	n, err := s.Client().PlanEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}

	row, err := s.Client().PlanEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("only: %v", err)
	}
	if row.Readiness != 0 || row.SessionID != "" || row.Timestamp.IsZero() {
		t.Errorf("unexpected row: %+v", row)
	}
}

func TestQueryPlanEventsTimeWindow(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	_ = repo.AppendPlanEvent(ctx, PlanEventData{RequestID: "now", Op: "generate", Success: true})

	future, err := repo.QueryPlanEvents(ctx, QueryOpts{From: time.Now().Add(time.Hour)})
	if err != nil {
		t.Fatalf("query future: %v", err)
	}
	if len(future) != 0 {
		t.Errorf("expected no events after now+1h, got %d", len(future))
	}

	recent, err := repo.QueryPlanEvents(ctx, QueryOpts{From: time.Now().Add(-time.Hour), To: time.Now().Add(time.Hour)})
	if err != nil {
		t.Fatalf("query recent: %v", err)
	}
	if len(recent) != 1 || recent[0].RequestID != "now" {
		t.Errorf("unexpected recent events: %+v", recent)
	}
}
