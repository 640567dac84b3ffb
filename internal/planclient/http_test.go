package planclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pathfinder/internal/learnpath"
)

const planBody = `{
	"overall_readiness": 45,
	"target_role": "Backend Engineer",
	"total_weeks": 12,
	"next_action": "Review SQL joins",
	"motivational_note": "Keep going",
	"adapted_from_scores": false,
	"modules": [
		{"id": 1, "domain": "Databases / SQL", "title": "Joins", "priority": "high",
		 "why_this_now": "Used daily", "current_score": 55, "target_score": 80,
		 "estimated_weeks": 2, "milestone": "Write reporting queries",
		 "resources": [{"type": "article", "title": "Joins explained", "why": "Short", "url": "https://example.com/joins", "duration": "20m", "difficulty": "beginner"}]}
	]
}`

func newClient(t *testing.T, url string) *HTTPClient {
	t.Helper()
	c, err := NewHTTPClient(HTTPConfig{BaseURL: url, Timeout: 2 * time.Second})
	require.NoError(t, err)
	return c
}

func TestNewHTTPClient_RequiresBaseURL(t *testing.T) {
	_, err := NewHTTPClient(HTTPConfig{})
	require.Error(t, err)
}

func TestHTTPClient_GenerateSendsRequest(t *testing.T) {
	var (
		gotPath   string
		gotBody   map[string]any
		gotHeader string
	)
	srv := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotHeader = r.Header.Get("X-Request-ID")
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(planBody))
	}))

	c := newClient(t, srv.URL+"/")
	req, err := learnpath.BuildGenerateRequest("Backend Engineer", 10, nil)
	require.NoError(t, err)

	ctx := WithRequestID(context.Background(), "req-1")
	plan, err := c.Generate(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "/learn/generate", gotPath)
	assert.Equal(t, "req-1", gotHeader)
	assert.Equal(t, "Backend Engineer", gotBody["target_role"])
	assert.Equal(t, []any{}, gotBody["quiz_scores"])
	assert.Equal(t, float64(10), gotBody["weekly_hours"])

	assert.Equal(t, 45, plan.OverallReadiness)
	require.Len(t, plan.Modules, 1)
	assert.Equal(t, learnpath.PriorityHigh, plan.Modules[0].Priority)
}

func TestHTTPClient_AdaptSendsSingleDelta(t *testing.T) {
	var gotBody struct {
		CurrentPath learnpath.Plan       `json:"current_path"`
		NewQuiz     learnpath.ScoreEntry `json:"new_quiz"`
	}
	srv := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/learn/adapt", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(planBody))
	}))

	c := newClient(t, srv.URL)
	current := &learnpath.Plan{TargetRole: "Backend Engineer", OverallReadiness: 30, TotalWeeks: 8}
	req, err := learnpath.BuildAdaptRequest(current, "DSA", 80, "")
	require.NoError(t, err)

	_, err = c.Adapt(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer", gotBody.CurrentPath.TargetRole)
	assert.Equal(t, learnpath.ScoreEntry{Domain: "DSA", Score: 80, Difficulty: "medium"}, gotBody.NewQuiz)
}

func TestHTTPClient_ErrorDetail(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
	}{
		{"string detail", 500, `{"detail": "Failed to parse learning path"}`, "Failed to parse learning path"},
		{"missing detail", 502, `{"error": "bad gateway"}`, learnpath.UnknownErrorDetail},
		{"not json", 503, `Service Unavailable`, learnpath.UnknownErrorDetail},
		{"list detail", 422, `{"detail": [{"loc": ["body", "target_role"], "msg": "field required"}]}`,
			`[{"loc":["body","target_role"],"msg":"field required"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			c := newClient(t, srv.URL)

			_, err := c.Generate(context.Background(), learnpath.GenerateRequest{TargetRole: "x", WeeklyHours: 1})
			var pe *learnpath.PlanGenerationError
			require.True(t, errors.As(err, &pe), "expected PlanGenerationError, got %v", err)
			assert.Equal(t, OpGenerate, pe.Op)
			assert.Equal(t, tt.status, pe.Status)
			assert.Equal(t, tt.wantDetail, pe.Detail)
		})
	}
}

func TestHTTPClient_InvalidPlanRejected(t *testing.T) {
	srv := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"overall_readiness": 300, "target_role": "x", "total_weeks": 2, "modules": []}`))
	}))
	c := newClient(t, srv.URL)

	plan, err := c.Generate(context.Background(), learnpath.GenerateRequest{TargetRole: "x", WeeklyHours: 1})
	assert.Nil(t, plan)
	assert.True(t, learnpath.IsRetryable(err))
}

func TestHTTPClient_TransportFailure(t *testing.T) {
	srv := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := newClient(t, url)
	_, err := c.Adapt(context.Background(), learnpath.AdaptRequest{})
	var pe *learnpath.PlanGenerationError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, OpAdapt, pe.Op)
	assert.Zero(t, pe.Status)
	assert.NotNil(t, pe.Err)
}

func TestHTTPClient_TimeoutIsPlanGenerationError(t *testing.T) {
	release := make(chan struct{})
	srv := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() { close(release) })

	c, err := NewHTTPClient(HTTPConfig{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	require.NoError(t, err)

	_, err = c.Generate(context.Background(), learnpath.GenerateRequest{TargetRole: "x", WeeklyHours: 1})
	assert.True(t, learnpath.IsRetryable(err))
}

func TestHTTPClient_Resources(t *testing.T) {
	srv := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/learn/resources", r.URL.Path)
		var body learnpath.ResourceRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Kubernetes", body.Topic)
		_, _ = w.Write([]byte(`[{"type":"youtube","title":"K8s in 1 hour","url":"https://youtube.com/k8s","why":"Fast"}]`))
	}))
	c := newClient(t, srv.URL)

	req, err := learnpath.BuildResourceRequest("Kubernetes", "", 0)
	require.NoError(t, err)
	res, err := c.Resources(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, learnpath.ResourceYouTube, res[0].Type)
}
