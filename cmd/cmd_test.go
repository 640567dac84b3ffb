package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pathfinder/internal/learnpath"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		in      string
		want    learnpath.ScoreEntry
		wantErr bool
	}{
		{in: "DSA=80", want: learnpath.ScoreEntry{Domain: "DSA", Score: 80, Difficulty: learnpath.DefaultDifficulty}},
		{in: "System Design=30:hard", want: learnpath.ScoreEntry{Domain: "System Design", Score: 30, Difficulty: learnpath.DifficultyHard}},
		{in: "DevOps / Cloud = 55 : Easy", want: learnpath.ScoreEntry{Domain: "DevOps / Cloud", Score: 55, Difficulty: learnpath.DifficultyEasy}},
		{in: "SQL=150", want: learnpath.ScoreEntry{Domain: "SQL", Score: 100, Difficulty: learnpath.DefaultDifficulty}},
		{in: "a=b=5", want: learnpath.ScoreEntry{Domain: "a=b", Score: 5, Difficulty: learnpath.DefaultDifficulty}},
		{in: "DSA", wantErr: true},
		{in: "=40", wantErr: true},
		{in: "DSA=lots", wantErr: true},
		{in: "DSA=40:extreme", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseScore(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

const generatedPlan = `{
	"overall_readiness": 40,
	"target_role": "Backend Engineer",
	"total_weeks": 8,
	"next_action": "Start with caching",
	"motivational_note": "You got this",
	"adapted_from_scores": false,
	"modules": [{
		"id": 1, "domain": "System Design", "title": "Caching", "priority": "critical",
		"why_this_now": "Lowest score", "current_score": 30, "target_score": 80,
		"estimated_weeks": 3, "milestone": "Design a cache",
		"resources": [{"type": "youtube", "title": "Intro", "url": "https://example.com/v", "duration": "20m"}]
	}]
}`

const adaptedPlan = `{
	"overall_readiness": 55,
	"target_role": "Backend Engineer",
	"total_weeks": 6,
	"adapted_from_scores": true,
	"modules": [{"domain": "System Design", "title": "Caching II", "priority": "high", "current_score": 60, "target_score": 80}]
}`

type recordedBodies struct {
	mu     sync.Mutex
	byPath map[string][]byte
}

func (b *recordedBodies) get(path string) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.byPath[path]
}

func (b *recordedBodies) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.byPath)
}

// fakeGenerator serves canned plans and records request bodies by path.
func fakeGenerator(t *testing.T) (string, *recordedBodies) {
	t.Helper()
	bodies := &recordedBodies{byPath: map[string][]byte{}}
	serve := func(resp string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			bodies.mu.Lock()
			bodies.byPath[r.URL.Path] = body
			bodies.mu.Unlock()
			w.Header().Set("Content-Type", "application/json")
			io.WriteString(w, resp)
		}
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/learn/generate", serve(generatedPlan))
	mux.HandleFunc("/learn/adapt", serve(adaptedPlan))

	listener, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Skipf("unable to start test server: %v", err)
	}
	srv := &httptest.Server{Listener: listener, Config: &http.Server{Handler: mux}}
	srv.Start()
	t.Cleanup(srv.Close)
	return srv.URL, bodies
}

// resetFlags restores every flag in the command tree to its default so
// tests sharing rootCmd do not leak state.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			sv.Replace(nil)
		} else {
			f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("PATHFINDER_DB", "")
	t.Chdir(dir)
	return dir
}

func TestGenerateAndAdaptFromHistory(t *testing.T) {
	dir := isolate(t)
	api, bodies := fakeGenerator(t)
	db := filepath.Join(dir, "history.db")

	out, err := execute(t, "generate", "--api", api, "--db", db,
		"--role", "Backend Engineer", "--hours", "6",
		"--score", "System Design=30:hard", "--score", "DSA=70")
	require.NoError(t, err)
	assert.Contains(t, out, "Backend Engineer")
	assert.Contains(t, out, "40% ready")
	assert.Contains(t, out, "[Critical] Caching")

	var genReq learnpath.GenerateRequest
	require.NoError(t, json.Unmarshal(bodies.get("/learn/generate"), &genReq))
	assert.Equal(t, 6, genReq.WeeklyHours)
	assert.Len(t, genReq.QuizScores, 2)

	out, err = execute(t, "adapt", "--api", api, "--db", db,
		"--domain", "System Design", "--score", "60", "--json")
	require.NoError(t, err)

	var plan learnpath.Plan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.True(t, plan.AdaptedFromScores)
	assert.Equal(t, 55, plan.OverallReadiness)

	var adaptReq learnpath.AdaptRequest
	require.NoError(t, json.Unmarshal(bodies.get("/learn/adapt"), &adaptReq))
	assert.Equal(t, learnpath.Domain("System Design"), adaptReq.NewQuiz.Domain)
	assert.Equal(t, 60, adaptReq.NewQuiz.Score)
	assert.Equal(t, 40, adaptReq.CurrentPath.OverallReadiness)

	out, err = execute(t, "history", "list", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "generate")
	assert.Contains(t, out, "adapt")

	out, err = execute(t, "history", "stats", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "TOTAL")

	out, err = execute(t, "history", "show", "--db", db, "--brief")
	require.NoError(t, err)
	assert.Contains(t, out, "Caching II")
}

func TestAdaptWithoutHistory(t *testing.T) {
	isolate(t)
	api, _ := fakeGenerator(t)

	_, err := execute(t, "adapt", "--api", api, "--no-history", "--domain", "DSA", "--score", "50")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--plan")
}

func TestGenerateRejectsBadInput(t *testing.T) {
	isolate(t)
	api, bodies := fakeGenerator(t)

	_, err := execute(t, "generate", "--api", api, "--no-history", "--role", "SRE", "--score", "DSA")
	require.Error(t, err)

	_, err = execute(t, "generate", "--api", api, "--no-history", "--role", "SRE", "--format", "yaml")
	require.Error(t, err)

	_, err = execute(t, "generate", "--api", api, "--no-history", "--role", "  ")
	require.Error(t, err)
	assert.True(t, learnpath.IsValidation(err))

	assert.Zero(t, bodies.count())
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "pathfinder "))
}
