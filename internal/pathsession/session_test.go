package pathsession

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pathfinder/internal/learnpath"
	"github.com/abhisek/pathfinder/internal/planclient"
)

func planWithReadiness(r int) *learnpath.Plan {
	return &learnpath.Plan{
		OverallReadiness: r,
		TargetRole:       "Backend Engineer",
		TotalWeeks:       8,
		Modules: []learnpath.Module{
			{Domain: "DSA", Title: "Graphs", Priority: learnpath.PriorityCritical, CurrentScore: 40, TargetScore: 80},
			{Domain: "System Design", Title: "Caching", Priority: learnpath.PriorityHigh, CurrentScore: 30, TargetScore: 75},
		},
	}
}

func networkErr(op string) error {
	return &learnpath.PlanGenerationError{Op: op, Err: errors.New("connection refused")}
}

// readySession returns a session in Ready holding plan.
func readySession(t *testing.T, mock *planclient.MockClient, plan *learnpath.Plan) *Session {
	t.Helper()
	mock.AddResponse(planclient.MockResponse{Plan: plan})
	s := New(mock, nil)
	_, err := s.Generate(context.Background(), "Backend Engineer", 10)
	require.NoError(t, err)
	require.Equal(t, PhaseReady, s.Phase())
	return s
}

func TestNew_StartsEmpty(t *testing.T) {
	s := New(planclient.NewMockClient(), nil)
	assert.Equal(t, PhaseEmpty, s.Phase())
	assert.Nil(t, s.Plan())
	assert.False(t, s.AdaptationPending())
	assert.True(t, s.CanGenerate())
	assert.False(t, s.CanAdapt())
	assert.NotEmpty(t, s.ID())
	assert.True(t, s.View().Empty)
}

func TestGenerate_FreshScenario(t *testing.T) {
	mock := planclient.NewMockClient(planclient.MockResponse{Plan: planWithReadiness(45)})
	s := New(mock, nil)

	plan, err := s.Generate(context.Background(), "Backend Engineer", 10)
	require.NoError(t, err)
	assert.Equal(t, 45, plan.OverallReadiness)
	assert.Equal(t, PhaseReady, s.Phase())
	assert.False(t, s.AdaptationPending())
	assert.Nil(t, s.LastFailure())

	require.Len(t, mock.GenerateCalls, 1)
	req := mock.GenerateCalls[0]
	assert.Equal(t, "Backend Engineer", req.TargetRole)
	assert.Equal(t, 10, req.WeeklyHours)
	assert.NotNil(t, req.QuizScores)
	assert.Empty(t, req.QuizScores)
}

func TestGenerate_AttachesScores(t *testing.T) {
	mock := planclient.NewMockClient(planclient.MockResponse{Plan: planWithReadiness(50)})
	s := New(mock, nil)
	s.SetScore("Python", 70, "")
	s.SetScore("DSA", 55, learnpath.DifficultyHard)

	_, err := s.Generate(context.Background(), "Backend Engineer", 10)
	require.NoError(t, err)

	require.Len(t, mock.GenerateCalls, 1)
	assert.Equal(t, []learnpath.ScoreEntry{
		{Domain: "DSA", Score: 55, Difficulty: learnpath.DifficultyHard},
		{Domain: "Python", Score: 70, Difficulty: learnpath.DifficultyMedium},
	}, mock.GenerateCalls[0].QuizScores)
	assert.False(t, s.AdaptationPending(), "scores set before the first plan do not raise pending")
}

func TestGenerate_EmptyRoleRejected(t *testing.T) {
	mock := planclient.NewMockClient()
	s := New(mock, nil)

	_, err := s.Generate(context.Background(), "  ", 10)
	require.Error(t, err)
	assert.True(t, learnpath.IsValidation(err))
	assert.Equal(t, 0, mock.CallCount())
	assert.Equal(t, PhaseEmpty, s.Phase())
	assert.Nil(t, s.LastFailure())
}

func TestGenerate_FailureReturnsToEmpty(t *testing.T) {
	mock := planclient.NewMockClient(planclient.MockResponse{Err: networkErr(planclient.OpGenerate)})
	s := New(mock, nil)

	_, err := s.Generate(context.Background(), "Backend Engineer", 10)
	require.Error(t, err)
	assert.True(t, learnpath.IsRetryable(err))
	assert.Equal(t, PhaseEmpty, s.Phase())
	assert.Nil(t, s.Plan())

	f := s.LastFailure()
	require.NotNil(t, f)
	assert.Equal(t, planclient.OpGenerate, f.Op)
	assert.Equal(t, "Backend Engineer", f.Role)
	assert.Equal(t, 10, f.WeeklyHours)
	assert.True(t, f.Retryable())
}

func TestRegenerateFailureKeepsPlan(t *testing.T) {
	mock := planclient.NewMockClient()
	p := planWithReadiness(40)
	s := readySession(t, mock, p)

	mock.AddResponse(planclient.MockResponse{Err: networkErr(planclient.OpGenerate)})
	_, err := s.Generate(context.Background(), "Data Engineer", 5)
	require.Error(t, err)
	assert.Equal(t, PhaseReady, s.Phase())
	assert.Same(t, p, s.Plan())
}

func TestSetScore_RaisesPendingOnceReady(t *testing.T) {
	s := readySession(t, planclient.NewMockClient(), planWithReadiness(40))
	assert.False(t, s.CanAdapt())

	e := s.SetScore("DSA", 150, "")
	assert.Equal(t, 100, e.Score)
	assert.True(t, s.AdaptationPending())
	assert.True(t, s.CanAdapt())
	assert.Equal(t, learnpath.Domain("DSA"), s.LastTouched())
}

func TestAdapt_AttributesSingleDelta(t *testing.T) {
	mock := planclient.NewMockClient()
	s := New(mock, nil)
	s.SetScore("Python", 20, "")
	s.SetScore("System Design", 35, "")
	mock.AddResponse(planclient.MockResponse{Plan: planWithReadiness(40)})
	_, err := s.Generate(context.Background(), "Backend Engineer", 10)
	require.NoError(t, err)

	s.SetScore("React / Frontend", 60, "")
	s.SetScore("DSA", 80, "")

	adapted := planWithReadiness(55)
	adapted.AdaptedFromScores = true
	mock.AddResponse(planclient.MockResponse{Plan: adapted})

	plan, err := s.Adapt(context.Background(), "DSA")
	require.NoError(t, err)
	assert.True(t, plan.AdaptedFromScores)

	require.Len(t, mock.AdaptCalls, 1)
	req := mock.AdaptCalls[0]
	assert.Equal(t, learnpath.Domain("DSA"), req.NewQuiz.Domain)
	assert.Equal(t, 80, req.NewQuiz.Score)
	assert.Equal(t, learnpath.DifficultyMedium, req.NewQuiz.Difficulty)
	assert.Equal(t, 40, req.CurrentPath.OverallReadiness)

	assert.Equal(t, PhaseReady, s.Phase())
	assert.False(t, s.AdaptationPending())
	assert.Same(t, adapted, s.Plan())
}

func TestAdapt_FailureKeepsStalePlan(t *testing.T) {
	mock := planclient.NewMockClient()
	p := planWithReadiness(40)
	s := readySession(t, mock, p)

	s.SetScore("System Design", 30, "")
	require.True(t, s.AdaptationPending())

	mock.AddResponse(planclient.MockResponse{Err: networkErr(planclient.OpAdapt)})
	_, err := s.Adapt(context.Background(), "System Design")
	require.Error(t, err)

	assert.Equal(t, PhaseReady, s.Phase())
	assert.Same(t, p, s.Plan())
	assert.True(t, s.AdaptationPending())
	f := s.LastFailure()
	require.NotNil(t, f)
	assert.Equal(t, planclient.OpAdapt, f.Op)
	assert.Equal(t, learnpath.Domain("System Design"), f.Domain)
	assert.True(t, f.Retryable())
}

func TestAdapt_Validation(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, s *Session)
		dom   learnpath.Domain
	}{
		{
			name:  "no plan",
			setup: func(t *testing.T, s *Session) { s.SetScore("DSA", 50, "") },
			dom:   "DSA",
		},
		{
			name:  "blank domain",
			setup: func(t *testing.T, s *Session) { require.NoError(t, s.Resume(planWithReadiness(10))); s.SetScore("DSA", 50, "") },
			dom:   " ",
		},
		{
			name:  "nothing pending",
			setup: func(t *testing.T, s *Session) { require.NoError(t, s.Resume(planWithReadiness(10))) },
			dom:   "DSA",
		},
		{
			name: "domain without score",
			setup: func(t *testing.T, s *Session) {
				require.NoError(t, s.Resume(planWithReadiness(10)))
				s.SetScore("Python", 50, "")
			},
			dom: "DSA",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := planclient.NewMockClient()
			s := New(mock, nil)
			tt.setup(t, s)
			before := s.Phase()

			_, err := s.Adapt(context.Background(), tt.dom)
			require.Error(t, err)
			assert.True(t, learnpath.IsValidation(err), "got %v", err)
			assert.Equal(t, 0, mock.CallCount())
			assert.Equal(t, before, s.Phase())
		})
	}
}

func TestBusy_RejectsSecondCall(t *testing.T) {
	mock := planclient.NewMockClient(planclient.MockResponse{Plan: planWithReadiness(40)})
	s := New(mock, nil)

	call, err := s.BeginGenerate("Backend Engineer", 10)
	require.NoError(t, err)
	assert.Equal(t, PhaseGenerating, s.Phase())
	assert.False(t, s.CanGenerate())

	_, err = s.BeginGenerate("Backend Engineer", 10)
	assert.ErrorIs(t, err, ErrBusy)
	_, err = s.BeginAdapt("DSA")
	assert.ErrorIs(t, err, ErrBusy)

	plan, err := call.Do(context.Background())
	require.NoError(t, s.CompleteGenerate(call, plan, err))
	assert.Equal(t, PhaseReady, s.Phase())

	s.SetScore("DSA", 80, "")
	mock.AddResponse(planclient.MockResponse{Plan: planWithReadiness(60)})
	call, err = s.BeginAdapt("DSA")
	require.NoError(t, err)
	assert.Equal(t, PhaseAdapting, s.Phase())

	_, err = s.BeginAdapt("DSA")
	assert.True(t, IsBusy(err))
	_, err = s.BeginGenerate("Backend Engineer", 10)
	assert.True(t, IsBusy(err))

	plan, err = call.Do(context.Background())
	require.NoError(t, s.CompleteAdapt(call, plan, err))
	assert.Equal(t, 2, mock.CallCount())
}

func TestBusy_BlockingCallInFlight(t *testing.T) {
	mock := planclient.NewMockClient(planclient.MockResponse{Plan: planWithReadiness(40)})
	mock.Gate = make(chan struct{})
	s := New(mock, nil)

	done := make(chan error, 1)
	go func() {
		_, err := s.Generate(context.Background(), "Backend Engineer", 10)
		done <- err
	}()

	require.Eventually(t, func() bool { return s.Phase() == PhaseGenerating }, time.Second, time.Millisecond)
	_, err := s.Generate(context.Background(), "Backend Engineer", 10)
	assert.ErrorIs(t, err, ErrBusy)

	mock.Gate <- struct{}{}
	require.NoError(t, <-done)
	assert.Equal(t, PhaseReady, s.Phase())
	assert.Len(t, mock.GenerateCalls, 1)
}

func TestScoreSetDuringAdaptStaysPending(t *testing.T) {
	mock := planclient.NewMockClient()
	s := readySession(t, mock, planWithReadiness(40))
	s.SetScore("DSA", 70, "")

	call, err := s.BeginAdapt("DSA")
	require.NoError(t, err)
	s.SetScore("Python", 90, "")
	assert.Equal(t, PhaseAdapting, s.Phase())

	require.NoError(t, s.CompleteAdapt(call, planWithReadiness(50), nil))
	assert.Equal(t, PhaseReady, s.Phase())
	assert.True(t, s.AdaptationPending())
	assert.Len(t, mock.AdaptCalls, 0, "completion was applied without the client")
}

func TestComplete_StaleCall(t *testing.T) {
	mock := planclient.NewMockClient()
	s := New(mock, nil)

	call, err := s.BeginGenerate("Backend Engineer", 10)
	require.NoError(t, err)
	assert.ErrorIs(t, s.CompleteAdapt(call, nil, nil), ErrStaleCall)
	require.NoError(t, s.CompleteGenerate(call, planWithReadiness(10), nil))
	assert.ErrorIs(t, s.CompleteGenerate(call, planWithReadiness(20), nil), ErrStaleCall)
	assert.Equal(t, 10, s.Plan().OverallReadiness)
}

func TestComplete_NilPlanIsFailure(t *testing.T) {
	s := New(planclient.NewMockClient(), nil)
	call, err := s.BeginGenerate("Backend Engineer", 10)
	require.NoError(t, err)

	err = s.CompleteGenerate(call, nil, nil)
	require.Error(t, err)
	assert.True(t, learnpath.IsRetryable(err))
	assert.Equal(t, PhaseEmpty, s.Phase())
}

func TestRetry(t *testing.T) {
	mock := planclient.NewMockClient()
	s := readySession(t, mock, planWithReadiness(40))

	_, err := s.Retry(context.Background())
	assert.ErrorIs(t, err, ErrNoFailure)

	s.SetScore("DSA", 60, "")
	mock.AddResponse(planclient.MockResponse{Err: networkErr(planclient.OpAdapt)})
	_, err = s.Adapt(context.Background(), "DSA")
	require.Error(t, err)

	s.SetScore("DSA", 75, learnpath.DifficultyHard)
	mock.AddResponse(planclient.MockResponse{Plan: planWithReadiness(65)})
	plan, err := s.Retry(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 65, plan.OverallReadiness)

	require.Len(t, mock.AdaptCalls, 2)
	assert.Equal(t, 75, mock.AdaptCalls[1].NewQuiz.Score)
	assert.Equal(t, learnpath.DifficultyHard, mock.AdaptCalls[1].NewQuiz.Difficulty)
	assert.Nil(t, s.LastFailure())
	assert.False(t, s.AdaptationPending())
}

func TestRetry_Generate(t *testing.T) {
	mock := planclient.NewMockClient(
		planclient.MockResponse{Err: networkErr(planclient.OpGenerate)},
		planclient.MockResponse{Plan: planWithReadiness(30)},
	)
	s := New(mock, nil)

	_, err := s.Generate(context.Background(), "ML Engineer", 6)
	require.Error(t, err)
	s.SetScore("Machine Learning", 40, "")

	_, err = s.Retry(context.Background())
	require.NoError(t, err)
	require.Len(t, mock.GenerateCalls, 2)
	assert.Equal(t, "ML Engineer", mock.GenerateCalls[1].TargetRole)
	assert.Equal(t, 6, mock.GenerateCalls[1].WeeklyHours)
	assert.Len(t, mock.GenerateCalls[1].QuizScores, 1)
}

func TestToggleModule(t *testing.T) {
	s := readySession(t, planclient.NewMockClient(), planWithReadiness(40))

	s.ToggleModule(1)
	assert.True(t, s.View().Modules[1].Expanded)
	s.ToggleModule(0)
	v := s.View()
	assert.True(t, v.Modules[0].Expanded)
	assert.False(t, v.Modules[1].Expanded)

	s.ToggleModule(7)
	assert.True(t, s.Expansion().IsExpanded(0))
}

func TestEnteringReadyResetsExpansion(t *testing.T) {
	mock := planclient.NewMockClient()
	s := readySession(t, mock, planWithReadiness(40))
	s.ToggleModule(1)
	s.SetScore("DSA", 90, "")

	mock.AddResponse(planclient.MockResponse{Plan: planWithReadiness(70)})
	_, err := s.Adapt(context.Background(), "DSA")
	require.NoError(t, err)

	_, ok := s.Expansion().Expanded()
	assert.False(t, ok)
}

func TestResume(t *testing.T) {
	s := New(planclient.NewMockClient(), nil)
	require.Error(t, s.Resume(nil))

	p := planWithReadiness(33)
	require.NoError(t, s.Resume(p))
	assert.Equal(t, PhaseReady, s.Phase())
	assert.False(t, s.AdaptationPending())

	err := s.Resume(planWithReadiness(1))
	assert.True(t, learnpath.IsValidation(err))
	assert.Same(t, p, s.Plan())
}

func TestLastInputs(t *testing.T) {
	s := readySession(t, planclient.NewMockClient(), planWithReadiness(40))
	role, hours := s.LastInputs()
	assert.Equal(t, "Backend Engineer", role)
	assert.Equal(t, 10, hours)
}
