package pathsession

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/pathfinder/internal/learnpath"
	"github.com/abhisek/pathfinder/internal/pathview"
	"github.com/abhisek/pathfinder/internal/planclient"
)

// Session owns the score store, the current plan and the adaptation state
// for one learner session. All state changes go through its methods.
type Session struct {
	id     string
	client planclient.Client
	logger *zap.Logger

	mu        sync.Mutex
	scores    *learnpath.ScoreStore
	phase     Phase
	plan      *learnpath.Plan
	pending   bool
	expansion pathview.Expansion
	touched   learnpath.Domain
	failure   *Failure

	// inflight is the sequence of the outstanding call, 0 when idle.
	inflight uint64
	seq      uint64

	// changedInFlight records scores set while a call was outstanding. The
	// response cannot account for them, so they re-raise the pending flag.
	changedInFlight bool

	// role and hours of the last accepted generate.
	role  string
	hours int
}

// New creates an Empty session. A nil logger disables logging.
func New(client planclient.Client, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	return &Session{
		id:     id,
		client: client,
		logger: logger.With(zap.String("session_id", id)),
		scores: learnpath.NewScoreStore(),
	}
}

// ID returns the session id attached to every request.
func (s *Session) ID() string { return s.id }

// Phase returns the current controller state.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Plan returns the current plan, nil in the Empty phase. The plan must not
// be modified.
func (s *Session) Plan() *learnpath.Plan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan
}

// AdaptationPending reports whether scores changed since the shown plan was
// produced.
func (s *Session) AdaptationPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// LastFailure returns the last failed request, nil after a success.
func (s *Session) LastFailure() *Failure {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failure
}

// LastTouched returns the domain of the most recent SetScore.
func (s *Session) LastTouched() learnpath.Domain {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touched
}

// LastInputs returns the role and weekly hours of the last accepted
// generate, for regenerating without asking again.
func (s *Session) LastInputs() (role string, weeklyHours int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.role, s.hours
}

// CanGenerate reports whether a generate trigger should be enabled.
func (s *Session) CanGenerate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.phase.InFlight()
}

// CanAdapt reports whether an adapt trigger should be enabled.
func (s *Session) CanAdapt() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase == PhaseReady && s.pending
}

// SetScore records a score for domain. Once a plan exists this raises the
// adaptation pending flag. Scores set while a call is in flight are recorded
// but never start a second call.
func (s *Session) SetScore(domain learnpath.Domain, score int, difficulty learnpath.Difficulty) learnpath.ScoreEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.scores.Set(domain, score, difficulty)
	s.touched = domain
	if s.phase.InFlight() {
		s.changedInFlight = true
	}
	if s.plan != nil {
		s.pending = true
	}
	s.logger.Debug("score set",
		zap.String("domain", string(e.Domain)),
		zap.Int("score", e.Score),
		zap.String("difficulty", string(e.Difficulty)),
		zap.Bool("pending", s.pending),
	)
	return e
}

// Score returns the recorded score for domain.
func (s *Session) Score(domain learnpath.Domain) (learnpath.ScoreEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scores.Get(domain)
}

// Scores returns every recorded score ordered by domain.
func (s *Session) Scores() []learnpath.ScoreEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scores.All()
}

// Resume installs a plan produced outside this session, such as one read
// from history, moving an Empty session to Ready.
func (s *Session) Resume(plan *learnpath.Plan) error {
	if plan == nil {
		return &learnpath.ValidationError{Field: "current_path", Reason: "no plan to resume"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase.InFlight() {
		return ErrBusy
	}
	if s.plan != nil {
		return &learnpath.ValidationError{Field: "current_path", Reason: "session already has a plan"}
	}
	s.plan = plan
	s.enterReady(false)
	return nil
}

// BeginGenerate validates the inputs and moves the session to Generating.
// Validation failures leave the state untouched.
func (s *Session) BeginGenerate(role string, weeklyHours int) (*Call, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase.InFlight() {
		return nil, ErrBusy
	}
	req, err := learnpath.BuildGenerateRequest(role, weeklyHours, s.scores.All())
	if err != nil {
		s.logger.Debug("generate rejected", zap.Error(err))
		return nil, err
	}

	s.role = req.TargetRole
	s.hours = req.WeeklyHours
	call := s.begin(planclient.OpGenerate, PhaseGenerating)
	call.generate = req
	return call, nil
}

// BeginAdapt pairs the current plan with the latest recorded score for
// domain and moves the session to Adapting. The domain must be given
// explicitly.
func (s *Session) BeginAdapt(domain learnpath.Domain) (*Call, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase.InFlight() {
		return nil, ErrBusy
	}
	req, err := s.buildAdapt(domain)
	if err != nil {
		s.logger.Debug("adapt rejected", zap.Error(err))
		return nil, err
	}

	call := s.begin(planclient.OpAdapt, PhaseAdapting)
	call.adapt = req
	return call, nil
}

func (s *Session) buildAdapt(domain learnpath.Domain) (learnpath.AdaptRequest, error) {
	if s.plan == nil || strings.TrimSpace(string(domain)) == "" {
		return learnpath.BuildAdaptRequest(s.plan, domain, 0, "")
	}
	if !s.pending {
		return learnpath.AdaptRequest{}, &learnpath.ValidationError{
			Field:  "new_quiz",
			Reason: "no score changed since the plan was produced",
		}
	}
	entry, ok := s.scores.Get(domain)
	if !ok {
		return learnpath.AdaptRequest{}, &learnpath.ValidationError{
			Field:  "new_quiz.domain",
			Reason: "no score recorded for " + string(domain),
		}
	}
	return learnpath.BuildAdaptRequest(s.plan, entry.Domain, entry.Score, entry.Difficulty)
}

func (s *Session) begin(op string, phase Phase) *Call {
	s.seq++
	s.inflight = s.seq
	s.failure = nil
	s.changedInFlight = false
	s.transition(phase)
	return &Call{
		Op:        op,
		seq:       s.seq,
		sessionID: s.id,
		client:    s.client,
	}
}

// CompleteGenerate applies the outcome of a generate call. On failure the
// session returns to Empty, or to Ready with the previous plan, and the
// error is returned.
func (s *Session) CompleteGenerate(call *Call, plan *learnpath.Plan, err error) error {
	if call == nil || call.Op != planclient.OpGenerate {
		return ErrStaleCall
	}
	return s.complete(call, plan, err)
}

// CompleteAdapt applies the outcome of an adapt call. On failure the stale
// plan stays and the pending flag is kept so the adaptation can be retried.
func (s *Session) CompleteAdapt(call *Call, plan *learnpath.Plan, err error) error {
	if call == nil || call.Op != planclient.OpAdapt {
		return ErrStaleCall
	}
	return s.complete(call, plan, err)
}

func (s *Session) complete(call *Call, plan *learnpath.Plan, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inflight == 0 || call.seq != s.inflight {
		return ErrStaleCall
	}
	s.inflight = 0

	if err == nil && plan == nil {
		err = &learnpath.PlanGenerationError{Op: call.Op, Detail: "empty response"}
	}
	if err != nil {
		s.failure = &Failure{Op: call.Op, Err: err}
		switch call.Op {
		case planclient.OpGenerate:
			s.failure.Role = call.generate.TargetRole
			s.failure.WeeklyHours = call.generate.WeeklyHours
		case planclient.OpAdapt:
			s.failure.Domain = call.adapt.NewQuiz.Domain
		}
		if s.changedInFlight && s.plan != nil {
			s.pending = true
		}
		if s.plan == nil {
			s.transition(PhaseEmpty)
		} else {
			s.transition(PhaseReady)
		}
		s.logger.Warn("plan request failed", zap.String("op", call.Op), zap.Error(err))
		return err
	}

	s.plan = plan
	s.enterReady(s.changedInFlight)
	s.logger.Info("plan updated",
		zap.String("op", call.Op),
		zap.Int("readiness", plan.OverallReadiness),
		zap.Int("modules", len(plan.Modules)),
	)
	return nil
}

// enterReady moves to Ready, resetting the expansion. The pending flag is
// cleared unless scores changed that the new plan cannot reflect.
func (s *Session) enterReady(stillPending bool) {
	s.pending = stillPending
	s.changedInFlight = false
	s.expansion = pathview.NoneExpanded()
	s.transition(PhaseReady)
}

func (s *Session) transition(to Phase) {
	if s.phase == to {
		return
	}
	s.logger.Debug("phase change", zap.Stringer("from", s.phase), zap.Stringer("to", to))
	s.phase = to
}

// Generate runs a full generation and blocks until it resolves.
func (s *Session) Generate(ctx context.Context, role string, weeklyHours int) (*learnpath.Plan, error) {
	call, err := s.BeginGenerate(role, weeklyHours)
	if err != nil {
		return nil, err
	}
	plan, err := call.Do(ctx)
	if err := s.CompleteGenerate(call, plan, err); err != nil {
		return nil, err
	}
	return plan, nil
}

// Adapt runs an adaptation for domain and blocks until it resolves.
func (s *Session) Adapt(ctx context.Context, domain learnpath.Domain) (*learnpath.Plan, error) {
	call, err := s.BeginAdapt(domain)
	if err != nil {
		return nil, err
	}
	plan, err := call.Do(ctx)
	if err := s.CompleteAdapt(call, plan, err); err != nil {
		return nil, err
	}
	return plan, nil
}

// BeginRetry re-begins the last failed request. A failed generate is
// re-issued with the same role and hours but the current scores; a failed
// adapt with the same domain and its latest recorded score.
func (s *Session) BeginRetry() (*Call, error) {
	s.mu.Lock()
	f := s.failure
	s.mu.Unlock()

	if f == nil {
		return nil, ErrNoFailure
	}
	switch f.Op {
	case planclient.OpGenerate:
		return s.BeginGenerate(f.Role, f.WeeklyHours)
	case planclient.OpAdapt:
		return s.BeginAdapt(f.Domain)
	}
	return nil, ErrNoFailure
}

// Retry re-issues the last failed request and blocks until it resolves.
func (s *Session) Retry(ctx context.Context) (*learnpath.Plan, error) {
	call, err := s.BeginRetry()
	if err != nil {
		return nil, err
	}
	plan, err := call.Do(ctx)
	if err := s.Complete(call, plan, err); err != nil {
		return nil, err
	}
	return plan, nil
}

// Complete dispatches to CompleteGenerate or CompleteAdapt by the call's op.
func (s *Session) Complete(call *Call, plan *learnpath.Plan, err error) error {
	if call == nil {
		return ErrStaleCall
	}
	if call.Op == planclient.OpAdapt {
		return s.CompleteAdapt(call, plan, err)
	}
	return s.CompleteGenerate(call, plan, err)
}

// ToggleModule expands module i, collapsing any other, or collapses it if
// it is already expanded. Out of range indexes are ignored.
func (s *Session) ToggleModule(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.plan == nil || i < 0 || i >= len(s.plan.Modules) {
		return
	}
	s.expansion = s.expansion.Toggle(i)
}

// Expansion returns the current module expansion.
func (s *Session) Expansion() pathview.Expansion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expansion
}

// View projects the current plan and expansion.
func (s *Session) View() pathview.DisplayTree {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pathview.Project(s.plan, s.expansion)
}

// IsBusy reports whether err is ErrBusy.
func IsBusy(err error) bool {
	return errors.Is(err, ErrBusy)
}
