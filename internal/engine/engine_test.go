package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/rpandey/mentora/internal/safety"
	"github.com/rpandey/mentora/internal/session"
	"github.com/rpandey/mentora/internal/store"
	"github.com/rpandey/mentora/internal/tutor"
)

// memSessions is an in-memory SessionRepo with the same versioned CAS
// semantics as the SQLite implementation.
type memSessions struct {
	mu       sync.Mutex
	states   map[string]json.RawMessage
	versions map[string]int64
}

func newMemSessions() *memSessions {
	return &memSessions{
		states:   make(map[string]json.RawMessage),
		versions: make(map[string]int64),
	}
}

func (m *memSessions) Create(_ context.Context, state *session.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	m.states[state.ID] = raw
	m.versions[state.ID] = 1
	return nil
}

func (m *memSessions) Get(_ context.Context, id string) (*session.State, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.states[id]
	if !ok {
		return nil, 0, store.ErrNotFound
	}
	var s session.State
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, 0, err
	}
	return &s, m.versions[id], nil
}

func (m *memSessions) Update(_ context.Context, id string, state *session.State, expectedVersion int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.versions[id]
	if !ok {
		return 0, store.ErrNotFound
	}
	if current != expectedVersion {
		return 0, store.ErrVersionConflict
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return 0, err
	}
	m.states[id] = raw
	m.versions[id] = expectedVersion + 1
	return m.versions[id], nil
}

func (m *memSessions) List(_ context.Context, _ int) ([]store.SessionListing, error) {
	return nil, nil
}

// memEvents records appended events for assertions.
type memEvents struct {
	mu           sync.Mutex
	turnEvents   []store.TurnEventData
	safetyEvents []store.SafetyEventData
	llmEvents    []store.LLMRequestEventData
	sessEvents   []store.SessionEventData
}

func (m *memEvents) AppendTurnEvent(_ context.Context, d store.TurnEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turnEvents = append(m.turnEvents, d)
	return nil
}

func (m *memEvents) AppendSafetyEvent(_ context.Context, d store.SafetyEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.safetyEvents = append(m.safetyEvents, d)
	return nil
}

func (m *memEvents) AppendLLMRequest(_ context.Context, d store.LLMRequestEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.llmEvents = append(m.llmEvents, d)
	return nil
}

func (m *memEvents) AppendSessionEvent(_ context.Context, d store.SessionEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessEvents = append(m.sessEvents, d)
	return nil
}

func (m *memEvents) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEventRow, error) {
	return nil, nil
}

func (m *memEvents) GetLLMEvent(_ context.Context, _ int) (*store.LLMEventRow, error) {
	return nil, nil
}

func (m *memEvents) LLMUsageByPurpose(_ context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}

func (m *memEvents) LLMUsageByModel(_ context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}

// stubGate returns fixed verdicts.
type stubGate struct {
	student safety.Verdict
	tutorV  safety.Verdict
}

func safeGate() *stubGate {
	return &stubGate{
		student: safety.Verdict{Safe: true},
		tutorV:  safety.Verdict{Safe: true},
	}
}

func (g *stubGate) CheckStudent(_ context.Context, _ string) safety.Verdict { return g.student }
func (g *stubGate) CheckTutor(_ context.Context, _ string) safety.Verdict   { return g.tutorV }

// stubGen returns canned outputs in FIFO order and records the inputs
// it was called with.
type stubGen struct {
	mu      sync.Mutex
	outputs []*tutor.Output
	errs    []error
	inputs  []tutor.Input
	calls   int
}

func (g *stubGen) push(out *tutor.Output) { g.outputs = append(g.outputs, out) }

func (g *stubGen) Generate(_ context.Context, in tutor.Input) (*tutor.Output, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	g.inputs = append(g.inputs, in)
	if len(g.errs) > 0 {
		err := g.errs[0]
		g.errs = g.errs[1:]
		return nil, err
	}
	if len(g.outputs) == 0 {
		return nil, &tutor.GenerationError{Attempts: 2, Err: errors.New("no canned output")}
	}
	out := g.outputs[0]
	g.outputs = g.outputs[1:]
	return out, nil
}

func threeStepPlan() *session.Plan {
	return &session.Plan{Steps: []session.PlanStep{
		{ID: "s1", Title: "Equivalent fractions", SuccessCriteria: "identifies equivalent fractions", Status: session.StepPending},
		{ID: "s2", Title: "Adding fractions", SuccessCriteria: "adds with common denominators", Status: session.StepPending},
		{ID: "s3", Title: "Word problems", SuccessCriteria: "solves a two-step word problem", Status: session.StepPending},
	}}
}

func openingOutput() *tutor.Output {
	return &tutor.Output{
		Message: "Welcome! Let's start with equivalent fractions. Is 2/4 the same as 1/2?",
		Intent:  "continuation",
		NewQuestion: &tutor.PosedQuestion{
			Prompt:    "Is 2/4 the same as 1/2?",
			Rubric:    "yes, with a reason",
			ConceptID: "fractions.equivalence",
		},
	}
}

func newTestEngine(gen *stubGen) (*Engine, *memSessions, *memEvents) {
	sessions := newMemSessions()
	events := &memEvents{}
	e := New(sessions, events, safeGate(), gen, DefaultConfig())
	return e, sessions, events
}

func startTeachSession(t *testing.T, e *Engine) *session.State {
	t.Helper()
	s, first, err := e.Start(context.Background(), StartRequest{
		Student: session.StudentProfile{ID: "stu-1", Name: "Priya", GradeLevel: 7},
		Mode:    session.ModeTeachMe,
		Plan:    threeStepPlan(),
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if first == "" {
		t.Fatal("expected a non-empty opening message")
	}
	return s
}

func TestStartTeachMe(t *testing.T) {
	gen := &stubGen{}
	gen.push(openingOutput())
	e, sessions, events := newTestEngine(gen)

	s := startTeachSession(t, e)

	if s.OpenQuestion == nil {
		t.Fatal("expected the opening message to pose a question")
	}
	cur := s.Plan.Current()
	if cur == nil || cur.ID != "s1" {
		t.Fatalf("current step = %+v, want s1 in progress", cur)
	}

	stored, version, err := sessions.Get(context.Background(), s.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if version != 1 {
		t.Errorf("version = %d, want 1", version)
	}
	if len(stored.Log) != 1 {
		t.Errorf("log length = %d, want 1 (opening message)", len(stored.Log))
	}

	if len(events.sessEvents) != 1 || events.sessEvents[0].Action != "start" {
		t.Errorf("session events = %+v, want one start event", events.sessEvents)
	}
}

func TestStartValidation(t *testing.T) {
	tests := []struct {
		name string
		req  StartRequest
	}{
		{"unknown mode", StartRequest{Mode: "cram"}},
		{"teach_me without plan", StartRequest{Mode: session.ModeTeachMe}},
		{"clarify without topic", StartRequest{Mode: session.ModeClarifyDoubts}},
		{"exam without questions", StartRequest{Mode: session.ModeExam}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, _ := newTestEngine(&stubGen{})
			if _, _, err := e.Start(context.Background(), tt.req); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestStartSurvivesProviderOutage(t *testing.T) {
	// Empty generator queue: every Generate call fails.
	e, _, _ := newTestEngine(&stubGen{})

	_, first, err := e.Start(context.Background(), StartRequest{
		Student: session.StudentProfile{Name: "Priya"},
		Mode:    session.ModeClarifyDoubts,
		Topic:   "long division",
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if first != DefaultConfig().FallbackMessage {
		t.Errorf("first message = %q, want the fallback", first)
	}
}

func TestPauseResume(t *testing.T) {
	gen := &stubGen{}
	gen.push(openingOutput())
	e, sessions, _ := newTestEngine(gen)
	s := startTeachSession(t, e)
	ctx := context.Background()

	if err := e.Pause(ctx, s.ID); err != nil {
		t.Fatalf("pause: %v", err)
	}
	stored, version, _ := sessions.Get(ctx, s.ID)
	if !stored.Paused {
		t.Error("expected paused state")
	}
	if version != 2 {
		t.Errorf("version after pause = %d, want 2", version)
	}

	// Pausing twice is an invalid transition.
	if err := e.Pause(ctx, s.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second pause err = %v, want ErrInvalidTransition", err)
	}

	if err := e.Resume(ctx, s.ID); err != nil {
		t.Fatalf("resume: %v", err)
	}
	stored, _, _ = sessions.Get(ctx, s.ID)
	if stored.Paused {
		t.Error("expected resumed state")
	}

	if err := e.Resume(ctx, s.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("resume of running session err = %v, want ErrInvalidTransition", err)
	}
}

func TestEndIsIdempotent(t *testing.T) {
	gen := &stubGen{}
	gen.push(openingOutput())
	e, sessions, _ := newTestEngine(gen)
	s := startTeachSession(t, e)
	ctx := context.Background()

	sum, err := e.End(ctx, s.ID)
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if sum == nil || sum.SessionID != s.ID {
		t.Fatalf("summary = %+v, want one for %s", sum, s.ID)
	}

	stored, _, _ := sessions.Get(ctx, s.ID)
	if !stored.Complete {
		t.Error("expected complete state")
	}

	// Ending again returns a summary without error.
	if _, err := e.End(ctx, s.ID); err != nil {
		t.Errorf("second end: %v", err)
	}
}

func TestEndUnknownSession(t *testing.T) {
	e, _, _ := newTestEngine(&stubGen{})
	_, err := e.End(context.Background(), "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestMutateRetriesLostRace(t *testing.T) {
	gen := &stubGen{}
	gen.push(openingOutput())
	e, sessions, _ := newTestEngine(gen)
	s := startTeachSession(t, e)
	ctx := context.Background()

	// Interfering writer bumps the version under the first attempt.
	interfering := &racingSessions{memSessions: sessions, interfereOnce: true}
	e.sessions = interfering

	if err := e.Pause(ctx, s.ID); err != nil {
		t.Fatalf("pause with one lost race: %v", err)
	}
	stored, _, _ := sessions.Get(ctx, s.ID)
	if !stored.Paused {
		t.Error("expected paused state after retry")
	}
}

// racingSessions wraps memSessions and sneaks in a competing write
// before the first Update, forcing one version conflict.
type racingSessions struct {
	*memSessions
	mu            sync.Mutex
	interfereOnce bool
}

func (r *racingSessions) Update(ctx context.Context, id string, state *session.State, expectedVersion int64) (int64, error) {
	r.mu.Lock()
	interfere := r.interfereOnce
	r.interfereOnce = false
	r.mu.Unlock()

	if interfere {
		other, version, err := r.memSessions.Get(ctx, id)
		if err != nil {
			return 0, err
		}
		if _, err := r.memSessions.Update(ctx, id, other, version); err != nil {
			return 0, fmt.Errorf("interfering write: %w", err)
		}
	}
	return r.memSessions.Update(ctx, id, state, expectedVersion)
}
