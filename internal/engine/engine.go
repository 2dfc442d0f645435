package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rpandey/mentora/internal/pacing"
	"github.com/rpandey/mentora/internal/safety"
	"github.com/rpandey/mentora/internal/session"
	"github.com/rpandey/mentora/internal/store"
	"github.com/rpandey/mentora/internal/tutor"
)

// SafetyChecker is the gate surface the orchestrator needs.
type SafetyChecker interface {
	CheckStudent(ctx context.Context, text string) safety.Verdict
	CheckTutor(ctx context.Context, text string) safety.Verdict
}

// Generator produces the structured tutor turn.
type Generator interface {
	Generate(ctx context.Context, in tutor.Input) (*tutor.Output, error)
}

// Config holds orchestrator tuning. Messages are fixed strings so an
// outage or a blocked message never exposes raw failures to a student.
type Config struct {
	// MaxCASRetries bounds transparent re-runs of a turn after a lost
	// version race.
	MaxCASRetries int

	// DeflectionMessage is shown in place of tutoring when a student
	// message is blocked.
	DeflectionMessage string

	// FallbackMessage is shown when the provider fails after retries.
	FallbackMessage string

	// RecheckTutorOutput re-applies the safety gate to generated tutor
	// messages before they are shown.
	RecheckTutorOutput bool
}

// DefaultConfig returns the standard orchestrator configuration.
func DefaultConfig() Config {
	return Config{
		MaxCASRetries:      3,
		DeflectionMessage:  "Let's keep our conversation focused on what we're learning. Where were we?",
		FallbackMessage:    "Let's continue — can you try that again?",
		RecheckTutorOutput: false,
	}
}

// Engine composes the safety gate, tutor generator, and per-component
// state transitions into one per-turn transaction over versioned
// session storage.
type Engine struct {
	sessions  store.SessionRepo
	events    store.EventRepo
	snapshots store.SnapshotRepo
	gate      SafetyChecker
	gen       Generator
	cfg       Config
}

// New creates an orchestrator over the given collaborators.
func New(sessions store.SessionRepo, events store.EventRepo, gate SafetyChecker, gen Generator, cfg Config) *Engine {
	if cfg.MaxCASRetries <= 0 {
		cfg.MaxCASRetries = DefaultConfig().MaxCASRetries
	}
	if cfg.DeflectionMessage == "" {
		cfg.DeflectionMessage = DefaultConfig().DeflectionMessage
	}
	if cfg.FallbackMessage == "" {
		cfg.FallbackMessage = DefaultConfig().FallbackMessage
	}
	return &Engine{sessions: sessions, events: events, gate: gate, gen: gen, cfg: cfg}
}

// snapshotKeep bounds retained snapshots per student.
const snapshotKeep = 10

// WithSnapshots enables cross-session mastery persistence: when a
// session completes, the student's aggregate mastery is saved so their
// next session starts from prior scores.
func (e *Engine) WithSnapshots(repo store.SnapshotRepo) *Engine {
	e.snapshots = repo
	return e
}

// saveSnapshot persists the student's mastery state. Best-effort, like
// the event log.
func (e *Engine) saveSnapshot(ctx context.Context, s *session.State) {
	if e.snapshots == nil || s.Student.ID == "" {
		return
	}
	_ = e.snapshots.Save(ctx, &store.Snapshot{
		StudentID: s.Student.ID,
		Data: store.SnapshotData{
			Version:        1,
			Mastery:        s.Mastery,
			Misconceptions: s.Misconceptions,
		},
	})
	_ = e.snapshots.Prune(ctx, s.Student.ID, snapshotKeep)
}

// StartRequest describes a new session. Exactly one of Plan, Topic, or
// ExamQuestions applies, according to Mode.
type StartRequest struct {
	Student       session.StudentProfile
	Mode          session.Mode
	Plan          *session.Plan
	Topic         string
	ExamQuestions []session.ExamQuestion

	// Mastery seeds per-concept scores from a prior snapshot. Nil
	// starts every concept cold.
	Mastery store.SnapshotData

	// NoExtension ends the session at plan completion even when
	// misconceptions are still outstanding.
	NoExtension bool
}

// Start creates a session, generates the opening tutor message, and
// persists the session at version 1. The opening message is returned
// alongside the created state.
func (e *Engine) Start(ctx context.Context, req StartRequest) (*session.State, string, error) {
	if !req.Mode.Valid() {
		return nil, "", fmt.Errorf("start session: unknown mode %q", req.Mode)
	}
	switch req.Mode {
	case session.ModeTeachMe:
		if req.Plan == nil || len(req.Plan.Steps) == 0 {
			return nil, "", fmt.Errorf("start session: teach_me requires a non-empty plan")
		}
	case session.ModeClarifyDoubts:
		if req.Topic == "" {
			return nil, "", fmt.Errorf("start session: clarify_doubts requires a topic")
		}
	case session.ModeExam:
		if len(req.ExamQuestions) == 0 {
			return nil, "", fmt.Errorf("start session: exam requires questions")
		}
	}

	s := session.New(uuid.NewString(), req.Student, req.Mode)
	s.Plan = req.Plan
	s.Topic = req.Topic
	s.ExamQuestions = req.ExamQuestions
	if req.Mastery.Mastery != nil {
		s.Mastery = req.Mastery.Mastery
		s.Misconceptions = req.Mastery.Misconceptions
	}
	if req.NoExtension {
		s.AllowExtension = false
	}
	if s.Plan != nil {
		s.Plan.Start()
	}

	first := e.openingMessage(ctx, s)

	if err := e.sessions.Create(ctx, s); err != nil {
		return nil, "", fmt.Errorf("start session: %w", err)
	}

	_ = e.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: s.ID,
		Action:    "start",
		Mode:      string(s.Mode),
	})

	return s, first, nil
}

// openingMessage generates the first tutor message. Falls back to the
// deterministic message when the provider is down, so a session can
// still start.
func (e *Engine) openingMessage(ctx context.Context, s *session.State) string {
	out, err := e.gen.Generate(ctx, tutor.Input{
		State:     s,
		Directive: pacing.FirstTurn,
	})
	if err != nil {
		s.Append(session.Message{
			Role:      session.RoleTutor,
			Content:   e.cfg.FallbackMessage,
			Timestamp: time.Now().UTC(),
			Meta:      &session.MessageMeta{Fallback: true},
		})
		return e.cfg.FallbackMessage
	}

	msg := out.Message
	if e.cfg.RecheckTutorOutput {
		if v := e.gate.CheckTutor(ctx, msg); !v.Safe {
			_ = e.events.AppendSafetyEvent(ctx, store.SafetyEventData{
				SessionID: s.ID, Stage: "tutor_output", Reason: v.Reason,
			})
			msg = e.cfg.DeflectionMessage
		}
	}

	if out.NewQuestion != nil {
		s.OpenQuestion = newQuestion(out.NewQuestion)
	}
	s.Append(session.Message{
		Role:      session.RoleTutor,
		Content:   msg,
		Timestamp: time.Now().UTC(),
		Meta:      &session.MessageMeta{PacingDirective: string(pacing.FirstTurn)},
	})
	return msg
}

// Pause suspends a session. Turn submissions against a paused session
// are rejected until Resume.
func (e *Engine) Pause(ctx context.Context, sessionID string) error {
	return e.mutate(ctx, sessionID, "pause", func(s *session.State) error {
		if s.Complete {
			return invalidTransition("pause", "completed")
		}
		if s.Paused {
			return invalidTransition("pause", "paused")
		}
		s.Paused = true
		return nil
	})
}

// Resume lifts a pause.
func (e *Engine) Resume(ctx context.Context, sessionID string) error {
	return e.mutate(ctx, sessionID, "resume", func(s *session.State) error {
		if s.Complete {
			return invalidTransition("resume", "completed")
		}
		if !s.Paused {
			return invalidTransition("resume", "running")
		}
		s.Paused = false
		return nil
	})
}

// End finishes a session unconditionally and returns its summary.
// Ending an already-complete session is idempotent.
func (e *Engine) End(ctx context.Context, sessionID string) (*session.Summary, error) {
	var sum *session.Summary
	var ended *session.State
	err := e.mutate(ctx, sessionID, "end", func(s *session.State) error {
		if !s.Complete {
			s.Complete = true
			s.Paused = false
		}
		sum = session.Summarize(s)
		ended = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	e.saveSnapshot(ctx, ended)
	return sum, nil
}

// mutate runs a state mutation under the optimistic check, retrying a
// bounded number of times on a lost race. The mutation fn sees freshly
// read state on every attempt.
func (e *Engine) mutate(ctx context.Context, sessionID, action string, fn func(*session.State) error) error {
	var lastErr error
	for attempt := 0; attempt < e.cfg.MaxCASRetries; attempt++ {
		s, version, err := e.sessions.Get(ctx, sessionID)
		if err != nil {
			return fmt.Errorf("%s session: %w", action, err)
		}
		if err := fn(s); err != nil {
			return err
		}
		s.UpdatedAt = time.Now().UTC()

		_, err = e.sessions.Update(ctx, sessionID, s, version)
		if err == nil {
			_ = e.events.AppendSessionEvent(ctx, store.SessionEventData{
				SessionID:      s.ID,
				Action:         action,
				Mode:           string(s.Mode),
				Turns:          s.TurnCount,
				StepsCompleted: s.Plan.CompletedCount(),
				DurationSecs:   int(time.Since(s.CreatedAt).Seconds()),
			})
			return nil
		}
		if !errors.Is(err, store.ErrVersionConflict) {
			return fmt.Errorf("%s session: %w", action, err)
		}
		lastErr = err
	}
	return fmt.Errorf("%s session: %w", action, lastErr)
}
