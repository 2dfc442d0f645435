package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rpandey/mentora/internal/mastery"
	"github.com/rpandey/mentora/internal/pacing"
	"github.com/rpandey/mentora/internal/question"
	"github.com/rpandey/mentora/internal/session"
	"github.com/rpandey/mentora/internal/store"
	"github.com/rpandey/mentora/internal/tutor"
)

// correctnessPass is the grading threshold that closes a question. The
// generator emits binary correctness in teach_me and clarify_doubts;
// exam partial credit below this keeps the exam moving without calling
// the answer correct.
const correctnessPass = 0.75

// TurnRequest is one student turn.
type TurnRequest struct {
	SessionID string
	Message   string

	// ExpectedVersion, when non-zero, conditions the turn on the
	// session still being at that version. A mismatch is reported as a
	// conflict outcome without retrying — this is how a duplicate
	// submission of an already-applied turn is rejected as stale.
	// Zero lets the orchestrator read the current version and retry a
	// lost race transparently.
	ExpectedVersion int64

	// EndExam is the explicit end-exam action. Only valid in exam mode.
	EndExam bool
}

// SubmitTurn runs the per-turn pipeline: safety gate, tutor generation,
// question lifecycle, mastery update, completion policy, versioned
// persist. All expected failures come back as outcomes in the result;
// the error return is reserved for storage and similar infrastructure
// faults.
func (e *Engine) SubmitTurn(ctx context.Context, req TurnRequest) (*TurnResult, error) {
	for attempt := 0; attempt < e.cfg.MaxCASRetries; attempt++ {
		s, version, err := e.sessions.Get(ctx, req.SessionID)
		if err != nil {
			return nil, fmt.Errorf("submit turn: %w", err)
		}

		if req.ExpectedVersion != 0 && req.ExpectedVersion != version {
			return &TurnResult{Kind: OutcomeConflict}, nil
		}

		if res := e.rejectTurn(s); res != nil {
			return res, nil
		}

		res, err := e.processTurn(ctx, s, req)
		if err != nil {
			return nil, err
		}

		newVersion, err := e.sessions.Update(ctx, req.SessionID, s, version)
		if err == nil {
			res.Version = newVersion
			e.logTurn(ctx, s, req, res)
			return res, nil
		}
		if !errors.Is(err, store.ErrVersionConflict) {
			return nil, fmt.Errorf("submit turn: %w", err)
		}
		// Lost the race. A client-pinned version is stale by
		// definition; otherwise re-read and re-run the turn.
		if req.ExpectedVersion != 0 {
			return &TurnResult{Kind: OutcomeConflict}, nil
		}
	}
	return &TurnResult{Kind: OutcomeConflict}, nil
}

// rejectTurn returns a rejection result when the session cannot accept
// a turn in its current state, nil otherwise.
func (e *Engine) rejectTurn(s *session.State) *TurnResult {
	if s.Complete {
		return &TurnResult{
			Kind:    OutcomeRejected,
			Message: "This session has ended. Start a new one to keep going.",
		}
	}
	if s.Paused {
		return &TurnResult{
			Kind:    OutcomeRejected,
			Message: "This session is paused. Resume it to continue.",
		}
	}
	return nil
}

// processTurn mutates s with the effects of one student turn and
// returns the result to deliver. It never touches storage; the caller
// owns the versioned write.
func (e *Engine) processTurn(ctx context.Context, s *session.State, req TurnRequest) (*TurnResult, error) {
	if req.EndExam {
		if s.Mode != session.ModeExam {
			return &TurnResult{
				Kind:    OutcomeRejected,
				Message: "There is no exam to end in this session.",
			}, nil
		}
		return e.endExam(s), nil
	}

	if v := e.gate.CheckStudent(ctx, req.Message); !v.Safe {
		return e.blockTurn(ctx, s, req.Message, v.Reason), nil
	}

	// Signals are computed from pre-turn state: the directive and the
	// strategy flags describe the situation the student's message
	// arrived into.
	directive := pacing.Compute(s)
	style := pacing.EstimateStyle(s)
	in := tutor.Input{
		State:          s,
		Directive:      directive,
		Style:          style,
		ChangeStrategy: openWrongAttempts(s) >= question.StrategyChangeThreshold,
	}
	if q := s.OpenQuestion; q != nil {
		in.PrerequisiteGap = question.PrerequisiteGap(s.ConceptErrorTurns[q.ConceptID])
	}

	s.Append(session.Message{
		Role:      session.RoleStudent,
		Content:   req.Message,
		Timestamp: time.Now().UTC(),
	})

	out, err := e.gen.Generate(ctx, in)
	if err != nil {
		var genErr *tutor.GenerationError
		if errors.As(err, &genErr) {
			return e.fallbackTurn(s, directive), nil
		}
		return nil, fmt.Errorf("generate turn: %w", err)
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

	res := e.applyOutput(s, req, out, directive)
	res.Message = msg

	s.Append(session.Message{
		Role:      session.RoleTutor,
		Content:   msg,
		Timestamp: time.Now().UTC(),
		Meta: &session.MessageMeta{
			PacingDirective: string(directive),
			Intent:          string(out.Intent),
			HintShown:       s.OpenQuestion != nil && s.OpenQuestion.Phase == question.PhaseHint,
		},
	})
	return res, nil
}

// applyOutput folds the generator's structured output into session
// state: question lifecycle, mastery, misconceptions, plan progress,
// and the completion decision.
func (e *Engine) applyOutput(s *session.State, req TurnRequest, out *tutor.Output, directive pacing.Directive) *TurnResult {
	if out.StopRequested {
		s.StopRequested = true
	}

	correct := out.Graded && out.Correctness >= correctnessPass
	res := &TurnResult{Kind: OutcomeAnswered, Intent: out.Intent, Directive: directive}

	questionKey := ""
	if s.OpenQuestion != nil {
		questionKey = s.OpenQuestion.Prompt
	}

	// Exams move on after every graded attempt: partial credit is
	// recorded and the next question posed, with no escalation ladder.
	closed := false
	if s.Mode == session.ModeExam {
		if out.Graded && s.OpenQuestion != nil {
			e.recordExamGrade(s, out.Correctness)
			closed = true
		}
	} else {
		closed = question.Advance(s.OpenQuestion, out.Intent, req.Message, correct).Closed
	}
	if closed {
		s.OpenQuestion = nil
		if s.Mode == session.ModeTeachMe {
			s.Plan.CompleteCurrent()
		}
	}

	if out.Graded && out.ConceptID != "" {
		before := s.Mastery.Get(out.ConceptID).Score
		entry := s.Mastery.Update(out.ConceptID, out.Correctness)
		res.graded = true
		res.correctness = out.Correctness
		res.masteryDelta = entry.Score - before
		res.conceptID = out.ConceptID
		if !correct {
			s.RecordConceptError(out.ConceptID, questionKey)
		}
	}
	if len(out.Misconceptions) > 0 {
		s.Misconceptions = mastery.MergeMisconceptions(s.Misconceptions, out.ConceptID, out.Misconceptions)
		res.misconceptions = out.Misconceptions
	}

	// An explicit stop is absolute: nothing new to work on may attach
	// to the final turn.
	if out.NewQuestion != nil && s.OpenQuestion == nil && !s.StopRequested {
		s.OpenQuestion = newQuestion(out.NewQuestion)
	}

	s.TurnCount++
	s.UpdatedAt = time.Now().UTC()

	decision := session.EvaluateCompletion(s, session.CompletionSignal{
		TutorSignaledComplete: out.SessionComplete,
		ExplicitStop:          out.StopRequested,
		EndExam:               req.EndExam,
	})
	switch {
	case decision.Complete:
		s.Complete = true
		res.Kind = OutcomeCompleted
		res.Summary = session.Summarize(s)
	case decision.Extend:
		res.Kind = OutcomeExtended
	}
	return res
}

// blockTurn applies an unsafe student message: the conversation keeps a
// faithful record and a deflection is delivered, but the question,
// mastery, plan, and turn count are untouched.
func (e *Engine) blockTurn(ctx context.Context, s *session.State, msg, reason string) *TurnResult {
	s.Append(session.Message{
		Role:      session.RoleStudent,
		Content:   msg,
		Timestamp: time.Now().UTC(),
	})
	s.Append(session.Message{
		Role:      session.RoleTutor,
		Content:   e.cfg.DeflectionMessage,
		Timestamp: time.Now().UTC(),
	})
	_ = e.events.AppendSafetyEvent(ctx, store.SafetyEventData{
		SessionID: s.ID,
		Stage:     "student_input",
		Reason:    reason,
	})
	return &TurnResult{Kind: OutcomeBlocked, Message: e.cfg.DeflectionMessage}
}

// fallbackTurn applies a provider failure: the student sees the
// deterministic fallback, the conversation records it, and the turn
// counts, but no grading or lifecycle state moves.
func (e *Engine) fallbackTurn(s *session.State, directive pacing.Directive) *TurnResult {
	s.Append(session.Message{
		Role:      session.RoleTutor,
		Content:   e.cfg.FallbackMessage,
		Timestamp: time.Now().UTC(),
		Meta:      &session.MessageMeta{PacingDirective: string(directive), Fallback: true},
	})
	s.TurnCount++
	s.UpdatedAt = time.Now().UTC()
	return &TurnResult{Kind: OutcomeFallback, Message: e.cfg.FallbackMessage, Directive: directive}
}

// endExam finalizes an exam session on the explicit end-exam action.
func (e *Engine) endExam(s *session.State) *TurnResult {
	decision := session.EvaluateCompletion(s, session.CompletionSignal{EndExam: true})
	if decision.Complete {
		s.Complete = true
	}
	s.UpdatedAt = time.Now().UTC()
	return &TurnResult{
		Kind:    OutcomeCompleted,
		Message: "That's the end of the exam. Well done for working through it.",
		Summary: session.Summarize(s),
	}
}

// recordExamGrade writes partial credit into the first unanswered exam
// question matching the open question.
func (e *Engine) recordExamGrade(s *session.State, correctness float64) {
	if s.OpenQuestion == nil {
		return
	}
	for i := range s.ExamQuestions {
		q := &s.ExamQuestions[i]
		if q.Answered || q.Prompt != s.OpenQuestion.Prompt {
			continue
		}
		q.Awarded = correctness * q.MaxPoints
		q.Answered = true
		return
	}
}

// logTurn appends the turn event. The event log is best-effort: the
// turn has already committed, so a logging failure must not fail it.
func (e *Engine) logTurn(ctx context.Context, s *session.State, req TurnRequest, res *TurnResult) {
	_ = e.events.AppendTurnEvent(ctx, store.TurnEventData{
		SessionID:      req.SessionID,
		Turn:           s.TurnCount,
		Intent:         string(res.Intent),
		Directive:      string(res.Directive),
		ConceptID:      res.conceptID,
		Graded:         res.graded,
		Correctness:    res.correctness,
		MasteryDelta:   res.masteryDelta,
		Misconceptions: res.misconceptions,
		Outcome:        string(res.Kind),
	})
	if res.Kind == OutcomeCompleted {
		_ = e.events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:      s.ID,
			Action:         "end",
			Mode:           string(s.Mode),
			Turns:          s.TurnCount,
			StepsCompleted: s.Plan.CompletedCount(),
			DurationSecs:   int(time.Since(s.CreatedAt).Seconds()),
		})
		e.saveSnapshot(ctx, s)
	}
}

func openWrongAttempts(s *session.State) int {
	if s.OpenQuestion == nil {
		return 0
	}
	return s.OpenQuestion.WrongAttempts
}

func newQuestion(p *tutor.PosedQuestion) *question.Question {
	return question.New(p.Prompt, p.Rubric, p.ConceptID, p.Hints)
}
