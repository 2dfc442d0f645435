package engine

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rpandey/mentora/internal/question"
	"github.com/rpandey/mentora/internal/safety"
	"github.com/rpandey/mentora/internal/session"
	"github.com/rpandey/mentora/internal/tutor"
)

func gradedOutput(correctness float64, conceptID, msg string) *tutor.Output {
	return &tutor.Output{
		Message:     msg,
		Intent:      question.IntentAnswer,
		Graded:      true,
		Correctness: correctness,
		ConceptID:   conceptID,
	}
}

func TestCorrectAnswerCompletesStep(t *testing.T) {
	gen := &stubGen{}
	gen.push(openingOutput())
	out := gradedOutput(1.0, "fractions.equivalence", "Exactly right! Next up: adding fractions.")
	out.NewQuestion = &tutor.PosedQuestion{
		Prompt:    "What is 1/4 + 2/4?",
		Rubric:    "3/4",
		ConceptID: "fractions.addition",
	}
	gen.push(out)

	e, sessions, events := newTestEngine(gen)
	s := startTeachSession(t, e)
	ctx := context.Background()

	res, err := e.SubmitTurn(ctx, TurnRequest{
		SessionID: s.ID,
		Message:   "Yes, because 2/4 reduces to 1/2.",
	})
	if err != nil {
		t.Fatalf("submit turn: %v", err)
	}
	if res.Kind != OutcomeAnswered {
		t.Fatalf("kind = %q, want answered", res.Kind)
	}
	if res.Version != 2 {
		t.Errorf("version = %d, want 2", res.Version)
	}

	stored, _, _ := sessions.Get(ctx, s.ID)
	if stored.TurnCount != 1 {
		t.Errorf("turn count = %d, want 1", stored.TurnCount)
	}
	if got := stored.Plan.Steps[0].Status; got != session.StepCompleted {
		t.Errorf("step 1 status = %q, want completed", got)
	}
	if cur := stored.Plan.Current(); cur == nil || cur.ID != "s2" {
		t.Errorf("current step = %+v, want s2", cur)
	}
	score := stored.Mastery.Get("fractions.equivalence").Score
	if score <= 0.5 {
		t.Errorf("mastery = %v, want above the 0.5 seed", score)
	}
	if stored.OpenQuestion == nil || stored.OpenQuestion.ConceptID != "fractions.addition" {
		t.Errorf("open question = %+v, want the newly posed one", stored.OpenQuestion)
	}

	if len(events.turnEvents) != 1 {
		t.Fatalf("turn events = %d, want 1", len(events.turnEvents))
	}
	ev := events.turnEvents[0]
	if ev.Outcome != "answered" || !ev.Graded || ev.ConceptID != "fractions.equivalence" {
		t.Errorf("turn event = %+v", ev)
	}
}

func TestWrongAnswersEscalateAndFlagStrategyChange(t *testing.T) {
	gen := &stubGen{}
	gen.push(openingOutput())
	for i := 0; i < 3; i++ {
		gen.push(gradedOutput(0, "fractions.equivalence", "Not quite. Think about it differently."))
	}

	e, sessions, _ := newTestEngine(gen)
	s := startTeachSession(t, e)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := e.SubmitTurn(ctx, TurnRequest{SessionID: s.ID, Message: "No?"}); err != nil {
			t.Fatalf("submit turn %d: %v", i, err)
		}
	}

	stored, _, _ := sessions.Get(ctx, s.ID)
	q := stored.OpenQuestion
	if q == nil {
		t.Fatal("expected the question to stay open")
	}
	if q.WrongAttempts != 3 {
		t.Errorf("wrong attempts = %d, want 3", q.WrongAttempts)
	}
	if q.Phase != question.PhaseExplain {
		t.Errorf("phase = %q, want explain", q.Phase)
	}

	// The third generation should have been told to change strategy:
	// the student was already at 2 wrong attempts going in.
	last := gen.inputs[len(gen.inputs)-1]
	if !last.ChangeStrategy {
		t.Error("expected ChangeStrategy on the third tutoring turn")
	}

	// Hammering one question is the escalation ladder's business. The
	// prerequisite-gap counter only moves when a new question errs.
	if last.PrerequisiteGap {
		t.Error("three wrong attempts on one question must not flag a prerequisite gap")
	}
	if n := stored.ConceptErrorTurns["fractions.equivalence"]; n != 1 {
		t.Errorf("erring questions = %d, want 1 for a single question", n)
	}
}

func TestUnsafeMessageShortCircuits(t *testing.T) {
	gen := &stubGen{}
	gen.push(openingOutput())
	e, sessions, events := newTestEngine(gen)
	s := startTeachSession(t, e)
	ctx := context.Background()

	gate := e.gate.(*stubGate)
	gate.student = safety.Verdict{Safe: false, Reason: "harassment"}

	res, err := e.SubmitTurn(ctx, TurnRequest{SessionID: s.ID, Message: "something hostile"})
	if err != nil {
		t.Fatalf("submit turn: %v", err)
	}
	if res.Kind != OutcomeBlocked {
		t.Fatalf("kind = %q, want blocked", res.Kind)
	}
	if res.Message != DefaultConfig().DeflectionMessage {
		t.Errorf("message = %q, want the deflection", res.Message)
	}

	// Only the conversation and event logs moved.
	stored, _, _ := sessions.Get(ctx, s.ID)
	if stored.TurnCount != 0 {
		t.Errorf("turn count = %d, want 0", stored.TurnCount)
	}
	if len(stored.Mastery) != 0 {
		t.Errorf("mastery entries = %d, want 0", len(stored.Mastery))
	}
	if stored.OpenQuestion == nil || stored.OpenQuestion.WrongAttempts != 0 {
		t.Errorf("open question = %+v, want untouched", stored.OpenQuestion)
	}
	if len(stored.Log) != 3 { // opening + blocked student message + deflection
		t.Errorf("log length = %d, want 3", len(stored.Log))
	}

	if len(events.safetyEvents) != 1 || events.safetyEvents[0].Stage != "student_input" {
		t.Errorf("safety events = %+v, want one student_input block", events.safetyEvents)
	}
	if gen.calls != 1 { // only the opening message
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}
}

func TestExplicitStopEndsSession(t *testing.T) {
	gen := &stubGen{}
	gen.push(openingOutput())
	gen.push(&tutor.Output{
		Message:       "Of course — great work today. See you next time!",
		Intent:        question.IntentContinuation,
		StopRequested: true,
	})

	e, sessions, _ := newTestEngine(gen)
	s := startTeachSession(t, e)
	ctx := context.Background()

	res, err := e.SubmitTurn(ctx, TurnRequest{SessionID: s.ID, Message: "I want to stop now."})
	if err != nil {
		t.Fatalf("submit turn: %v", err)
	}
	if res.Kind != OutcomeCompleted {
		t.Fatalf("kind = %q, want completed", res.Kind)
	}
	if res.Summary == nil {
		t.Fatal("expected a summary on completion")
	}

	stored, _, _ := sessions.Get(ctx, s.ID)
	if !stored.Complete {
		t.Error("expected complete state")
	}
	if !stored.StopRequested {
		t.Error("expected the stop latch to be set")
	}

	// No more teaching after an explicit stop.
	res2, err := e.SubmitTurn(ctx, TurnRequest{SessionID: s.ID, Message: "actually wait"})
	if err != nil {
		t.Fatalf("post-stop turn: %v", err)
	}
	if res2.Kind != OutcomeRejected {
		t.Errorf("post-stop kind = %q, want rejected", res2.Kind)
	}
}

func TestExplicitStopDiscardsPosedQuestion(t *testing.T) {
	gen := &stubGen{}
	gen.push(openingOutput())

	// The generator closes the open question and poses a new one on the
	// same turn the student asks to stop.
	out := gradedOutput(1.0, "fractions.equivalence", "Right! We can pick this up next time.")
	out.StopRequested = true
	out.NewQuestion = &tutor.PosedQuestion{
		Prompt:    "What is 1/4 + 2/4?",
		Rubric:    "3/4",
		ConceptID: "fractions.addition",
	}
	gen.push(out)

	e, sessions, _ := newTestEngine(gen)
	s := startTeachSession(t, e)
	ctx := context.Background()

	res, err := e.SubmitTurn(ctx, TurnRequest{SessionID: s.ID, Message: "Yes, 1/2. Can we stop here?"})
	if err != nil {
		t.Fatalf("submit turn: %v", err)
	}
	if res.Kind != OutcomeCompleted {
		t.Fatalf("kind = %q, want completed", res.Kind)
	}

	stored, _, _ := sessions.Get(ctx, s.ID)
	if !stored.Complete || !stored.StopRequested {
		t.Error("expected a completed, stop-latched session")
	}
	if stored.OpenQuestion != nil {
		t.Errorf("open question = %+v, want none after an explicit stop", stored.OpenQuestion)
	}
}

func TestDuplicateSubmissionConflicts(t *testing.T) {
	gen := &stubGen{}
	gen.push(openingOutput())
	gen.push(gradedOutput(1.0, "fractions.equivalence", "Right!"))
	gen.push(gradedOutput(1.0, "fractions.equivalence", "Right again!"))

	e, sessions, _ := newTestEngine(gen)
	s := startTeachSession(t, e)
	ctx := context.Background()

	req := TurnRequest{SessionID: s.ID, Message: "Yes, 2/4 = 1/2.", ExpectedVersion: 1}

	first, err := e.SubmitTurn(ctx, req)
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if first.Kind != OutcomeAnswered {
		t.Fatalf("first kind = %q, want answered", first.Kind)
	}

	// The retried duplicate still pins version 1: stale, rejected.
	second, err := e.SubmitTurn(ctx, req)
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if second.Kind != OutcomeConflict {
		t.Fatalf("second kind = %q, want conflict", second.Kind)
	}

	stored, _, _ := sessions.Get(ctx, s.ID)
	if stored.TurnCount != 1 {
		t.Errorf("turn count = %d, want 1 (only the first applied)", stored.TurnCount)
	}
}

func TestConcurrentPinnedWritersExactlyOneWins(t *testing.T) {
	gen := &stubGen{}
	gen.push(openingOutput())
	gen.push(gradedOutput(1.0, "fractions.equivalence", "Right!"))
	gen.push(gradedOutput(1.0, "fractions.equivalence", "Right!"))

	e, sessions, _ := newTestEngine(gen)
	s := startTeachSession(t, e)
	ctx := context.Background()

	results := make([]*TurnResult, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := e.SubmitTurn(ctx, TurnRequest{
				SessionID:       s.ID,
				Message:         "Yes!",
				ExpectedVersion: 1,
			})
			if err != nil {
				t.Errorf("writer %d: %v", i, err)
				return
			}
			results[i] = res
		}(i)
	}
	wg.Wait()

	answered, conflicts := 0, 0
	for _, res := range results {
		switch res.Kind {
		case OutcomeAnswered, OutcomeCompleted:
			answered++
		case OutcomeConflict:
			conflicts++
		}
	}
	if answered != 1 || conflicts != 1 {
		t.Fatalf("answered = %d, conflicts = %d, want exactly one of each", answered, conflicts)
	}

	// State reflects exactly one of the writes, never a merge.
	stored, version, _ := sessions.Get(ctx, s.ID)
	if stored.TurnCount != 1 {
		t.Errorf("turn count = %d, want 1", stored.TurnCount)
	}
	if version != 2 {
		t.Errorf("version = %d, want 2", version)
	}
}

func TestProviderFailureFallsBack(t *testing.T) {
	gen := &stubGen{}
	gen.push(openingOutput())
	gen.errs = append(gen.errs, &tutor.GenerationError{Attempts: 2, Err: errors.New("provider down")})

	e, sessions, _ := newTestEngine(gen)
	s := startTeachSession(t, e)
	ctx := context.Background()

	res, err := e.SubmitTurn(ctx, TurnRequest{SessionID: s.ID, Message: "Yes?"})
	if err != nil {
		t.Fatalf("submit turn: %v", err)
	}
	if res.Kind != OutcomeFallback {
		t.Fatalf("kind = %q, want fallback", res.Kind)
	}
	if res.Message != DefaultConfig().FallbackMessage {
		t.Errorf("message = %q, want the fallback", res.Message)
	}

	stored, _, _ := sessions.Get(ctx, s.ID)
	if stored.TurnCount != 1 {
		t.Errorf("turn count = %d, want 1", stored.TurnCount)
	}
	if len(stored.Mastery) != 0 {
		t.Errorf("mastery entries = %d, want 0 on a fallback turn", len(stored.Mastery))
	}
}

func TestPausedSessionRejectsTurns(t *testing.T) {
	gen := &stubGen{}
	gen.push(openingOutput())
	e, _, _ := newTestEngine(gen)
	s := startTeachSession(t, e)
	ctx := context.Background()

	if err := e.Pause(ctx, s.ID); err != nil {
		t.Fatalf("pause: %v", err)
	}

	res, err := e.SubmitTurn(ctx, TurnRequest{SessionID: s.ID, Message: "hello?"})
	if err != nil {
		t.Fatalf("submit turn: %v", err)
	}
	if res.Kind != OutcomeRejected {
		t.Fatalf("kind = %q, want rejected", res.Kind)
	}
	if gen.calls != 1 { // only the opening message
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}
}

func TestMisconceptionsEarnExtension(t *testing.T) {
	gen := &stubGen{}
	gen.push(openingOutput())
	out := gradedOutput(1.0, "fractions.equivalence", "Right! Let me clear up one thing I noticed earlier.")
	out.Misconceptions = []string{"adds denominators"}
	gen.push(out)

	e, sessions, _ := newTestEngine(gen)

	// Single-step plan: the correct answer completes the whole plan.
	s, _, err := e.Start(context.Background(), StartRequest{
		Student: session.StudentProfile{Name: "Priya"},
		Mode:    session.ModeTeachMe,
		Plan: &session.Plan{Steps: []session.PlanStep{
			{ID: "s1", Title: "Equivalent fractions", SuccessCriteria: "identifies equivalence", Status: session.StepPending},
		}},
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	res, err := e.SubmitTurn(context.Background(), TurnRequest{SessionID: s.ID, Message: "Yes."})
	if err != nil {
		t.Fatalf("submit turn: %v", err)
	}
	if res.Kind != OutcomeExtended {
		t.Fatalf("kind = %q, want extended", res.Kind)
	}

	stored, _, _ := sessions.Get(context.Background(), s.ID)
	if stored.Complete {
		t.Error("session should stay open during extension")
	}
	if stored.ExtensionStart == 0 {
		t.Error("expected the extension start turn to be recorded")
	}
}

func TestThreeStepLessonRunsToCompletion(t *testing.T) {
	gen := &stubGen{}
	gen.push(openingOutput())

	first := gradedOutput(1.0, "fractions.equivalence", "Right! On to adding fractions.")
	first.NewQuestion = &tutor.PosedQuestion{
		Prompt: "What is 1/4 + 2/4?", Rubric: "3/4", ConceptID: "fractions.addition",
	}
	gen.push(first)

	second := gradedOutput(1.0, "fractions.addition", "Correct! Last one: a word problem.")
	second.NewQuestion = &tutor.PosedQuestion{
		Prompt: "You eat 1/4 of a pizza and your friend eats 2/4. How much is left?", Rubric: "1/4", ConceptID: "fractions.word-problems",
	}
	gen.push(second)

	gen.push(gradedOutput(1.0, "fractions.word-problems", "Perfect. That was the whole lesson!"))

	e, sessions, _ := newTestEngine(gen)
	s := startTeachSession(t, e)
	ctx := context.Background()

	answers := []string{"Yes, 2/4 is 1/2.", "3/4", "1/4 of the pizza"}
	var last *TurnResult
	for i, msg := range answers {
		res, err := e.SubmitTurn(ctx, TurnRequest{SessionID: s.ID, Message: msg})
		if err != nil {
			t.Fatalf("turn %d: %v", i+1, err)
		}
		last = res
	}

	if last.Kind != OutcomeCompleted {
		t.Fatalf("final kind = %q, want completed", last.Kind)
	}
	if last.Summary == nil {
		t.Fatal("expected a summary on completion")
	}
	if last.Summary.StepsCompleted != 3 || last.Summary.StepsTotal != 3 {
		t.Errorf("steps = %d/%d, want 3/3", last.Summary.StepsCompleted, last.Summary.StepsTotal)
	}

	stored, version, _ := sessions.Get(ctx, s.ID)
	if !stored.Complete {
		t.Error("expected the stored session to be complete")
	}
	if stored.TurnCount != 3 {
		t.Errorf("turn count = %d, want 3", stored.TurnCount)
	}
	if version != 4 {
		t.Errorf("version = %d, want 4 (create + three turns)", version)
	}
	for i, step := range stored.Plan.Steps {
		if step.Status != session.StepCompleted {
			t.Errorf("step %d status = %q, want completed", i+1, step.Status)
		}
	}
}

func TestEndExamRecordsScoreAndCompletes(t *testing.T) {
	gen := &stubGen{}
	gen.push(&tutor.Output{
		Message: "Question 1: what is 3/4 - 1/4?",
		Intent:  question.IntentContinuation,
		NewQuestion: &tutor.PosedQuestion{
			Prompt:    "What is 3/4 - 1/4?",
			Rubric:    "2/4 or 1/2",
			ConceptID: "fractions.subtraction",
		},
	})
	gen.push(gradedOutput(0.5, "fractions.subtraction", "Partially right: 2/4, which simplifies to 1/2."))

	e, sessions, _ := newTestEngine(gen)
	ctx := context.Background()

	s, _, err := e.Start(ctx, StartRequest{
		Student: session.StudentProfile{Name: "Priya"},
		Mode:    session.ModeExam,
		ExamQuestions: []session.ExamQuestion{
			{Prompt: "What is 3/4 - 1/4?", Rubric: "2/4 or 1/2", ConceptID: "fractions.subtraction", MaxPoints: 10},
			{Prompt: "What is 1/2 of 8?", Rubric: "4", ConceptID: "fractions.of-quantity", MaxPoints: 10},
		},
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if _, err := e.SubmitTurn(ctx, TurnRequest{SessionID: s.ID, Message: "2/4"}); err != nil {
		t.Fatalf("answer turn: %v", err)
	}

	stored, _, _ := sessions.Get(ctx, s.ID)
	if !stored.ExamQuestions[0].Answered {
		t.Fatal("expected question 1 to be graded")
	}
	if got := stored.ExamQuestions[0].Awarded; got != 5 {
		t.Errorf("awarded = %v, want 5 (half credit of 10)", got)
	}

	res, err := e.SubmitTurn(ctx, TurnRequest{SessionID: s.ID, EndExam: true})
	if err != nil {
		t.Fatalf("end exam: %v", err)
	}
	if res.Kind != OutcomeCompleted {
		t.Fatalf("kind = %q, want completed", res.Kind)
	}
	if res.Summary.ExamAwarded != 5 || res.Summary.ExamMax != 20 {
		t.Errorf("exam score = %v/%v, want 5/20", res.Summary.ExamAwarded, res.Summary.ExamMax)
	}
}

func TestEndExamOutsideExamModeRejected(t *testing.T) {
	gen := &stubGen{}
	gen.push(openingOutput())
	e, _, _ := newTestEngine(gen)
	s := startTeachSession(t, e)

	res, err := e.SubmitTurn(context.Background(), TurnRequest{SessionID: s.ID, EndExam: true})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Kind != OutcomeRejected {
		t.Fatalf("kind = %q, want rejected", res.Kind)
	}
}
