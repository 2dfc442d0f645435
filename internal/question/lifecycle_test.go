package question

import "testing"

func newTestQuestion() *Question {
	return New("What is 3/4 + 1/4?", "Accept 1 or 4/4", "fractions-add", []string{"Add the numerators only"})
}

func TestAdvance_CorrectAnswerCloses(t *testing.T) {
	q := newTestQuestion()
	out := Advance(q, IntentAnswer, "1", true)

	if !out.Closed {
		t.Error("correct answer should close the question")
	}
	if out.Question != nil {
		t.Error("closed outcome should carry no open question")
	}
}

func TestAdvance_PhaseProgression(t *testing.T) {
	q := newTestQuestion()

	steps := []struct {
		answer    string
		wantPhase Phase
		wantWrong int
	}{
		{"2/8", PhaseProbe, 1},
		{"4/8", PhaseHint, 2},
		{"2", PhaseExplain, 3},
	}

	for i, s := range steps {
		out := Advance(q, IntentAnswer, s.answer, false)
		if out.Closed {
			t.Fatalf("step %d: wrong answer closed the question", i)
		}
		if q.Phase != s.wantPhase {
			t.Errorf("step %d: phase = %s, want %s", i, q.Phase, s.wantPhase)
		}
		if q.WrongAttempts != s.wantWrong {
			t.Errorf("step %d: wrong_attempts = %d, want %d", i, q.WrongAttempts, s.wantWrong)
		}
	}

	if q.HintsUsed != 1 {
		t.Errorf("hints_used = %d, want 1 (charged on entering hint phase)", q.HintsUsed)
	}

	// A fourth wrong answer stays in explain.
	Advance(q, IntentAnswer, "0", false)
	if q.Phase != PhaseExplain {
		t.Errorf("phase after explain = %s, want explain", q.Phase)
	}
}

func TestAdvance_StrategyChangeAfterTwoWrong(t *testing.T) {
	q := newTestQuestion()

	out := Advance(q, IntentAnswer, "2/8", false)
	if out.ChangeStrategy {
		t.Error("one wrong attempt should not trigger a strategy change")
	}

	out = Advance(q, IntentAnswer, "4/8", false)
	if !out.ChangeStrategy {
		t.Error("two wrong attempts should trigger a strategy change")
	}
}

func TestAdvance_AnswerChangeReplacesNotIncrements(t *testing.T) {
	q := newTestQuestion()
	Advance(q, IntentAnswer, "2/8", false)

	out := Advance(q, IntentAnswerChange, "actually 4/8", false)
	if out.Closed {
		t.Fatal("wrong revision should not close")
	}
	if q.WrongAttempts != 1 {
		t.Errorf("wrong_attempts = %d, want 1 (revision does not count)", q.WrongAttempts)
	}
	if len(q.PriorAnswers) != 1 || q.PriorAnswers[0] != "actually 4/8" {
		t.Errorf("prior answers = %v, want last answer replaced", q.PriorAnswers)
	}
	if q.Phase != PhaseProbe {
		t.Errorf("phase = %s, want probe unchanged by revision", q.Phase)
	}
}

func TestAdvance_CorrectAnswerChangeCloses(t *testing.T) {
	q := newTestQuestion()
	Advance(q, IntentAnswer, "2/8", false)

	out := Advance(q, IntentAnswerChange, "wait, it's 1", true)
	if !out.Closed {
		t.Error("correct revision should close the question")
	}
}

func TestAdvance_OffTopicLeavesStateUntouched(t *testing.T) {
	q := newTestQuestion()
	Advance(q, IntentAnswer, "2/8", false)
	before := *q

	out := Advance(q, IntentOffTopic, "can we talk about dinosaurs", false)
	if out.Closed {
		t.Fatal("off-topic should not close")
	}
	if q.WrongAttempts != before.WrongAttempts || q.Phase != before.Phase || q.HintsUsed != before.HintsUsed {
		t.Error("off-topic mutated question state")
	}
}

func TestAdvance_NovelStrategyNeverIncrementsWrong(t *testing.T) {
	q := newTestQuestion()

	out := Advance(q, IntentNovelStrategy, "what if I convert to decimals first?", false)
	if q.WrongAttempts != 0 {
		t.Errorf("wrong_attempts = %d, want 0 for novel strategy", q.WrongAttempts)
	}
	if out.Closed {
		t.Error("unresolved novel strategy should keep the question open")
	}

	out = Advance(q, IntentNovelStrategy, "0.75 + 0.25 = 1", true)
	if !out.Closed {
		t.Error("a novel strategy that reaches the right answer should close")
	}
}

func TestAdvance_NilQuestion(t *testing.T) {
	out := Advance(nil, IntentAnswer, "42", true)
	if out.Closed || out.Question != nil {
		t.Error("advancing a nil question should be a no-op")
	}
}

func TestPrerequisiteGap(t *testing.T) {
	if PrerequisiteGap(2) {
		t.Error("2 error turns should not flag a gap")
	}
	if !PrerequisiteGap(3) {
		t.Error("3 error turns should flag a gap")
	}
}

func TestIntentValid(t *testing.T) {
	for _, in := range []Intent{IntentAnswer, IntentAnswerChange, IntentQuestion, IntentConfusion, IntentNovelStrategy, IntentOffTopic, IntentContinuation} {
		if !in.Valid() {
			t.Errorf("%s should be valid", in)
		}
	}
	if Intent("greeting").Valid() {
		t.Error("unknown intent should be invalid")
	}
}
