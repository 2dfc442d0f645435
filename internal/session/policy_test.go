package session

import (
	"testing"

	"github.com/rpandey/mentora/internal/mastery"
)

func teachMeSession() *State {
	s := New("sess-1", StudentProfile{ID: "stu-1"}, ModeTeachMe)
	s.Plan = threeStepPlan()
	s.Plan.Start()
	return s
}

func TestEvaluateCompletion_ExplicitStopWinsImmediately(t *testing.T) {
	s := teachMeSession()
	s.Misconceptions = []mastery.Misconception{{Label: "adds denominators", Count: 3}}

	d := EvaluateCompletion(s, CompletionSignal{ExplicitStop: true})
	if !d.Complete {
		t.Fatal("explicit stop must complete the session")
	}
	if d.Extend {
		t.Fatal("explicit stop must never be converted into an extension")
	}
}

func TestEvaluateCompletion_LatchedStopNeverReversed(t *testing.T) {
	s := teachMeSession()
	s.StopRequested = true

	d := EvaluateCompletion(s, CompletionSignal{})
	if !d.Complete || d.Extend {
		t.Fatal("a latched stop request must keep the session complete")
	}
}

func TestEvaluateCompletion_TeachMeIncomplete(t *testing.T) {
	s := teachMeSession()
	d := EvaluateCompletion(s, CompletionSignal{})
	if d.Complete || d.Extend {
		t.Errorf("decision = %+v, want continue while steps remain", d)
	}
}

func TestEvaluateCompletion_TeachMeAllStepsDone(t *testing.T) {
	s := teachMeSession()
	for s.Plan.CompleteCurrent() != nil {
	}
	s.TurnCount = 9

	d := EvaluateCompletion(s, CompletionSignal{})
	if !d.Complete {
		t.Fatalf("decision = %+v, want complete with no misconceptions outstanding", d)
	}
}

func TestEvaluateCompletion_ExtensionOfferedForMisconceptions(t *testing.T) {
	s := teachMeSession()
	for s.Plan.CompleteCurrent() != nil {
	}
	s.TurnCount = 9
	s.Misconceptions = []mastery.Misconception{{Label: "adds denominators", Count: 2}}

	d := EvaluateCompletion(s, CompletionSignal{})
	if !d.Extend || d.Complete {
		t.Fatalf("decision = %+v, want extension", d)
	}
	if s.ExtensionStart != 9 {
		t.Errorf("extension start = %d, want 9", s.ExtensionStart)
	}
}

func TestEvaluateCompletion_ExtensionCapped(t *testing.T) {
	s := teachMeSession()
	for s.Plan.CompleteCurrent() != nil {
	}
	s.Misconceptions = []mastery.Misconception{{Label: "adds denominators", Count: 2}}
	s.TurnCount = 9
	s.ExtensionStart = 9

	s.TurnCount = 9 + MaxExtensionTurns
	d := EvaluateCompletion(s, CompletionSignal{})
	if !d.Complete || d.Extend {
		t.Fatalf("decision = %+v, want complete at extension cap", d)
	}
}

func TestEvaluateCompletion_ExtensionRespectAllowFlag(t *testing.T) {
	s := teachMeSession()
	for s.Plan.CompleteCurrent() != nil {
	}
	s.AllowExtension = false
	s.Misconceptions = []mastery.Misconception{{Label: "x", Count: 1}}
	s.TurnCount = 5

	d := EvaluateCompletion(s, CompletionSignal{})
	if !d.Complete {
		t.Fatalf("decision = %+v, want complete when extension disallowed", d)
	}
}

func TestEvaluateCompletion_ClarifyNaturalClosure(t *testing.T) {
	s := New("sess-2", StudentProfile{}, ModeClarifyDoubts)
	s.Topic = "photosynthesis basics"
	s.TurnCount = 4

	d := EvaluateCompletion(s, CompletionSignal{})
	if d.Complete {
		t.Error("clarify session should continue without a closure signal")
	}

	d = EvaluateCompletion(s, CompletionSignal{TutorSignaledComplete: true})
	if !d.Complete {
		t.Error("clarify session should complete on natural closure")
	}
}

func TestEvaluateCompletion_ExamOnlyEndsExplicitly(t *testing.T) {
	s := New("sess-3", StudentProfile{}, ModeExam)
	s.ExamQuestions = []ExamQuestion{{Prompt: "q", MaxPoints: 10}}

	d := EvaluateCompletion(s, CompletionSignal{TutorSignaledComplete: true})
	if d.Complete {
		t.Error("exam must not complete on a generator signal")
	}

	d = EvaluateCompletion(s, CompletionSignal{EndExam: true})
	if !d.Complete {
		t.Error("exam should complete on the explicit end-exam action")
	}
}
