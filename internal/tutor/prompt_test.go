package tutor

import (
	"strings"
	"testing"

	"github.com/rpandey/mentora/internal/pacing"
	"github.com/rpandey/mentora/internal/question"
	"github.com/rpandey/mentora/internal/session"
)

func TestBuildSystemPrompt_TeachMeReferencesPlanStep(t *testing.T) {
	in := testInput()
	got := buildSystemPrompt(in)

	if !strings.Contains(got, "Adding fractions") {
		t.Error("teach_me prompt must reference the current plan step title")
	}
	if !strings.Contains(got, "adds like denominators") {
		t.Error("teach_me prompt must include the step's success criteria")
	}
}

func TestBuildSystemPrompt_InjectsPacingDirective(t *testing.T) {
	in := testInput()
	in.Directive = pacing.Simplify
	got := buildSystemPrompt(in)

	if !strings.Contains(got, "SIMPLIFY") {
		t.Error("prompt must name the pacing directive")
	}
	if !strings.Contains(got, "Slow down") {
		t.Error("prompt must carry the directive's behavioral instruction")
	}
}

func TestBuildSystemPrompt_QuestionPhaseInstructions(t *testing.T) {
	in := testInput()
	in.State.OpenQuestion = question.New("What is 1/4 + 2/4?", "Accept 3/4", "fractions-add", []string{"Keep the denominator"})
	in.State.OpenQuestion.Phase = question.PhaseHint
	in.State.OpenQuestion.HintsUsed = 1

	got := buildSystemPrompt(in)
	if !strings.Contains(got, "Keep the denominator") {
		t.Error("hint phase should surface the next hint text")
	}

	in.State.OpenQuestion.Phase = question.PhaseExplain
	got = buildSystemPrompt(in)
	if !strings.Contains(got, "fully explain") {
		t.Error("explain phase should demand a full explanation")
	}
}

func TestBuildSystemPrompt_StrategyChangeFlag(t *testing.T) {
	in := testInput()
	in.State.OpenQuestion = question.New("q", "r", "c", nil)
	in.ChangeStrategy = true

	got := buildSystemPrompt(in)
	if !strings.Contains(got, "Change your explanation strategy") {
		t.Error("strategy-change flag must produce an explicit instruction")
	}
}

func TestBuildSystemPrompt_ClarifyModeCarriesTopic(t *testing.T) {
	s := session.New("sess-2", session.StudentProfile{}, session.ModeClarifyDoubts)
	s.Topic = "Photosynthesis: light and dark reactions"
	got := buildSystemPrompt(Input{State: s, Directive: pacing.FirstTurn})

	if !strings.Contains(got, "Photosynthesis") {
		t.Error("clarify prompt must carry the topic blob")
	}
	if !strings.Contains(got, "natural closing question") {
		t.Error("clarify prompt must instruct a natural close")
	}
}

func TestBuildSystemPrompt_ExamModeNoHints(t *testing.T) {
	s := session.New("sess-3", session.StudentProfile{}, session.ModeExam)
	s.ExamQuestions = []session.ExamQuestion{
		{Prompt: "Define osmosis", Rubric: "3 points: definition, gradient, membrane", MaxPoints: 3},
	}
	got := buildSystemPrompt(Input{State: s, Directive: pacing.Steady})

	if !strings.Contains(got, "Never volunteer hints") {
		t.Error("exam prompt must forbid volunteered hints")
	}
	if !strings.Contains(got, "partial credit") {
		t.Error("exam prompt must demand rubric-based partial credit")
	}
	if !strings.Contains(got, "Define osmosis") {
		t.Error("exam prompt must list the exam questions")
	}
}

func TestBuildMessages_WindowOnly(t *testing.T) {
	s := session.New("sess-4", session.StudentProfile{}, session.ModeClarifyDoubts)
	for i := 0; i < session.ConversationWindow+8; i++ {
		s.Append(session.Message{Role: session.RoleStudent, Content: "msg"})
	}

	msgs := buildMessages(s)
	if len(msgs) != session.ConversationWindow {
		t.Errorf("prompt messages = %d, want bounded window %d", len(msgs), session.ConversationWindow)
	}
}

func TestBuildMessages_EmptyWindowGetsSeedMessage(t *testing.T) {
	s := session.New("sess-5", session.StudentProfile{}, session.ModeTeachMe)
	msgs := buildMessages(s)
	if len(msgs) != 1 {
		t.Fatalf("messages = %d, want 1 seed message", len(msgs))
	}
}
