package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rpandey/mentora/internal/llm"
	"github.com/rpandey/mentora/internal/pacing"
	"github.com/rpandey/mentora/internal/session"
)

func validTurnJSON(overrides map[string]any) json.RawMessage {
	turn := map[string]any{
		"message":          "Nice try! What happens to the denominator?",
		"intent":           "answer",
		"graded":           true,
		"correctness":      0.0,
		"concept_id":       "fractions-add",
		"misconceptions":   []string{},
		"session_complete": false,
		"stop_requested":   false,
		"new_question":     nil,
	}
	for k, v := range overrides {
		turn[k] = v
	}
	b, _ := json.Marshal(turn)
	return b
}

func testInput() Input {
	s := session.New("sess-1", session.StudentProfile{Name: "Asha", GradeLevel: 4}, session.ModeTeachMe)
	s.Plan = &session.Plan{Steps: []session.PlanStep{
		{ID: "s1", Title: "Adding fractions", SuccessCriteria: "adds like denominators", Status: session.StepInProgress},
	}}
	s.Append(session.Message{Role: session.RoleTutor, Content: "What is 1/4 + 2/4?"})
	s.Append(session.Message{Role: session.RoleStudent, Content: "3/8"})
	return Input{State: s, Directive: pacing.Steady}
}

func TestGenerate_ValidFirstAttempt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validTurnJSON(nil)})
	g := NewGenerator(mock, DefaultConfig())

	out, err := g.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Intent != "answer" || !out.Graded {
		t.Errorf("output = %+v, want graded answer", out)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestGenerate_CorrectiveRetryOnInvalidOutput(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"message":""}`)},
		llm.MockResponse{Content: validTurnJSON(nil)},
	)
	g := NewGenerator(mock, DefaultConfig())

	out, err := g.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Message == "" {
		t.Error("want the retried valid output")
	}
	if mock.CallCount() != 2 {
		t.Fatalf("calls = %d, want 2", mock.CallCount())
	}

	// The retry must carry a corrective instruction.
	retryMsgs := mock.Calls[1].Messages
	last := retryMsgs[len(retryMsgs)-1]
	if last.Role != llm.RoleUser {
		t.Error("corrective instruction should be a user message")
	}
}

func TestGenerate_TypedErrorAfterSecondFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`not json`)},
		llm.MockResponse{Content: json.RawMessage(`{"intent":"bogus"}`)},
	)
	g := NewGenerator(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), testInput())
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("error = %v, want *GenerationError", err)
	}
	if genErr.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", genErr.Attempts)
	}
}

func TestGenerate_ProviderErrorNotRetriedHere(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	g := NewGenerator(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), testInput())
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("error = %v, want *GenerationError", err)
	}
	if genErr.Attempts != 1 {
		t.Errorf("attempts = %d, want 1 (outages belong to the retry middleware)", genErr.Attempts)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestGenerate_RejectsOutOfRangeCorrectness(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validTurnJSON(map[string]any{"correctness": 1.7})},
		llm.MockResponse{Content: validTurnJSON(nil)},
	)
	g := NewGenerator(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), testInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want retry after out-of-range correctness", mock.CallCount())
	}
}

func TestGenerate_ParsesPosedQuestion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validTurnJSON(map[string]any{
		"correctness": 1.0,
		"new_question": map[string]any{
			"prompt":     "What is 1/3 + 1/3?",
			"rubric":     "Accept 2/3",
			"concept_id": "fractions-add",
			"hints":      []string{"The denominators already match"},
		},
	})})
	g := NewGenerator(mock, DefaultConfig())

	out, err := g.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.NewQuestion == nil || out.NewQuestion.Prompt == "" {
		t.Fatal("want a posed question")
	}
	if len(out.NewQuestion.Hints) != 1 {
		t.Errorf("hints = %v, want 1", out.NewQuestion.Hints)
	}
}
