package safety

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rpandey/mentora/internal/llm"
)

func verdictJSON(safe bool, reason string) json.RawMessage {
	b, _ := json.Marshal(map[string]any{"safe": safe, "reason": reason})
	return b
}

func TestCheckStudent_Safe(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: verdictJSON(true, "")})
	g := NewGate(mock, DefaultConfig())

	v := g.CheckStudent(context.Background(), "I think the answer is 4/8")
	if !v.Safe {
		t.Errorf("verdict = %+v, want safe", v)
	}
}

func TestCheckStudent_Unsafe(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: verdictJSON(false, "personal information request")})
	g := NewGate(mock, DefaultConfig())

	v := g.CheckStudent(context.Background(), "what is your home address")
	if v.Safe {
		t.Error("want unsafe verdict")
	}
	if v.Reason == "" {
		t.Error("unsafe verdict should carry a reason")
	}
}

func TestCheckStudent_FailsClosedOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	g := NewGate(mock, DefaultConfig())

	v := g.CheckStudent(context.Background(), "hello")
	if v.Safe {
		t.Error("student check must fail closed on provider error")
	}
}

func TestCheckTutor_FailsOpenOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	g := NewGate(mock, DefaultConfig())

	v := g.CheckTutor(context.Background(), "Great work! Let's try the next one.")
	if !v.Safe {
		t.Error("tutor re-check must fail open on provider error")
	}
}

func TestClassify_SendsSchema(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: verdictJSON(true, "")})
	g := NewGate(mock, DefaultConfig())
	g.CheckStudent(context.Background(), "hi")

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "safety-verdict" {
		t.Error("safety check should request the safety-verdict schema")
	}
}
