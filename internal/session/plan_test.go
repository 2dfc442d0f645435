package session

import "testing"

func threeStepPlan() *Plan {
	return &Plan{Steps: []PlanStep{
		{ID: "s1", Title: "Equivalent fractions", SuccessCriteria: "identifies equivalent pairs", Status: StepPending},
		{ID: "s2", Title: "Adding like denominators", SuccessCriteria: "adds correctly", Status: StepPending},
		{ID: "s3", Title: "Adding unlike denominators", SuccessCriteria: "finds common denominator", Status: StepPending},
	}}
}

// countInProgress verifies the single in-progress invariant.
func countInProgress(p *Plan) int {
	n := 0
	for _, s := range p.Steps {
		if s.Status == StepInProgress {
			n++
		}
	}
	return n
}

func TestPlan_StartPromotesFirstPending(t *testing.T) {
	p := threeStepPlan()
	step := p.Start()

	if step == nil || step.ID != "s1" {
		t.Fatalf("started step = %v, want s1", step)
	}
	if countInProgress(p) != 1 {
		t.Errorf("in-progress count = %d, want 1", countInProgress(p))
	}
}

func TestPlan_SingleInProgressInvariant(t *testing.T) {
	p := threeStepPlan()
	p.Start()
	p.Start() // double start must not create a second in-progress step
	if countInProgress(p) != 1 {
		t.Fatalf("in-progress count = %d, want 1 after repeated Start", countInProgress(p))
	}

	for p.CompleteCurrent() != nil {
		if countInProgress(p) != 1 {
			t.Fatalf("in-progress count = %d mid-plan, want 1", countInProgress(p))
		}
	}
	if countInProgress(p) != 0 {
		t.Errorf("in-progress count = %d after exhaustion, want 0", countInProgress(p))
	}
}

func TestPlan_CompleteCurrentAdvancesInOrder(t *testing.T) {
	p := threeStepPlan()
	p.Start()

	next := p.CompleteCurrent()
	if next == nil || next.ID != "s2" {
		t.Fatalf("next step = %v, want s2", next)
	}
	if p.Steps[0].Status != StepCompleted {
		t.Errorf("s1 status = %s, want completed", p.Steps[0].Status)
	}

	next = p.CompleteCurrent()
	if next == nil || next.ID != "s3" {
		t.Fatalf("next step = %v, want s3", next)
	}

	next = p.CompleteCurrent()
	if next != nil {
		t.Fatalf("next step after last = %v, want nil", next)
	}
	if !p.AllCompleted() {
		t.Error("plan should be all completed")
	}
}

func TestPlan_AllCompletedEmptyPlan(t *testing.T) {
	p := &Plan{}
	if p.AllCompleted() {
		t.Error("empty plan must not count as completed")
	}
}

func TestState_AppendWindowBounded(t *testing.T) {
	s := New("sess-1", StudentProfile{ID: "stu-1"}, ModeTeachMe)

	for i := 0; i < ConversationWindow+5; i++ {
		s.Append(Message{Role: RoleStudent, Content: "hi"})
	}

	if len(s.Window) != ConversationWindow {
		t.Errorf("window len = %d, want bounded at %d", len(s.Window), ConversationWindow)
	}
	if len(s.Log) != ConversationWindow+5 {
		t.Errorf("log len = %d, want unbounded %d", len(s.Log), ConversationWindow+5)
	}
}

func TestState_RecordConceptError(t *testing.T) {
	s := New("sess-1", StudentProfile{}, ModeTeachMe)
	s.RecordConceptError("fractions-add", "q1")
	s.RecordConceptError("fractions-add", "q2")
	if n := s.RecordConceptError("fractions-add", "q3"); n != 3 {
		t.Errorf("erring questions = %d, want 3", n)
	}
}
