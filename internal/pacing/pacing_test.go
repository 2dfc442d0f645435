package pacing

import (
	"testing"

	"github.com/rpandey/mentora/internal/mastery"
	"github.com/rpandey/mentora/internal/question"
	"github.com/rpandey/mentora/internal/session"
)

func baseSession() *session.State {
	s := session.New("sess-1", session.StudentProfile{ID: "stu-1"}, session.ModeTeachMe)
	s.TurnCount = 3
	return s
}

func setMastery(s *session.State, scores map[string]float64, trend mastery.Trend) {
	for id, score := range scores {
		s.Mastery[id] = &mastery.Entry{ConceptID: id, Score: score, Trend: trend}
	}
}

func TestCompute_FirstTurn(t *testing.T) {
	s := baseSession()
	s.TurnCount = 0
	if got := Compute(s); got != FirstTurn {
		t.Errorf("directive = %s, want first_turn", got)
	}
}

func TestCompute_Accelerate(t *testing.T) {
	s := baseSession()
	// 3 of 4 concepts at or above 0.7, avg 0.75, all improving.
	setMastery(s, map[string]float64{"a": 0.8, "b": 0.75, "c": 0.85, "d": 0.6}, mastery.TrendImproving)

	if got := Compute(s); got != Accelerate {
		t.Errorf("directive = %s, want accelerate", got)
	}
}

func TestCompute_AccelerateRequiresImprovingTrend(t *testing.T) {
	s := baseSession()
	setMastery(s, map[string]float64{"a": 0.8, "b": 0.75, "c": 0.85}, mastery.TrendSteady)

	if got := Compute(s); got == Accelerate {
		t.Error("accelerate must require an improving trend")
	}
}

func TestCompute_Simplify(t *testing.T) {
	tests := []struct {
		name   string
		scores map[string]float64
		trend  mastery.Trend
	}{
		{"low average", map[string]float64{"a": 0.3, "b": 0.35}, mastery.TrendSteady},
		{"declining trend", map[string]float64{"a": 0.55, "b": 0.6}, mastery.TrendDeclining},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := baseSession()
			setMastery(s, tt.scores, tt.trend)
			if got := Compute(s); got != Simplify {
				t.Errorf("directive = %s, want simplify", got)
			}
		})
	}
}

func TestCompute_Consolidate(t *testing.T) {
	s := baseSession()
	setMastery(s, map[string]float64{"a": 0.5, "b": 0.55}, mastery.TrendSteady)
	s.OpenQuestion = question.New("q", "r", "a", nil)
	s.OpenQuestion.WrongAttempts = 2

	if got := Compute(s); got != Consolidate {
		t.Errorf("directive = %s, want consolidate", got)
	}
}

func TestCompute_ConsolidateNeedsWrongAttempts(t *testing.T) {
	s := baseSession()
	setMastery(s, map[string]float64{"a": 0.5, "b": 0.55}, mastery.TrendSteady)

	if got := Compute(s); got != Steady {
		t.Errorf("directive = %s, want steady without wrong attempts", got)
	}
}

func TestCompute_Extend(t *testing.T) {
	s := baseSession()
	setMastery(s, map[string]float64{"a": 0.5}, mastery.TrendSteady)
	s.TurnCount = 10
	s.ExtensionStart = 9

	if got := Compute(s); got != Extend {
		t.Errorf("directive = %s, want extend", got)
	}
}

func TestCompute_ExtendNotPastCap(t *testing.T) {
	s := baseSession()
	setMastery(s, map[string]float64{"a": 0.5}, mastery.TrendSteady)
	s.ExtensionStart = 4
	s.TurnCount = 4 + session.MaxExtensionTurns

	if got := Compute(s); got == Extend {
		t.Error("extend must not fire past the extension cap")
	}
}

func TestCompute_SteadyDefault(t *testing.T) {
	s := baseSession()
	setMastery(s, map[string]float64{"a": 0.66, "b": 0.7}, mastery.TrendSteady)

	if got := Compute(s); got != Steady {
		t.Errorf("directive = %s, want steady", got)
	}
}
