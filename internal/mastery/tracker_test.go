package mastery

import (
	"math"
	"testing"
)

func TestUpdate_SeedsUnseenConcept(t *testing.T) {
	m := Map{}
	e := m.Get("fractions-equivalence")
	if e.Score != SeedScore {
		t.Errorf("seed score = %v, want %v", e.Score, SeedScore)
	}
	if e.Trend != TrendSteady {
		t.Errorf("seed trend = %v, want steady", e.Trend)
	}
}

func TestUpdate_EMAExactValue(t *testing.T) {
	m := Map{}
	e := m.Update("fractions-equivalence", 0.95)

	// 0.6*0.5 + 0.4*0.95 = 0.68
	if math.Abs(e.Score-0.68) > 1e-9 {
		t.Errorf("score = %v, want 0.68", e.Score)
	}
}

func TestUpdate_ScoreStaysBounded(t *testing.T) {
	tests := []struct {
		name     string
		observed float64
		rounds   int
	}{
		{"sustained perfect", 1.0, 50},
		{"sustained zero", 0.0, 50},
		{"observed above range", 5.0, 20},
		{"observed below range", -3.0, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Map{}
			for i := 0; i < tt.rounds; i++ {
				e := m.Update("c1", tt.observed)
				if e.Score < 0 || e.Score > 1 {
					t.Fatalf("round %d: score %v out of [0,1]", i, e.Score)
				}
			}
		})
	}
}

func TestUpdate_TrendDetection(t *testing.T) {
	m := Map{}
	for i := 0; i < 5; i++ {
		m.Update("up", 1.0)
	}
	if got := m["up"].Trend; got != TrendImproving {
		t.Errorf("rising concept trend = %v, want improving", got)
	}

	// Drive a concept up, then feed zeros.
	for i := 0; i < 5; i++ {
		m.Update("down", 1.0)
	}
	for i := 0; i < 5; i++ {
		m.Update("down", 0.0)
	}
	if got := m["down"].Trend; got != TrendDeclining {
		t.Errorf("falling concept trend = %v, want declining", got)
	}
}

func TestUpdate_ConvergesTowardObserved(t *testing.T) {
	m := Map{}
	for i := 0; i < 30; i++ {
		m.Update("c1", 1.0)
	}
	if m["c1"].Score < 0.99 {
		t.Errorf("score = %v, want near 1.0 after sustained correct answers", m["c1"].Score)
	}
}

func TestAverage(t *testing.T) {
	m := Map{}
	if got := m.Average(); got != SeedScore {
		t.Errorf("empty map average = %v, want seed %v", got, SeedScore)
	}

	m["a"] = &Entry{ConceptID: "a", Score: 0.2}
	m["b"] = &Entry{ConceptID: "b", Score: 0.8}
	if got := m.Average(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("average = %v, want 0.5", got)
	}
}

func TestOverallTrend(t *testing.T) {
	tests := []struct {
		name   string
		trends []Trend
		want   Trend
	}{
		{"majority improving", []Trend{TrendImproving, TrendImproving, TrendDeclining}, TrendImproving},
		{"majority declining", []Trend{TrendDeclining, TrendDeclining, TrendSteady}, TrendDeclining},
		{"balanced", []Trend{TrendImproving, TrendDeclining}, TrendSteady},
		{"empty", nil, TrendSteady},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Map{}
			for i, tr := range tt.trends {
				id := string(rune('a' + i))
				m[id] = &Entry{ConceptID: id, Trend: tr}
			}
			if got := m.OverallTrend(); got != tt.want {
				t.Errorf("OverallTrend() = %v, want %v", got, tt.want)
			}
		})
	}
}
