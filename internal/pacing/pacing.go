package pacing

import (
	"github.com/rpandey/mentora/internal/mastery"
	"github.com/rpandey/mentora/internal/session"
)

// Directive is a categorical instruction that adjusts the difficulty
// and speed of the next tutor message.
type Directive string

const (
	FirstTurn   Directive = "first_turn"
	Accelerate  Directive = "accelerate"
	Extend      Directive = "extend"
	Simplify    Directive = "simplify"
	Consolidate Directive = "consolidate"
	Steady      Directive = "steady"
)

// Thresholds for directive selection. Hand-tuned rather than derived
// from data.
const (
	accelerateMasteryBar = 0.7
	accelerateShare      = 0.6
	accelerateAvgBar     = 0.65
	simplifyAvgBar       = 0.4
	consolidateWrongBar  = 2
)

// Compute derives the pacing directive for the next tutor message from
// current session state. Precedence follows the trigger table:
// first-turn, then accelerate, then extend, then simplify, then
// consolidate, with steady as the default.
func Compute(s *session.State) Directive {
	if s.TurnCount == 0 {
		return FirstTurn
	}

	avg := s.Mastery.Average()
	trend := s.Mastery.OverallTrend()

	if shouldAccelerate(s.Mastery, avg, trend) {
		return Accelerate
	}

	if s.InExtension() && !s.ExtensionExhausted() {
		return Extend
	}

	if avg < simplifyAvgBar || trend == mastery.TrendDeclining {
		return Simplify
	}

	wrong := 0
	if s.OpenQuestion != nil {
		wrong = s.OpenQuestion.WrongAttempts
	}
	if avg >= simplifyAvgBar && avg < accelerateAvgBar && trend == mastery.TrendSteady && wrong >= consolidateWrongBar {
		return Consolidate
	}

	return Steady
}

func shouldAccelerate(m mastery.Map, avg float64, trend mastery.Trend) bool {
	if len(m) == 0 || trend != mastery.TrendImproving || avg < accelerateAvgBar {
		return false
	}
	strong := 0
	for _, e := range m {
		if e.Score >= accelerateMasteryBar {
			strong++
		}
	}
	return float64(strong) >= accelerateShare*float64(len(m))
}
