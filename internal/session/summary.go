package session

import (
	"time"

	"github.com/rpandey/mentora/internal/mastery"
)

// Summary is the per-session aggregate returned when a session ends
// and handed to downstream progress reporting.
type Summary struct {
	SessionID      string                  `json:"session_id"`
	Mode           Mode                    `json:"mode"`
	Turns          int                     `json:"turns"`
	StepsCompleted int                     `json:"steps_completed"`
	StepsTotal     int                     `json:"steps_total"`
	Concepts       []ConceptSummary        `json:"concepts,omitempty"`
	Misconceptions []mastery.Misconception `json:"misconceptions,omitempty"`
	ExamAwarded    float64                 `json:"exam_awarded,omitempty"`
	ExamMax        float64                 `json:"exam_max,omitempty"`
	Duration       time.Duration           `json:"duration"`
}

// ConceptSummary is one concept's end-of-session mastery line.
type ConceptSummary struct {
	ConceptID string        `json:"concept_id"`
	Score     float64       `json:"score"`
	Trend     mastery.Trend `json:"trend"`
}

// Summarize builds the end-of-session summary from current state.
func Summarize(s *State) *Summary {
	sum := &Summary{
		SessionID:      s.ID,
		Mode:           s.Mode,
		Turns:          s.TurnCount,
		Misconceptions: s.Misconceptions,
		Duration:       time.Since(s.CreatedAt),
	}

	if s.Plan != nil {
		sum.StepsCompleted = s.Plan.CompletedCount()
		sum.StepsTotal = len(s.Plan.Steps)
	}

	for _, e := range s.Mastery {
		sum.Concepts = append(sum.Concepts, ConceptSummary{
			ConceptID: e.ConceptID,
			Score:     e.Score,
			Trend:     e.Trend,
		})
	}

	if s.Mode == ModeExam {
		sum.ExamAwarded, sum.ExamMax = s.ExamScore()
	}

	return sum
}
