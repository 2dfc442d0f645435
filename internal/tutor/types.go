package tutor

import (
	"github.com/rpandey/mentora/internal/pacing"
	"github.com/rpandey/mentora/internal/question"
	"github.com/rpandey/mentora/internal/session"
)

// Input gathers everything the generator needs for one turn.
type Input struct {
	State     *session.State
	Directive pacing.Directive
	Style     pacing.Style

	// ChangeStrategy tells the tutor to abandon its current explanation
	// approach rather than rephrase (2+ wrong attempts).
	ChangeStrategy bool

	// PrerequisiteGap tells the tutor to step back to a foundational
	// concept (3+ error turns on this concept across questions).
	PrerequisiteGap bool
}

// PosedQuestion is a new question the tutor message poses.
type PosedQuestion struct {
	Prompt    string   `json:"prompt"`
	Rubric    string   `json:"rubric"`
	ConceptID string   `json:"concept_id"`
	Hints     []string `json:"hints"`
}

// Output is the structured record produced by the single tutor LLM
// round-trip: the visible message plus the grading and control signals
// the orchestrator applies to session state.
type Output struct {
	Message string `json:"message"`

	// Intent classifies the student's message relative to the open
	// question.
	Intent question.Intent `json:"intent"`

	// Graded is true when Correctness applies to this turn (the student
	// attempted an answer).
	Graded bool `json:"graded"`

	// Correctness is the grading signal in [0,1]. Binary in teach_me
	// and clarify_doubts, partial credit in exam mode.
	Correctness float64 `json:"correctness"`

	// ConceptID is the concept the current exchange addresses.
	ConceptID string `json:"concept_id"`

	// Misconceptions are newly detected conceptual error labels.
	Misconceptions []string `json:"misconceptions"`

	// SessionComplete signals natural closure (mode-dependent meaning).
	SessionComplete bool `json:"session_complete"`

	// StopRequested is true when the student explicitly asked to end.
	StopRequested bool `json:"stop_requested"`

	// NewQuestion is set when the message poses a new question.
	NewQuestion *PosedQuestion `json:"new_question"`
}
