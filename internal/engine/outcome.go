package engine

import (
	"github.com/rpandey/mentora/internal/pacing"
	"github.com/rpandey/mentora/internal/question"
	"github.com/rpandey/mentora/internal/session"
)

// Outcome classifies what happened to a submitted turn. Expected,
// user-facing results (blocked content, invalid transitions, stale
// duplicates) are outcomes, not errors: the turn API returns a normal
// result carrying an explanatory message.
type Outcome string

const (
	// OutcomeAnswered is the normal case: the turn was processed and a
	// tutor message generated.
	OutcomeAnswered Outcome = "answered"

	// OutcomeBlocked means the student message failed the safety check.
	// Only the conversation and event logs changed.
	OutcomeBlocked Outcome = "blocked"

	// OutcomeFallback means the provider failed after retries and the
	// student got the deterministic fallback message. Question and
	// mastery state did not move.
	OutcomeFallback Outcome = "fallback"

	// OutcomeCompleted means this turn ended the session.
	OutcomeCompleted Outcome = "completed"

	// OutcomeExtended means the session passed its completion point but
	// continues on extension turns to address misconceptions.
	OutcomeExtended Outcome = "extended"

	// OutcomeRejected means the turn was refused without processing:
	// paused or already-complete session, or a mode-invalid action.
	OutcomeRejected Outcome = "rejected"

	// OutcomeConflict means a version conflict could not be resolved:
	// either the caller's expected version was stale (a duplicate
	// submission) or bounded retries ran out under contention. State
	// reflects only previously committed turns.
	OutcomeConflict Outcome = "conflict"
)

// TurnResult is what a turn submission returns to the caller.
type TurnResult struct {
	Kind    Outcome
	Message string

	// Intent is the classification of the student message, set on
	// answered/completed/extended outcomes.
	Intent question.Intent

	// Directive is the pacing directive the tutor message was generated
	// under.
	Directive pacing.Directive

	// Version is the session version after this turn committed. Zero
	// when nothing was persisted.
	Version int64

	// Summary is set when the session completed this turn.
	Summary *session.Summary

	// Grading details carried to the event log.
	conceptID      string
	graded         bool
	correctness    float64
	masteryDelta   float64
	misconceptions []string
}
