package question

// Lifecycle transitions for the open question.
//
// Escalation ladder on wrong answers: asked → probe → hint → explain.
// Each rung changes what the tutor does next — probe the reasoning,
// hand out a hint, or give the full explanation.

const (
	// StrategyChangeThreshold is the wrong-attempt count after which the
	// tutor must change its explanation approach fundamentally rather
	// than rephrase.
	StrategyChangeThreshold = 2

	// PrerequisiteGapThreshold is the number of error turns on one
	// concept, across different questions, after which the tutor should
	// step back to a foundational concept.
	PrerequisiteGapThreshold = 3
)

// Outcome is the result of advancing the question lifecycle on a
// student turn.
type Outcome struct {
	// Question is the updated open question, nil when it closed.
	Question *Question

	// Closed is true when the question was answered correctly and a new
	// one may be posed.
	Closed bool

	// ChangeStrategy instructs the tutor to abandon its current
	// explanation approach on the next message.
	ChangeStrategy bool
}

// Advance applies a classified student turn to the open question and
// returns the updated lifecycle state. q may be nil (no question open),
// in which case only intent-independent defaults apply.
func Advance(q *Question, intent Intent, studentMessage string, correct bool) Outcome {
	if q == nil {
		return Outcome{}
	}

	switch intent {
	case IntentAnswer:
		if correct {
			return Outcome{Closed: true}
		}
		q.WrongAttempts++
		q.PriorAnswers = append(q.PriorAnswers, studentMessage)
		escalate(q)
		return Outcome{
			Question:       q,
			ChangeStrategy: q.WrongAttempts >= StrategyChangeThreshold,
		}

	case IntentAnswerChange:
		// A revision of the student's own prior answer. Replaces the
		// last recorded answer without counting as a new wrong attempt.
		if correct {
			return Outcome{Closed: true}
		}
		if n := len(q.PriorAnswers); n > 0 {
			q.PriorAnswers[n-1] = studentMessage
		} else {
			q.PriorAnswers = append(q.PriorAnswers, studentMessage)
		}
		return Outcome{
			Question:       q,
			ChangeStrategy: q.WrongAttempts >= StrategyChangeThreshold,
		}

	case IntentOffTopic:
		// Question state untouched; the tutor produces a redirect.
		return Outcome{Question: q}

	case IntentNovelStrategy:
		// An unanticipated but potentially valid approach. Never counted
		// as a wrong attempt: conflating it with an error would punish
		// creative correct reasoning.
		if correct {
			return Outcome{Closed: true}
		}
		return Outcome{Question: q}

	default:
		// question, confusion, continuation: the question stays open and
		// unchanged; the tutor responds in place.
		return Outcome{Question: q}
	}
}

// escalate moves the question one rung up the phase ladder and charges
// a hint when the hint phase is entered.
func escalate(q *Question) {
	switch q.Phase {
	case PhaseAsked:
		q.Phase = PhaseProbe
	case PhaseProbe:
		q.Phase = PhaseHint
		q.HintsUsed++
	case PhaseHint:
		q.Phase = PhaseExplain
	}
}

// PrerequisiteGap reports whether the per-concept error-turn count has
// crossed the step-back threshold.
func PrerequisiteGap(conceptErrorTurns int) bool {
	return conceptErrorTurns >= PrerequisiteGapThreshold
}
