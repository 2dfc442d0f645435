package question

// Phase is the escalation stage applied to a single open question
// across repeated wrong attempts.
type Phase string

const (
	PhaseAsked   Phase = "asked"
	PhaseProbe   Phase = "probe"
	PhaseHint    Phase = "hint"
	PhaseExplain Phase = "explain"
)

// Intent classifies what a student message is doing relative to the
// open question. The classification itself comes from the tutor turn's
// structured output; this package owns the taxonomy and the lifecycle
// transitions it drives.
type Intent string

const (
	IntentAnswer        Intent = "answer"
	IntentAnswerChange  Intent = "answer_change"
	IntentQuestion      Intent = "question"
	IntentConfusion     Intent = "confusion"
	IntentNovelStrategy Intent = "novel_strategy"
	IntentOffTopic      Intent = "off_topic"
	IntentContinuation  Intent = "continuation"
)

// Valid reports whether s is a known intent label.
func (i Intent) Valid() bool {
	switch i {
	case IntentAnswer, IntentAnswerChange, IntentQuestion, IntentConfusion,
		IntentNovelStrategy, IntentOffTopic, IntentContinuation:
		return true
	}
	return false
}

// Question is the unit currently open in the conversation.
type Question struct {
	Prompt        string   `json:"prompt"`
	Rubric        string   `json:"rubric"`
	Hints         []string `json:"hints,omitempty"`
	HintsUsed     int      `json:"hints_used"`
	WrongAttempts int      `json:"wrong_attempts"`
	PriorAnswers  []string `json:"prior_answers,omitempty"`
	Phase         Phase    `json:"phase"`
	ConceptID     string   `json:"concept_id"`
}

// New creates a freshly posed question in the asked phase.
func New(prompt, rubric, conceptID string, hints []string) *Question {
	return &Question{
		Prompt:    prompt,
		Rubric:    rubric,
		Hints:     hints,
		Phase:     PhaseAsked,
		ConceptID: conceptID,
	}
}
