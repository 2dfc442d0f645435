package session

import (
	"time"

	"github.com/rpandey/mentora/internal/mastery"
	"github.com/rpandey/mentora/internal/question"
)

// Mode selects the tutoring behavior for a session.
type Mode string

const (
	ModeTeachMe       Mode = "teach_me"
	ModeClarifyDoubts Mode = "clarify_doubts"
	ModeExam          Mode = "exam"
)

// Valid reports whether m is a known session mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeTeachMe, ModeClarifyDoubts, ModeExam:
		return true
	}
	return false
}

// ConversationWindow is the number of recent messages kept in the
// windowed conversation used for prompting. The full log never
// truncates.
const ConversationWindow = 12

// Role identifies the sender of a conversation message.
type Role string

const (
	RoleStudent Role = "student"
	RoleTutor   Role = "tutor"
)

// Message is one conversation entry. Append-only.
type Message struct {
	Role      Role         `json:"role"`
	Content   string       `json:"content"`
	Timestamp time.Time    `json:"timestamp"`
	Meta      *MessageMeta `json:"meta,omitempty"`
}

// MessageMeta carries per-message tutoring signals for audit.
type MessageMeta struct {
	PacingDirective string `json:"pacing_directive,omitempty"`
	Intent          string `json:"intent,omitempty"`
	HintShown       bool   `json:"hint_shown,omitempty"`
	Fallback        bool   `json:"fallback,omitempty"`
}

// StudentProfile is the read-only learner context a session starts from.
type StudentProfile struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	GradeLevel     int    `json:"grade_level"`
	PacePreference string `json:"pace_preference,omitempty"`
}

// ExamQuestion is one entry in an exam session's flat graded list.
type ExamQuestion struct {
	Prompt    string  `json:"prompt"`
	Rubric    string  `json:"rubric"`
	ConceptID string  `json:"concept_id"`
	MaxPoints float64 `json:"max_points"`
	Awarded   float64 `json:"awarded"`
	Answered  bool    `json:"answered"`
}

// State is the full mutable state of one tutoring session. It
// serializes to a single JSON document; the storage layer pairs it with
// a version number for optimistic concurrency.
type State struct {
	ID      string         `json:"id"`
	Student StudentProfile `json:"student"`
	Mode    Mode           `json:"mode"`

	// Topic is the guideline text for clarify_doubts sessions.
	Topic string `json:"topic,omitempty"`

	// Plan is present only in teach_me mode.
	Plan *Plan `json:"plan,omitempty"`

	// ExamQuestions is present only in exam mode.
	ExamQuestions []ExamQuestion `json:"exam_questions,omitempty"`

	TurnCount      int  `json:"turn_count"`
	Paused         bool `json:"paused"`
	Complete       bool `json:"complete"`
	AllowExtension bool `json:"allow_extension"`

	// ExtensionStart is the turn count at which all plan steps were
	// first completed. Zero means completion has not been reached.
	ExtensionStart int `json:"extension_start,omitempty"`

	// StopRequested is latched when the student explicitly asks to end.
	// Once set it is never cleared: no further teaching content may be
	// generated for this session.
	StopRequested bool `json:"stop_requested,omitempty"`

	Mastery        mastery.Map             `json:"mastery"`
	Misconceptions []mastery.Misconception `json:"misconceptions,omitempty"`

	// ConceptErrorTurns counts erring questions per concept for
	// prerequisite-gap detection. Repeated wrong attempts on one
	// question count once: those already drive the escalation ladder.
	ConceptErrorTurns map[string]int `json:"concept_error_turns,omitempty"`

	// ConceptErrorSources remembers which question last counted an
	// error for each concept.
	ConceptErrorSources map[string]string `json:"concept_error_sources,omitempty"`

	OpenQuestion *question.Question `json:"open_question,omitempty"`

	// Window is the bounded recent conversation used for prompting.
	Window []Message `json:"window"`

	// Log is the unbounded full conversation for audit and evaluation.
	Log []Message `json:"log"`

	WeakAreas      []string `json:"weak_areas,omitempty"`
	PacePreference string   `json:"pace_preference,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New builds a fresh session state. The plan (teach_me), topic
// (clarify_doubts), or exam question list (exam) is attached by the
// caller according to mode.
func New(id string, student StudentProfile, mode Mode) *State {
	now := time.Now().UTC()
	return &State{
		ID:                id,
		Student:           student,
		Mode:              mode,
		AllowExtension:    true,
		Mastery:           mastery.Map{},
		ConceptErrorTurns: make(map[string]int),
		PacePreference:    student.PacePreference,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// Append adds a message to both the full log and the bounded window.
func (s *State) Append(msg Message) {
	s.Log = append(s.Log, msg)
	s.Window = append(s.Window, msg)
	if len(s.Window) > ConversationWindow {
		s.Window = s.Window[len(s.Window)-ConversationWindow:]
	}
}

// StudentMessages returns the student-authored messages from the
// bounded window, oldest first.
func (s *State) StudentMessages() []Message {
	var out []Message
	for _, m := range s.Window {
		if m.Role == RoleStudent {
			out = append(out, m)
		}
	}
	return out
}

// RecordConceptError counts an error against a concept, keyed by the
// question it occurred on. Further errors on the same question leave
// the counter alone, so the count reflects distinct questions the
// student has erred on for this concept.
func (s *State) RecordConceptError(conceptID, questionKey string) int {
	if s.ConceptErrorTurns == nil {
		s.ConceptErrorTurns = make(map[string]int)
	}
	if s.ConceptErrorSources == nil {
		s.ConceptErrorSources = make(map[string]string)
	}
	if n, counted := s.ConceptErrorTurns[conceptID]; counted && s.ConceptErrorSources[conceptID] == questionKey {
		return n
	}
	s.ConceptErrorSources[conceptID] = questionKey
	s.ConceptErrorTurns[conceptID]++
	return s.ConceptErrorTurns[conceptID]
}

// ExamScore sums awarded and maximum points over the exam list.
func (s *State) ExamScore() (awarded, max float64) {
	for _, q := range s.ExamQuestions {
		max += q.MaxPoints
		if q.Answered {
			awarded += q.Awarded
		}
	}
	return awarded, max
}
