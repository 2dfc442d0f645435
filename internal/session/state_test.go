package session

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeValid(t *testing.T) {
	tests := []struct {
		mode Mode
		want bool
	}{
		{ModeTeachMe, true},
		{ModeClarifyDoubts, true},
		{ModeExam, true},
		{Mode("quiz"), false},
		{Mode(""), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.mode.Valid(), "mode %q", tt.mode)
	}
}

func TestAppendKeepsFullLogAndBoundsWindow(t *testing.T) {
	s := New("s1", StudentProfile{Name: "Priya", GradeLevel: 7}, ModeClarifyDoubts)

	total := ConversationWindow + 5
	for i := 0; i < total; i++ {
		role := RoleStudent
		if i%2 == 1 {
			role = RoleTutor
		}
		s.Append(Message{Role: role, Content: fmt.Sprintf("msg %d", i), Timestamp: time.Now()})
	}

	assert.Len(t, s.Log, total)
	require.Len(t, s.Window, ConversationWindow)

	// Window holds the most recent messages, oldest first.
	assert.Equal(t, fmt.Sprintf("msg %d", total-ConversationWindow), s.Window[0].Content)
	assert.Equal(t, fmt.Sprintf("msg %d", total-1), s.Window[len(s.Window)-1].Content)
}

func TestStudentMessagesFiltersWindow(t *testing.T) {
	s := New("s1", StudentProfile{Name: "Priya"}, ModeClarifyDoubts)
	s.Append(Message{Role: RoleTutor, Content: "hello"})
	s.Append(Message{Role: RoleStudent, Content: "hi"})
	s.Append(Message{Role: RoleStudent, Content: "what is a fraction?"})

	msgs := s.StudentMessages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "hi", msgs[0].Content)
	assert.Equal(t, "what is a fraction?", msgs[1].Content)
}

func TestRecordConceptError(t *testing.T) {
	s := New("s1", StudentProfile{}, ModeTeachMe)

	assert.Equal(t, 1, s.RecordConceptError("fractions.addition", "q1"))
	assert.Equal(t, 2, s.RecordConceptError("fractions.addition", "q2"))
	assert.Equal(t, 1, s.RecordConceptError("fractions.equivalence", "q2"))
}

func TestRecordConceptErrorCountsSameQuestionOnce(t *testing.T) {
	s := New("s1", StudentProfile{}, ModeTeachMe)

	// Hammering one question only counts once: the escalation ladder
	// handles repeated attempts, not the prerequisite-gap counter.
	assert.Equal(t, 1, s.RecordConceptError("fractions.addition", "q1"))
	assert.Equal(t, 1, s.RecordConceptError("fractions.addition", "q1"))
	assert.Equal(t, 1, s.RecordConceptError("fractions.addition", "q1"))

	assert.Equal(t, 2, s.RecordConceptError("fractions.addition", "q2"))
}

func TestExamScoreCountsOnlyAnswered(t *testing.T) {
	s := New("s1", StudentProfile{}, ModeExam)
	s.ExamQuestions = []ExamQuestion{
		{Prompt: "q1", MaxPoints: 10, Awarded: 7.5, Answered: true},
		{Prompt: "q2", MaxPoints: 10, Awarded: 10, Answered: true},
		{Prompt: "q3", MaxPoints: 5}, // never answered
	}

	awarded, max := s.ExamScore()
	assert.Equal(t, 17.5, awarded)
	assert.Equal(t, 25.0, max)
}

func TestStateJSONRoundTrip(t *testing.T) {
	s := New("s1", StudentProfile{ID: "priya", Name: "Priya", GradeLevel: 7}, ModeTeachMe)
	s.Plan = &Plan{Steps: []PlanStep{{ID: "step-1", Title: "Equivalent fractions", Status: StepInProgress}}}
	s.Append(Message{Role: RoleTutor, Content: "hello", Timestamp: time.Now().UTC()})
	s.RecordConceptError("fractions.addition", "q1")
	s.TurnCount = 3

	raw, err := json.Marshal(s)
	require.NoError(t, err)

	var got State
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, s.Mode, got.Mode)
	assert.Equal(t, s.TurnCount, got.TurnCount)
	assert.True(t, got.AllowExtension)
	require.NotNil(t, got.Plan)
	assert.Equal(t, "step-1", got.Plan.Steps[0].ID)
	assert.Equal(t, 1, got.ConceptErrorTurns["fractions.addition"])
}
