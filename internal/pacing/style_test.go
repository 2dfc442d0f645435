package pacing

import (
	"strings"
	"testing"

	"github.com/rpandey/mentora/internal/session"
)

func sessionWithStudentMessages(contents ...string) *session.State {
	s := session.New("sess-1", session.StudentProfile{}, session.ModeClarifyDoubts)
	for _, c := range contents {
		s.Append(session.Message{Role: session.RoleStudent, Content: c})
		s.Append(session.Message{Role: session.RoleTutor, Content: "ok"})
	}
	return s
}

func TestEstimateStyle_Empty(t *testing.T) {
	s := session.New("sess-1", session.StudentProfile{}, session.ModeClarifyDoubts)
	st := EstimateStyle(s)
	if st.LengthTrend != LengthSteady || st.Disengaged {
		t.Errorf("style on empty history = %+v, want steady/undisengaged", st)
	}
}

func TestEstimateStyle_DisengagementOnShrinkingRun(t *testing.T) {
	s := sessionWithStudentMessages(
		strings.Repeat("a", 80),
		strings.Repeat("a", 60),
		strings.Repeat("a", 40),
		strings.Repeat("a", 20),
		strings.Repeat("a", 5),
	)
	st := EstimateStyle(s)
	if st.LengthTrend != LengthShrinking {
		t.Errorf("length trend = %s, want shrinking", st.LengthTrend)
	}
	if !st.Disengaged {
		t.Error("four consecutive shrinking responses should flag disengagement")
	}
}

func TestEstimateStyle_ShortRunNotDisengaged(t *testing.T) {
	s := sessionWithStudentMessages(
		strings.Repeat("a", 50),
		strings.Repeat("a", 52),
		strings.Repeat("a", 48),
		strings.Repeat("a", 10),
	)
	st := EstimateStyle(s)
	if st.Disengaged {
		t.Error("one short reply is not disengagement")
	}
}

func TestEstimateStyle_EmojiRate(t *testing.T) {
	s := sessionWithStudentMessages("got it 🎉", "plain text", "ok 👍", "fine")
	st := EstimateStyle(s)
	if st.EmojiRate != 0.5 {
		t.Errorf("emoji rate = %v, want 0.5", st.EmojiRate)
	}
}

func TestEstimateStyle_ClarifyingQuestions(t *testing.T) {
	s := sessionWithStudentMessages(
		"why does the denominator stay the same?",
		"how do I simplify this?",
		"ok",
	)
	st := EstimateStyle(s)
	if !st.AsksClarifying {
		t.Error("frequent clarifying questions should set AsksClarifying")
	}

	s = sessionWithStudentMessages("ok", "sure", "got it", "yes")
	if EstimateStyle(s).AsksClarifying {
		t.Error("no questions asked, AsksClarifying should be false")
	}
}
