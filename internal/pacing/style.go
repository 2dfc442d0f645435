package pacing

import (
	"strings"
	"unicode"

	"github.com/rpandey/mentora/internal/session"
)

// LengthTrend describes how the student's response lengths are moving.
type LengthTrend string

const (
	LengthShrinking LengthTrend = "shrinking"
	LengthSteady    LengthTrend = "steady"
	LengthGrowing   LengthTrend = "growing"
)

// disengagementWindow is the number of consecutive shrinking responses
// treated as a disengagement signal.
const disengagementWindow = 4

// Style summarizes recent student behavior. It calibrates tutor tone
// and length only, never pedagogical correctness.
type Style struct {
	LengthTrend    LengthTrend `json:"length_trend"`
	AvgLength      int         `json:"avg_length"`
	EmojiRate      float64     `json:"emoji_rate"`
	AsksClarifying bool        `json:"asks_clarifying"`
	Disengaged     bool        `json:"disengaged"`
}

// EstimateStyle derives the style descriptor from the student's recent
// messages in the conversation window.
func EstimateStyle(s *session.State) Style {
	msgs := s.StudentMessages()
	st := Style{LengthTrend: LengthSteady}
	if len(msgs) == 0 {
		return st
	}

	lengths := make([]int, len(msgs))
	totalLen := 0
	emojiMsgs := 0
	clarifying := 0
	for i, m := range msgs {
		lengths[i] = len([]rune(m.Content))
		totalLen += lengths[i]
		if containsEmoji(m.Content) {
			emojiMsgs++
		}
		if isClarifying(m.Content) {
			clarifying++
		}
	}

	st.AvgLength = totalLen / len(msgs)
	st.EmojiRate = float64(emojiMsgs) / float64(len(msgs))
	st.AsksClarifying = clarifying*3 >= len(msgs) // roughly one in three

	st.LengthTrend = lengthTrend(lengths)
	st.Disengaged = st.LengthTrend == LengthShrinking && consecutiveShrinking(lengths) >= disengagementWindow

	return st
}

// lengthTrend compares the last response against the running average of
// the earlier ones.
func lengthTrend(lengths []int) LengthTrend {
	if len(lengths) < 2 {
		return LengthSteady
	}
	prior := 0
	for _, l := range lengths[:len(lengths)-1] {
		prior += l
	}
	avg := float64(prior) / float64(len(lengths)-1)
	last := float64(lengths[len(lengths)-1])
	switch {
	case last < avg*0.6:
		return LengthShrinking
	case last > avg*1.5:
		return LengthGrowing
	default:
		return LengthSteady
	}
}

// consecutiveShrinking counts the trailing run of strictly decreasing
// response lengths.
func consecutiveShrinking(lengths []int) int {
	run := 0
	for i := len(lengths) - 1; i > 0; i-- {
		if lengths[i] < lengths[i-1] {
			run++
		} else {
			break
		}
	}
	return run
}

func containsEmoji(s string) bool {
	for _, r := range s {
		if r >= 0x1F300 && r <= 0x1FAFF {
			return true
		}
		if unicode.Is(unicode.So, r) {
			return true
		}
	}
	return false
}

// isClarifying is a cheap lexical check for clarifying questions. The
// authoritative intent classification comes from the tutor turn output;
// this only feeds the tone descriptor.
func isClarifying(s string) bool {
	t := strings.ToLower(strings.TrimSpace(s))
	if !strings.Contains(t, "?") {
		return false
	}
	for _, p := range []string{"what", "why", "how", "which", "can you", "could you", "do you mean"} {
		if strings.Contains(t, p) {
			return true
		}
	}
	return false
}
