package tutor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rpandey/mentora/internal/llm"
	"github.com/rpandey/mentora/internal/pacing"
	"github.com/rpandey/mentora/internal/session"
)

// pacingInstructions maps each directive to its behavioral constraint.
var pacingInstructions = map[pacing.Directive]string{
	pacing.FirstTurn:   "This is the first turn. Greet the student briefly, set expectations, and open the material with an accessible first question.",
	pacing.Accelerate:  "The student is doing well. Increase difficulty and move faster; skip redundant reinforcement.",
	pacing.Extend:      "The plan is complete but misconceptions remain. Use this extension turn to address one outstanding misconception directly.",
	pacing.Simplify:    "The student is struggling. Slow down, use smaller steps and simpler language, and shrink the scope of each question.",
	pacing.Consolidate: "The student is stuck on the current question. Consolidate: revisit the underlying idea with a concrete example before asking again.",
	pacing.Steady:      "Maintain the current difficulty and pace.",
}

// buildSystemPrompt assembles the full system prompt: mode role,
// teaching context, state summary, pacing and style constraints, and
// output contract.
func buildSystemPrompt(in Input) string {
	mode := behaviorFor(in.State.Mode)
	var b strings.Builder

	b.WriteString(mode.role())
	b.WriteString("\n\n")

	if name := in.State.Student.Name; name != "" {
		b.WriteString(fmt.Sprintf("Student: %s", name))
		if g := in.State.Student.GradeLevel; g > 0 {
			b.WriteString(fmt.Sprintf(" (grade %d)", g))
		}
		b.WriteString("\n")
	}

	if ctx := mode.contextSection(in.State); ctx != "" {
		b.WriteString("\n")
		b.WriteString(ctx)
	}

	writeQuestionSection(&b, in)
	writeMasterySection(&b, in.State)

	b.WriteString("\nPacing directive: ")
	b.WriteString(strings.ToUpper(string(in.Directive)))
	b.WriteString("\n")
	b.WriteString(pacingInstructions[in.Directive])
	b.WriteString("\n")

	writeStyleSection(&b, in.Style)

	b.WriteString("\n")
	b.WriteString(mode.rules())
	b.WriteString("\n\n")
	b.WriteString(outputContract)

	return b.String()
}

// writeQuestionSection renders the open question's lifecycle state and
// the escalation instructions it implies.
func writeQuestionSection(b *strings.Builder, in Input) {
	q := in.State.OpenQuestion
	if q == nil {
		b.WriteString("\nNo question is currently open.\n")
		return
	}

	b.WriteString(fmt.Sprintf("\nOpen question: %s\nRubric: %s\nPhase: %s | Wrong attempts: %d | Hints used: %d\n",
		q.Prompt, q.Rubric, q.Phase, q.WrongAttempts, q.HintsUsed))

	if len(q.PriorAnswers) > 0 {
		b.WriteString("Prior incorrect answers: " + strings.Join(q.PriorAnswers, "; ") + "\n")
	}

	switch q.Phase {
	case "probe":
		b.WriteString("Phase instruction: probe the student's reasoning before revealing anything.\n")
	case "hint":
		if q.HintsUsed <= len(q.Hints) && q.HintsUsed > 0 {
			b.WriteString(fmt.Sprintf("Phase instruction: give this hint if the student answers wrong again: %s\n", q.Hints[q.HintsUsed-1]))
		} else {
			b.WriteString("Phase instruction: give one concrete hint, not the full solution.\n")
		}
	case "explain":
		b.WriteString("Phase instruction: fully explain the solution now. Do not hint or rephrase; walk through the complete answer.\n")
	}

	if in.ChangeStrategy {
		b.WriteString("The student has missed this question repeatedly. Change your explanation strategy fundamentally; do not rephrase the previous approach.\n")
	}
	if in.PrerequisiteGap {
		b.WriteString("Repeated errors on this concept across questions suggest a prerequisite gap. Step back to the foundational concept before continuing.\n")
	}
}

func writeMasterySection(b *strings.Builder, s *session.State) {
	if len(s.Mastery) == 0 && len(s.Misconceptions) == 0 {
		return
	}

	if len(s.Mastery) > 0 {
		b.WriteString("\nConcept mastery:\n")
		ids := make([]string, 0, len(s.Mastery))
		for id := range s.Mastery {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			e := s.Mastery[id]
			b.WriteString(fmt.Sprintf("- %s: %.2f (%s)\n", id, e.Score, e.Trend))
		}
	}

	if len(s.Misconceptions) > 0 {
		b.WriteString("Observed misconceptions:\n")
		for _, mc := range s.Misconceptions {
			b.WriteString(fmt.Sprintf("- %s (seen %dx)\n", mc.Label, mc.Count))
		}
	}
}

func writeStyleSection(b *strings.Builder, st pacing.Style) {
	var notes []string
	if st.Disengaged {
		notes = append(notes, "responses are shrinking turn over turn; keep your message short and re-engage with something concrete")
	}
	if st.EmojiRate > 0.3 {
		notes = append(notes, "the student uses emoji; a light, friendly register fits")
	}
	if st.AsksClarifying {
		notes = append(notes, "the student asks clarifying questions; leave room for them and answer precisely")
	}
	if len(notes) == 0 {
		return
	}
	b.WriteString("Style notes (adjust tone and length only, never correctness): ")
	b.WriteString(strings.Join(notes, "; "))
	b.WriteString(".\n")
}

const outputContract = `Respond with a single JSON object matching the provided schema. The "message" field is shown verbatim to the student. Classify the student's latest message into "intent". Set "graded" true and "correctness" only when the student attempted an answer. Report any newly observed misconception labels in "misconceptions". If this was an explicit request to stop, set "stop_requested" true and say goodbye without new teaching content.`

// buildMessages maps the bounded conversation window onto the LLM
// message list. The full log is never sent.
func buildMessages(s *session.State) []llm.Message {
	msgs := make([]llm.Message, 0, len(s.Window)+1)
	for _, m := range s.Window {
		role := llm.RoleUser
		if m.Role == session.RoleTutor {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: m.Content})
	}
	if len(msgs) == 0 {
		msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: "(session start)"})
	}
	return msgs
}
