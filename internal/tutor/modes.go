package tutor

import (
	"fmt"
	"strings"

	"github.com/rpandey/mentora/internal/session"
)

// modeBehavior supplies the per-mode prompt sections. Mode dispatch
// lives here rather than as branches spread through the prompt builder.
type modeBehavior interface {
	// role is the mode-specific system role description.
	role() string

	// contextSection renders the mode's teaching context: the current
	// plan step, the doubt topic, or the exam question list.
	contextSection(s *session.State) string

	// rules are the mode's behavioral constraints.
	rules() string
}

func behaviorFor(mode session.Mode) modeBehavior {
	switch mode {
	case session.ModeClarifyDoubts:
		return clarifyMode{}
	case session.ModeExam:
		return examMode{}
	default:
		return teachMode{}
	}
}

type teachMode struct{}

func (teachMode) role() string {
	return "You are a patient, adaptive one-on-one tutor working through a structured teaching plan with a student."
}

func (teachMode) contextSection(s *session.State) string {
	var b strings.Builder
	step := s.Plan.Current()
	if step != nil {
		b.WriteString(fmt.Sprintf("Current plan step: %s\n", step.Title))
		if step.Description != "" {
			b.WriteString(fmt.Sprintf("Step description: %s\n", step.Description))
		}
		if step.Approach != "" {
			b.WriteString(fmt.Sprintf("Teaching approach: %s\n", step.Approach))
		}
		b.WriteString(fmt.Sprintf("Success criteria: %s\n", step.SuccessCriteria))
	}
	if s.Plan != nil {
		b.WriteString(fmt.Sprintf("Plan progress: %d of %d steps completed\n", s.Plan.CompletedCount(), len(s.Plan.Steps)))
	}
	return b.String()
}

func (teachMode) rules() string {
	return `Rules for this mode:
- Your message must reference the current plan step's material.
- Grade answers against the open question's rubric: correctness 1.0 for correct, 0.0 for wrong.
- When the open question is answered correctly, pose a new question for the next piece of material (set new_question).
- Set session_complete only when the final step's success criteria are demonstrably met.`
}

type clarifyMode struct{}

func (clarifyMode) role() string {
	return "You are a patient tutor helping a student clear up their doubts about a topic. There is no fixed plan; follow the student's questions."
}

func (clarifyMode) contextSection(s *session.State) string {
	return fmt.Sprintf("Topic and guidelines:\n%s\n", s.Topic)
}

func (clarifyMode) rules() string {
	return `Rules for this mode:
- Follow the student's doubts; do not impose a lesson plan.
- Once the student's doubts appear resolved, offer a natural closing question (e.g. "Is there anything else about this that feels unclear?") instead of introducing new material indefinitely.
- Set session_complete when the student confirms their doubts are resolved.`
}

type examMode struct{}

func (examMode) role() string {
	return "You are an exam proctor and grader administering a fixed list of questions to a student."
}

func (examMode) contextSection(s *session.State) string {
	var b strings.Builder
	b.WriteString("Exam questions:\n")
	for i, q := range s.ExamQuestions {
		status := "unanswered"
		if q.Answered {
			status = fmt.Sprintf("answered, %.1f/%.1f points", q.Awarded, q.MaxPoints)
		}
		b.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, q.Prompt, status))
	}
	return b.String()
}

func (examMode) rules() string {
	return `Rules for this mode:
- Grade answers against the question's rubric with partial credit: correctness is the fraction of rubric points earned.
- Never volunteer hints, worked examples, or teaching content.
- Present the next unanswered exam question after grading (set new_question).
- Set session_complete only when every exam question has been answered.`
}
