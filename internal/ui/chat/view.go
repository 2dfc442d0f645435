package chat

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rpandey/mentora/internal/ui/theme"
)

// View renders the chat screen into the given content area.
func (m Model) View(width, height int) string {
	if m.errMsg != "" && m.sessionID == "" {
		return lipgloss.NewStyle().
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Width(width).
			Height(height).
			Render("Could not start the session:\n\n" + m.errMsg)
	}
	if m.sessionID == "" {
		return lipgloss.NewStyle().
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Width(width).
			Height(height).
			Render("Setting up your session...")
	}

	inputArea := m.renderInputArea(width)
	inputHeight := lipgloss.Height(inputArea)

	transcriptHeight := height - inputHeight - 1
	if transcriptHeight < 0 {
		transcriptHeight = 0
	}
	transcript := m.renderTranscript(width, transcriptHeight)

	return transcript + "\n" + inputArea
}

func (m Model) renderTranscript(width, height int) string {
	textWidth := width - 4
	if textWidth < 10 {
		textWidth = 10
	}

	var lines []string
	for _, e := range m.transcript {
		lines = append(lines, m.renderEntry(e, textWidth)...)
		lines = append(lines, "")
	}
	if m.waiting {
		lines = append(lines, theme.SystemNote.Render("  Your tutor is thinking..."))
	}
	if m.done && m.summary != nil {
		lines = append(lines, m.renderSummary(textWidth))
	}

	// Keep the tail visible: the transcript grows downward like a chat.
	joined := strings.Join(lines, "\n")
	all := strings.Split(joined, "\n")
	if len(all) > height {
		all = all[len(all)-height:]
	}
	return strings.Join(all, "\n")
}

func (m Model) renderEntry(e entry, width int) []string {
	if e.system {
		return []string{theme.SystemNote.Width(width).Render("  " + e.content)}
	}

	label := theme.TutorLabel.Render("Tutor")
	if e.role == "student" {
		label = theme.StudentLabel.Render("You")
	}
	body := theme.Body.Width(width).Render(e.content)
	return []string{"  " + label, indent(body, "  ")}
}

func (m Model) renderSummary(width int) string {
	s := m.summary
	var b strings.Builder

	b.WriteString(theme.Title.Render("Session complete"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Turns: %d\n", s.Turns))
	if s.StepsTotal > 0 {
		b.WriteString(fmt.Sprintf("Plan steps: %d of %d completed\n", s.StepsCompleted, s.StepsTotal))
	}
	if s.ExamMax > 0 {
		b.WriteString(fmt.Sprintf("Score: %.1f / %.1f\n", s.ExamAwarded, s.ExamMax))
	}

	if len(s.Concepts) > 0 {
		b.WriteString("\nConcepts:\n")
		for _, c := range s.Concepts {
			b.WriteString(fmt.Sprintf("  %-32s %.2f (%s)\n", c.ConceptID, c.Score, c.Trend))
		}
	}
	if len(s.Misconceptions) > 0 {
		b.WriteString("\nWorth revisiting:\n")
		for _, mc := range s.Misconceptions {
			b.WriteString(fmt.Sprintf("  • %s (seen %d times)\n", mc.Label, mc.Count))
		}
	}

	return theme.Card.Width(width).Render(b.String())
}

func (m Model) renderInputArea(width int) string {
	if m.done {
		return theme.SystemNote.Width(width).Render("  Session finished. Press Ctrl+C to exit.")
	}

	prompt := m.input.View()
	if m.errMsg != "" {
		prompt += "\n" + theme.Incorrect.Render("  "+m.errMsg)
	}

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(prompt)
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}

func pluralTurns(n int) string {
	if n == 1 {
		return "1 turn"
	}
	return fmt.Sprintf("%d turns", n)
}
