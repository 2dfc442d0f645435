package chat

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/rpandey/mentora/internal/engine"
	"github.com/rpandey/mentora/internal/session"
	"github.com/rpandey/mentora/internal/ui/layout"
)

// entry is one rendered transcript line.
type entry struct {
	role    session.Role
	content string
	system  bool
}

// Model is the chat screen: a scrolling transcript over a single-line
// input, driving the turn orchestrator.
type Model struct {
	eng   *engine.Engine
	start engine.StartRequest

	sessionID  string
	mode       session.Mode
	turnCount  int
	paused     bool
	done       bool
	waiting    bool
	transcript []entry
	summary    *session.Summary
	errMsg     string

	input textinput.Model
}

// New creates the chat screen. The session itself is created by Init.
func New(eng *engine.Engine, start engine.StartRequest) Model {
	ti := textinput.New()
	ti.Placeholder = "Say something to your tutor..."
	ti.Focus()

	return Model{
		eng:   eng,
		start: start,
		mode:  start.Mode,
		input: ti,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.startSession(), m.input.Focus())
}

// Title is shown in the header.
func (m Model) Title() string {
	switch m.mode {
	case session.ModeTeachMe:
		return "Lesson"
	case session.ModeClarifyDoubts:
		return "Clarify Doubts"
	case session.ModeExam:
		return "Exam"
	}
	return "Session"
}

// Status is the right-hand header text.
func (m Model) Status() string {
	switch {
	case m.done:
		return "finished"
	case m.paused:
		return "paused"
	default:
		return pluralTurns(m.turnCount)
	}
}

// KeyHints describes the footer bindings for the current state.
func (m Model) KeyHints() []layout.KeyHint {
	if m.done {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "/pause /resume /end", Description: "Session"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		return m.handleStarted(msg)

	case turnDoneMsg:
		return m.handleTurnDone(msg)

	case lifecycleDoneMsg:
		return m.handleLifecycleDone(msg)

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return m.handleSubmit()
		}
	}

	if !m.waiting && !m.done {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleSubmit() (Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.waiting || m.done || m.sessionID == "" {
		return m, nil
	}
	m.input.SetValue("")
	m.errMsg = ""

	switch text {
	case "/pause":
		return m, m.lifecycle("pause")
	case "/resume":
		return m, m.lifecycle("resume")
	case "/end":
		return m, m.lifecycle("end")
	}

	if m.paused {
		m.errMsg = "Session is paused. Type /resume to continue."
		return m, nil
	}

	m.transcript = append(m.transcript, entry{role: session.RoleStudent, content: text})
	m.waiting = true
	return m, m.submitTurn(text)
}

func (m Model) handleStarted(msg sessionStartedMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		m.errMsg = msg.Err.Error()
		return m, nil
	}
	m.sessionID = msg.State.ID
	m.transcript = append(m.transcript, entry{role: session.RoleTutor, content: msg.First})
	return m, nil
}

func (m Model) handleTurnDone(msg turnDoneMsg) (Model, tea.Cmd) {
	m.waiting = false
	if msg.Err != nil {
		m.errMsg = msg.Err.Error()
		return m, nil
	}

	res := msg.Result
	switch res.Kind {
	case engine.OutcomeConflict:
		m.errMsg = "That didn't go through — please try again."
		return m, nil
	case engine.OutcomeRejected:
		m.transcript = append(m.transcript, entry{content: res.Message, system: true})
		return m, nil
	}

	m.turnCount++
	m.transcript = append(m.transcript, entry{role: session.RoleTutor, content: res.Message})

	if res.Kind == engine.OutcomeCompleted {
		m.done = true
		m.summary = res.Summary
	}
	return m, nil
}

func (m Model) handleLifecycleDone(msg lifecycleDoneMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		m.errMsg = msg.Err.Error()
		return m, nil
	}
	switch msg.Action {
	case "pause":
		m.paused = true
		m.transcript = append(m.transcript, entry{content: "Session paused.", system: true})
	case "resume":
		m.paused = false
		m.transcript = append(m.transcript, entry{content: "Session resumed.", system: true})
	case "end":
		m.done = true
		m.summary = msg.Summary
	}
	return m, nil
}

func (m Model) startSession() tea.Cmd {
	return func() tea.Msg {
		state, first, err := m.eng.Start(context.Background(), m.start)
		return sessionStartedMsg{State: state, First: first, Err: err}
	}
}

func (m Model) submitTurn(text string) tea.Cmd {
	id := m.sessionID
	return func() tea.Msg {
		res, err := m.eng.SubmitTurn(context.Background(), engine.TurnRequest{
			SessionID: id,
			Message:   text,
		})
		return turnDoneMsg{Result: res, Err: err}
	}
}

func (m Model) lifecycle(action string) tea.Cmd {
	id := m.sessionID
	eng := m.eng
	endExamInstead := action == "end" && m.mode == session.ModeExam
	return func() tea.Msg {
		ctx := context.Background()
		switch action {
		case "pause":
			return lifecycleDoneMsg{Action: action, Err: eng.Pause(ctx, id)}
		case "resume":
			return lifecycleDoneMsg{Action: action, Err: eng.Resume(ctx, id)}
		default:
			// Exams end through the turn pipeline so the score is
			// finalized; other modes end directly.
			if endExamInstead {
				res, err := eng.SubmitTurn(ctx, engine.TurnRequest{SessionID: id, EndExam: true})
				if err != nil {
					return lifecycleDoneMsg{Action: action, Err: err}
				}
				return lifecycleDoneMsg{Action: action, Summary: res.Summary}
			}
			sum, err := eng.End(ctx, id)
			return lifecycleDoneMsg{Action: action, Summary: sum, Err: err}
		}
	}
}
