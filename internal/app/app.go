package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rpandey/mentora/internal/engine"
	"github.com/rpandey/mentora/internal/ui/chat"
	"github.com/rpandey/mentora/internal/ui/layout"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Engine *engine.Engine
	Start  engine.StartRequest
}

// AppModel is the root Bubble Tea model: a frame (header, footer)
// around the chat screen.
type AppModel struct {
	chat   chat.Model
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	return AppModel{
		chat: chat.New(opts.Engine, opts.Start),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.chat.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(m.chat.Title(), m.chat.Status(), m.width)
	footer := layout.RenderFooter(m.chat.KeyHints(), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.chat.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
