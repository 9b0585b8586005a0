package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/entrhq/rolodex/pkg/commands"
)

// chromeHeight is the number of rows taken by the header, status bar, and
// input box around the viewport.
const chromeHeight = 6

// Update implements tea.Model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalculateLayout()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleSubmit()
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// handleSubmit echoes the entered line into the transcript and dispatches it.
func (m *model) handleSubmit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	if strings.TrimSpace(line) == "" {
		return m, nil
	}

	m.transcript.append(promptEchoStyle.Render("> " + line))
	err := m.dispatcher.Dispatch(line)
	m.refreshViewport()

	if errors.Is(err, commands.ErrQuit) {
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) recalculateLayout() {
	vpHeight := m.height - chromeHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(m.width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = vpHeight
	}
	m.refreshViewport()
}

func (m *model) refreshViewport() {
	m.viewport.SetContent(m.transcript.String())
	m.viewport.GotoBottom()
}
