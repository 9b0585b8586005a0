package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m *model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := headerStyle.Render("rolodex · contact assistant")
	status := statusBarStyle.Render(fmt.Sprintf("snapshot: %s · %d contact(s)", m.snapshotPath, m.book.Len()))
	inputBox := inputBoxStyle.Width(m.width - 2).Render(m.input.View())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		status,
		m.viewport.View(),
		inputBox,
	)
}
