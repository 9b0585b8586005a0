package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	promptEchoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	contactNameStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212"))

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

	mutedStyle = lipgloss.NewStyle().
			Faint(true)
)
