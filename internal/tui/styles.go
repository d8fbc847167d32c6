package tui

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")). // cyan
			Bold(true)

	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("14")).
			Padding(0, 2)

	echoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")) // dim grey

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")). // green
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")) // red

	systemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")) // yellow

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("13")) // magenta

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)
