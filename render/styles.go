package render

import "github.com/charmbracelet/lipgloss"

var (
	colorSuccess = lipgloss.Color("42")  // Green
	colorError   = lipgloss.Color("196") // Red
	colorWarning = lipgloss.Color("214") // Orange/Yellow
	colorMuted   = lipgloss.Color("240") // Dark gray
)

var (
	answerCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSuccess).
			Padding(0, 1)

	errorCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorError).
			Padding(0, 1)

	warningCardStyle = errorCardStyle.
				BorderForeground(colorWarning)

	titleStyle = lipgloss.NewStyle().Bold(true)

	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
)
