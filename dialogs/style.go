package dialogs

import "github.com/charmbracelet/lipgloss"

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("252")).
			BorderBackground(lipgloss.Color("236")). // match the overlay
			Padding(1, 2).
			Width(60)

	hintStyle = lipgloss.NewStyle().Faint(true)
)
