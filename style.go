package main

import "github.com/charmbracelet/lipgloss"

const (
	accentColor        = "3" // yellow
	gainColor          = "2"
	lossColor          = "1"
	mutedColor         = "7"
	rowSelectedBGColor = "#3a3a3a"
	overlayBGColor     = "236"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(accentColor)).Bold(true)

	activeBorderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(accentColor))
	inactiveBorderStyle = lipgloss.NewStyle()

	headerStyle      = lipgloss.NewStyle().Bold(true)
	cellStyle        = lipgloss.NewStyle()
	rowSelectedStyle = lipgloss.NewStyle().Background(lipgloss.Color(rowSelectedBGColor))
	gainStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color(gainColor))
	lossStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color(lossColor))
	panelStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(mutedColor)).Italic(true)
	emptyStyle       = lipgloss.NewStyle().Faint(true)

	newsTimeStyle   = lipgloss.NewStyle().Faint(true)
	newsTickerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(accentColor)).Bold(true)

	statusRuleStyle   = lipgloss.NewStyle()
	statusLegendStyle = lipgloss.NewStyle().Faint(true)
	statusBadgeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color(accentColor))

	redMarker     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	greenMarker   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	amberMarker   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	defaultMarker = " " // gutter when the quote carries no mark
	pillMarker    = "▐"
)

func panelBorderStyle(active bool) lipgloss.Style {
	if active {
		return activeBorderStyle
	}
	return inactiveBorderStyle
}
