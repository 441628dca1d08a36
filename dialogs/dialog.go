package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is the common interface all modal dialogs (save, export, help)
// implement. The model routes key messages to the visible dialog.
type Dialog interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	Focus() tea.Cmd
	Blur()
	IsVisible() bool
	Show()
	Hide()
}
