package dialogs

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/iron-ledger/logging"
)

// PathPurpose says what the chosen path will be used for.
type PathPurpose int

const (
	PurposeSave PathPurpose = iota
	PurposeExport
)

func (p PathPurpose) String() string {
	if p == PurposeExport {
		return "export"
	}
	return "save"
}

// --- Messages ---------------------------------------------------------------

type (
	PathConfirmedMsg struct {
		Purpose PathPurpose
		Path    string
	}
	PathCanceledMsg struct{ Purpose PathPurpose }
)

// Path asks for a file name. Relative bare names are placed in lastDir.
type Path struct {
	purpose PathPurpose
	input   textinput.Model
	visible bool
	lastDir string
}

func NewSaveDialog(defaultName, lastDir string) *Path {
	return newPathDialog(PurposeSave, "Save snapshot as: ", defaultName, lastDir)
}

func NewExportDialog(defaultName, lastDir string) *Path {
	return newPathDialog(PurposeExport, "Export CSV as: ", defaultName, lastDir)
}

func newPathDialog(purpose PathPurpose, prompt, defaultName, lastDir string) *Path {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Prompt = prompt
	ti.CharLimit = 256
	// Wide enough for typical paths
	ti.Width = 40
	if defaultName != "" {
		ti.SetValue(defaultName)
	}
	ti.Focus()
	return &Path{purpose: purpose, input: ti, visible: true, lastDir: lastDir}
}

func (d Path) Init() tea.Cmd { return textinput.Blink }

func (d *Path) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			path := d.resolve()
			if path == "" {
				return d, nil
			}
			logging.Infof("PathDialog: %s confirmed to %s", d.purpose, path)
			d.Hide()
			purpose := d.purpose
			return d, func() tea.Msg { return PathConfirmedMsg{Purpose: purpose, Path: path} }
		case "esc":
			logging.Infof("PathDialog: %s cancelled", d.purpose)
			d.Hide()
			purpose := d.purpose
			return d, func() tea.Msg { return PathCanceledMsg{Purpose: purpose} }
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

// resolve falls back to the placeholder and expands bare names into lastDir.
func (d *Path) resolve() string {
	val := d.input.Value()
	if val == "" {
		val = d.input.Placeholder
	}
	if val == "" {
		return ""
	}
	if d.lastDir != "" && !filepath.IsAbs(val) && filepath.Dir(val) == "." {
		return filepath.Join(d.lastDir, filepath.Base(val))
	}
	return val
}

func (d Path) View() string {
	if !d.visible {
		return ""
	}
	help := hintStyle.Render(fmt.Sprintf("enter to %s • esc to cancel", d.purpose))
	return boxStyle.Render(fmt.Sprintf("%s\n\n%s", d.input.View(), help))
}

func (d *Path) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *Path) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *Path) Focus() tea.Cmd { return d.input.Focus() }
func (d *Path) Blur()          { d.input.Blur() }
func (d Path) IsVisible() bool { return d.visible }
