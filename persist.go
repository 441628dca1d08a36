package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/iron-ledger/dialogs"
	"github.com/andareed/iron-ledger/logging"
)

func (m *model) handlePathConfirmed(msg dialogs.PathConfirmedMsg) tea.Cmd {
	var (
		err  error
		done string
	)
	switch msg.Purpose {
	case dialogs.PurposeSave:
		err = SaveSnapshot(m, msg.Path)
		done = "Snapshot saved to " + msg.Path
	case dialogs.PurposeExport:
		err = ExportQuotes(m, msg.Path)
		done = "Quotes exported to " + msg.Path
	}
	if err != nil {
		logging.Errorf("%s %s: %v", msg.Purpose, msg.Path, err)
		return m.startNotice(fmt.Sprintf("Could not %s: %v", msg.Purpose, err), "error", noticeDuration)
	}
	m.lastPath = msg.Path
	logging.Infof("%s", done)
	return m.startNotice(done, "success", noticeDuration)
}
