// Package clipboard copies text to the system clipboard, falling back to an
// OSC52 escape sequence when no clipboard utility is available.
package clipboard

import (
	sysclip "github.com/atotto/clipboard"
	"github.com/charmbracelet/x/ansi"

	"github.com/andareed/iron-ledger/logging"
)

// Copy puts text on the clipboard. Escape sequences are stripped first.
func Copy(text string) error {
	text = ansi.Strip(text)
	if !sysclip.Unsupported {
		err := sysclip.WriteAll(text)
		if err == nil {
			logging.Infof("Clipboard: copied via system clipboard")
			return nil
		}
		logging.Warnf("Clipboard: system clipboard failed, trying OSC52: %v", err)
	}
	return copyOSC52(text)
}
