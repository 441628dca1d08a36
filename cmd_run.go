package main

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) runCommand() tea.Cmd {
	value := strings.TrimSpace(m.ui.input.Value())
	switch m.ui.command.cmd {
	case CmdJump:
		if n, err := strconv.Atoi(value); err == nil {
			return m.jumpToRow(n)
		}
		return m.startNotice("Invalid row number", "warn", noticeDuration)

	case CmdSearch:
		return m.searchOnce(value)

	case CmdFilter:
		if err := m.setFilterPattern(value); err != nil {
			return m.startNotice("Invalid filter: "+err.Error(), "warn", noticeDuration)
		}
		return nil
	}
	return nil
}

func (m *model) exitCommandMode() {
	m.ui.command = CommandInput{}
	m.ui.input.Blur()
	m.ui.input.Reset()
	m.ui.mode = modeView
}

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// universal cancel
	if msg.Type == tea.KeyEsc {
		m.exitCommandMode()
		return m, nil
	}

	// constrained command: mark
	if m.ui.command.cmd == CmdMark {
		return m.handleMarkCommandKey(msg)
	}

	// commit
	if msg.Type == tea.KeyEnter {
		cmd := m.runCommand()
		m.exitCommandMode()
		return m, cmd
	}

	var cmd tea.Cmd
	m.ui.input, cmd = m.ui.input.Update(msg)
	return m, cmd
}
