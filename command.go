package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

type Command int

const (
	CmdNone Command = iota
	CmdJump
	CmdSearch
	CmdFilter
	CmdMark
)

type CommandInput struct {
	cmd Command
}

func (m *model) commandBadge(cmd Command) string {
	switch cmd {
	case CmdSearch:
		return "[SEARCH]"
	case CmdFilter:
		return "[FILTER]"
	case CmdJump:
		return "[JUMP]"
	case CmdMark:
		return "[MARK]"
	default:
		return "[NORMAL]"
	}
}

func (m *model) commandPrompt(cmd Command) string {
	switch cmd {
	case CmdSearch:
		return "search: "
	case CmdFilter:
		return "filter: "
	case CmdJump:
		return "row: "
	default:
		return ""
	}
}

func (m *model) commandHintsLine(cmd Command) string {
	switch cmd {
	case CmdMark:
		return "r/g/a: mark   c: clear   esc: cancel"
	default:
		return "enter: apply   esc: cancel"
	}
}

// enterCommandMode opens the footer prompt for cmd, seeded with value.
func (m *model) enterCommandMode(cmd Command, value string) tea.Cmd {
	m.ui.mode = modeCommand
	m.ui.command = CommandInput{cmd: cmd}
	if cmd == CmdMark {
		return nil
	}
	m.ui.input.Prompt = m.commandPrompt(cmd)
	m.ui.input.SetValue(value)
	m.ui.input.CursorEnd()
	return m.ui.input.Focus()
}
