package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/iron-ledger/logging"
)

type MarkColor string

const (
	MarkNone  MarkColor = ""
	MarkRed   MarkColor = "red"
	MarkGreen MarkColor = "green"
	MarkAmber MarkColor = "amber"
)

func markKey(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

func (m *model) MarkFocused(colour MarkColor) (string, bool) {
	q, ok := m.focusedQuote()
	if !ok {
		return "", false
	}
	key := markKey(q.Company.Ticker)
	if colour == MarkNone {
		delete(m.data.marks, key)
		logging.Infof("Ticker %s has been unmarked", key)
	} else {
		m.data.marks[key] = colour
		logging.Infof("Ticker %s is being marked with color %s", key, colour)
	}
	if m.data.showOnlyMarked {
		m.applyFilter()
	}
	return q.Company.Ticker, true
}

func (m *model) handleMarkCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var mark MarkColor
	switch msg.String() {
	case "r":
		mark = MarkRed
	case "g":
		mark = MarkGreen
	case "a":
		mark = MarkAmber
	case "c":
		mark = MarkNone
	default:
		// Unhandled keys: stay in mark mode, do nothing
		return m, nil
	}

	m.exitCommandMode()
	ticker, ok := m.MarkFocused(mark)
	if !ok {
		return m, m.startNotice("No quote to mark", "warn", noticeDuration)
	}
	if mark == MarkNone {
		return m, m.startNotice(fmt.Sprintf("%s unmarked", ticker), "", noticeDuration)
	}
	return m, m.startNotice(fmt.Sprintf("%s marked %s", ticker, mark), "", noticeDuration)
}

func (m *model) jumpToNextMark() tea.Cmd {
	for i := m.ui.marketScroll + 1; i < len(m.data.filteredIndices); i++ {
		if m.isMarked(i) {
			logging.Debugf("Next mark found at %d", i)
			m.ui.marketScroll = i
			return nil
		}
	}
	return m.startNotice("No next mark", "info", noticeDuration)
}

func (m *model) jumpToPreviousMark() tea.Cmd {
	for i := min(m.ui.marketScroll, len(m.data.filteredIndices)) - 1; i >= 0; i-- {
		if m.isMarked(i) {
			logging.Debugf("Previous mark found at %d", i)
			m.ui.marketScroll = i
			return nil
		}
	}
	return m.startNotice("No previous mark", "info", noticeDuration)
}

// isMarked reports whether the quote at filtered position i carries a mark.
func (m *model) isMarked(i int) bool {
	q := m.data.quotes[m.data.filteredIndices[i]]
	_, ok := m.data.marks[markKey(q.Company.Ticker)]
	return ok
}

func sanitizeMarkColor(s string) MarkColor {
	switch MarkColor(s) {
	case MarkRed, MarkGreen, MarkAmber:
		return MarkColor(s)
	default:
		return MarkNone
	}
}
