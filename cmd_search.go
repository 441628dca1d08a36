package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// searchOnce moves the market table to the first visible quote whose
// ticker, name or description contains query.
func (m *model) searchOnce(query string) tea.Cmd {
	if query == "" {
		return nil
	}
	needle := strings.ToLower(query)
	for i, idx := range m.data.filteredIndices {
		if strings.Contains(strings.ToLower(quoteSearchText(m.data.quotes[idx])), needle) {
			m.ui.activePanel = panelMarketData
			m.ui.marketScroll = i
			return nil
		}
	}
	return m.startNotice(fmt.Sprintf("No match for %q", query), "warn", noticeDuration)
}
