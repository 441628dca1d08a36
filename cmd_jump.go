package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func saturatingSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}

func (m *model) scrollDown() {
	switch m.ui.activePanel {
	case panelMarketData:
		m.ui.marketScroll = min(saturatingSub(len(m.data.filteredIndices), 1), m.ui.marketScroll+1)
	case panelLatestNews:
		m.ui.newsScroll = min(saturatingSub(m.data.news.Len(), 1), m.ui.newsScroll+1)
	}
}

func (m *model) scrollUp() {
	switch m.ui.activePanel {
	case panelMarketData:
		m.ui.marketScroll = saturatingSub(m.ui.marketScroll, 1)
	case panelLatestNews:
		m.ui.newsScroll = saturatingSub(m.ui.newsScroll, 1)
	}
}

func (m *model) jumpToStart() {
	switch m.ui.activePanel {
	case panelMarketData:
		m.ui.marketScroll = 0
	case panelLatestNews:
		m.ui.newsScroll = 0
	}
}

func (m *model) jumpToEnd() {
	switch m.ui.activePanel {
	case panelMarketData:
		m.ui.marketScroll = saturatingSub(len(m.data.filteredIndices), 1)
	case panelLatestNews:
		m.ui.newsScroll = saturatingSub(m.data.news.Len(), 1)
	}
}

// jumpToRow focuses the 1-based row n of the market table as currently filtered.
func (m *model) jumpToRow(n int) tea.Cmd {
	if n <= 0 || n > len(m.data.filteredIndices) {
		return m.startNotice(fmt.Sprintf("Row %d out of bounds", n), "warn", noticeDuration)
	}
	m.ui.activePanel = panelMarketData
	m.ui.marketScroll = n - 1
	return nil
}
