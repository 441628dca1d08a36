package main

import (
	"regexp"
	"strings"

	"github.com/andareed/iron-ledger/logging"
	"github.com/andareed/iron-ledger/market"
)

// setFilterPattern compiles pattern case-insensitively; an empty pattern
// clears the filter. On error the current filter is kept.
func (m *model) setFilterPattern(pattern string) error {
	logging.Infof("Setting Pattern to: %s", pattern)
	if pattern == "" {
		m.data.filterRegex = nil
	} else {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return err
		}
		m.data.filterRegex = re
	}
	m.ui.marketScroll = 0
	m.applyFilter()
	return nil
}

// filterPattern is the pattern as the user typed it.
func (m *model) filterPattern() string {
	if m.data.filterRegex == nil {
		return ""
	}
	return strings.TrimPrefix(m.data.filterRegex.String(), "(?i)")
}

func (m *model) toggleShowOnlyMarked() {
	m.data.showOnlyMarked = !m.data.showOnlyMarked
	logging.Infof("Show only marked: %v", m.data.showOnlyMarked)
	m.ui.marketScroll = 0
	m.applyFilter()
}

func (m *model) includeQuote(q market.StockQuote) bool {
	if m.data.showOnlyMarked {
		if _, ok := m.data.marks[markKey(q.Company.Ticker)]; !ok {
			return false
		}
	}
	if m.data.filterRegex != nil && !m.data.filterRegex.MatchString(quoteSearchText(q)) {
		return false
	}
	return true
}

// applyFilter rebuilds filteredIndices and keeps the scroll position in range.
func (m *model) applyFilter() {
	m.data.filteredIndices = m.data.filteredIndices[:0]
	for i, q := range m.data.quotes {
		if m.includeQuote(q) {
			m.data.filteredIndices = append(m.data.filteredIndices, i)
		}
	}
	m.ui.marketScroll = min(m.ui.marketScroll, saturatingSub(len(m.data.filteredIndices), 1))
	logging.Debugf("applyFilter: %d of %d quotes visible", len(m.data.filteredIndices), len(m.data.quotes))
}

func quoteSearchText(q market.StockQuote) string {
	return q.Company.Ticker + "\t" + q.Company.Name + "\t" + q.Company.Description
}
