package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/iron-ledger/market"
)

type tickMsg time.Time

func (m *model) scheduleTick() tea.Cmd {
	if m.tickInterval <= 0 {
		return nil
	}
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// handleTick drifts every price and files one headline for a random company.
func (m *model) handleTick(now time.Time) tea.Cmd {
	for i := range m.data.quotes {
		m.data.quotes[i].Quote = m.data.quotes[i].Quote.Drift(m.rng, m.driftPct)
	}
	if n := len(m.data.quotes); n > 0 {
		m.data.news.Push(market.Headline(m.rng, m.data.quotes[m.rng.IntN(n)], now))
		// keep a reader scrolled into the feed on the same story
		if m.ui.newsScroll > 0 {
			m.ui.newsScroll = min(m.ui.newsScroll+1, m.data.news.Len()-1)
		}
	}
	return m.scheduleTick()
}
