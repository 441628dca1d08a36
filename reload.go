package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/iron-ledger/logging"
	"github.com/andareed/iron-ledger/market"
)

type marketChangedMsg struct{}

type marketWatchErrMsg struct{ err error }

func (m *model) waitForMarketChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	w := m.watcher
	return func() tea.Msg {
		if err := w.Wait(); err != nil {
			return marketWatchErrMsg{err: err}
		}
		return marketChangedMsg{}
	}
}

func (m *model) reloadMarket() tea.Cmd {
	path := m.watcher.Path()
	cfg, err := market.LoadConfig(path)
	if err != nil {
		logging.Warnf("Market reload failed: %v", err)
		return tea.Batch(
			m.startNotice("Market reload failed: "+err.Error(), "warn", noticeDuration),
			m.waitForMarketChange(),
		)
	}
	m.applyMarket(cfg)
	logging.Infof("Market reloaded from %s with %d companies", path, len(cfg.Companies))
	return tea.Batch(
		m.startNotice(fmt.Sprintf("Market reloaded (%d companies)", len(cfg.Companies)), "success", noticeDuration),
		m.waitForMarketChange(),
	)
}

// applyMarket swaps in a new market definition, keeping prices and marks of
// tickers that are still listed.
func (m *model) applyMarket(cfg *market.Config) {
	m.data.currency = cfg.Currency
	m.data.quoteRange = cfg.Range()
	m.data.quotes = market.Reconcile(m.data.quotes, cfg.Companies, m.rng, m.data.quoteRange)

	listed := make(map[string]struct{}, len(cfg.Companies))
	for _, c := range cfg.Companies {
		listed[markKey(c.Ticker)] = struct{}{}
	}
	for k := range m.data.marks {
		if _, ok := listed[k]; !ok {
			delete(m.data.marks, k)
		}
	}
	m.applyFilter()
}

func (m *model) handleWatchError(err error) tea.Cmd {
	if errors.Is(err, market.ErrWatcherClosed) {
		return nil
	}
	logging.Warnf("Market watcher: %v", err)
	return tea.Batch(
		m.startNotice("Watching market file: "+err.Error(), "warn", noticeDuration),
		m.waitForMarketChange(),
	)
}
