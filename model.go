package main

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/iron-ledger/clipboard"
	"github.com/andareed/iron-ledger/dialogs"
	"github.com/andareed/iron-ledger/logging"
	"github.com/andareed/iron-ledger/market"
)

type model struct {
	data dataState
	ui   uiState
	keys Keymap

	rng          *rand.Rand
	tickInterval time.Duration
	driftPct     float64

	sourcePath string
	lastPath   string
	watcher    *market.Watcher
	copyText   func(string) error

	terminalWidth  int
	terminalHeight int
	ready          bool
	activeDialog   dialogs.Dialog
}

// newModel builds a model around cfg with freshly generated quotes and news.
func newModel(cfg *market.Config, opts *options) *model {
	m := newEmptyModel(opts)
	m.data.currency = cfg.Currency
	m.data.quoteRange = cfg.Range()
	m.data.quotes = market.GenerateQuotes(m.rng, cfg.Companies, m.data.quoteRange)
	m.data.news = market.NewFeed(market.FeedCapacity, market.GenerateNews(m.rng, m.data.quotes, time.Now())...)
	m.InitialiseUI()
	return m
}

func newEmptyModel(opts *options) *model {
	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &model{
		keys:         Keys,
		rng:          rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		tickInterval: opts.tick,
		driftPct:     opts.drift,
		copyText:     clipboard.Copy,
		data: dataState{
			currency:   market.DefaultCurrency,
			quoteRange: market.DefaultRange,
			news:       market.NewFeed(market.FeedCapacity),
			marks:      make(map[string]MarkColor),
		},
	}
}

// InitialiseUI resets the interface state once data is in place.
func (m *model) InitialiseUI() {
	m.ui = uiState{
		mode:        modeView,
		activePanel: panelMarketData,
		input:       newInput(),
	}
	m.applyFilter()
}

func (m *model) Init() tea.Cmd {
	logging.Infof("iron-ledger: Initialised with %d quotes", len(m.data.quotes))
	return tea.Batch(m.scheduleTick(), m.waitForMarketChange())
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		m.ready = true
		return m, nil

	case clearNoticeMsg:
		m.clearNotice(msg)
		return m, nil

	case tickMsg:
		return m, m.handleTick(time.Time(msg))

	case marketChangedMsg:
		return m, m.reloadMarket()

	case marketWatchErrMsg:
		return m, m.handleWatchError(msg.err)

	case dialogs.PathConfirmedMsg:
		m.activeDialog = nil
		return m, m.handlePathConfirmed(msg)

	case dialogs.PathCanceledMsg:
		m.activeDialog = nil
		return m, nil

	case tea.KeyMsg:
		if m.activeDialog != nil && m.activeDialog.IsVisible() {
			return m.updateDialog(msg)
		}
		return m.updateKey(msg)
	}

	// cursor blinks and the like belong to whichever input is focused
	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return m.updateDialog(msg)
	}
	if m.ui.mode == modeCommand {
		var cmd tea.Cmd
		m.ui.input, cmd = m.ui.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	d, cmd := m.activeDialog.Update(msg)
	m.activeDialog = d
	if !d.IsVisible() {
		m.activeDialog = nil
	}
	return m, cmd
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ui.mode {
	case modeCommand:
		return m.handleCommandKey(msg)
	default:
		return m.handleViewModeKey(msg)
	}
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		logging.Infof("iron-ledger: Quit requested")
		return m, tea.Quit
	case key.Matches(msg, k.MarketPanel):
		m.ui.activePanel = panelMarketData
	case key.Matches(msg, k.NewsPanel):
		m.ui.activePanel = panelLatestNews
	case key.Matches(msg, k.RowDown):
		m.scrollDown()
	case key.Matches(msg, k.RowUp):
		m.scrollUp()
	case key.Matches(msg, k.JumpTop):
		m.jumpToStart()
	case key.Matches(msg, k.JumpBottom):
		m.jumpToEnd()
	case key.Matches(msg, k.Filter):
		return m, m.enterCommandMode(CmdFilter, m.filterPattern())
	case key.Matches(msg, k.ClearFilter):
		m.setFilterPattern("")
		return m, m.startNotice("Filter cleared", "info", noticeDuration)
	case key.Matches(msg, k.Search):
		return m, m.enterCommandMode(CmdSearch, "")
	case key.Matches(msg, k.JumpToRow):
		return m, m.enterCommandMode(CmdJump, "")
	case key.Matches(msg, k.MarkMode):
		return m, m.enterCommandMode(CmdMark, "")
	case key.Matches(msg, k.ShowMarksOnly):
		m.toggleShowOnlyMarked()
	case key.Matches(msg, k.NextMark):
		return m, m.jumpToNextMark()
	case key.Matches(msg, k.PrevMark):
		return m, m.jumpToPreviousMark()
	case key.Matches(msg, k.CopyRow):
		return m, m.copyFocused()
	case key.Matches(msg, k.ExportToFile):
		return m, m.openDialog(dialogs.NewExportDialog(m.defaultExportName(), m.lastDir()))
	case key.Matches(msg, k.SaveToFile):
		return m, m.openDialog(dialogs.NewSaveDialog(m.defaultSaveName(), m.lastDir()))
	case key.Matches(msg, k.OpenHelp):
		return m, m.openDialog(dialogs.NewHelpDialog(k.Legend()))
	}
	return m, nil
}

func (m *model) openDialog(d dialogs.Dialog) tea.Cmd {
	m.activeDialog = d
	return d.Init()
}

// focusedQuote is the first visible quote of the market table.
func (m *model) focusedQuote() (market.StockQuote, bool) {
	if m.ui.marketScroll < 0 || m.ui.marketScroll >= len(m.data.filteredIndices) {
		return market.StockQuote{}, false
	}
	return m.data.quotes[m.data.filteredIndices[m.ui.marketScroll]], true
}

func (m *model) copyFocused() tea.Cmd {
	q, ok := m.focusedQuote()
	if !ok {
		return m.startNotice("Nothing to copy", "warn", noticeDuration)
	}
	if err := m.copyText(quoteLine(q, m.data.currency.Symbol)); err != nil {
		logging.Warnf("Copy failed: %v", err)
		return m.startNotice("Copy failed: "+err.Error(), "error", noticeDuration)
	}
	return m.startNotice("Copied "+q.Company.Ticker, "success", noticeDuration)
}
