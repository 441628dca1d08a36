package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/andareed/iron-ledger/dialogs"
	"github.com/andareed/iron-ledger/market"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func testOptions() *options {
	opts := defaultOptions()
	opts.seed = 42
	opts.tick = 0
	opts.watch = false
	return opts
}

// newTestModel returns a sized model over the default market whose clipboard
// writes land in *copied.
func newTestModel(t *testing.T) (*model, *string) {
	t.Helper()
	m := newModel(market.DefaultConfig(), testOptions())
	copied := new(string)
	m.copyText = func(s string) error {
		*copied = s
		return nil
	}
	m.Update(tea.WindowSizeMsg{Width: 160, Height: 40})
	return m, copied
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *model, msgs ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func typeText(m *model, s string) {
	for _, r := range s {
		m.Update(runes(string(r)))
	}
}

func TestNewModelDefaults(t *testing.T) {
	m, _ := newTestModel(t)

	if got := len(m.data.quotes); got != 10 {
		t.Fatalf("quotes = %d, want 10", got)
	}
	if got := m.data.news.Len(); got != 10 {
		t.Errorf("news = %d, want 10", got)
	}
	if m.ui.activePanel != panelMarketData {
		t.Errorf("active panel = %v, want market data", m.ui.activePanel)
	}
	if len(m.data.filteredIndices) != 10 {
		t.Errorf("filtered = %d, want 10", len(m.data.filteredIndices))
	}
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", runes("q")},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t)
			cmd := press(m, tt.msg)
			if cmd == nil {
				t.Fatal("expected a quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("cmd() = %T, want tea.QuitMsg", cmd())
			}
		})
	}
}

func TestPanelSwitching(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.ui.activePanel != panelLatestNews {
		t.Fatalf("right: active panel = %v, want latest news", m.ui.activePanel)
	}
	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.ui.activePanel != panelMarketData {
		t.Fatalf("left: active panel = %v, want market data", m.ui.activePanel)
	}
	press(m, runes("l"))
	press(m, runes("h"))
	if m.ui.activePanel != panelMarketData {
		t.Errorf("h after l: active panel = %v, want market data", m.ui.activePanel)
	}
}

func TestScrollClamps(t *testing.T) {
	tests := []struct {
		name   string
		panel  tea.KeyMsg
		scroll func(m *model) int
	}{
		{"market", tea.KeyMsg{Type: tea.KeyLeft}, func(m *model) int { return m.ui.marketScroll }},
		{"news", tea.KeyMsg{Type: tea.KeyRight}, func(m *model) int { return m.ui.newsScroll }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t)
			press(m, tt.panel)

			for range 25 {
				press(m, tea.KeyMsg{Type: tea.KeyDown})
			}
			if got := tt.scroll(m); got != 9 {
				t.Errorf("after scrolling down: %d, want 9", got)
			}

			press(m, runes("k"))
			if got := tt.scroll(m); got != 8 {
				t.Errorf("after k: %d, want 8", got)
			}

			for range 25 {
				press(m, tea.KeyMsg{Type: tea.KeyUp})
			}
			if got := tt.scroll(m); got != 0 {
				t.Errorf("after scrolling up: %d, want 0", got)
			}

			press(m, runes("G"))
			if got := tt.scroll(m); got != 9 {
				t.Errorf("after G: %d, want 9", got)
			}
			press(m, runes("g"))
			if got := tt.scroll(m); got != 0 {
				t.Errorf("after g: %d, want 0", got)
			}
		})
	}
}

func TestScrollOnlyMovesActivePanel(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, runes("j"), runes("j"))
	if m.ui.marketScroll != 2 || m.ui.newsScroll != 0 {
		t.Errorf("market=%d news=%d, want 2 and 0", m.ui.marketScroll, m.ui.newsScroll)
	}
}

func TestFilterCommand(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, runes("j"), runes("j"))

	press(m, runes("f"))
	if m.ui.mode != modeCommand || m.ui.command.cmd != CmdFilter {
		t.Fatalf("mode=%v cmd=%v, want filter command", m.ui.mode, m.ui.command.cmd)
	}
	typeText(m, `^iron\t`)
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.ui.mode != modeView {
		t.Errorf("mode = %v, want view", m.ui.mode)
	}
	if len(m.data.filteredIndices) != 1 {
		t.Fatalf("filtered = %v, want one quote", m.data.filteredIndices)
	}
	if q, _ := m.focusedQuote(); q.Company.Ticker != "IRON" {
		t.Errorf("focused = %q, want IRON", q.Company.Ticker)
	}
	if m.ui.marketScroll != 0 {
		t.Errorf("market scroll = %d, want reset to 0", m.ui.marketScroll)
	}

	press(m, runes("F"))
	if len(m.data.filteredIndices) != 10 {
		t.Errorf("after F: filtered = %d, want 10", len(m.data.filteredIndices))
	}
}

func TestInvalidFilterKeepsCurrent(t *testing.T) {
	m, _ := newTestModel(t)
	if err := m.setFilterPattern("bci"); err != nil {
		t.Fatalf("setFilterPattern: %v", err)
	}
	if err := m.setFilterPattern("("); err == nil {
		t.Fatal("expected an error for an invalid pattern")
	}
	if got := m.filterPattern(); got != "bci" {
		t.Errorf("filter = %q, want bci", got)
	}

	press(m, runes("f"))
	m.ui.input.SetValue("[")
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.ui.noticeType != "warn" || !strings.HasPrefix(m.ui.noticeMsg, "Invalid filter") {
		t.Errorf("notice = %q (%s), want invalid filter warning", m.ui.noticeMsg, m.ui.noticeType)
	}
	if got := m.filterPattern(); got != "bci" {
		t.Errorf("filter after invalid input = %q, want bci", got)
	}
}

func TestFilterCancel(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, runes("f"))
	typeText(m, "zzz")
	press(m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.ui.mode != modeView {
		t.Errorf("mode = %v, want view", m.ui.mode)
	}
	if m.filterPattern() != "" {
		t.Errorf("filter = %q, want none", m.filterPattern())
	}
}

func TestSearchAndJump(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, tea.KeyMsg{Type: tea.KeyRight})

	press(m, runes("/"))
	typeText(m, "gearheart")
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.ui.activePanel != panelMarketData || m.ui.marketScroll != 9 {
		t.Errorf("search: panel=%v scroll=%d, want market data at 9", m.ui.activePanel, m.ui.marketScroll)
	}

	press(m, runes(":"))
	typeText(m, "4")
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.ui.marketScroll != 3 {
		t.Errorf("jump: scroll = %d, want 3", m.ui.marketScroll)
	}

	press(m, runes(":"))
	typeText(m, "99")
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.ui.marketScroll != 3 || m.ui.noticeMsg != "Row 99 out of bounds" {
		t.Errorf("out of bounds jump: scroll=%d notice=%q", m.ui.marketScroll, m.ui.noticeMsg)
	}

	press(m, runes("/"))
	typeText(m, "unobtainium")
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.ui.noticeType != "warn" {
		t.Errorf("missed search notice type = %q, want warn", m.ui.noticeType)
	}
}

func TestMarks(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, runes("m"), runes("g"))
	if got := m.data.marks["BCI"]; got != MarkGreen {
		t.Fatalf("BCI mark = %q, want green", got)
	}
	if m.ui.mode != modeView {
		t.Errorf("mode = %v, want view after marking", m.ui.mode)
	}

	press(m, runes("j"), runes("j"), runes("j"), runes("m"), runes("a"))
	if got := m.data.marks["NASC"]; got != MarkAmber {
		t.Fatalf("NASC mark = %q, want amber", got)
	}

	press(m, runes("g"), runes("n"))
	if m.ui.marketScroll != 3 {
		t.Errorf("next mark: scroll = %d, want 3", m.ui.marketScroll)
	}
	press(m, runes("N"))
	if m.ui.marketScroll != 0 {
		t.Errorf("previous mark: scroll = %d, want 0", m.ui.marketScroll)
	}
	press(m, runes("N"))
	if m.ui.noticeMsg != "No previous mark" {
		t.Errorf("notice = %q, want No previous mark", m.ui.noticeMsg)
	}

	press(m, runes("M"))
	if len(m.data.filteredIndices) != 2 {
		t.Fatalf("marked only: filtered = %v, want 2 quotes", m.data.filteredIndices)
	}

	press(m, runes("m"), runes("c"))
	if _, ok := m.data.marks["BCI"]; ok {
		t.Error("BCI still marked after clear")
	}
	if len(m.data.filteredIndices) != 1 {
		t.Errorf("after clearing: filtered = %v, want 1 quote", m.data.filteredIndices)
	}
}

func TestMarkModeIgnoresOtherKeys(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, runes("m"), runes("x"))
	if m.ui.mode != modeCommand || m.ui.command.cmd != CmdMark {
		t.Fatalf("mode=%v cmd=%v, want to stay in mark mode", m.ui.mode, m.ui.command.cmd)
	}
	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.ui.mode != modeView || len(m.data.marks) != 0 {
		t.Errorf("esc: mode=%v marks=%v", m.ui.mode, m.data.marks)
	}
}

func TestCopyFocused(t *testing.T) {
	m, copied := newTestModel(t)
	press(m, runes("j"), runes("y"))

	if !strings.HasPrefix(*copied, "AETH\tAether Dynamics\t") {
		t.Errorf("copied %q, want the AETH row", *copied)
	}
	if m.ui.noticeMsg != "Copied AETH" {
		t.Errorf("notice = %q", m.ui.noticeMsg)
	}
}

func TestTick(t *testing.T) {
	m, _ := newTestModel(t)
	before := make([]float64, len(m.data.quotes))
	for i, q := range m.data.quotes {
		before[i] = q.Quote.Price
	}
	m.ui.newsScroll = 2

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	if cmd := m.handleTick(now); cmd != nil {
		t.Error("tick with interval 0 should not reschedule")
	}

	if got := m.data.news.Len(); got != 11 {
		t.Errorf("news = %d, want 11", got)
	}
	if got := m.data.news.Items()[0].Time; !got.Equal(now) {
		t.Errorf("newest item time = %v, want %v", got, now)
	}
	if m.ui.newsScroll != 3 {
		t.Errorf("news scroll = %d, want 3 to stay on the same story", m.ui.newsScroll)
	}

	changed := 0
	for i, q := range m.data.quotes {
		limit := before[i] * (1 + m.driftPct/100)
		if q.Quote.Price > limit+1e-9 || q.Quote.Price < before[i]*(1-m.driftPct/100)-1e-9 {
			t.Errorf("%s moved from %.2f to %.2f, beyond %.1f%%", q.Company.Ticker, before[i], q.Quote.Price, m.driftPct)
		}
		if q.Quote.Price != before[i] {
			changed++
		}
	}
	if changed == 0 {
		t.Error("no price moved on tick")
	}

	m.tickInterval = time.Second
	if cmd := m.handleTick(now); cmd == nil {
		t.Error("tick with an interval should reschedule")
	}
}

func TestApplyMarketKeepsMarksAndPrices(t *testing.T) {
	m, _ := newTestModel(t)
	m.data.marks["IRON"] = MarkRed
	m.data.marks["BCI"] = MarkGreen
	ironBefore := m.data.quotes[6].Quote

	cfg, err := market.ParseConfig([]byte(`
currency: { name_plural: Gears, symbol: G }
companies:
  - { ticker: IRON, name: Ironclad Armaments, description: Plates. }
  - { ticker: NEW, name: Newcomer, description: Fresh. }
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	m.applyMarket(cfg)

	if len(m.data.quotes) != 2 {
		t.Fatalf("quotes = %d, want 2", len(m.data.quotes))
	}
	if m.data.quotes[0].Quote != ironBefore {
		t.Errorf("IRON quote = %+v, want %+v", m.data.quotes[0].Quote, ironBefore)
	}
	if m.data.marks["IRON"] != MarkRed {
		t.Error("IRON mark lost on reload")
	}
	if _, ok := m.data.marks["BCI"]; ok {
		t.Error("mark for delisted BCI survived the reload")
	}
	if m.data.currency.NamePlural != "Gears" {
		t.Errorf("currency = %q, want Gears", m.data.currency.NamePlural)
	}
}

func TestHelpDialog(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, runes("?"))
	if m.activeDialog == nil {
		t.Fatal("help dialog not opened")
	}
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "quit") || !strings.Contains(view, "save snapshot") || !strings.Contains(view, "help / keys") {
		t.Errorf("help view missing bindings:\n%s", view)
	}

	// keys go to the dialog, not the table
	press(m, runes("j"))
	if m.ui.marketScroll != 0 {
		t.Errorf("scroll moved behind the dialog: %d", m.ui.marketScroll)
	}
	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.activeDialog != nil {
		t.Error("help dialog still open after esc")
	}
}

func TestSaveDialogFlow(t *testing.T) {
	m, _ := newTestModel(t)
	dir := t.TempDir()
	m.sourcePath = dir + "/market.yaml"

	press(m, runes("s"))
	if m.activeDialog == nil {
		t.Fatal("save dialog not opened")
	}
	cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should confirm the path")
	}
	msg, ok := cmd().(dialogs.PathConfirmedMsg)
	if !ok {
		t.Fatalf("cmd() = %T, want PathConfirmedMsg", cmd())
	}
	if !strings.HasPrefix(msg.Path, dir) {
		t.Errorf("path %q not in %q", msg.Path, dir)
	}

	m.Update(msg)
	if _, err := os.Stat(msg.Path); err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
	if m.lastPath != msg.Path || m.ui.noticeType != "success" {
		t.Errorf("lastPath=%q notice=%q (%s)", m.lastPath, m.ui.noticeMsg, m.ui.noticeType)
	}
}

func TestView(t *testing.T) {
	m, _ := newTestModel(t)
	view := ansi.Strip(m.View())
	lines := strings.Split(view, "\n")

	if len(lines) != 40 {
		t.Errorf("view has %d lines, want 40", len(lines))
	}
	for _, want := range []string{
		"The Iron Ledger",
		"Realtime market data",
		"Latest news",
		"Connected",
		"Prices in Cogmarks",
		"Ticker",
		"Change%",
		"BrassCog Industries",
		"₡",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[0]), appTitle) {
		t.Errorf("first line = %q, want the title", lines[0])
	}
	if !strings.HasPrefix(lines[len(lines)-1], "Connected─") {
		t.Errorf("last line = %q, want the status rule", lines[len(lines)-1])
	}
	if !strings.Contains(lines[2], "↑") {
		t.Errorf("market scrollbar missing on %q", lines[2])
	}
}

func TestViewEmptyFilter(t *testing.T) {
	m, _ := newTestModel(t)
	if err := m.setFilterPattern("nothing matches this"); err != nil {
		t.Fatal(err)
	}
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "No quotes match the current filter") {
		t.Error("empty filter message missing")
	}
	if !strings.Contains(view, "filter /nothing matches this/") {
		t.Error("filter not shown in the market status line")
	}
}

func TestViewBeforeSize(t *testing.T) {
	m := newModel(market.DefaultConfig(), testOptions())
	if got := m.View(); got != "loading..." {
		t.Errorf("View() = %q before the first WindowSizeMsg", got)
	}
}

func TestMarketFileReload(t *testing.T) {
	const initial = `
companies:
  - { ticker: ABC, name: Alpha Brass }
  - { ticker: XYZ, name: Xylo Zeppelins }
`
	tests := []struct {
		name       string
		rewrite    string
		wantQuotes int
		wantNotice string
		wantType   string
	}{
		{
			name:       "Valid rewrite",
			rewrite:    "companies:\n  - { ticker: ABC, name: Alpha Brass }\n",
			wantQuotes: 1,
			wantNotice: "Market reloaded (1 companies)",
			wantType:   "success",
		},
		{
			name:       "Invalid rewrite keeps the old market",
			rewrite:    "companies: []\n",
			wantQuotes: 2,
			wantNotice: market.ErrNoCompanies.Error(),
			wantType:   "warn",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "market.yaml")
			if err := os.WriteFile(path, []byte(initial), 0o600); err != nil {
				t.Fatal(err)
			}
			opts := testOptions()
			opts.watch = true
			m, err := loadModelAuto(path, opts)
			if err != nil {
				t.Fatalf("loadModelAuto: %v", err)
			}
			defer m.watcher.Close()

			if err := os.WriteFile(path, []byte(tt.rewrite), 0o600); err != nil {
				t.Fatal(err)
			}
			_, cmd := m.Update(marketChangedMsg{})
			if cmd == nil {
				t.Error("reload should keep waiting for changes")
			}

			if got := len(m.data.quotes); got != tt.wantQuotes {
				t.Errorf("quotes = %d, want %d", got, tt.wantQuotes)
			}
			if !strings.Contains(m.ui.noticeMsg, tt.wantNotice) || m.ui.noticeType != tt.wantType {
				t.Errorf("notice = %q (%s), want %q (%s)", m.ui.noticeMsg, m.ui.noticeType, tt.wantNotice, tt.wantType)
			}
		})
	}
}

func TestWatchErrors(t *testing.T) {
	m, _ := newTestModel(t)

	if _, cmd := m.Update(marketWatchErrMsg{err: market.ErrWatcherClosed}); cmd != nil {
		t.Error("a closed watcher should end the wait loop")
	}
	if m.ui.noticeMsg != "" {
		t.Errorf("notice = %q, want none for a closed watcher", m.ui.noticeMsg)
	}

	if _, cmd := m.Update(marketWatchErrMsg{err: errors.New("queue overflow")}); cmd == nil {
		t.Error("other watcher errors should show a notice")
	}
	if m.ui.noticeType != "warn" || !strings.Contains(m.ui.noticeMsg, "queue overflow") {
		t.Errorf("notice = %q (%s), want a warning", m.ui.noticeMsg, m.ui.noticeType)
	}
}
