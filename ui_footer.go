package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/andareed/iron-ledger/logging"
	"github.com/andareed/iron-ledger/widgets"
)

const (
	connectedTitle = "Connected"
	idleLegend     = "? help · f filter · / search · m mark · y copy · e export · s save"
)

type statusState struct {
	Title   string
	Message string // already styled; replaces the legend when set
	Legend  string
}

func (m *model) statusView(width int) string {
	st := statusState{Title: connectedTitle, Legend: idleLegend}

	switch {
	case m.ui.mode == modeCommand:
		st.Message = statusBadgeStyle.Render(m.commandBadge(m.ui.command.cmd)) + " " + m.commandLineBody()
	case m.ui.noticeMsg != "":
		st.Message = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	}

	if logging.IsDebugMode() {
		st.Legend += fmt.Sprintf(" | dbg term=%dx%d mkt=%d/%d news=%d/%d",
			m.terminalWidth, m.terminalHeight,
			m.ui.marketScroll, len(m.data.filteredIndices),
			m.ui.newsScroll, m.data.news.Len(),
		)
	}
	return renderStatusLine(width, st)
}

// commandLineBody is the prompt or hints shown after the mode badge.
func (m *model) commandLineBody() string {
	if m.ui.command.cmd == CmdMark {
		return m.commandHintsLine(CmdMark)
	}
	return m.ui.input.View() + "  " + statusLegendStyle.Render(m.commandHintsLine(m.ui.command.cmd))
}

// renderStatusLine draws "Title────── right " across exactly width cells. The
// title keeps priority over the right hand text.
func renderStatusLine(width int, st statusState) string {
	if width <= 0 {
		return ""
	}
	titleW := runewidth.StringWidth(st.Title)
	avail := max(width-titleW-3, 0)

	right := st.Message
	if right == "" {
		right = statusLegendStyle.Render(runewidth.Truncate(st.Legend, avail, "…"))
	} else {
		right = widgets.Fit(right, min(lipgloss.Width(right), avail))
	}
	if lipgloss.Width(right) > 0 {
		right = " " + right + " "
	}

	ruleW := width - lipgloss.Width(right)
	return widgets.Fit(widgets.TopRule(ruleW, st.Title, statusRuleStyle)+right, width)
}
