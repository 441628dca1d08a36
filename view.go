package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/iron-ledger/logging"
	"github.com/andareed/iron-ledger/widgets"
)

const appTitle = "The Iron Ledger"

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return lipgloss.Place(
			m.terminalWidth, m.terminalHeight,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color(overlayBGColor)),
		)
	}

	w := m.terminalWidth
	rows := widgets.Split(m.terminalHeight, widgets.Length(1), widgets.Min(0), widgets.Length(1))
	cols := widgets.Split(w, widgets.Fill(1), widgets.Fill(1))

	var parts []string
	if rows[0] > 0 {
		parts = append(parts, m.titleView(w))
	}
	if rows[1] > 0 {
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top,
			m.marketDataView(cols[0], rows[1]),
			m.latestNewsView(cols[1], rows[1]),
		))
	}
	if rows[2] > 0 {
		parts = append(parts, m.statusView(w))
	}
	return strings.Join(parts, "\n")
}

func (m *model) titleView(width int) string {
	centered := lipgloss.PlaceHorizontal(width, lipgloss.Center, titleStyle.Render(appTitle))
	return widgets.Fit(centered, width)
}

func (m *model) marketDataView(width, height int) string {
	active := m.ui.activePanel == panelMarketData
	border := panelBorderStyle(active)
	block := widgets.Block{Title: "Realtime market data", BorderStyle: border}

	innerW, innerH := block.Inner(width, height)
	areas := widgets.Split(innerH, widgets.Fill(1), widgets.Length(1))

	lines := m.renderMarketTable(innerW, areas[0], active)
	if areas[1] > 0 {
		lines = append(lines, widgets.Fit(panelStatusStyle.Render(m.marketStatusText()), innerW))
	}

	block.RightEdge = widgets.VerticalScrollbar(border).Cells(innerH, widgets.ScrollbarState{
		ContentLength:  len(m.data.filteredIndices),
		Position:       m.ui.marketScroll,
		ViewportLength: scrollbarViewport,
	})
	return block.Render(width, height, strings.Join(lines, "\n"))
}

func (m *model) marketStatusText() string {
	text := "Prices in " + m.data.currency.NamePlural
	if p := m.filterPattern(); p != "" {
		text += " · filter /" + p + "/"
	}
	if m.data.showOnlyMarked {
		text += " · marked only"
	}
	return text
}

// renderMarketTable draws the header and as many quotes from the scroll
// position as fit in height lines. The first quote is always drawn, clipped
// if needed.
func (m *model) renderMarketTable(width, height int, active bool) []string {
	logging.Debug("renderMarketTable called")
	if height <= 0 {
		return nil
	}
	tableWidth := max(width-gutterWidth, 0)
	widths := layoutColumns(marketColumns, tableWidth)
	descWidth := descriptionWrapWidth(tableWidth)

	lines := make([]string, 0, height)
	for _, l := range renderRow(buildHeaderRow(marketColumns), widths, headerStyle) {
		lines = append(lines, defaultMarker+l)
	}
	lines = append(lines, "") // header bottom margin

	if len(m.data.filteredIndices) == 0 {
		lines = append(lines, defaultMarker+emptyStyle.Render("No quotes match the current filter"))
	}

	for i := m.ui.marketScroll; i < len(m.data.filteredIndices); i++ {
		q := m.data.quotes[m.data.filteredIndices[i]]
		base := cellStyle
		if active && i == m.ui.marketScroll {
			base = rowSelectedStyle
		}
		rowLines := renderRow(buildMarketRow(q, m.data.currency.Symbol, descWidth), widths, base)
		if len(lines)+len(rowLines) > height && i > m.ui.marketScroll {
			break
		}
		marker := m.getMarker(q.Company.Ticker)
		for j, l := range rowLines {
			gutter := defaultMarker
			if j == 0 {
				gutter = marker
			}
			lines = append(lines, gutter+l)
		}
		if len(lines) >= height {
			break
		}
	}
	return widgets.FitLines(lines, width, height)
}

func (m *model) getMarker(ticker string) string {
	switch m.data.marks[markKey(ticker)] {
	case MarkRed:
		return redMarker.Render(pillMarker)
	case MarkGreen:
		return greenMarker.Render(pillMarker)
	case MarkAmber:
		return amberMarker.Render(pillMarker)
	default:
		return defaultMarker
	}
}
