package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/andareed/iron-ledger/market"
	"github.com/andareed/iron-ledger/widgets"
)

type cell struct {
	lines []string
	style lipgloss.Style
}

func textCell(s string, style lipgloss.Style) cell {
	return cell{lines: []string{s}, style: style}
}

func buildHeaderRow(cols []ColumnMeta) []cell {
	cells := make([]cell, len(cols))
	for i, c := range cols {
		cells[i] = textCell(c.Name, headerStyle)
	}
	return cells
}

func buildMarketRow(q market.StockQuote, currencySymbol string, descriptionWidth int) []cell {
	pct := q.Quote.ChangePercent()
	changeStyle := gainStyle
	if pct < 0 {
		changeStyle = lossStyle
	}
	return []cell{
		textCell(q.Company.Ticker, cellStyle),
		textCell(q.Company.Name, cellStyle),
		textCell(fmt.Sprintf("%7.2f %-3s", q.Quote.Price, currencySymbol), cellStyle),
		textCell(fmt.Sprintf("%6.2f%%", pct), changeStyle),
		{lines: wrapText(q.Company.Description, descriptionWidth), style: cellStyle},
	}
}

// wrapText word-wraps s and hard-wraps words longer than width.
func wrapText(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	return strings.Split(wrap.String(wordwrap.String(s, width), width), "\n")
}

// renderRow lays cells out side by side. The row is as tall as its tallest
// cell and base fills in whatever the cell styles leave unset.
func renderRow(cells []cell, widths []int, base lipgloss.Style) []string {
	height := 1
	for _, c := range cells {
		height = max(height, len(c.lines))
	}
	spacer := base.Render(strings.Repeat(" ", columnSpacing))

	lines := make([]string, height)
	for j := range lines {
		var b strings.Builder
		for k, c := range cells {
			if k >= len(widths) {
				break
			}
			if k > 0 {
				b.WriteString(spacer)
			}
			text := ""
			if j < len(c.lines) {
				text = c.lines[j]
			}
			b.WriteString(c.style.Inherit(base).Render(widgets.Fit(text, widths[k])))
		}
		lines[j] = b.String()
	}
	return lines
}

// quoteLine is the tab separated form used for the clipboard.
func quoteLine(q market.StockQuote, currencySymbol string) string {
	return strings.Join([]string{
		q.Company.Ticker,
		q.Company.Name,
		fmt.Sprintf("%.2f %s", q.Quote.Price, currencySymbol),
		fmt.Sprintf("%.2f%%", q.Quote.ChangePercent()),
		q.Company.Description,
	}, "\t")
}
