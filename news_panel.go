package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/andareed/iron-ledger/market"
	"github.com/andareed/iron-ledger/widgets"
)

const newsTimeLayout = "15:04"

func (m *model) latestNewsView(width, height int) string {
	active := m.ui.activePanel == panelLatestNews
	border := panelBorderStyle(active)
	block := widgets.Block{Title: "Latest news", BorderStyle: border}
	innerW, innerH := block.Inner(width, height)

	items := m.data.news.Items()
	body := emptyStyle.Render("No news yet")
	if len(items) > 0 {
		content, offsets := renderNewsItems(items, innerW)
		vp := viewport.New(innerW, innerH)
		vp.SetContent(content)
		pos := min(m.ui.newsScroll, len(offsets)-1)
		vp.SetYOffset(offsets[pos])
		body = vp.View()
	}

	block.RightEdge = widgets.VerticalScrollbar(border).Cells(innerH, widgets.ScrollbarState{
		ContentLength:  len(items),
		Position:       m.ui.newsScroll,
		ViewportLength: scrollbarViewport,
	})
	return block.Render(width, height, body)
}

// renderNewsItems returns the panel content and the line each item starts on.
func renderNewsItems(items []market.NewsItem, width int) (string, []int) {
	var lines []string
	offsets := make([]int, 0, len(items))
	for i, item := range items {
		if i > 0 {
			lines = append(lines, "")
		}
		offsets = append(offsets, len(lines))
		lines = append(lines, newsTimeStyle.Render(item.Time.Format(newsTimeLayout))+" "+newsTickerStyle.Render(item.Ticker))
		lines = append(lines, wrapText(item.Headline, width)...)
	}
	return strings.Join(lines, "\n"), offsets
}
