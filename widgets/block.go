package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Block is a box with a normal border and a title in the top edge.
type Block struct {
	Title       string
	BorderStyle lipgloss.Style

	// RightEdge, when set, replaces the right border cell on the inner rows.
	// Missing entries fall back to the border.
	RightEdge []string
}

// Inner returns the content size of a width x height block.
func (b Block) Inner(width, height int) (int, int) {
	return max(width-2, 0), max(height-2, 0)
}

// Render draws the block with content clipped to the inner area.
func (b Block) Render(width, height int, content string) string {
	if width < 2 || height < 2 {
		return strings.Join(FitLines(nil, width, height), "\n")
	}
	border := lipgloss.NormalBorder()
	innerW, innerH := b.Inner(width, height)
	edge := b.BorderStyle.Render

	title := Fit(b.Title, min(lipgloss.Width(b.Title), innerW))
	top := edge(border.TopLeft) + title +
		edge(strings.Repeat(border.Top, innerW-lipgloss.Width(title))) +
		edge(border.TopRight)

	lines := make([]string, 0, height)
	lines = append(lines, top)
	for i, line := range FitLines(Lines(content), innerW, innerH) {
		right := edge(border.Right)
		if i < len(b.RightEdge) && b.RightEdge[i] != "" {
			right = b.RightEdge[i]
		}
		lines = append(lines, edge(border.Left)+line+right)
	}
	lines = append(lines, edge(border.BottomLeft+strings.Repeat(border.Bottom, innerW)+border.BottomRight))
	return strings.Join(lines, "\n")
}

// TopRule draws a single top border line with title at its left end, the way
// a block with only a top border looks when it is one row high.
func TopRule(width int, title string, style lipgloss.Style) string {
	if width <= 0 {
		return ""
	}
	title = Fit(title, min(lipgloss.Width(title), width))
	rest := width - lipgloss.Width(title)
	return title + style.Render(strings.Repeat(lipgloss.NormalBorder().Top, rest))
}
