package widgets

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// ScrollbarState describes what the scrollbar represents.
type ScrollbarState struct {
	ContentLength  int
	Position       int
	ViewportLength int
}

type Scrollbar struct {
	Begin string
	End   string
	Track string
	Thumb string
	Style lipgloss.Style
}

func VerticalScrollbar(style lipgloss.Style) Scrollbar {
	return Scrollbar{Begin: "↑", End: "↓", Track: "║", Thumb: "█", Style: style}
}

// Cells renders the scrollbar top to bottom as length styled cells. Nothing is
// drawn for empty content.
func (s Scrollbar) Cells(length int, st ScrollbarState) []string {
	if length <= 0 || st.ContentLength <= 0 {
		return nil
	}
	cells := make([]string, 0, length)
	if length < 3 {
		for i := 0; i < length; i++ {
			cells = append(cells, s.Style.Render(s.Track))
		}
		return cells
	}

	track := length - 2
	start, size := ThumbSpan(track, st)
	cells = append(cells, s.Style.Render(s.Begin))
	for i := 0; i < track; i++ {
		sym := s.Track
		if i >= start && i < start+size {
			sym = s.Thumb
		}
		cells = append(cells, s.Style.Render(sym))
	}
	cells = append(cells, s.Style.Render(s.End))
	return cells
}

// ThumbSpan places the thumb on a track of the given length.
func ThumbSpan(track int, st ScrollbarState) (start, size int) {
	if track <= 0 || st.ContentLength <= 0 {
		return 0, 0
	}
	viewport := float64(st.ViewportLength)
	if viewport <= 0 {
		viewport = float64(track)
	}
	maxPos := float64(st.ContentLength - 1)
	pos := math.Max(0, math.Min(float64(st.Position), maxPos))
	span := maxPos + viewport
	t := float64(track)

	startF := math.Round(pos * t / span)
	endF := math.Round((pos + viewport) * t / span)
	startF = math.Max(0, math.Min(startF, t-1))
	endF = math.Max(0, math.Min(endF, t))

	start = int(startF)
	size = max(int(endF)-start, 1)
	return start, size
}
