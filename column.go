package main

import "github.com/andareed/iron-ledger/widgets"

type ColumnMeta struct {
	Name       string
	Constraint widgets.Constraint
}

var marketColumns = []ColumnMeta{
	{Name: "Ticker", Constraint: widgets.Length(8)},
	{Name: "Name", Constraint: widgets.Length(30)},
	{Name: "Price", Constraint: widgets.Length(10)},
	{Name: "Change%", Constraint: widgets.Length(7)},
	{Name: "Description", Constraint: widgets.Fill(1)},
}

const (
	columnSpacing       = 1
	minDescriptionWidth = 24
	gutterWidth         = 1
	scrollbarViewport   = 5
)

func columnConstraints(cols []ColumnMeta) []widgets.Constraint {
	cs := make([]widgets.Constraint, len(cols))
	for i, c := range cols {
		cs[i] = c.Constraint
	}
	return cs
}

// layoutColumns returns the rendered width of each column in a table of
// totalWidth cells.
func layoutColumns(cols []ColumnMeta, totalWidth int) []int {
	return widgets.SplitSpaced(totalWidth, columnSpacing, columnConstraints(cols)...)
}

// descriptionWrapWidth is the width descriptions are wrapped to. It is taken
// from the fill column laid out without spacing, floored at
// minDescriptionWidth, less the four spacing cells.
func descriptionWrapWidth(totalWidth int) int {
	widths := widgets.Split(totalWidth, columnConstraints(marketColumns)...)
	return max(widths[len(widths)-1], minDescriptionWidth) - 4
}
