// Package widgets holds the few drawing helpers Lip Gloss does not provide:
// a constraint splitter, titled border blocks and a scrollbar.
package widgets

type constraintKind int

const (
	kindLength constraintKind = iota
	kindMin
	kindFill
)

// Constraint sizes one segment of a Split.
type Constraint struct {
	kind  constraintKind
	value int
}

// Length is exactly n cells.
func Length(n int) Constraint { return Constraint{kind: kindLength, value: max(n, 0)} }

// Min is at least n cells and takes the leftover space when no Fill is present.
func Min(n int) Constraint { return Constraint{kind: kindMin, value: max(n, 0)} }

// Fill shares the leftover space with other Fills in proportion to weight.
func Fill(weight int) Constraint { return Constraint{kind: kindFill, value: max(weight, 0)} }

// Split divides total cells between constraints. When the fixed parts do not
// fit, segments are shrunk starting from the last one.
func Split(total int, cs ...Constraint) []int {
	return SplitSpaced(total, 0, cs...)
}

// SplitSpaced is Split with spacing cells between adjacent segments.
func SplitSpaced(total, spacing int, cs ...Constraint) []int {
	sizes := make([]int, len(cs))
	if len(cs) == 0 {
		return sizes
	}
	avail := total - spacing*(len(cs)-1)
	if avail < 0 {
		avail = 0
	}

	used := 0
	fillWeight := 0
	for i, c := range cs {
		switch c.kind {
		case kindLength, kindMin:
			sizes[i] = c.value
			used += c.value
		case kindFill:
			fillWeight += c.value
		}
	}

	for i := len(sizes) - 1; i >= 0 && used > avail; i-- {
		cut := min(sizes[i], used-avail)
		sizes[i] -= cut
		used -= cut
	}

	remaining := avail - used
	if remaining <= 0 {
		return sizes
	}

	if fillWeight > 0 {
		given := 0
		lastFill := -1
		for i, c := range cs {
			if c.kind != kindFill {
				continue
			}
			share := remaining * c.value / fillWeight
			sizes[i] += share
			given += share
			lastFill = i
		}
		// rounding leftovers go to the last fill
		sizes[lastFill] += remaining - given
		return sizes
	}

	for i := len(cs) - 1; i >= 0; i-- {
		if cs[i].kind == kindMin {
			sizes[i] += remaining
			break
		}
	}
	return sizes
}
