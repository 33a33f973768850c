// Package gridlist implements a windowed (virtualized) grid list: given a
// large ordered collection it computes which subset intersects the current
// viewport and renders only that subset plus an overscan margin, so
// rendering cost is bounded by the viewport instead of the collection.
//
// The geometry lives in Layout and is unit-agnostic: heights, gaps and
// offsets are plain integers in whatever unit the caller measures the
// viewport in (terminal rows here). All Layout methods are pure functions
// of their inputs; nothing is cached between calls.
package gridlist

// Breakpoint is a named viewport-width tier used to pick a column count.
type Breakpoint int

const (
	BreakpointXS Breakpoint = iota
	BreakpointSM
	BreakpointMD
	BreakpointLG
	BreakpointXL
)

// Width tier boundaries. Exactly one tier matches any width: xs below SM,
// then sm/md/lg in order, xl for everything at or beyond the LG bound.
const (
	WidthSM = 60
	WidthMD = 90
	WidthLG = 120
	WidthXL = 160
)

// String returns the tier name.
func (b Breakpoint) String() string {
	switch b {
	case BreakpointXS:
		return "xs"
	case BreakpointSM:
		return "sm"
	case BreakpointMD:
		return "md"
	case BreakpointLG:
		return "lg"
	default:
		return "xl"
	}
}

// BreakpointFor resolves a viewport width to its tier.
func BreakpointFor(width int) Breakpoint {
	switch {
	case width < WidthSM:
		return BreakpointXS
	case width < WidthMD:
		return BreakpointSM
	case width < WidthLG:
		return BreakpointMD
	case width < WidthXL:
		return BreakpointLG
	default:
		return BreakpointXL
	}
}

// Columns maps each breakpoint tier to a column count.
type Columns struct {
	XS, SM, MD, LG, XL int
}

// DefaultColumns returns the default per-tier column counts.
func DefaultColumns() Columns {
	return Columns{XS: 1, SM: 2, MD: 3, LG: 4, XL: 4}
}

// For returns the column count for a tier. Non-positive configured values
// fall back to the tier default, so the result is always at least 1.
func (c Columns) For(bp Breakpoint) int {
	def := DefaultColumns()
	var n, d int
	switch bp {
	case BreakpointXS:
		n, d = c.XS, def.XS
	case BreakpointSM:
		n, d = c.SM, def.SM
	case BreakpointMD:
		n, d = c.MD, def.MD
	case BreakpointLG:
		n, d = c.LG, def.LG
	default:
		n, d = c.XL, def.XL
	}
	if n < 1 {
		return d
	}
	return n
}

// Layout holds the fixed geometry of a windowed grid.
type Layout struct {
	// ItemHeight is the fixed height of every item.
	ItemHeight int
	// Gap is the spacing between rows and between columns.
	Gap int
	// Overscan is the number of extra items included beyond the strictly
	// visible range, to mask pop-in while scrolling.
	Overscan int
	// EndThreshold is the distance from the bottom of the content at which
	// the end of the list counts as reached.
	EndThreshold int
	// Columns is the per-breakpoint column configuration.
	Columns Columns
}

// Default geometry values.
const (
	DefaultItemHeight   = 350
	DefaultGap          = 16
	DefaultOverscan     = 5
	DefaultEndThreshold = 200
)

// DefaultLayout returns a Layout with the default geometry.
func DefaultLayout() Layout {
	return Layout{
		ItemHeight:   DefaultItemHeight,
		Gap:          DefaultGap,
		Overscan:     DefaultOverscan,
		EndThreshold: DefaultEndThreshold,
		Columns:      DefaultColumns(),
	}
}

// Range is a half-open interval [Start, End) over the item sequence.
type Range struct {
	Start, End int
}

// Len returns the number of items in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// RowHeight returns the vertical stride of one row.
func (l Layout) RowHeight() int {
	return l.ItemHeight + l.Gap
}

// ColumnsFor resolves the column count for a viewport width.
func (l Layout) ColumnsFor(width int) int {
	return l.Columns.For(BreakpointFor(width))
}

// TotalHeight returns the height of the full content: rows stacked with a
// gap between them and no trailing gap, clamped to zero for an empty list.
func (l Layout) TotalHeight(itemCount, cols int) int {
	if cols < 1 {
		cols = 1
	}
	rows := (itemCount + cols - 1) / cols
	if rows == 0 {
		return 0
	}
	return rows*l.RowHeight() - l.Gap
}

// ItemWidth returns the width of one item so that cols items and cols-1
// gaps fit the container exactly. A zero (unmeasured) container width
// returns 0, meaning "use the full container width".
func (l Layout) ItemWidth(containerWidth, cols int) int {
	if containerWidth <= 0 {
		return 0
	}
	if cols < 1 {
		cols = 1
	}
	return (containerWidth - l.Gap*(cols-1)) / cols
}

// VisibleRange computes the half-open item index range that intersects the
// viewport at the given scroll offset, widened by the overscan margin.
// The result always satisfies 0 <= Start <= End <= itemCount.
func (l Layout) VisibleRange(scrollOffset, viewportHeight, itemCount, cols int) Range {
	if itemCount <= 0 {
		return Range{}
	}
	if cols < 1 {
		cols = 1
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}

	rowHeight := l.RowHeight()
	startRow := scrollOffset / rowHeight
	endRow := (scrollOffset + viewportHeight + rowHeight - 1) / rowHeight

	start := startRow*cols - l.Overscan
	if start < 0 {
		start = 0
	}
	end := (endRow+1)*cols + l.Overscan
	if end > itemCount {
		end = itemCount
	}
	if start > end {
		start = end
	}
	return Range{Start: start, End: end}
}

// Position returns the row/column cell and the top/left offset of the item
// at index, given the resolved column count and item width.
func (l Layout) Position(index, cols, itemWidth int) (row, col, top, left int) {
	if cols < 1 {
		cols = 1
	}
	row = index / cols
	col = index % cols
	top = row * l.RowHeight()
	left = col * (itemWidth + l.Gap)
	return row, col, top, left
}

// EndReached reports whether the scroll position is within EndThreshold of
// the bottom of the content. It is level-triggered: it holds on every call
// while the position stays near the bottom, and callers that act on it are
// responsible for deduplication.
func (l Layout) EndReached(scrollOffset, viewportHeight, totalHeight int) bool {
	return scrollOffset+viewportHeight+l.EndThreshold >= totalHeight
}
