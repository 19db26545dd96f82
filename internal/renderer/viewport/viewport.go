// Package viewport tracks which buffer rows are visible on screen.
//
// The viewport is a single row offset: the index of the topmost visible
// buffer row. Follow re-derives it after every cursor move so that the
// cursor row stays inside [RowOffset, RowOffset+visibleRows).
//
// The window is measured in buffer rows, not screen rows. When long lines
// wrap, a visible buffer row can still be pushed below the bottom of the
// screen by the rows above it.
package viewport

// Viewport represents the visible window of buffer rows.
// The zero value shows the buffer from its first row.
type Viewport struct {
	rowOffset int
}

// New creates a viewport whose first visible row is rowOffset.
func New(rowOffset int) Viewport {
	return Viewport{rowOffset: max(rowOffset, 0)}
}

// RowOffset returns the first visible buffer row.
func (v Viewport) RowOffset() int {
	return v.rowOffset
}

// Follow returns the viewport scrolled just enough to show row in a window
// of visibleRows rows. It scrolls up when row is above the window and down
// when it is below, and never moves further than needed.
//
// A visibleRows below 1 is treated as 1.
func (v Viewport) Follow(row, visibleRows int) Viewport {
	visibleRows = max(visibleRows, 1)
	v = v.Reveal(row)
	if row+1 >= visibleRows {
		v.rowOffset = max(v.rowOffset, row+1-visibleRows)
	}
	return v
}

// Reveal returns the viewport scrolled up so that it starts no lower than
// row. It is the part of Follow that needs no window size.
func (v Viewport) Reveal(row int) Viewport {
	v.rowOffset = min(v.rowOffset, max(row, 0))
	return v
}

// VisibleRange returns the half-open range of buffer rows in a window of
// visibleRows rows.
func (v Viewport) VisibleRange(visibleRows int) (start, end int) {
	return v.rowOffset, v.rowOffset + max(visibleRows, 0)
}

// IsRowVisible returns true if row lies inside a window of visibleRows rows.
func (v Viewport) IsRowVisible(row, visibleRows int) bool {
	start, end := v.VisibleRange(visibleRows)
	return row >= start && row < end
}
