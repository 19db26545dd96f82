package renderer

// Surface is the output sink the renderer draws to.
//
// Coordinates are 0-indexed. TerminalSize is queried on every draw and must
// report the live size so resizes take effect on the next pass.
type Surface interface {
	// ClearAll blanks the whole surface.
	ClearAll() error

	// Goto moves the drawing position to (row, col).
	Goto(row, col int) error

	// WriteString draws s at the drawing position and advances it.
	WriteString(s string) error

	// Flush makes everything drawn since the last flush visible.
	Flush() error

	// TerminalSize returns the current size in character cells.
	TerminalSize() (rows, cols int)
}

// CursorHider is implemented by surfaces that can hide their cursor.
// The renderer hides the cursor when it falls outside the drawn area.
type CursorHider interface {
	HideCursor()
}

// surfaceWriter wraps a Surface and remembers the first error.
// After an error every further call is skipped.
type surfaceWriter struct {
	s   Surface
	err error
}

func (w *surfaceWriter) clear() {
	if w.err == nil {
		w.err = w.s.ClearAll()
	}
}

func (w *surfaceWriter) gotoCell(row, col int) {
	if w.err == nil {
		w.err = w.s.Goto(row, col)
	}
}

func (w *surfaceWriter) write(s string) {
	if w.err == nil && s != "" {
		w.err = w.s.WriteString(s)
	}
}

func (w *surfaceWriter) flush() {
	if w.err == nil {
		w.err = w.s.Flush()
	}
}
