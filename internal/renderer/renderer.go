package renderer

import (
	"fmt"
	"strings"

	"github.com/dshills/viteditor/internal/engine/buffer"
)

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// BufferReader provides read access to buffer content.
// *buffer.Buffer implements it.
type BufferReader interface {
	// LineCount returns the number of lines.
	LineCount() int

	// Line returns the characters of a line (0-indexed).
	Line(row int) []rune
}

// Session is the editing state the renderer reads.
type Session interface {
	Buffer() *buffer.Buffer
	CursorPosition() buffer.Position
	RowOffset() int
}

// Frame describes the result of one draw pass.
type Frame struct {
	// Rows and Cols are the surface size used for the pass.
	Rows, Cols int

	// Cursor is the screen cell of the editor cursor. Valid only when
	// CursorVisible is true.
	Cursor Position

	// CursorVisible is false when the cursor was not reached before
	// the walk stopped.
	CursorVisible bool

	// ScreenRows is the number of screen rows the walk started.
	ScreenRows int

	// LastRow is the last buffer row the walk visited, or -1 if none.
	LastRow int

	// Clipped is true when drawing stopped at the bottom of the surface
	// before the end of the buffer. A past-end column that falls below the
	// surface does not count; only undrawn characters do.
	Clipped bool
}

// Renderer draws sessions onto a Surface.
type Renderer struct {
	surface Surface
}

// New creates a renderer for the given surface.
func New(surface Surface) *Renderer {
	return &Renderer{surface: surface}
}

// Surface returns the surface the renderer draws to.
func (r *Renderer) Surface() Surface {
	return r.surface
}

// Render draws the session's buffer from its row offset.
func (r *Renderer) Render(s Session) (Frame, error) {
	return r.Draw(s.Buffer(), s.CursorPosition(), s.RowOffset())
}

// Draw performs one full pass: clear, draw the rows visible from rowOffset
// with wrapping and clipping, place the cursor, flush.
func (r *Renderer) Draw(buf BufferReader, cursor Position, rowOffset int) (Frame, error) {
	rows, cols := r.surface.TerminalSize()
	frame := Frame{Rows: rows, Cols: cols, LastRow: -1}

	w := &surfaceWriter{s: r.surface}
	w.clear()
	w.gotoCell(0, 0)

	if rows > 0 && cols > 0 {
		frame = walk(w, buf, cursor, rowOffset, frame)
	}

	if frame.CursorVisible {
		w.gotoCell(frame.Cursor.Row, frame.Cursor.Column)
	} else if h, ok := r.surface.(CursorHider); ok && w.err == nil {
		h.HideCursor()
	}
	w.flush()

	if w.err != nil {
		return frame, fmt.Errorf("renderer: draw: %w", w.err)
	}
	return frame, nil
}

// walk draws buffer rows from rowOffset until the buffer ends or the surface
// is full. Every row is walked one column past its last character so a
// cursor at end of line is found.
func walk(w *surfaceWriter, buf BufferReader, cursor Position, rowOffset int, frame Frame) Frame {
	var seg strings.Builder
	flushSeg := func() {
		w.write(seg.String())
		seg.Reset()
	}

	screenRow, screenCol := 0, 0
	lineCount := buf.LineCount()

rows:
	for row := max(rowOffset, 0); row < lineCount; row++ {
		frame.LastRow = row
		line := buf.Line(row)

		for col := 0; col <= len(line); col++ {
			if row == cursor.Row && col == cursor.Column {
				frame.Cursor = Position{Row: screenRow, Column: screenCol}
				frame.CursorVisible = true
			}
			if col == len(line) {
				break
			}

			seg.WriteRune(line[col])
			screenCol++
			if screenCol >= frame.Cols {
				flushSeg()
				screenRow++
				screenCol = 0
				if screenRow >= frame.Rows {
					frame.Clipped = col+1 < len(line) || row+1 < lineCount
					break rows
				}
				w.gotoCell(screenRow, 0)
			}
		}

		flushSeg()
		screenRow++
		screenCol = 0
		if screenRow >= frame.Rows {
			frame.Clipped = row+1 < lineCount
			break
		}
		w.gotoCell(screenRow, 0)
	}

	frame.ScreenRows = min(screenRow, frame.Rows)
	return frame
}
