package backend

import (
	"strings"

	"github.com/dshills/viteditor/internal/input/mode"
)

// Grid is an in-memory surface. Writes outside the grid are dropped.
type Grid struct {
	rows, cols int
	cells      [][]rune

	// drawing position
	row, col int

	cursorHidden bool
	cursorStyle  mode.CursorStyle
	flushes      int
}

// NewGrid creates a grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Resize(rows, cols)
	return g
}

// Resize changes the grid size and blanks it.
func (g *Grid) Resize(rows, cols int) {
	g.rows = max(rows, 0)
	g.cols = max(cols, 0)
	g.cells = make([][]rune, g.rows)
	for i := range g.cells {
		g.cells[i] = make([]rune, g.cols)
	}
	g.blank()
}

func (g *Grid) blank() {
	for _, line := range g.cells {
		for i := range line {
			line[i] = ' '
		}
	}
}

// ClearAll blanks the grid and shows the cursor again.
func (g *Grid) ClearAll() error {
	g.blank()
	g.row, g.col = 0, 0
	g.cursorHidden = false
	return nil
}

// Goto moves the drawing position.
func (g *Grid) Goto(row, col int) error {
	g.row, g.col = row, col
	return nil
}

// WriteString draws s at the drawing position, one cell per rune.
func (g *Grid) WriteString(s string) error {
	for _, r := range s {
		if g.row >= 0 && g.row < g.rows && g.col >= 0 && g.col < g.cols {
			g.cells[g.row][g.col] = r
		}
		g.col++
	}
	return nil
}

// Flush counts the flush; the grid has nothing to synchronise.
func (g *Grid) Flush() error {
	g.flushes++
	return nil
}

// TerminalSize returns the grid size.
func (g *Grid) TerminalSize() (int, int) {
	return g.rows, g.cols
}

// HideCursor hides the cursor until the next ClearAll.
func (g *Grid) HideCursor() {
	g.cursorHidden = true
}

// SetCursorStyle records the cursor style.
func (g *Grid) SetCursorStyle(style mode.CursorStyle) {
	g.cursorStyle = style
}

// CursorPosition returns the drawing position and whether the cursor is shown.
func (g *Grid) CursorPosition() (row, col int, visible bool) {
	return g.row, g.col, !g.cursorHidden
}

// CursorStyle returns the last cursor style set.
func (g *Grid) CursorStyle() mode.CursorStyle {
	return g.cursorStyle
}

// Flushes returns the number of Flush calls.
func (g *Grid) Flushes() int {
	return g.flushes
}

// Row returns screen row i with trailing blanks removed.
func (g *Grid) Row(i int) string {
	if i < 0 || i >= g.rows {
		return ""
	}
	return strings.TrimRight(string(g.cells[i]), " ")
}

// String returns all rows joined by newlines, trailing blank rows removed.
func (g *Grid) String() string {
	lines := make([]string, g.rows)
	for i := range lines {
		lines[i] = g.Row(i)
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
