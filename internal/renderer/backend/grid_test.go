package backend

import (
	"testing"

	"github.com/dshills/viteditor/internal/input/mode"
)

func TestGridWriteAndRead(t *testing.T) {
	g := NewGrid(3, 5)

	_ = g.Goto(1, 1)
	_ = g.WriteString("hi")

	if got := g.Row(1); got != " hi" {
		t.Errorf("Row(1) = %q, want %q", got, " hi")
	}
	row, col, visible := g.CursorPosition()
	if row != 1 || col != 3 || !visible {
		t.Errorf("CursorPosition = (%d,%d,%v), want (1,3,true)", row, col, visible)
	}
}

func TestGridDropsOutOfBounds(t *testing.T) {
	g := NewGrid(2, 3)

	_ = g.Goto(0, 1)
	_ = g.WriteString("abcd")
	_ = g.Goto(5, 0)
	_ = g.WriteString("x")

	if got := g.String(); got != " ab" {
		t.Errorf("String() = %q, want %q", got, " ab")
	}
	if g.Row(-1) != "" || g.Row(2) != "" {
		t.Error("out of range rows should be empty")
	}
}

func TestGridClearAll(t *testing.T) {
	g := NewGrid(2, 3)
	_ = g.WriteString("abc")
	g.HideCursor()

	_ = g.ClearAll()

	if g.String() != "" {
		t.Errorf("String() after ClearAll = %q", g.String())
	}
	if _, _, visible := g.CursorPosition(); !visible {
		t.Error("ClearAll should show the cursor again")
	}
}

func TestGridResize(t *testing.T) {
	g := NewGrid(1, 1)
	g.Resize(4, 7)

	rows, cols := g.TerminalSize()
	if rows != 4 || cols != 7 {
		t.Errorf("TerminalSize = (%d,%d), want (4,7)", rows, cols)
	}

	g.Resize(-1, -1)
	rows, cols = g.TerminalSize()
	if rows != 0 || cols != 0 {
		t.Errorf("negative Resize = (%d,%d), want (0,0)", rows, cols)
	}
}

func TestGridFlushAndStyle(t *testing.T) {
	g := NewGrid(1, 1)
	_ = g.Flush()
	_ = g.Flush()
	if g.Flushes() != 2 {
		t.Errorf("Flushes = %d, want 2", g.Flushes())
	}

	g.SetCursorStyle(mode.CursorBar)
	if g.CursorStyle() != mode.CursorBar {
		t.Errorf("CursorStyle = %v, want %v", g.CursorStyle(), mode.CursorBar)
	}
}
