package cursor

import (
	"testing"

	"github.com/dshills/viteditor/internal/engine/buffer"
)

func TestNewCursorClampsNegative(t *testing.T) {
	c := NewCursor(Position{Row: -2, Column: -1})
	if c.Position() != (Position{}) {
		t.Errorf("expected origin, got %v", c.Position())
	}
}

func TestRightStopsAtLineEnd(t *testing.T) {
	buf := buffer.NewBufferFromString("ab")
	c := NewCursor(Position{})

	for i := 0; i < 3; i++ {
		c = c.Right(buf)
	}

	if c.Column() != 2 {
		t.Errorf("expected column 2, got %d", c.Column())
	}
}

func TestLeftStopsAtZero(t *testing.T) {
	c := NewCursor(Position{Row: 0, Column: 1})

	c = c.Left().Left()

	if c.Column() != 0 {
		t.Errorf("expected column 0, got %d", c.Column())
	}
}

func TestRightLeftRoundTrip(t *testing.T) {
	buf := buffer.NewBufferFromString("hello\n\nworld!")

	for row := 0; row < buf.LineCount(); row++ {
		for col := 0; col <= buf.LineLen(row); col++ {
			c := NewCursor(Position{Row: row, Column: col})
			moved := c.Right(buf)
			back := moved.Left()
			if moved.Column() == col {
				// At line end Right is a no-op.
				if col != buf.LineLen(row) {
					t.Errorf("Right did not move at (%d,%d)", row, col)
				}
				continue
			}
			if back.Column() != col {
				t.Errorf("Right then Left from (%d,%d) ended at column %d", row, col, back.Column())
			}
		}
	}
}

func TestDownUpClampColumn(t *testing.T) {
	buf := buffer.NewBufferFromString("a\nbb\nc")
	c := NewCursor(Position{})

	c = c.Down(buf).Down(buf)
	if c.Position() != (Position{Row: 2, Column: 0}) {
		t.Fatalf("expected (2:0), got %v", c.Position())
	}

	c = c.Up(buf)
	if c.Row() != 1 || c.Column() > 2 {
		t.Errorf("expected row 1 with column <= 2, got %v", c.Position())
	}
}

func TestVerticalMotionNeverExtendsColumn(t *testing.T) {
	buf := buffer.NewBufferFromString("long line\nab\nanother long line")
	c := NewCursor(Position{Row: 0, Column: 8})

	c = c.Down(buf)
	if c.Column() != 2 {
		t.Errorf("expected column clamped to 2, got %d", c.Column())
	}

	c = c.Down(buf)
	if c.Column() != 2 {
		t.Errorf("column should stay at 2 on a longer line, got %d", c.Column())
	}
}

func TestVerticalMotionAtEdges(t *testing.T) {
	buf := buffer.NewBufferFromString("x\ny")

	top := NewCursor(Position{}).Up(buf)
	if top.Row() != 0 {
		t.Errorf("Up at top moved to row %d", top.Row())
	}

	bottom := NewCursor(Position{Row: 1}).Down(buf)
	if bottom.Row() != 1 {
		t.Errorf("Down at bottom moved to row %d", bottom.Row())
	}
}

func TestWordPos(t *testing.T) {
	c := NewCursor(Position{Row: 1, Column: 1}).WithWordPos(4)
	if c.WordPos() != 4 {
		t.Errorf("expected word slot 4, got %d", c.WordPos())
	}

	moved := c.MoveTo(Position{Row: 0, Column: 0})
	if moved.WordPos() != 4 {
		t.Error("MoveTo should keep the word slot")
	}
	if moved.String() != "Cursor(0:0)" {
		t.Errorf("String() = %q", moved.String())
	}
}
