package cursor

import (
	"fmt"

	"github.com/dshills/viteditor/internal/engine/buffer"
)

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// Lines is the read-only view of a buffer needed by cursor motions.
// *buffer.Buffer implements it.
type Lines interface {
	LineCount() int
	LineLen(row int) int
}

// Cursor represents the edit position in the buffer.
// Cursor is an immutable value type.
type Cursor struct {
	pos     Position
	wordPos int
}

// NewCursor creates a cursor at the given position.
// Negative coordinates are clamped to zero.
func NewCursor(pos Position) Cursor {
	return Cursor{pos: Position{Row: max(pos.Row, 0), Column: max(pos.Column, 0)}}
}

// Position returns the cursor position.
func (c Cursor) Position() Position {
	return c.pos
}

// Row returns the cursor row.
func (c Cursor) Row() int {
	return c.pos.Row
}

// Column returns the cursor column.
func (c Cursor) Column() int {
	return c.pos.Column
}

// WordPos returns the word-index slot reserved for word motion.
func (c Cursor) WordPos() int {
	return c.wordPos
}

// WithWordPos returns a copy of the cursor with the word slot set.
func (c Cursor) WithWordPos(i int) Cursor {
	c.wordPos = i
	return c
}

// MoveTo returns a cursor at pos, keeping the word slot.
func (c Cursor) MoveTo(pos Position) Cursor {
	c.pos = NewCursor(pos).pos
	return c
}

// Right moves one column right, never past the end of the line.
func (c Cursor) Right(lines Lines) Cursor {
	c.pos.Column = min(c.pos.Column+1, lines.LineLen(c.pos.Row))
	return c
}

// Left moves one column left, never before column zero.
func (c Cursor) Left() Cursor {
	if c.pos.Column > 0 {
		c.pos.Column--
	}
	return c
}

// Up moves one row up if possible, clamping the column to the new line.
func (c Cursor) Up(lines Lines) Cursor {
	if c.pos.Row > 0 {
		c.pos.Row--
		c.pos.Column = min(c.pos.Column, lines.LineLen(c.pos.Row))
	}
	return c
}

// Down moves one row down if possible, clamping the column to the new line.
func (c Cursor) Down(lines Lines) Cursor {
	if c.pos.Row+1 < lines.LineCount() {
		c.pos.Row++
		c.pos.Column = min(c.pos.Column, lines.LineLen(c.pos.Row))
	}
	return c
}

// String returns a human-readable representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor%s", c.pos)
}
