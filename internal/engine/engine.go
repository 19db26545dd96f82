package engine

import (
	"github.com/dshills/viteditor/internal/engine/buffer"
	"github.com/dshills/viteditor/internal/engine/cursor"
	"github.com/dshills/viteditor/internal/engine/words"
	"github.com/dshills/viteditor/internal/input/key"
	"github.com/dshills/viteditor/internal/input/mode"
	"github.com/dshills/viteditor/internal/renderer/viewport"
)

// Re-export commonly used types for convenience.
type (
	// Position is a row/column position in the buffer.
	Position = buffer.Position

	// Cursor is the edit cursor.
	Cursor = cursor.Cursor

	// Mode is an editor mode.
	Mode = mode.Mode
)

// Engine is an editing session: buffer, cursor, viewport, word index and
// mode, owned together.
type Engine struct {
	buf      *buffer.Buffer
	cursor   cursor.Cursor
	viewport viewport.Viewport
	words    *words.Index
	machine  *mode.Machine

	sizer Sizer
	hooks []EventHook
}

// New creates an engine. Without options it holds one empty line with the
// cursor at the origin in Normal mode.
func New(opts ...Option) *Engine {
	e := &Engine{
		buf:     buffer.NewBuffer(),
		words:   words.NewIndex(nil),
		machine: mode.NewMachine(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Open replaces the document wholesale. The cursor returns to the origin,
// the viewport to the top and the word pointer to the first word. The mode
// is kept.
func (e *Engine) Open(buf *buffer.Buffer, idx *words.Index) {
	if buf == nil {
		buf = buffer.NewBuffer()
	}
	if idx == nil {
		idx = words.NewIndex(nil)
	}
	e.buf = buf
	e.words = idx
	e.cursor = cursor.NewCursor(Position{})
	e.viewport = viewport.New(0)
}

// SetSizer replaces the terminal size source, for backends attached after
// creation.
func (e *Engine) SetSizer(s Sizer) {
	e.sizer = s
}

// Buffer returns the document buffer.
func (e *Engine) Buffer() *buffer.Buffer {
	return e.buf
}

// Cursor returns the current cursor.
func (e *Engine) Cursor() cursor.Cursor {
	return e.cursor
}

// CursorPosition returns the current cursor position.
func (e *Engine) CursorPosition() Position {
	return e.cursor.Position()
}

// Viewport returns the current viewport.
func (e *Engine) Viewport() viewport.Viewport {
	return e.viewport
}

// RowOffset returns the first visible buffer row.
func (e *Engine) RowOffset() int {
	return e.viewport.RowOffset()
}

// Words returns the word index.
func (e *Engine) Words() *words.Index {
	return e.words
}

// Mode returns the current mode.
func (e *Engine) Mode() mode.Mode {
	return e.machine.Current()
}

// Machine returns the state machine, for registering change callbacks.
func (e *Engine) Machine() *mode.Machine {
	return e.machine
}

// SetCursor moves the cursor to pos and re-derives the viewport.
// pos must be a valid buffer position.
func (e *Engine) SetCursor(pos Position) {
	if !e.buf.Valid(pos) {
		panic(&buffer.PreconditionError{Op: "set_cursor", Row: pos.Row, Column: pos.Column, Limit: e.buf.LineCount()})
	}
	e.cursor = e.cursor.MoveTo(pos)
	e.Scroll()
}

// HandleEvent runs one transition of the state machine and applies the
// resulting action. It returns the mode after the event.
func (e *Engine) HandleEvent(ev key.Event) mode.Mode {
	res := e.machine.Step(ev)
	e.apply(res.Action)

	for _, hook := range e.hooks {
		hook(ev, res)
	}

	return e.machine.Current()
}

// apply executes an action produced by a mode.
func (e *Engine) apply(action mode.Action) {
	switch action.Name {
	case mode.ActionCursorUp:
		e.CursorUp()
	case mode.ActionCursorDown:
		e.CursorDown()
	case mode.ActionCursorLeft:
		e.CursorLeft()
	case mode.ActionCursorRight:
		e.CursorRight()
	case mode.ActionWordEnd:
		e.SkipWord()
	case mode.ActionInsert:
		e.Insert(action.Rune)
	}
}
