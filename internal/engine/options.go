package engine

import (
	"github.com/dshills/viteditor/internal/engine/buffer"
	"github.com/dshills/viteditor/internal/engine/words"
	"github.com/dshills/viteditor/internal/input/key"
	"github.com/dshills/viteditor/internal/input/mode"
)

// Sizer reports the current terminal size. It is queried on every scroll so
// that resizes take effect immediately. Rendering surfaces implement it.
type Sizer interface {
	TerminalSize() (rows, cols int)
}

// EventHook is called after every handled event with the event and the
// result of the transition.
type EventHook func(ev key.Event, res mode.Result)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithContent sets the initial content of the engine.
// The word index is parsed from the same content.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.buf = buffer.NewBufferFromString(content)
		e.words = words.Parse(content)
	}
}

// WithBuffer sets the initial buffer.
func WithBuffer(buf *buffer.Buffer) Option {
	return func(e *Engine) {
		if buf != nil {
			e.buf = buf
		}
	}
}

// WithWords sets the word index consulted by word motion.
func WithWords(idx *words.Index) Option {
	return func(e *Engine) {
		if idx != nil {
			e.words = idx
		}
	}
}

// WithSizer sets the terminal size source used by scrolling.
// Without a sizer the viewport only scrolls up to follow the cursor.
func WithSizer(s Sizer) Option {
	return func(e *Engine) {
		e.sizer = s
	}
}

// WithEventHook registers a hook called after every handled event.
func WithEventHook(hook EventHook) Option {
	return func(e *Engine) {
		e.hooks = append(e.hooks, hook)
	}
}
