// Package engine provides the editing session at the core of the editor.
//
// An Engine owns one document's Buffer together with its Cursor, Viewport,
// Word Index and the modal state machine. It is the single mutable
// aggregate of a session: input handlers mutate it through HandleEvent and
// the renderer reads it through the accessor methods.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - buffer: lines of runes and the Position type
//   - cursor: the immutable cursor value and its motions
//   - words: the precomputed word-end index for word motion
//
// and on input/mode for the Normal/Insert/Exit state machine and
// renderer/viewport for scroll re-derivation.
//
// # Event Handling
//
// HandleEvent runs one step of the state machine. The current mode turns
// the event into an action, the engine applies the action to the cursor and
// buffer, and the machine moves to its next mode:
//
//	e := engine.New(engine.WithContent("hello"), engine.WithSizer(surface))
//	e.HandleEvent(key.NewRuneEvent('i'))
//	e.HandleEvent(key.NewRuneEvent('x'))
//	e.HandleEvent(key.NewSpecialEvent(key.KeyEscape))
//	e.Buffer().LineText(0) // "xhello"
//
// # Thread Safety
//
// An Engine is not safe for concurrent use. The editor is single-threaded:
// one goroutine reads an event, applies it and renders, then repeats.
package engine
