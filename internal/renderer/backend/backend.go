// Package backend provides the surfaces the renderer draws to and the key
// sources that feed the editor.
//
// Three backends are provided:
//
//   - Terminal: a tcell screen; the default interactive backend
//   - Stream: ANSI escape sequences over any io.Writer, keys decoded from
//     any io.Reader, raw mode and live size through golang.org/x/term
//   - Grid: an in-memory character grid for tests and headless runs
//
// All coordinates are 0-indexed. Terminal and Stream also read key events
// and translate them into the abstract key.Event set.
package backend

import (
	"github.com/dshills/viteditor/internal/input/mode"
)

// CursorStyler is implemented by backends that can change the cursor shape.
type CursorStyler interface {
	SetCursorStyle(style mode.CursorStyle)
}
