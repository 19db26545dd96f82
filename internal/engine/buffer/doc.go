// Package buffer provides the line buffer that backs an editing session.
//
// A Buffer is an ordered sequence of lines, each line an ordered sequence of
// characters (runes). The buffer always holds at least one line: an empty
// document is a single empty line.
//
// The buffer has no editing behavior of its own beyond whole-line
// replacement. Character insertion, cursor motion and rendering are built on
// top of it by the engine and renderer packages.
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("hello\nworld")
//	buf.LineCount()         // 2
//	line := buf.Line(1)     // []rune("world"), a copy
//	buf.ReplaceLine(1, []rune("there"))
//
// Positions:
//
// A Position is a zero-based {Row, Column} pair. Column counts runes and may
// point one past the last character of the line, the append position.
//
// Contract violations:
//
// Row and column arguments are checked. An out-of-range access is a
// programming error and panics with a *PreconditionError rather than
// returning an error value. Callers are expected to keep their positions
// valid with Clamp or Valid.
package buffer
