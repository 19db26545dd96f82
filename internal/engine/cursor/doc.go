// Package cursor provides the edit cursor and its motions.
//
// A Cursor is an immutable value: a buffer.Position plus the word-index slot
// used by word motion. Motions return a new Cursor and never touch the
// buffer; they only read line lengths through the Lines interface.
//
// Motion rules:
//
//   - Right: column advances by one, stopping at one past the last character.
//   - Left: column retreats by one, stopping at zero.
//   - Up/Down: row changes by one when a neighbouring row exists; the column
//     is clamped to the new line's length but never extended.
//
// Viewport scrolling is not a cursor concern; see the renderer/viewport
// package.
package cursor
