// Package renderer draws an editing session onto a character grid.
//
// The renderer is responsible for:
//   - Walking the visible buffer rows starting at the viewport offset
//   - Wrapping lines longer than the surface width onto further screen rows
//   - Clipping at the bottom of the surface
//   - Locating the cursor on screen and placing the surface cursor there
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│   Engine (buffer, cursor, row offset)   │
//	├─────────────────────────────────────────┤
//	│           Renderer.Draw                 │
//	├─────────────────────────────────────────┤
//	│           Surface interface             │
//	├─────────────────────────────────────────┤
//	│  tcell Terminal │ ANSI Stream │ Grid    │
//	└─────────────────────────────────────────┘
//
// All platform details live behind Surface. The renderer uses absolute
// positioning only, with 0-indexed coordinates, so it does not depend on
// how a surface encodes line breaks.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term)
//	frame, err := r.Render(session)
package renderer
