// Package key provides the abstract key events consumed by the editor.
//
// Platform input (terminal byte streams, tcell events) is translated into
// this small event set before it reaches the modal state machine:
//
//   - Up, Down, Left, Right: arrow keys
//   - Esc: the escape key
//   - Exit: a request to end the session
//   - Rune: a character, carried in Event.Rune
//   - Ctrl: a control chord, the letter carried in Event.Rune
//
// # Key Specifications
//
// Parse and ParseSequence read the Vim-style notation used in the
// configuration file and on the command line:
//
//   - Simple keys: "a", "q", "1"
//   - Named keys: "<Esc>", "<Up>", "<Space>", "<Exit>", "<lt>"
//   - Control chords: "<C-c>", or "C-c" when standing alone
package key
