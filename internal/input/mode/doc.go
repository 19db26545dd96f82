// Package mode provides the modal state machine of the editor.
//
// The machine is deliberately flat, with three states:
//   - Normal: navigation and commands (initial state)
//   - Insert: character entry
//   - Exit: terminal; every further event keeps the machine in Exit
//
// # Architecture
//
// Each mode interprets a key.Event into a Result: a named Action for the
// editor to apply and the mode to move to. Modes never touch the buffer or
// cursor themselves, which keeps them independent of both the editing
// engine and the platform key source.
//
//	┌─────────┐  i   ┌─────────┐
//	│ Normal  │ ───▶ │ Insert  │
//	│         │ ◀─── │         │
//	└─────────┘ Esc  └─────────┘
//	     │
//	     │ Exit
//	     ▼
//	┌─────────┐
//	│  Exit   │
//	└─────────┘
//
// The Machine holds the current mode and notifies change callbacks. Halting
// input once Exit is reached is the job of the event loop that drives the
// machine.
package mode
