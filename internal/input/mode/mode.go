package mode

// Mode identifies an editor mode.
type Mode uint8

const (
	// Normal interprets keys as motions and commands.
	Normal Mode = iota

	// Insert interprets printable keys as text.
	Insert

	// Exit is the terminal state.
	Exit
)

// String returns the mode identifier.
func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Insert:
		return "insert"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for status display.
func (m Mode) DisplayName() string {
	switch m {
	case Normal:
		return "NORMAL"
	case Insert:
		return "INSERT"
	case Exit:
		return "EXIT"
	default:
		return "UNKNOWN"
	}
}

// CursorStyle returns the cursor style for this mode.
func (m Mode) CursorStyle() CursorStyle {
	switch m {
	case Insert:
		return CursorBar
	case Exit:
		return CursorHidden
	default:
		return CursorBlock
	}
}

// IsTerminal returns true if no event can leave this mode.
func (m Mode) IsTerminal() bool {
	return m == Exit
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (normal mode).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert mode).
	CursorBar

	// CursorHidden hides the cursor.
	CursorHidden
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	case CursorHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Action names produced by the modes.
const (
	ActionNone        = ""
	ActionCursorUp    = "cursor.up"
	ActionCursorDown  = "cursor.down"
	ActionCursorLeft  = "cursor.left"
	ActionCursorRight = "cursor.right"
	ActionWordEnd     = "cursor.word_end"
	ActionInsert      = "editor.insert"
	ActionModeInsert  = "mode.insert"
	ActionModeNormal  = "mode.normal"
	ActionExit        = "editor.exit"
)

// Action represents a command for the editor to apply.
type Action struct {
	Name string

	// Rune is the character to insert for ActionInsert.
	Rune rune
}

// IsNone returns true if the action does nothing.
func (a Action) IsNone() bool {
	return a.Name == ActionNone
}

// Result describes how a mode interpreted an event.
type Result struct {
	// Action is the command to apply.
	Action Action

	// Next is the mode after the event.
	Next Mode

	// Consumed is false when the event matched no transition and was
	// absorbed without effect.
	Consumed bool
}

// Interpret maps an event to a result according to the transition table of
// mode m. Unknown modes behave like Exit.
func Interpret(m Mode, ev Event) Result {
	switch m {
	case Normal:
		return handleNormal(ev)
	case Insert:
		return handleInsert(ev)
	default:
		return Result{Next: Exit}
	}
}
