package key

import (
	"unicode"
)

// Event represents a single abstract key press.
type Event struct {
	// Key identifies the kind of key pressed.
	Key Key

	// Rune is the character for KeyRune events and the chord letter for
	// KeyCtrl events.
	Rune rune
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// NewCtrlEvent creates a key event for a control chord.
// The letter is stored in lower case.
func NewCtrlEvent(r rune) Event {
	return Event{Key: KeyCtrl, Rune: unicode.ToLower(r)}
}

// NewSpecialEvent creates a key event for a key that carries no character.
func NewSpecialEvent(k Key) Event {
	return Event{Key: k}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// IsCtrl returns true if this is the control chord for letter r.
func (e Event) IsCtrl(r rune) bool {
	return e.Key == KeyCtrl && e.Rune == unicode.ToLower(r)
}

// Is returns true if e is the character r.
func (e Event) Is(r rune) bool {
	return e.Key == KeyRune && e.Rune == r
}

// String returns a canonical string representation in key notation.
// Examples: "a", "<Space>", "<C-c>", "<Esc>", "<Up>"
func (e Event) String() string {
	switch e.Key {
	case KeyRune:
		switch e.Rune {
		case ' ':
			return "<Space>"
		case '<':
			return "<lt>"
		}
		return string(e.Rune)
	case KeyCtrl:
		return "<C-" + string(e.Rune) + ">"
	default:
		return "<" + e.Key.String() + ">"
	}
}
