package key

// Key identifies the kind of a key event.
// For character keys, use KeyRune and set the Rune field in Event.
type Key uint8

const (
	// KeyNone represents no key. Events of this kind are ignored by every mode.
	KeyNone Key = iota

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// KeyEscape is the escape key.
	KeyEscape

	// KeyExit requests the end of the session.
	KeyExit

	// KeyRune is a character key; the character is in Event.Rune.
	KeyRune

	// KeyCtrl is a control chord; the letter is in Event.Rune.
	KeyCtrl
)

// keyNames maps named keys to their canonical names.
var keyNames = map[Key]string{
	KeyNone:   "None",
	KeyUp:     "Up",
	KeyDown:   "Down",
	KeyLeft:   "Left",
	KeyRight:  "Right",
	KeyEscape: "Esc",
	KeyExit:   "Exit",
}

// String returns the canonical name of the key kind.
func (k Key) String() string {
	switch k {
	case KeyRune:
		return "Rune"
	case KeyCtrl:
		return "Ctrl"
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsSpecial returns true for keys that carry no character.
func (k Key) IsSpecial() bool {
	return k != KeyRune && k != KeyCtrl
}
