package mode

import (
	"github.com/dshills/viteditor/internal/input/key"
)

// Event is an alias for key.Event for convenience.
type Event = key.Event

// normalMotions maps motion keys to actions. Arrow keys and their hjkl
// equivalents share entries.
var normalMotions = map[key.Key]string{
	key.KeyUp:    ActionCursorUp,
	key.KeyDown:  ActionCursorDown,
	key.KeyLeft:  ActionCursorLeft,
	key.KeyRight: ActionCursorRight,
}

var normalRunes = map[rune]string{
	'k': ActionCursorUp,
	'j': ActionCursorDown,
	'h': ActionCursorLeft,
	'l': ActionCursorRight,
	'e': ActionWordEnd,
}

// handleNormal implements the Normal mode transitions.
func handleNormal(ev Event) Result {
	if ev.Key == key.KeyExit {
		return Result{Action: Action{Name: ActionExit}, Next: Exit, Consumed: true}
	}

	if name, ok := normalMotions[ev.Key]; ok {
		return Result{Action: Action{Name: name}, Next: Normal, Consumed: true}
	}

	if ev.Key == key.KeyRune {
		if ev.Rune == 'i' {
			return Result{Action: Action{Name: ActionModeInsert}, Next: Insert, Consumed: true}
		}
		if name, ok := normalRunes[ev.Rune]; ok {
			return Result{Action: Action{Name: name}, Next: Normal, Consumed: true}
		}
	}

	return Result{Next: Normal}
}
