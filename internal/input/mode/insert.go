package mode

import (
	"github.com/dshills/viteditor/internal/input/key"
)

// handleInsert implements the Insert mode transitions.
func handleInsert(ev Event) Result {
	if ev.Key == key.KeyEscape {
		return Result{Action: Action{Name: ActionModeNormal}, Next: Normal, Consumed: true}
	}

	if ev.IsChar() {
		return Result{Action: Action{Name: ActionInsert, Rune: ev.Rune}, Next: Insert, Consumed: true}
	}

	return Result{Next: Insert}
}
