package input

import (
	"fmt"

	"github.com/dshills/viteditor/internal/input/key"
	"github.com/dshills/viteditor/internal/input/mode"
)

// DefaultQuitKeys are the quit keys used when none are configured.
var DefaultQuitKeys = []string{"C-c", "q"}

// ExitPolicy maps quit keys to the abstract Exit key in Normal mode.
type ExitPolicy struct {
	quit []key.Event
}

// NewExitPolicy parses the quit key specs. An empty list selects
// DefaultQuitKeys.
func NewExitPolicy(specs []string) (*ExitPolicy, error) {
	if len(specs) == 0 {
		specs = DefaultQuitKeys
	}
	p := &ExitPolicy{}
	for _, spec := range specs {
		ev, err := key.Parse(spec)
		if err != nil {
			return nil, fmt.Errorf("quit key %q: %w", spec, err)
		}
		p.quit = append(p.quit, ev)
	}
	return p, nil
}

// QuitKeys returns the parsed quit keys.
func (p *ExitPolicy) QuitKeys() []key.Event {
	return append([]key.Event(nil), p.quit...)
}

// IsQuit returns true if ev is one of the quit keys.
func (p *ExitPolicy) IsQuit(ev key.Event) bool {
	for _, q := range p.quit {
		if q == ev {
			return true
		}
	}
	return false
}

// Translate returns the Exit key for a quit key pressed in Normal mode and
// ev unchanged otherwise.
func (p *ExitPolicy) Translate(ev key.Event, m mode.Mode) key.Event {
	if m == mode.Normal && p.IsQuit(ev) {
		return key.NewSpecialEvent(key.KeyExit)
	}
	return ev
}
