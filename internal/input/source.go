package input

import (
	"io"
	"sync"

	"github.com/dshills/viteditor/internal/input/key"
)

// Source produces key events. ReadEvent blocks until an event is available
// and returns io.EOF when no more events will arrive.
type Source interface {
	ReadEvent() (key.Event, error)
}

// ScriptSource replays a fixed sequence of events.
type ScriptSource struct {
	mu     sync.Mutex
	events []key.Event
	next   int
}

// NewScriptSource creates a source that returns events in order.
func NewScriptSource(events ...key.Event) *ScriptSource {
	return &ScriptSource{events: append([]key.Event(nil), events...)}
}

// ParseScript creates a source from key notation such as "ihello<Esc>q".
func ParseScript(spec string) (*ScriptSource, error) {
	events, err := key.ParseSequence(spec)
	if err != nil {
		return nil, err
	}
	return &ScriptSource{events: events}, nil
}

// ReadEvent returns the next event, or io.EOF once all have been read.
func (s *ScriptSource) ReadEvent() (key.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.next >= len(s.events) {
		return key.Event{}, io.EOF
	}
	ev := s.events[s.next]
	s.next++
	return ev, nil
}

// Remaining returns the number of events not yet read.
func (s *ScriptSource) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.events) - s.next
}
