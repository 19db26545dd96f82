package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec        = errors.New("empty key specification")
	ErrInvalidSpec      = errors.New("invalid key specification")
	ErrUnmatchedBracket = errors.New("unmatched bracket in key specification")
)

// namedKeys maps lower-cased key names to events.
var namedKeys = map[string]Event{
	"up":     NewSpecialEvent(KeyUp),
	"down":   NewSpecialEvent(KeyDown),
	"left":   NewSpecialEvent(KeyLeft),
	"right":  NewSpecialEvent(KeyRight),
	"esc":    NewSpecialEvent(KeyEscape),
	"escape": NewSpecialEvent(KeyEscape),
	"exit":   NewSpecialEvent(KeyExit),
	"space":  NewRuneEvent(' '),
	"lt":     NewRuneEvent('<'),
}

// Parse parses a single key specification into an Event.
//
// Supported formats:
//   - Single character: "a", "Q", "@"
//   - Named keys: "<Esc>", "<Up>", "<Space>", "Esc"
//   - Control chords: "<C-c>", "C-c"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if utf8.RuneCountInString(spec) == 1 {
		r, _ := utf8.DecodeRuneInString(spec)
		return NewRuneEvent(r), nil
	}

	if strings.HasPrefix(spec, "<") {
		if !strings.HasSuffix(spec, ">") {
			return Event{}, ErrUnmatchedBracket
		}
		spec = spec[1 : len(spec)-1]
	}
	return parseName(spec)
}

// parseName parses the inside of a <...> group.
func parseName(name string) (Event, error) {
	if name == "" {
		return Event{}, ErrInvalidSpec
	}

	lower := strings.ToLower(name)
	if strings.HasPrefix(lower, "c-") {
		letter := name[2:]
		if utf8.RuneCountInString(letter) != 1 {
			return Event{}, fmt.Errorf("%w: control chord %q", ErrInvalidSpec, name)
		}
		r, _ := utf8.DecodeRuneInString(letter)
		return NewCtrlEvent(r), nil
	}

	if ev, ok := namedKeys[lower]; ok {
		return ev, nil
	}
	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, name)
}

// ParseSequence parses a string of keys such as "ihello<Esc>jj" into
// events. Characters outside <...> groups are taken literally.
func ParseSequence(spec string) ([]Event, error) {
	var events []Event
	for len(spec) > 0 {
		if spec[0] == '<' {
			end := strings.IndexByte(spec, '>')
			if end < 0 {
				return nil, ErrUnmatchedBracket
			}
			ev, err := parseName(spec[1:end])
			if err != nil {
				return nil, err
			}
			events = append(events, ev)
			spec = spec[end+1:]
			continue
		}

		r, size := utf8.DecodeRuneInString(spec)
		events = append(events, NewRuneEvent(r))
		spec = spec[size:]
	}
	return events, nil
}

// MustParse is like Parse but panics on error.
// Intended for key specifications fixed at compile time.
func MustParse(spec string) Event {
	ev, err := Parse(spec)
	if err != nil {
		panic(fmt.Sprintf("key: MustParse(%q): %v", spec, err))
	}
	return ev
}
