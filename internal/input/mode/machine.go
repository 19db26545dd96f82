package mode

// ChangeCallback is called when the mode changes.
type ChangeCallback func(from, to Mode)

// Machine tracks the current mode of an editing session.
// It is owned by a single session and is not safe for concurrent use.
type Machine struct {
	current  Mode
	previous Mode

	// callbacks are notified on mode changes.
	callbacks []ChangeCallback
}

// NewMachine creates a machine in Normal mode.
func NewMachine() *Machine {
	return &Machine{current: Normal, previous: Normal}
}

// Current returns the current mode.
func (m *Machine) Current() Mode {
	return m.current
}

// Previous returns the mode before the last change.
func (m *Machine) Previous() Mode {
	return m.previous
}

// Is returns true if the current mode is mode.
func (m *Machine) Is(mode Mode) bool {
	return m.current == mode
}

// Step interprets ev in the current mode and moves to the next mode.
// Callbacks run only when the mode actually changes.
func (m *Machine) Step(ev Event) Result {
	res := Interpret(m.current, ev)
	m.switchTo(res.Next)
	return res
}

// switchTo changes the current mode and notifies callbacks.
func (m *Machine) switchTo(next Mode) {
	if next == m.current {
		return
	}

	from := m.current
	m.previous = from
	m.current = next

	for _, cb := range m.callbacks {
		if cb != nil {
			cb(from, next)
		}
	}
}

// OnChange registers a callback for mode changes.
// Returns a function to unregister the callback.
func (m *Machine) OnChange(callback ChangeCallback) func() {
	m.callbacks = append(m.callbacks, callback)
	index := len(m.callbacks) - 1

	return func() {
		// Remove callback by setting to nil (preserves indices)
		if index < len(m.callbacks) {
			m.callbacks[index] = nil
		}
	}
}
