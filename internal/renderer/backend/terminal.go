package backend

import (
	"io"
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/viteditor/internal/input/key"
	"github.com/dshills/viteditor/internal/input/mode"
)

// Terminal draws to a tcell screen and reads keys from it.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
	fini   sync.Once

	// drawing position
	row, col     int
	cursorHidden bool
}

// NewTerminal creates a terminal backend on the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing screen, such as a
// tcell.SimulationScreen in tests.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init puts the terminal into full-screen mode.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Init()
}

// Shutdown restores the terminal. Calls after the first do nothing.
func (t *Terminal) Shutdown() {
	t.fini.Do(func() {
		t.mu.Lock()
		defer t.mu.Unlock()

		t.screen.Fini()
	})
}

// Screen returns the underlying tcell screen.
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

func (t *Terminal) ClearAll() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
	t.row, t.col = 0, 0
	t.cursorHidden = false
	return nil
}

func (t *Terminal) Goto(row, col int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.row, t.col = row, col
	return nil
}

func (t *Terminal) WriteString(s string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, r := range s {
		t.screen.SetContent(t.col, t.row, r, nil, tcell.StyleDefault)
		t.col++
	}
	return nil
}

// Flush shows the drawn content with the cursor at the drawing position.
func (t *Terminal) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cursorHidden {
		t.screen.HideCursor()
	} else {
		t.screen.ShowCursor(t.col, t.row)
	}
	t.screen.Show()
	return nil
}

// TerminalSize returns the live screen size as (rows, cols).
func (t *Terminal) TerminalSize() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	w, h := t.screen.Size()
	return h, w
}

// HideCursor hides the cursor until the next ClearAll.
func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cursorHidden = true
}

func (t *Terminal) SetCursorStyle(style mode.CursorStyle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var tcellStyle tcell.CursorStyle
	switch style {
	case mode.CursorBlock:
		tcellStyle = tcell.CursorStyleSteadyBlock
	case mode.CursorBar:
		tcellStyle = tcell.CursorStyleSteadyBar
	case mode.CursorHidden:
		t.screen.HideCursor()
		return
	}
	t.screen.SetCursorStyle(tcellStyle)
}

// ReadEvent blocks until the next key press and returns it.
// A resize returns a KeyNone event so the caller redraws.
// io.EOF is returned once the screen has been finalized.
func (t *Terminal) ReadEvent() (key.Event, error) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return key.Event{}, io.EOF
		}
		switch e := ev.(type) {
		case *tcell.EventKey:
			if kev, ok := convertKeyEvent(e); ok {
				return kev, nil
			}
		case *tcell.EventResize:
			t.screen.Sync()
			return key.NewSpecialEvent(key.KeyNone), nil
		}
	}
}

// convertKeyEvent maps a tcell key event to the abstract key set.
// Keys with no counterpart are reported as not ok.
func convertKeyEvent(e *tcell.EventKey) (key.Event, bool) {
	k := e.Key()
	switch k {
	case tcell.KeyRune:
		if e.Modifiers()&tcell.ModCtrl != 0 && unicode.IsLetter(e.Rune()) {
			return key.NewCtrlEvent(e.Rune()), true
		}
		return key.NewRuneEvent(e.Rune()), true
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape), true
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp), true
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown), true
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft), true
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight), true
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.NewCtrlEvent('a' + rune(k-tcell.KeyCtrlA)), true
	}
	return key.Event{}, false
}
