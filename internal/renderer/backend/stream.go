package backend

import (
	"bufio"
	"fmt"
	"io"
	"sync"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/dshills/viteditor/internal/input/key"
	"github.com/dshills/viteditor/internal/input/mode"
)

// Default size reported when the output is not a terminal.
const (
	DefaultRows = 24
	DefaultCols = 80
)

// Escape sequences written by Stream.
const (
	seqClear      = "\x1b[2J"
	seqHideCursor = "\x1b[?25l"
	seqShowCursor = "\x1b[?25h"
	seqAltScreen  = "\x1b[?1049h"
	seqMainScreen = "\x1b[?1049l"
	seqBlock      = "\x1b[2 q"
	seqBar        = "\x1b[6 q"
)

type fder interface {
	Fd() uintptr
}

// chunk is one read from the input.
type chunk struct {
	b   []byte
	err error
}

// Stream draws with ANSI escape sequences and decodes keys from raw bytes.
// When in and out are terminals, Init switches the input to raw mode and
// TerminalSize reports the live window size.
//
// Input is read by a background goroutine so that Shutdown can end a
// pending ReadEvent; after Shutdown ReadEvent returns io.EOF.
type Stream struct {
	in  io.Reader
	out *bufio.Writer
	mu  sync.Mutex

	// input state, owned by the ReadEvent caller
	chunks  chan chunk
	pending []byte
	readErr error
	pump    sync.Once

	done     chan struct{}
	shutdown sync.Once

	inFd, outFd int
	state       *term.State

	rows, cols   int
	cursorHidden bool
}

// NewStream creates a stream backend reading keys from in and drawing to out.
func NewStream(in io.Reader, out io.Writer) *Stream {
	s := &Stream{
		in:     in,
		out:    bufio.NewWriter(out),
		chunks: make(chan chunk),
		done:   make(chan struct{}),
		inFd:   -1,
		outFd:  -1,
		rows:   DefaultRows,
		cols:   DefaultCols,
	}
	if f, ok := in.(fder); ok && term.IsTerminal(int(f.Fd())) {
		s.inFd = int(f.Fd())
	}
	if f, ok := out.(fder); ok && term.IsTerminal(int(f.Fd())) {
		s.outFd = int(f.Fd())
	}
	return s
}

// SetSize sets the size reported when the output is not a terminal.
func (s *Stream) SetSize(rows, cols int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows, s.cols = rows, cols
}

// Init enters raw mode and the alternate screen.
func (s *Stream) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFd >= 0 {
		state, err := term.MakeRaw(s.inFd)
		if err != nil {
			return fmt.Errorf("stream: raw mode: %w", err)
		}
		s.state = state
	}
	if _, err := s.out.WriteString(seqAltScreen); err != nil {
		return err
	}
	return s.out.Flush()
}

// Shutdown leaves the alternate screen, restores the terminal mode and
// ends any pending ReadEvent with io.EOF. Calls after the first do nothing.
func (s *Stream) Shutdown() {
	s.shutdown.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		close(s.done)
		_, _ = s.out.WriteString(seqShowCursor + seqMainScreen)
		_ = s.out.Flush() // best-effort; output may already be closed
		if s.state != nil {
			_ = term.Restore(s.inFd, s.state)
			s.state = nil
		}
	})
}

func (s *Stream) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cursorHidden = false
	_, err := s.out.WriteString(seqClear)
	return err
}

func (s *Stream) Goto(row, col int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := fmt.Fprintf(s.out, "\x1b[%d;%dH", row+1, col+1)
	return err
}

func (s *Stream) WriteString(str string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.out.WriteString(str)
	return err
}

func (s *Stream) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := seqShowCursor
	if s.cursorHidden {
		seq = seqHideCursor
	}
	if _, err := s.out.WriteString(seq); err != nil {
		return err
	}
	return s.out.Flush()
}

// TerminalSize returns the live window size, or the configured size when
// the output is not a terminal.
func (s *Stream) TerminalSize() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.outFd >= 0 {
		if w, h, err := term.GetSize(s.outFd); err == nil {
			return h, w
		}
	}
	return s.rows, s.cols
}

func (s *Stream) HideCursor() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cursorHidden = true
}

func (s *Stream) SetCursorStyle(style mode.CursorStyle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch style {
	case mode.CursorBlock:
		_, _ = s.out.WriteString(seqBlock)
	case mode.CursorBar:
		_, _ = s.out.WriteString(seqBar)
	case mode.CursorHidden:
		s.cursorHidden = true
	}
}

// ReadEvent decodes the next key from the input.
//
// A lone ESC byte with nothing read behind it is the Escape key.
// CSI and SS3 arrow sequences map to the arrow keys; other escape
// sequences are skipped. Bytes 0x01 to 0x1a are control chords.
// ReadEvent is not safe for concurrent use; Shutdown may be called from
// any goroutine.
func (s *Stream) ReadEvent() (key.Event, error) {
	for {
		r, err := s.readRune()
		if err != nil {
			return key.Event{}, err
		}
		switch {
		case r == 0x1b:
			if ev, ok := s.readEscape(); ok {
				return ev, nil
			}
		case r >= 0x01 && r <= 0x1a:
			return key.NewCtrlEvent('a' + r - 1), nil
		case r < 0x20 || r == 0x7f:
			// no counterpart
		default:
			return key.NewRuneEvent(r), nil
		}
	}
}

func (s *Stream) readEscape() (key.Event, bool) {
	if len(s.pending) == 0 {
		return key.NewSpecialEvent(key.KeyEscape), true
	}
	if next := s.pending[0]; next != '[' && next != 'O' {
		return key.NewSpecialEvent(key.KeyEscape), true
	}
	s.pending = s.pending[1:]

	// Parameters run until a final byte in 0x40..0x7e.
	for {
		b, err := s.readByte()
		if err != nil {
			return key.Event{}, false
		}
		if b < 0x40 || b > 0x7e {
			continue
		}
		switch b {
		case 'A':
			return key.NewSpecialEvent(key.KeyUp), true
		case 'B':
			return key.NewSpecialEvent(key.KeyDown), true
		case 'C':
			return key.NewSpecialEvent(key.KeyRight), true
		case 'D':
			return key.NewSpecialEvent(key.KeyLeft), true
		}
		return key.Event{}, false
	}
}

// readPump copies the input into chunks until a read fails or the stream
// is shut down.
func (s *Stream) readPump() {
	for {
		buf := make([]byte, 256)
		n, err := s.in.Read(buf)
		if n > 0 {
			select {
			case s.chunks <- chunk{b: buf[:n]}:
			case <-s.done:
				return
			}
		}
		if err != nil {
			select {
			case s.chunks <- chunk{err: err}:
			case <-s.done:
			}
			return
		}
	}
}

// fill appends the next chunk of input to pending. It returns io.EOF once
// the stream is shut down.
func (s *Stream) fill() error {
	if s.readErr != nil {
		return s.readErr
	}
	s.pump.Do(func() { go s.readPump() })

	select {
	case <-s.done:
		return io.EOF
	default:
	}

	select {
	case c := <-s.chunks:
		if c.err != nil {
			s.readErr = c.err
			return c.err
		}
		s.pending = append(s.pending, c.b...)
		return nil
	case <-s.done:
		return io.EOF
	}
}

func (s *Stream) readByte() (byte, error) {
	for len(s.pending) == 0 {
		if err := s.fill(); err != nil {
			return 0, err
		}
	}
	b := s.pending[0]
	s.pending = s.pending[1:]
	return b, nil
}

func (s *Stream) readRune() (rune, error) {
	select {
	case <-s.done:
		return 0, io.EOF
	default:
	}

	for !utf8.FullRune(s.pending) {
		if err := s.fill(); err != nil {
			if len(s.pending) == 0 {
				return 0, err
			}
			// truncated sequence at end of input
			break
		}
	}
	r, n := utf8.DecodeRune(s.pending)
	s.pending = s.pending[n:]
	return r, nil
}
