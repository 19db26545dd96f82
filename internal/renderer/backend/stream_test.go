package backend

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/dshills/viteditor/internal/input/key"
	"github.com/dshills/viteditor/internal/input/mode"
)

func TestStreamReadEvent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []key.Event
	}{
		{"runes", "ab", []key.Event{key.NewRuneEvent('a'), key.NewRuneEvent('b')}},
		{"unicode", "é", []key.Event{key.NewRuneEvent('é')}},
		{"lone escape", "\x1b", []key.Event{key.NewSpecialEvent(key.KeyEscape)}},
		{"csi arrows", "\x1b[A\x1b[B\x1b[C\x1b[D", []key.Event{
			key.NewSpecialEvent(key.KeyUp),
			key.NewSpecialEvent(key.KeyDown),
			key.NewSpecialEvent(key.KeyRight),
			key.NewSpecialEvent(key.KeyLeft),
		}},
		{"ss3 arrow", "\x1bOA", []key.Event{key.NewSpecialEvent(key.KeyUp)}},
		{"escape then rune", "\x1bx", []key.Event{key.NewSpecialEvent(key.KeyEscape), key.NewRuneEvent('x')}},
		{"ctrl chords", "\x03\x11", []key.Event{key.NewCtrlEvent('c'), key.NewCtrlEvent('q')}},
		{"unknown sequence skipped", "\x1b[3~z", []key.Event{key.NewRuneEvent('z')}},
		{"delete skipped", "\x7fq", []key.Event{key.NewRuneEvent('q')}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStream(strings.NewReader(tt.input), io.Discard)
			for i, want := range tt.want {
				got, err := s.ReadEvent()
				if err != nil {
					t.Fatalf("event %d: %v", i, err)
				}
				if got != want {
					t.Errorf("event %d = %v, want %v", i, got, want)
				}
			}
			if _, err := s.ReadEvent(); !errors.Is(err, io.EOF) {
				t.Errorf("after input err = %v, want io.EOF", err)
			}
		})
	}
}

func TestStreamOutput(t *testing.T) {
	var out bytes.Buffer
	s := NewStream(strings.NewReader(""), &out)

	_ = s.ClearAll()
	_ = s.Goto(0, 0)
	_ = s.WriteString("hi")
	_ = s.Goto(2, 4)
	if out.Len() != 0 {
		t.Errorf("output before Flush = %q, want buffered", out.String())
	}
	_ = s.Flush()

	want := "\x1b[2J\x1b[1;1Hhi\x1b[3;5H\x1b[?25h"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestStreamHideCursor(t *testing.T) {
	var out bytes.Buffer
	s := NewStream(strings.NewReader(""), &out)

	_ = s.ClearAll()
	s.HideCursor()
	_ = s.Flush()
	if !strings.HasSuffix(out.String(), seqHideCursor) {
		t.Errorf("output = %q, want hide cursor suffix", out.String())
	}

	out.Reset()
	_ = s.ClearAll()
	_ = s.Flush()
	if !strings.HasSuffix(out.String(), seqShowCursor) {
		t.Errorf("output = %q, want show cursor suffix", out.String())
	}
}

func TestStreamSize(t *testing.T) {
	s := NewStream(strings.NewReader(""), io.Discard)

	rows, cols := s.TerminalSize()
	if rows != DefaultRows || cols != DefaultCols {
		t.Errorf("TerminalSize = (%d,%d), want defaults", rows, cols)
	}

	s.SetSize(10, 40)
	rows, cols = s.TerminalSize()
	if rows != 10 || cols != 40 {
		t.Errorf("TerminalSize = (%d,%d), want (10,40)", rows, cols)
	}
}

func TestStreamLifecycle(t *testing.T) {
	var out bytes.Buffer
	s := NewStream(strings.NewReader(""), &out)

	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if out.String() != seqAltScreen {
		t.Errorf("Init output = %q", out.String())
	}

	out.Reset()
	s.SetCursorStyle(mode.CursorBar)
	s.Shutdown()
	want := seqBar + seqShowCursor + seqMainScreen
	if out.String() != want {
		t.Errorf("Shutdown output = %q, want %q", out.String(), want)
	}
}

func TestStreamShutdownEndsPendingRead(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	s := NewStream(pr, io.Discard)

	errc := make(chan error, 1)
	go func() {
		_, err := s.ReadEvent()
		errc <- err
	}()

	// Give the read a chance to block on the pipe.
	time.Sleep(20 * time.Millisecond)
	s.Shutdown()

	select {
	case err := <-errc:
		if !errors.Is(err, io.EOF) {
			t.Errorf("ReadEvent error = %v, want io.EOF", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("ReadEvent still blocked after Shutdown")
	}

	if _, err := s.ReadEvent(); !errors.Is(err, io.EOF) {
		t.Errorf("ReadEvent after Shutdown = %v, want io.EOF", err)
	}
}

func TestStreamShutdownDropsUnreadInput(t *testing.T) {
	s := NewStream(strings.NewReader("ab"), io.Discard)

	ev, err := s.ReadEvent()
	if err != nil || ev != key.NewRuneEvent('a') {
		t.Fatalf("ReadEvent = %v, %v; want a", ev, err)
	}
	s.Shutdown()
	if _, err := s.ReadEvent(); !errors.Is(err, io.EOF) {
		t.Errorf("ReadEvent after Shutdown = %v, want io.EOF", err)
	}
}

func TestStreamShutdownTwice(t *testing.T) {
	var out bytes.Buffer
	s := NewStream(strings.NewReader(""), &out)

	s.Shutdown()
	s.Shutdown()

	if want := seqShowCursor + seqMainScreen; out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestStreamSplitRune(t *testing.T) {
	s := NewStream(iotest.OneByteReader(strings.NewReader("é")), io.Discard)

	ev, err := s.ReadEvent()
	if err != nil {
		t.Fatalf("ReadEvent: %v", err)
	}
	if ev != key.NewRuneEvent('é') {
		t.Errorf("event = %v, want é", ev)
	}
	if _, err := s.ReadEvent(); !errors.Is(err, io.EOF) {
		t.Errorf("second ReadEvent = %v, want io.EOF", err)
	}
}
