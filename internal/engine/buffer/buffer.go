package buffer

import (
	"strings"
)

// LineEnding specifies the line ending style detected on load.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "\\r\\n"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	default:
		return "\n"
	}
}

// Buffer holds the text of a document as lines of runes.
// A Buffer is owned by a single editing session and is not safe for
// concurrent use.
type Buffer struct {
	lines      [][]rune
	lineEnding LineEnding
}

// NewBuffer creates a buffer holding a single empty line.
func NewBuffer() *Buffer {
	return &Buffer{
		lines:      [][]rune{{}},
		lineEnding: LineEndingLF,
	}
}

// NewBufferFromString creates a buffer by splitting text on line breaks.
//
// Lines are split on "\n"; a trailing "\r" on a line is dropped so CRLF
// input yields the same lines as LF input. A final line break does not
// start an extra empty line. Empty input yields a single empty line.
func NewBufferFromString(text string) *Buffer {
	b := &Buffer{lineEnding: DetectLineEnding(text)}

	if text != "" {
		parts := strings.Split(text, "\n")
		if parts[len(parts)-1] == "" {
			parts = parts[:len(parts)-1]
		}
		b.lines = make([][]rune, 0, len(parts))
		for _, part := range parts {
			b.lines = append(b.lines, []rune(strings.TrimSuffix(part, "\r")))
		}
	}

	if len(b.lines) == 0 {
		b.lines = [][]rune{{}}
	}
	return b
}

// DetectLineEnding reports the line ending used by the first line break in text.
func DetectLineEnding(text string) LineEnding {
	if i := strings.IndexByte(text, '\n'); i > 0 && text[i-1] == '\r' {
		return LineEndingCRLF
	}
	return LineEndingLF
}

// LineEnding returns the line ending detected when the buffer was created.
func (b *Buffer) LineEnding() LineEnding {
	return b.lineEnding
}

// LineCount returns the number of lines. It is always at least 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns a copy of the characters of the given row.
func (b *Buffer) Line(row int) []rune {
	b.checkRow("line", row)
	line := make([]rune, len(b.lines[row]))
	copy(line, b.lines[row])
	return line
}

// LineLen returns the number of characters in the given row.
func (b *Buffer) LineLen(row int) int {
	b.checkRow("line_len", row)
	return len(b.lines[row])
}

// LineText returns the given row as a string.
func (b *Buffer) LineText(row int) string {
	b.checkRow("line_text", row)
	return string(b.lines[row])
}

// RuneAt returns the character at pos and whether one exists there.
// The past-end column of a line is valid but holds no character.
func (b *Buffer) RuneAt(pos Position) (rune, bool) {
	b.checkRow("rune_at", pos.Row)
	line := b.lines[pos.Row]
	if pos.Column < 0 || pos.Column > len(line) {
		panic(&PreconditionError{Op: "rune_at", Row: pos.Row, Column: pos.Column, Limit: len(line) + 1})
	}
	if pos.Column == len(line) {
		return 0, false
	}
	return line[pos.Column], true
}

// ReplaceLine replaces the contents of the given row.
// The buffer keeps its own copy of line.
func (b *Buffer) ReplaceLine(row int, line []rune) {
	b.checkRow("replace_line", row)
	replacement := make([]rune, len(line))
	copy(replacement, line)
	b.lines[row] = replacement
}

// Valid returns true if pos satisfies the position invariant:
// row < LineCount() and column <= LineLen(row).
func (b *Buffer) Valid(pos Position) bool {
	if pos.Row < 0 || pos.Row >= len(b.lines) {
		return false
	}
	return pos.Column >= 0 && pos.Column <= len(b.lines[pos.Row])
}

// Clamp returns the nearest valid position to pos.
func (b *Buffer) Clamp(pos Position) Position {
	pos.Row = max(0, min(pos.Row, len(b.lines)-1))
	pos.Column = max(0, min(pos.Column, len(b.lines[pos.Row])))
	return pos
}

// Text returns the whole buffer joined with the detected line ending.
func (b *Buffer) Text() string {
	var sb strings.Builder
	sep := b.lineEnding.Sequence()
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// Offset returns the position of pos in the flattened text, counting one
// character per line break.
func (b *Buffer) Offset(pos Position) int {
	if !b.Valid(pos) {
		panic(&PreconditionError{Op: "offset", Row: pos.Row, Column: pos.Column, Limit: len(b.lines)})
	}
	offset := 0
	for row := 0; row < pos.Row; row++ {
		offset += len(b.lines[row]) + 1
	}
	return offset + pos.Column
}
