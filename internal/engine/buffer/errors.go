package buffer

import "fmt"

// PreconditionError describes an out-of-range access to the buffer.
// It is raised with panic: valid callers never trigger it.
type PreconditionError struct {
	Op     string // Operation name (e.g., "line", "replace_line")
	Row    int    // Requested row
	Column int    // Requested column, or -1 when not applicable
	Limit  int    // Exclusive upper bound that was violated
}

func (e *PreconditionError) Error() string {
	if e.Column >= 0 {
		return fmt.Sprintf("buffer: %s: position (%d:%d) out of range (limit %d)", e.Op, e.Row, e.Column, e.Limit)
	}
	return fmt.Sprintf("buffer: %s: row %d out of range (line count %d)", e.Op, e.Row, e.Limit)
}

// checkRow panics if row is not a valid line index.
func (b *Buffer) checkRow(op string, row int) {
	if row < 0 || row >= len(b.lines) {
		panic(&PreconditionError{Op: op, Row: row, Column: -1, Limit: len(b.lines)})
	}
}
