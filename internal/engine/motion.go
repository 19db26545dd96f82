package engine

// CursorRight moves the cursor one column right, stopping one past the last
// character of the line.
func (e *Engine) CursorRight() {
	e.cursor = e.cursor.Right(e.buf)
}

// CursorLeft moves the cursor one column left, stopping at column zero.
func (e *Engine) CursorLeft() {
	e.cursor = e.cursor.Left()
}

// CursorUp moves the cursor one row up when possible and re-derives the
// viewport.
func (e *Engine) CursorUp() {
	e.cursor = e.cursor.Up(e.buf)
	e.Scroll()
}

// CursorDown moves the cursor one row down when possible and re-derives the
// viewport.
func (e *Engine) CursorDown() {
	e.cursor = e.cursor.Down(e.buf)
	e.Scroll()
}

// Scroll re-derives the viewport so the cursor row is visible, using the
// live terminal height.
func (e *Engine) Scroll() {
	if e.sizer == nil {
		e.viewport = e.viewport.Reveal(e.cursor.Row())
		return
	}
	rows, _ := e.sizer.TerminalSize()
	e.viewport = e.viewport.Follow(e.cursor.Row(), rows)
}

// Insert inserts r at the cursor and moves the cursor right.
// Line breaks are not split; r is stored as a character of the line.
func (e *Engine) Insert(r rune) {
	row, col := e.cursor.Row(), e.cursor.Column()

	old := e.buf.Line(row)
	line := make([]rune, 0, len(old)+1)
	line = append(line, old[:col]...)
	line = append(line, r)
	line = append(line, old[col:]...)
	e.buf.ReplaceLine(row, line)

	e.CursorRight()
}

// SkipWord moves the cursor toward the end of the current word.
//
// The word index is seeked to the cursor's offset in the flattened text and
// the cursor moves right once more than the distance to that word's end.
// Motion is bounded by the current line: word ends on later lines are not
// reached.
func (e *Engine) SkipWord() {
	offset := e.buf.Offset(e.cursor.Position())
	if !e.words.Seek(offset) {
		return
	}

	steps := e.words.Remaining() + 1
	for i := 0; i < steps; i++ {
		e.CursorRight()
	}

	e.cursor = e.cursor.WithWordPos(e.words.Current())
	e.words.Advance()
}
