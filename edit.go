package main

// Text mutations. These are the only functions that change buffer content and
// each one leaves the cursor on a valid position.

import "unicode"

// insertChar inserts r at the cursor. A newline splits the current line;
// other control characters are ignored.
func (e *Editor) insertChar(r rune) {
	if r == '\n' {
		e.buffer.splitLine(e.cursor.Y, e.cursor.X)
		e.cursor.Y++
		e.cursor.X = 0
		e.markModified()
		e.scrollToCursor()
		return
	}
	if unicode.IsControl(r) {
		return
	}

	e.buffer.insertRune(e.cursor.Y, e.cursor.X, r)
	e.markModified()
	e.moveRight()
}

// backspace removes the character before the cursor, joining with the
// previous line when the cursor is at column 0.
func (e *Editor) backspace() {
	c := &e.cursor
	if c.Y == 0 && c.X == 0 {
		return
	}

	if c.X == 0 {
		// Merge with previous line
		prevLen := e.buffer.LineLen(c.Y - 1)
		e.buffer.joinLines(c.Y - 1)
		c.Y--
		c.X = prevLen
	} else {
		e.moveLeft()
		e.buffer.deleteRune(c.Y, c.X)
	}
	e.markModified()
	e.scrollToCursor()
}

// deleteChar removes the character under the cursor, pulling the next line up
// when the cursor is at the end of its line. The cursor does not move.
func (e *Editor) deleteChar() {
	c := e.cursor
	lineLen := e.buffer.LineLen(c.Y)
	last := e.buffer.LineCount() - 1
	if c.Y == last && c.X == lineLen {
		return
	}

	if c.X == lineLen {
		e.buffer.joinLines(c.Y)
	} else {
		e.buffer.deleteRune(c.Y, c.X)
	}
	e.markModified()
	e.scrollToCursor()
}
