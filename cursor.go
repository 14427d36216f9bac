package main

// Cursor navigation. Every move keeps the cursor inside the buffer and
// re-scrolls the viewport afterwards.

// Cursor represents a position in the buffer.
type Cursor struct {
	X int // Column index (0-based), may equal the line length.
	Y int // Row index (0-based).
}

func (e *Editor) moveUp() {
	if e.cursor.Y > 0 {
		e.cursor.Y--
		e.clampCursorX()
	}
	e.scrollToCursor()
}

func (e *Editor) moveDown() {
	if e.cursor.Y+1 < e.buffer.LineCount() {
		e.cursor.Y++
		e.clampCursorX()
	}
	e.scrollToCursor()
}

// moveLeft stops at column 0; it never wraps to the previous line.
func (e *Editor) moveLeft() {
	if e.cursor.X > 0 {
		e.cursor.X--
	}
	e.scrollToCursor()
}

// moveRight stops after the last character; it never wraps to the next line.
func (e *Editor) moveRight() {
	e.cursor.X = min(e.cursor.X+1, e.buffer.LineLen(e.cursor.Y))
	e.scrollToCursor()
}

// clampCursorX snaps the column back onto the current line.
func (e *Editor) clampCursorX() {
	e.cursor.X = max(0, min(e.cursor.X, e.buffer.LineLen(e.cursor.Y)))
}
