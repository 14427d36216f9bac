package main

// scrollOffset returns the index of the first visible line so that row stays
// within [offset, offset+height). It moves the window as little as possible
// and returns the same result when called again with its own output.
func scrollOffset(offset, row, height int) int {
	if height < 1 {
		height = 1
	}
	offset = min(offset, row)
	if row+1 >= offset+height {
		offset = max(offset, row+1-height)
	}
	return offset
}

// scrollToCursor recomputes the vertical scroll for the current cursor row.
func (e *Editor) scrollToCursor() {
	e.scrollY = scrollOffset(e.scrollY, e.cursor.Y, e.height)
}
