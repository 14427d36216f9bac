package main

// Screen rendering. The renderer lays out the visible part of the buffer with
// soft wrapping and produces a Frame: a list of abstract draw instructions
// plus the on-screen cursor position. Terminal adapters (screen.go) turn a
// Frame into real terminal output.

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// OpKind identifies a draw instruction.
type OpKind int

const (
	OpClear      OpKind = iota // Blank the whole screen.
	OpSetCell                  // Put Ch at (X, Y), occupying Width columns.
	OpMoveCursor               // Show the terminal cursor at (X, Y).
	OpHideCursor               // Hide the terminal cursor.
)

// DrawOp is a single draw instruction. A SetCell with Width 0 carries a
// combining character that belongs to the glyph already drawn at (X, Y).
type DrawOp struct {
	Kind  OpKind
	X, Y  int
	Ch    rune
	Width int
}

// Frame is the full-screen image produced by one render pass.
type Frame struct {
	Width, Height int
	Ops           []DrawOp

	CursorX, CursorY int
	CursorVisible    bool // False when the cursor line is clipped off screen.
}

// Lines returns the text image of the frame, one string per screen row with
// trailing blanks removed.
func (f *Frame) Lines() []string {
	cells := make([][]string, f.Height)
	for y := range cells {
		cells[y] = make([]string, f.Width)
		for x := range cells[y] {
			cells[y][x] = " "
		}
	}

	inBounds := func(x, y int) bool {
		return y >= 0 && y < f.Height && x >= 0 && x < f.Width
	}
	for _, op := range f.Ops {
		if op.Kind != OpSetCell || !inBounds(op.X, op.Y) {
			continue
		}
		switch {
		case op.Width == 0:
			cells[op.Y][op.X] += string(op.Ch)
		default:
			cells[op.Y][op.X] = string(op.Ch)
			// Wide glyphs cover the following cells.
			for i := 1; i < op.Width && op.X+i < f.Width; i++ {
				cells[op.Y][op.X+i] = ""
			}
		}
	}

	lines := make([]string, f.Height)
	for y, row := range cells {
		lines[y] = strings.TrimRight(strings.Join(row, ""), " ")
	}
	return lines
}

// Renderer lays out buffer text on a grid of terminal cells.
type Renderer struct {
	tabWidth int
	cond     *runewidth.Condition
}

// NewRenderer creates a renderer that expands tabs to tabWidth columns.
func NewRenderer(tabWidth int) *Renderer {
	if tabWidth < 1 {
		tabWidth = 4
	}
	cond := runewidth.NewCondition()
	// Ambiguous-width characters are narrow regardless of locale.
	cond.EastAsianWidth = false
	return &Renderer{tabWidth: tabWidth, cond: cond}
}

// runeWidth returns how many columns r takes when drawn at column x.
func (r *Renderer) runeWidth(ch rune, x int) int {
	if ch == '\t' {
		return r.tabWidth - (x % r.tabWidth)
	}
	if unicode.IsControl(ch) {
		return 0
	}
	return r.cond.RuneWidth(ch)
}

// Render draws buffer lines starting at offset onto a cols x rows screen.
//
// Every logical line starts on a fresh screen row. A character that would
// reach the last column wraps to the next row before it is drawn, so a wide
// glyph is never split. Rendering stops once all rows are used. The cursor is
// recorded where the layout stands when its buffer position is reached, which
// includes the position one past the end of the line.
func (r *Renderer) Render(b *Buffer, c Cursor, offset, cols, rows int) *Frame {
	f := &Frame{Width: cols, Height: rows}
	f.Ops = append(f.Ops, DrawOp{Kind: OpClear})

	// Tabs are shortened so they never reach the last column.
	width := func(ch rune, x int) int {
		w := r.runeWidth(ch, x)
		if ch == '\t' {
			w = min(w, max(cols-1-x, 1))
		}
		return w
	}

	screenY := 0
	for y := max(offset, 0); y < b.LineCount() && screenY < rows; y++ {
		line := b.Line(y)
		screenX := 0
		glyphX := -1 // Column of the last glyph drawn on this row.

		for x := 0; x <= len(line); x++ {
			if y == c.Y && x == c.X {
				f.CursorX, f.CursorY, f.CursorVisible = screenX, screenY, true
			}
			if x == len(line) {
				break
			}

			ch := line[x]
			w := width(ch, screenX)
			if w > 0 && screenX > 0 && screenX+w >= cols {
				// Soft wrap.
				screenY++
				screenX = 0
				glyphX = -1
				if screenY >= rows {
					break
				}
				w = width(ch, screenX)
			}

			switch {
			case ch == '\t':
				for i := 0; i < w; i++ {
					f.Ops = append(f.Ops, DrawOp{Kind: OpSetCell, X: screenX + i, Y: screenY, Ch: ' ', Width: 1})
				}
				glyphX = screenX + w - 1
			case w == 0:
				// Combining marks stick to the previous glyph; other
				// zero-width characters are not drawn.
				if glyphX >= 0 && !unicode.IsControl(ch) {
					f.Ops = append(f.Ops, DrawOp{Kind: OpSetCell, X: glyphX, Y: screenY, Ch: ch, Width: 0})
				}
			default:
				f.Ops = append(f.Ops, DrawOp{Kind: OpSetCell, X: screenX, Y: screenY, Ch: ch, Width: w})
				glyphX = screenX
			}
			screenX += w
		}
		screenY++
	}

	// A glyph as wide as the screen can push the cursor past the edge.
	if f.CursorX >= cols {
		f.CursorVisible = false
	}
	if f.CursorVisible {
		f.Ops = append(f.Ops, DrawOp{Kind: OpMoveCursor, X: f.CursorX, Y: f.CursorY})
	} else {
		f.Ops = append(f.Ops, DrawOp{Kind: OpHideCursor})
	}
	return f
}
