package main

// Line storage for the editor. A Buffer is a slice of lines, each line a slice
// of runes. It is never empty: there is always at least one (possibly empty)
// line.

import (
	"strings"
	"unicode"
)

// Buffer holds the text content being edited.
type Buffer struct {
	lines [][]rune // Slice of lines, where each line is a slice of runes.
}

// NewBuffer returns a buffer holding a single empty line.
func NewBuffer() *Buffer {
	return &Buffer{lines: [][]rune{{}}}
}

// LoadBuffer splits text into lines. Both "\n" and "\r\n" terminate a line and
// trailing whitespace is stripped from every line. A trailing terminator does
// not produce an extra empty line.
func LoadBuffer(text string) *Buffer {
	text = strings.TrimSuffix(text, "\n")

	var lines [][]rune
	if text != "" {
		for _, line := range strings.Split(text, "\n") {
			// Strip "\r" leftovers and trailing blanks in one go.
			line = strings.TrimRightFunc(line, unicode.IsSpace)
			lines = append(lines, []rune(line))
		}
	}

	// Ensure buffer is never empty
	if len(lines) == 0 {
		lines = [][]rune{{}}
	}
	return &Buffer{lines: lines}
}

// Serialize joins all lines with "\n", terminating the last line as well.
func (b *Buffer) Serialize() string {
	var result strings.Builder
	for _, line := range b.lines {
		result.WriteString(string(line))
		result.WriteString("\n")
	}
	return result.String()
}

// LineCount returns the number of lines, always at least one.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns line y. The returned slice must not be modified.
func (b *Buffer) Line(y int) []rune {
	return b.lines[y]
}

// LineLen returns the number of runes in line y.
func (b *Buffer) LineLen(y int) int {
	return len(b.lines[y])
}

// insertRune places r before column x of line y.
func (b *Buffer) insertRune(y, x int, r rune) {
	line := b.lines[y]
	newLine := make([]rune, len(line)+1)
	copy(newLine[:x], line[:x])
	newLine[x] = r
	copy(newLine[x+1:], line[x:])
	b.lines[y] = newLine
}

// deleteRune removes the rune at column x of line y.
func (b *Buffer) deleteRune(y, x int) {
	line := b.lines[y]
	b.lines[y] = append(line[:x:x], line[x+1:]...)
}

// splitLine cuts line y at column x. The head stays on line y and the tail
// becomes a new line y+1.
func (b *Buffer) splitLine(y, x int) {
	line := b.lines[y]
	tail := make([]rune, len(line)-x)
	copy(tail, line[x:])

	newLines := make([][]rune, len(b.lines)+1)
	copy(newLines[:y+1], b.lines[:y+1])
	newLines[y] = line[:x:x]
	newLines[y+1] = tail
	copy(newLines[y+2:], b.lines[y+1:])
	b.lines = newLines
}

// joinLines appends line y+1 to line y and removes line y+1.
func (b *Buffer) joinLines(y int) {
	line := b.lines[y]
	joined := make([]rune, 0, len(line)+len(b.lines[y+1]))
	joined = append(joined, line...)
	joined = append(joined, b.lines[y+1]...)
	b.lines[y] = joined
	b.lines = append(b.lines[:y+1], b.lines[y+2:]...)
}
