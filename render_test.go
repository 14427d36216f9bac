package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name        string
		lines       []string
		cursor      Cursor
		offset      int
		cols, rows  int
		want        []string
		wantCursor  [2]int
		wantVisible bool
	}{
		{
			name:   "plain lines",
			lines:  []string{"hello", "world"},
			cursor: Cursor{X: 2, Y: 1},
			cols:   10, rows: 3,
			want:        []string{"hello", "world", ""},
			wantCursor:  [2]int{2, 1},
			wantVisible: true,
		},
		{
			name:   "soft wrap before last column",
			lines:  []string{"abcdefg"},
			cursor: Cursor{X: 7},
			cols:   5, rows: 3,
			want:        []string{"abcd", "efg", ""},
			wantCursor:  [2]int{3, 1},
			wantVisible: true,
		},
		{
			name:   "cursor after last character",
			lines:  []string{"abcd"},
			cursor: Cursor{X: 4},
			cols:   5, rows: 1,
			want:        []string{"abcd"},
			wantCursor:  [2]int{4, 0},
			wantVisible: true,
		},
		{
			name:   "wide character one column before the edge wraps",
			lines:  []string{"abcde世"},
			cursor: Cursor{X: 6},
			cols:   6, rows: 2,
			want:        []string{"abcde", "世"},
			wantCursor:  [2]int{2, 1},
			wantVisible: true,
		},
		{
			name:   "combining mark takes no column",
			lines:  []string{"e\u0301x"},
			cursor: Cursor{X: 2},
			cols:   10, rows: 1,
			want:        []string{"e\u0301x"},
			wantCursor:  [2]int{1, 0},
			wantVisible: true,
		},
		{
			name:   "tab expands to tab stop",
			lines:  []string{"\tx", "ab\tc"},
			cursor: Cursor{X: 1},
			cols:   10, rows: 2,
			want:        []string{"    x", "ab  c"},
			wantCursor:  [2]int{4, 0},
			wantVisible: true,
		},
		{
			name:   "other control characters are not drawn",
			lines:  []string{"a\x01b"},
			cursor: Cursor{X: 3},
			cols:   10, rows: 1,
			want:        []string{"ab"},
			wantCursor:  [2]int{2, 0},
			wantVisible: true,
		},
		{
			name:   "scroll offset skips lines",
			lines:  []string{"a", "b", "c"},
			cursor: Cursor{X: 1, Y: 2},
			offset: 1,
			cols:   10, rows: 2,
			want:        []string{"b", "c"},
			wantCursor:  [2]int{1, 1},
			wantVisible: true,
		},
		{
			name:   "cursor clipped below the screen",
			lines:  []string{"a", "b", "c"},
			cursor: Cursor{Y: 2},
			cols:   10, rows: 2,
			want:        []string{"a", "b"},
			wantVisible: false,
		},
		{
			name:   "wrapped rows push later lines off screen",
			lines:  []string{"abcdefg", "z"},
			cursor: Cursor{Y: 1},
			cols:   5, rows: 2,
			want:        []string{"abcd", "efg"},
			wantVisible: false,
		},
		{
			name:   "cursor past a screen-wide glyph is hidden",
			lines:  []string{"世界"},
			cursor: Cursor{X: 2},
			cols:   2, rows: 2,
			want:        []string{"世", "界"},
			wantVisible: false,
		},
		{
			name:   "wrap past the last row is clipped",
			lines:  []string{"abcdefg"},
			cursor: Cursor{X: 6},
			cols:   5, rows: 1,
			want:        []string{"abcd"},
			wantVisible: false,
		},
	}

	r := NewRenderer(4)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := r.Render(bufferOf(tc.lines...), tc.cursor, tc.offset, tc.cols, tc.rows)

			assert.Equal(t, tc.want, f.Lines())
			require.Equal(t, tc.wantVisible, f.CursorVisible)
			require.NotEmpty(t, f.Ops)
			assert.Equal(t, OpClear, f.Ops[0].Kind)

			last := f.Ops[len(f.Ops)-1]
			if tc.wantVisible {
				assert.Equal(t, tc.wantCursor, [2]int{f.CursorX, f.CursorY})
				assert.Equal(t, DrawOp{Kind: OpMoveCursor, X: f.CursorX, Y: f.CursorY}, last)
			} else {
				assert.Equal(t, OpHideCursor, last.Kind)
			}
		})
	}
}

func TestRenderWideGlyphOp(t *testing.T) {
	f := NewRenderer(4).Render(bufferOf("abcde世"), Cursor{}, 0, 6, 2)

	var wide []DrawOp
	for _, op := range f.Ops {
		if op.Kind == OpSetCell && op.Width == 2 {
			wide = append(wide, op)
		}
	}
	assert.Equal(t, []DrawOp{{Kind: OpSetCell, X: 0, Y: 1, Ch: '世', Width: 2}}, wide)
}

func TestRenderNeverDrawsPastRightEdge(t *testing.T) {
	lines := []string{"日本語のテキストを折り返す", "mixed 日本 text with ascii", "\t\tdeep"}
	r := NewRenderer(4)
	for cols := 3; cols <= 12; cols++ {
		f := r.Render(bufferOf(lines...), Cursor{}, 0, cols, 20)
		for _, op := range f.Ops {
			if op.Kind != OpSetCell {
				continue
			}
			assert.Less(t, op.X+max(op.Width, 1)-1, cols, "cols=%d op=%+v", cols, op)
			assert.Less(t, op.Y, 20)
		}
	}
}
