package superhtml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRowCol(t *testing.T) {
	src := []byte("ab\ncd\nef")
	tests := []struct {
		name    string
		offset  uint32
		wantRow int
		wantCol int
	}{
		{"start", 0, 1, 1},
		{"same line", 1, 1, 2},
		{"right after first newline", 3, 2, 1},
		{"second line", 4, 2, 2},
		{"third line", 7, 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col := RowCol(src, tt.offset)
			require.Equal(t, tt.wantRow, row)
			require.Equal(t, tt.wantCol, col)
		})
	}
}

func TestLine(t *testing.T) {
	src := []byte("first\nsecond line\nthird")
	tests := []struct {
		name   string
		offset uint32
		want   string
	}{
		{"within first", 2, "first"},
		{"start of second", 6, "second line"},
		{"within third", 20, "third"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, string(Line(src, tt.offset)))
		})
	}
}

func TestSpanIsZero(t *testing.T) {
	require.True(t, (Span{}).IsZero())
	require.False(t, (Span{Start: 0, End: 1}).IsZero())
}

func TestSpanSliceAndString(t *testing.T) {
	src := []byte("hello world")
	s := Span{Start: 6, End: 11}
	require.Equal(t, "world", s.String(src))
	require.Equal(t, 5, s.Len())
}
