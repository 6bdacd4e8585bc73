package superhtml

// Span is a half-open [Start, End) byte range into a source buffer.
//
// Spans never outlive the buffer they were cut from; callers that need a
// value must call Slice or RowCol while the originating []byte is still
// available.
type Span struct {
	Start uint32
	End   uint32
}

// IsZero reports whether s is the unset span (used to mean "no close tag",
// "no doctype name", etc. — see the Node invariants in node.go).
func (s Span) IsZero() bool {
	return s.Start == 0 && s.End == 0
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return int(s.End - s.Start)
}

// Slice returns the bytes s covers in src. It panics if s is out of bounds;
// spans are not checked against len(src) when they are constructed.
func (s Span) Slice(src []byte) []byte {
	return src[s.Start:s.End]
}

// String returns the substring s covers in src.
func (s Span) String(src []byte) string {
	return string(s.Slice(src))
}

// RowCol projects the byte offset off (usually s.Start) onto a 1-based
// row/column pair. Column counts bytes, not runes, matching the CLI's
// "PATH:ROW:COL" diagnostic format: row/col derivation is a pure function
// of the source and the offset, so it's always computed on demand rather
// than threaded through the tokenizer.
func RowCol(src []byte, offset uint32) (row, col int) {
	row, col = 1, 1
	for i := uint32(0); i < offset && i < uint32(len(src)); i++ {
		if src[i] == '\n' {
			row++
			col = 1
		} else {
			col++
		}
	}
	return row, col
}

// Line returns the full source line containing offset, without its
// terminating newline. Used by the CLI-facing "check" report to underline
// the offending byte; kept here since it's a pure function of Span/offset
// like RowCol.
func Line(src []byte, offset uint32) []byte {
	start := offset
	for start > 0 && src[start-1] != '\n' {
		start--
	}
	end := offset
	for end < uint32(len(src)) && src[end] != '\n' {
		end++
	}
	return src[start:end]
}

func newSpan(start, end int) Span {
	return Span{Start: uint32(start), End: uint32(end)}
}
