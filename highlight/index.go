package highlight

import (
	"sort"

	"braces.dev/errtrace"
)

// LineIndex maps between offsets and line/column pairs
// in a single text buffer.
//
// A LineIndex is immutable once built
// and safe for concurrent use.
type LineIndex struct {
	src    string
	starts []int // offset in src of the first byte of line i
}

// NewLineIndex indexes the lines of src.
// A buffer always has at least one line, even if it's empty.
func NewLineIndex(src string) *LineIndex {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{src: src, starts: starts}
}

// Lines reports the number of lines in the buffer.
func (idx *LineIndex) Lines() int {
	return len(idx.starts)
}

// Line returns the text of the given zero-based line
// without its line break.
// It returns an empty string if the line doesn't exist.
func (idx *LineIndex) Line(n int) string {
	if n < 0 || n >= len(idx.starts) {
		return ""
	}
	return idx.src[idx.starts[n]:idx.end(n)]
}

// Locate returns the position of the byte at offset.
// Offsets outside the buffer are clamped to its boundaries.
//
// An offset that refers to a line break
// belongs to the line that the break terminates.
func (idx *LineIndex) Locate(offset int) Position {
	offset = clamp(offset, 0, len(idx.src))

	// starts[line] is the last line start at or before offset.
	line := sort.SearchInts(idx.starts, offset+1) - 1
	return Position{
		Index:  offset,
		Line:   line,
		Column: offset - idx.starts[line],
	}
}

// Position returns the position at the given zero-based line and column.
//
// The column may be one past the last byte of the line,
// referring to its line break or to the end of the buffer.
// Anything further returns an error matching [ErrOutOfRange].
func (idx *LineIndex) Position(line, col int) (Position, error) {
	if line < 0 || line >= len(idx.starts) {
		return Position{}, errtrace.Errorf("line %d of %d: %w", line+1, len(idx.starts), ErrOutOfRange)
	}

	start := idx.starts[line]
	if col < 0 || start+col > idx.end(line) {
		return Position{}, errtrace.Errorf("column %d of line %d: %w", col+1, line+1, ErrOutOfRange)
	}

	return Position{
		Index:  start + col,
		Line:   line,
		Column: col,
	}, nil
}

// end reports the offset of the line break terminating the given line,
// or the length of the buffer for the last line.
func (idx *LineIndex) end(line int) int {
	if line+1 < len(idx.starts) {
		return idx.starts[line+1] - 1
	}
	return len(idx.src)
}
