package highlight

import "fmt"

// Position is a location in a text buffer.
//
// All three fields are zero-based.
// Index and Column count bytes, the same way go/token does.
// Nothing ties the fields together:
// callers are expected to keep them consistent with the buffer.
// Use [Check] to verify that they are.
type Position struct {
	Index  int // offset into the buffer
	Line   int // line number
	Column int // offset from the start of Line
}

// String reports the position as LINE:COL,
// counting lines and columns from one as editors do.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}

// Span is a region of a text buffer.
// End is exclusive: its column is one past the last highlighted byte.
type Span struct {
	Start Position
	End   Position
}

// String reports the span as START-END.
func (s Span) String() string {
	return s.Start.String() + "-" + s.End.String()
}

// Arrows renders this span over text.
// See the package-level [Arrows] function.
func (s Span) Arrows(text string) string {
	return Arrows(text, s.Start, s.End)
}
