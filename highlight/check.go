package highlight

import (
	"errors"

	"braces.dev/errtrace"
)

var (
	// ErrOutOfRange indicates that a position lies outside the buffer.
	ErrOutOfRange = errors.New("position out of range")

	// ErrMismatch indicates that a position's line and column
	// do not describe the same byte as its index.
	ErrMismatch = errors.New("line and column do not match index")

	// ErrReversed indicates that the end of a span precedes its start.
	ErrReversed = errors.New("span is reversed")
)

// Check reports whether start and end are consistent with text
// and with each other.
//
// [Arrows] renders whatever it's given.
// Use Check before it when positions come from an untrusted source.
// The returned error matches one of
// [ErrOutOfRange], [ErrMismatch], or [ErrReversed]
// with errors.Is.
func Check(text string, start, end Position) error {
	return errtrace.Wrap(NewLineIndex(text).Check(start, end))
}

// Check is like the package-level [Check]
// but reuses this index for the buffer.
func (idx *LineIndex) Check(start, end Position) error {
	if err := idx.checkPosition(start); err != nil {
		return errtrace.Errorf("start: %w", err)
	}
	if err := idx.checkPosition(end); err != nil {
		return errtrace.Errorf("end: %w", err)
	}

	if end.Index < start.Index || end.Line < start.Line {
		return errtrace.Errorf("end %v is before start %v: %w", end, start, ErrReversed)
	}
	return nil
}

func (idx *LineIndex) checkPosition(p Position) error {
	if p.Index < 0 || p.Index > len(idx.src) {
		return errtrace.Errorf("index %d of %d: %w", p.Index, len(idx.src), ErrOutOfRange)
	}

	if got := idx.Locate(p.Index); got != p {
		return errtrace.Errorf("index %d is at %v, not %v: %w", p.Index, got, p, ErrMismatch)
	}
	return nil
}
