package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/arrows/highlight"
)

// spanArg is a span as written on the command line:
// two endpoints separated by '-'.
//
// Endpoints are not resolved into positions
// until the source file has been read.
type spanArg struct {
	Start, End pointArg
}

var _ flag.Getter = (*spanArg)(nil)

func (s *spanArg) Get() any { return *s }

func (s *spanArg) String() string {
	return s.Start.String() + "-" + s.End.String()
}

func (s *spanArg) Set(v string) error {
	start, end, ok := strings.Cut(v, "-")
	if !ok {
		return errtrace.Errorf("bad span %q: expected form START-END", v)
	}

	var err error
	if s.Start, err = parsePoint(start); err != nil {
		return errtrace.Errorf("bad span %q: %w", v, err)
	}
	if s.End, err = parsePoint(end); err != nil {
		return errtrace.Errorf("bad span %q: %w", v, err)
	}
	return nil
}

// Resolve builds a span for the source covered by idx.
func (s *spanArg) Resolve(idx *highlight.LineIndex) (highlight.Span, error) {
	start, err := s.Start.Resolve(idx)
	if err != nil {
		return highlight.Span{}, errtrace.Errorf("start: %w", err)
	}

	end, err := s.End.Resolve(idx)
	if err != nil {
		return highlight.Span{}, errtrace.Errorf("end: %w", err)
	}

	return highlight.Span{Start: start, End: end}, nil
}

// pointArg is one endpoint of a spanArg.
// It is either a 1-based LINE:COL pair or a 0-based #OFFSET.
type pointArg struct {
	Line, Col int // 1-based; unset if IsOffset

	IsOffset bool
	Offset   int
}

func parsePoint(s string) (pointArg, error) {
	if rest, ok := strings.CutPrefix(s, "#"); ok {
		off, err := strconv.Atoi(rest)
		if err != nil || off < 0 {
			return pointArg{}, errtrace.Errorf("bad offset %q: expected a non-negative integer", s)
		}
		return pointArg{IsOffset: true, Offset: off}, nil
	}

	lineStr, colStr, ok := strings.Cut(s, ":")
	if !ok {
		return pointArg{}, errtrace.Errorf("bad position %q: expected LINE:COL or #OFFSET", s)
	}

	line, err := strconv.Atoi(lineStr)
	if err != nil || line < 1 {
		return pointArg{}, errtrace.Errorf("bad line %q: expected a positive integer", lineStr)
	}

	col, err := strconv.Atoi(colStr)
	if err != nil || col < 1 {
		return pointArg{}, errtrace.Errorf("bad column %q: expected a positive integer", colStr)
	}

	return pointArg{Line: line, Col: col}, nil
}

func (p pointArg) String() string {
	if p.IsOffset {
		return fmt.Sprintf("#%d", p.Offset)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Resolve finds this point in the source covered by idx.
func (p pointArg) Resolve(idx *highlight.LineIndex) (highlight.Position, error) {
	if !p.IsOffset {
		pos, err := idx.Position(p.Line-1, p.Col-1)
		return pos, errtrace.Wrap(err)
	}

	// Locate clamps into the buffer.
	pos := idx.Locate(p.Offset)
	if pos.Index != p.Offset {
		return highlight.Position{}, errtrace.Errorf("offset %d: %w", p.Offset, highlight.ErrOutOfRange)
	}
	return pos, nil
}
