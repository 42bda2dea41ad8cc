package main

import (
	"io"
	"log"

	"braces.dev/errtrace"
	"go.abhg.dev/arrows/highlight"
)

// Renderer prints caret underlines
// for any number of spans over a single source buffer.
//
// In terms of code organization,
// Renderer's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Renderer struct {
	Log    *log.Logger // required
	Source string

	index *highlight.LineIndex
}

// Render resolves each span against the source
// and writes its highlighted lines to w.
// Consecutive spans are separated by a blank line.
//
// Spans that don't fit the source are rejected
// before anything is written for them.
func (r *Renderer) Render(w io.Writer, spans []spanArg) error {
	if r.index == nil {
		r.index = highlight.NewLineIndex(r.Source)
	}

	for i, arg := range spans {
		span, err := r.resolve(&arg)
		if err != nil {
			return errtrace.Errorf("span %v: %w", &arg, err)
		}

		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return errtrace.Wrap(err)
			}
		}
		if _, err := io.WriteString(w, span.Arrows(r.Source)+"\n"); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

func (r *Renderer) resolve(arg *spanArg) (highlight.Span, error) {
	span, err := arg.Resolve(r.index)
	if err != nil {
		return span, errtrace.Wrap(err)
	}

	if err := r.index.Check(span.Start, span.End); err != nil {
		return span, errtrace.Wrap(err)
	}

	r.Log.Printf("span %v: offsets [%d, %d) over %d line(s)",
		arg, span.Start.Index, span.End.Index, span.End.Line-span.Start.Line+1)
	return span, nil
}
