// Package linebuf provides line-buffered IO utilities.
package linebuf

import (
	"bytes"
	"io"
	"sync"

	"braces.dev/errtrace"
)

// Writer returns an io.Writer that splits its input on newlines,
// calling fn once for each complete line, including its newline.
//
// Text after the last newline is held until a later write completes it,
// or until flush is called.
// If fn fails, Write reports the error
// along with the number of bytes consumed so far.
func Writer(fn func([]byte) error) (_ io.Writer, flush func() error) {
	w := writer{writeLine: fn}
	return &w, w.flush
}

type writer struct {
	writeLine func([]byte) error

	mu   sync.Mutex
	buff bytes.Buffer // partial line; guarded by mu
}

func (w *writer) Write(bs []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var n int
	for len(bs) > 0 {
		idx := bytes.IndexByte(bs, '\n')
		if idx < 0 {
			w.buff.Write(bs)
			n += len(bs)
			break
		}

		var line []byte
		line, bs = bs[:idx+1], bs[idx+1:]
		n += len(line)

		// Join with the remainder of a prior partial write, if any.
		if w.buff.Len() > 0 {
			w.buff.Write(line)
			line = w.buff.Bytes()
		}

		err := w.writeLine(line)
		w.buff.Reset()
		if err != nil {
			return n, errtrace.Wrap(err)
		}
	}
	return n, nil
}

// flush writes buffered text, even if it doesn't end with a newline.
func (w *writer) flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buff.Len() == 0 {
		return nil
	}
	defer w.buff.Reset()

	return errtrace.Wrap(w.writeLine(w.buff.Bytes()))
}
