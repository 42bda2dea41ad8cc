// Package iotest routes program output into test logs.
package iotest

import (
	"bytes"
	"io"
	"testing"

	"go.abhg.dev/arrows/internal/linebuf"
)

var _newline = []byte("\n")

// Writer builds an io.Writer that logs to the given testing.TB,
// one t.Logf call per line.
//
// Partial lines are held until they're completed
// or until the test finishes.
func Writer(t testing.TB) io.Writer {
	w, flush := linebuf.Writer(func(line []byte) error {
		t.Logf("%s", bytes.TrimSuffix(line, _newline))
		return nil
	})
	t.Cleanup(func() { _ = flush() })
	return w
}
