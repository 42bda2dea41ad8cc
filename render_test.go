package main

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/arrows/highlight"
	"go.abhg.dev/arrows/internal/iotest"
)

func TestRenderer(t *testing.T) {
	t.Parallel()

	spans := make([]spanArg, 2)
	require.NoError(t, spans[0].Set("1:1-1:5"))
	require.NoError(t, spans[1].Set("#14-#17"))

	var out bytes.Buffer
	r := Renderer{
		Log:    log.New(iotest.Writer(t), "", 0),
		Source: _threeLines,
	}
	require.NoError(t, r.Render(&out, spans))

	assert.Equal(t,
		"line one\n^^^^\n\nline two\n     ^^^\n",
		out.String())
}

func TestRenderer_stopsAtBadSpan(t *testing.T) {
	t.Parallel()

	spans := make([]spanArg, 3)
	require.NoError(t, spans[0].Set("1:1-1:5"))
	require.NoError(t, spans[1].Set("2:1-1:1"))
	require.NoError(t, spans[2].Set("3:1-3:5"))

	var out bytes.Buffer
	r := Renderer{
		Log:    log.New(iotest.Writer(t), "", 0),
		Source: _threeLines,
	}
	err := r.Render(&out, spans)
	assert.ErrorIs(t, err, highlight.ErrReversed)
	assert.ErrorContains(t, err, "span 2:1-1:1")

	assert.Equal(t, "line one\n^^^^\n", out.String(),
		"spans before the bad one must be written")
}

func TestRenderer_writeError(t *testing.T) {
	t.Parallel()

	spans := make([]spanArg, 1)
	require.NoError(t, spans[0].Set("1:1-1:5"))

	r := Renderer{
		Log:    log.New(iotest.Writer(t), "", 0),
		Source: _threeLines,
	}
	err := r.Render(failWriter{}, spans)
	assert.ErrorIs(t, err, errWriteFailed)
}

var errWriteFailed = errors.New("write failed")

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}
