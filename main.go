// arrows prints regions of a source file
// with a row of carets underneath,
// the way compilers point at errors.
//
// See -help for usage.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"braces.dev/errtrace"
	"go.abhg.dev/arrows/internal/decode"
	"go.abhg.dev/arrows/internal/errdefer"
	"go.abhg.dev/arrows/internal/linebuf"
)

func main() {
	cmd := mainCmd{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdin  io.Reader // == os.Stdin
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, errHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("arrows: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	debugw, closeDebug, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(fmt.Errorf("open debug log: %w", err))
	}
	defer errdefer.Invoke(&err, closeDebug)
	debug := log.New(debugw, "[arrows] ", 0)

	src, err := cmd.readSource(opts.File, opts.Encoding)
	if err != nil {
		return errtrace.Wrap(err)
	}
	debug.Printf("read %d bytes from %v (encoding %q)", len(src), opts.File, opts.Encoding)

	out := cmd.Stdout
	if len(opts.Prefix) > 0 {
		w, flush := linebuf.Writer(func(line []byte) error {
			_, err := fmt.Fprintf(cmd.Stdout, "%s%s", opts.Prefix, line)
			return err
		})
		defer errdefer.Invoke(&err, flush)
		out = w
	}

	renderer := Renderer{
		Log:    debug,
		Source: src,
	}
	return errtrace.Wrap(renderer.Render(out, opts.Spans))
}

// readSource reads the file at path, or stdin if path is "-",
// decoding it from the named encoding.
func (cmd *mainCmd) readSource(path, encoding string) (_ string, err error) {
	var r io.Reader = cmd.Stdin
	if path != "-" {
		var f *os.File
		f, err = os.Open(path)
		if err != nil {
			return "", errtrace.Wrap(err)
		}
		defer errdefer.Close(&err, f)
		r = f
	}

	r, err = decode.Reader(r, encoding)
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	bs, err := io.ReadAll(r)
	if err != nil {
		return "", errtrace.Wrap(fmt.Errorf("read %v: %w", path, err))
	}
	return string(bs), nil
}
