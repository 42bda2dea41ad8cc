package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"
	"github.com/peterbourgon/ff/v3"
	"go.abhg.dev/arrows/internal/flagvalue"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// _envPrefix is the prefix for environment variables
// that may be used in place of flags.
const _envPrefix = "ARROWS"

// params holds all arguments for arrows.
type params struct {
	version bool
	help    Help
	config  string

	Debug flagvalue.FileSwitch

	Encoding string
	Prefix   string
	Spans    []spanArg

	File string
}

// cliParser parses the command line arguments for arrows.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("arrows", flag.ContinueOnError)
	// Errors are reported by Parse.
	flag.SetOutput(io.Discard)
	flag.Usage = func() {}

	var p params

	// Rendering:
	flag.Var(flagvalue.ListOf(&p.Spans), "span", "")
	flag.StringVar(&p.Encoding, "encoding", "", "")
	flag.StringVar(&p.Prefix, "prefix", "", "")

	// Program-level:
	flag.StringVar(&p.config, "config", "", "")
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, flag := cmd.newFlagSet()
	err := ff.Parse(flag, args,
		ff.WithEnvVarPrefix(_envPrefix),
		ff.WithEnvVarSplit(","),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		fmt.Fprintln(cmd.Stderr, err)
		UsageHelp.Write(cmd.Stderr)
		return nil, errtrace.Wrap(err)
	}
	args = flag.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "arrows", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h span"
		// instead of "-h=span".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(args[0]); err == nil {
			if _, ok := _helpTopics[h]; ok {
				p.help = h
			}
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	switch len(args) {
	case 0:
		fmt.Fprintln(cmd.Stderr, "Please provide a file to read.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	case 1:
		p.File = args[0]
	default:
		fmt.Fprintf(cmd.Stderr, "Too many arguments: %q\n", strings.Join(args[1:], " "))
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	if len(p.Spans) == 0 {
		fmt.Fprintln(cmd.Stderr, "Please provide at least one -span.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	return p, nil
}
