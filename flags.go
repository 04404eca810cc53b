package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"go.abhg.dev/hilite/internal/flagvalue"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// params holds all arguments for hilite.
type params struct {
	version bool
	help    Help

	OutDir     string
	Theme      string
	Lang       string
	StyleFiles []string

	Embed  bool
	Inline bool
	CSS    bool
	List   bool
	Watch  bool

	Debug flagvalue.FileSwitch

	Files []string
}

// cliParser parses the command line arguments for hilite.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("hilite", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		DefaultHelp.Write(cmd.Stderr)
	}

	var p params

	// Filesystem:
	flag.StringVar(&p.OutDir, "out", "_site", "")

	// Highlighting:
	flag.StringVar(&p.Theme, "theme", "plain", "")
	flag.StringVar(&p.Lang, "lang", "", "")
	flag.Var(flagvalue.ListOf(&p.StyleFiles), "style-file", "")

	// HTML output:
	flag.BoolVar(&p.Embed, "embed", false, "")
	flag.BoolVar(&p.Inline, "inline", false, "")

	// Alternate modes:
	flag.BoolVar(&p.CSS, "css", false, "")
	flag.BoolVar(&p.List, "list", false, "")
	flag.BoolVar(&p.Watch, "watch", false, "")

	// Program-level:
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, flag := cmd.newFlagSet()
	if err := flag.Parse(args); err != nil {
		return nil, err
	}
	args = flag.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "hilite", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(args[0]); err == nil {
			p.help = h
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

	p.Files = args
	if len(p.Files) == 0 && !p.CSS && !p.List {
		fmt.Fprintln(cmd.Stderr, "Please provide at least one file.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	if p.Watch && p.CSS {
		fmt.Fprintln(cmd.Stderr, "-watch cannot be combined with -css.")
		return nil, errInvalidArguments
	}

	return p, nil
}
