package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"go.abhg.dev/hilite/internal/highlight"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(ctx, os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(ctx context.Context, args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(ctx, opts); err != nil {
		cmd.log.Printf("hilite: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(ctx context.Context, opts *params) (err error) {
	cfg := highlight.Config{
		UseClasses: !opts.Inline,
		StyleFiles: opts.StyleFiles,
	}

	switch {
	case opts.List:
		return cmd.list(ctx, &cfg)
	case opts.CSS:
		return cfg.WriteCSS(ctx, cmd.Stdout, opts.Theme)
	}

	debugw, closeDebug, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, closeDebug())
	}()

	runner := Runner{
		Log:      cmd.log,
		DebugLog: log.New(debugw, "", 0),
		Highlighter: &highlight.Renderer{
			Load: cfg.Loader(),
			Log:  cmd.log,
		},
		OutDir:   opts.OutDir,
		Theme:    opts.Theme,
		Language: opts.Lang,
		Embed:    opts.Embed,
	}
	if !opts.Inline {
		runner.CSS = &cfg
	}

	if err := runner.RenderAll(ctx, opts.Files); err != nil {
		return err
	}
	if opts.Watch {
		return runner.Watch(ctx, opts.Files)
	}
	return nil
}
