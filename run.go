package main

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"braces.dev/errtrace"
	"go.abhg.dev/hilite/internal/errdefer"
	"go.abhg.dev/hilite/internal/highlight"
	"golang.org/x/sync/errgroup"
)

// _stylesheet is the name of the style sheet
// written next to the generated pages.
const _stylesheet = "hilite.css"

// Highlighter renders source code into HTML markup.
// By contract it never fails;
// unrenderable input degrades to escaped plain text.
type Highlighter interface {
	Render(ctx context.Context, content, language, theme string) string
}

var _ Highlighter = (*highlight.Renderer)(nil)

// CSSWriter writes the style sheet backing class-based markup.
type CSSWriter interface {
	WriteCSS(ctx context.Context, w io.Writer, theme string) error
}

var _ CSSWriter = (*highlight.Config)(nil)

// Runner renders the requested files into OutDir.
//
// In terms of code organization,
// Runner's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Runner struct {
	Log         *log.Logger
	DebugLog    *log.Logger
	Highlighter Highlighter

	// CSS emits the style sheet for the chosen theme.
	// Unset when styles are inlined into the markup.
	CSS CSSWriter

	OutDir string
	Theme  string

	// Language forces a language for every file.
	// If empty, the language is detected from each file name.
	Language string

	// Embed emits bare HTML fragments without page chrome.
	Embed bool
}

// RenderAll renders every file concurrently.
// All renders share one Highlighter,
// so the highlighting engine loads at most once.
func (r *Runner) RenderAll(ctx context.Context, files []string) error {
	if err := os.MkdirAll(r.OutDir, 0o755); err != nil {
		return errtrace.Wrap(err)
	}
	if err := r.writeCSS(ctx); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, file := range files {
		g.Go(func() error {
			return r.renderFile(gctx, file)
		})
	}
	return errtrace.Wrap(g.Wait())
}

func (r *Runner) writeCSS(ctx context.Context) (err error) {
	if r.CSS == nil || r.Embed {
		return nil
	}

	path := filepath.Join(r.OutDir, _stylesheet)
	f, err := os.Create(path)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	r.DebugLog.Printf("Writing style sheet %v", path)
	return r.CSS.WriteCSS(ctx, f, r.Theme)
}

func (r *Runner) renderFile(ctx context.Context, path string) (err error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return errtrace.Wrap(err)
	}

	language := r.Language
	if language == "" {
		language = highlight.DetectLanguage(path)
		r.DebugLog.Printf("Detected %v as %q", path, language)
	}

	markup := r.Highlighter.Render(ctx, string(src), language, r.Theme)

	out := filepath.Join(r.OutDir, filepath.Base(path)+".html")
	f, err := os.Create(out)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	if r.Embed {
		if _, err := io.WriteString(f, markup); err != nil {
			return errtrace.Wrap(err)
		}
	} else {
		page := pageInfo{
			Title: filepath.Base(path),
			Code:  template.HTML(markup),
		}
		if r.CSS != nil {
			page.Stylesheet = _stylesheet
		}
		if err := _pageTmpl.Execute(f, page); err != nil {
			return errtrace.Wrap(fmt.Errorf("render page: %w", err))
		}
	}

	r.Log.Printf("Rendered %v", out)
	return nil
}

// pageInfo is the data for the page template.
type pageInfo struct {
	Title      string
	Stylesheet string
	Code       template.HTML
}

var _pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{with .Stylesheet -}}
<link rel="stylesheet" href="{{.}}">
{{end -}}
</head>
<body>
{{.Code}}
</body>
</html>
`))
