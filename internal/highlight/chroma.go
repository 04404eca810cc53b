package highlight

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Config configures the Chroma-backed [Engine].
type Config struct {
	// UseClasses specifies whether the engine
	// emits class attributes for highlighting,
	// assuming use of an appropriate style sheet,
	// or inlines 'style' attributes into the markup.
	UseClasses bool

	// StyleFiles are paths to Chroma style XML files.
	// They are registered as themes when the engine loads,
	// under the name declared inside each file.
	StyleFiles []string
}

// Loader returns a [LoadFunc] that builds the Chroma-backed engine.
//
// Loading registers the styles named in [Config.StyleFiles],
// so it can fail on a missing or malformed file.
func (c *Config) Loader() LoadFunc {
	return func(ctx context.Context) (Engine, error) {
		if err := c.RegisterStyles(ctx); err != nil {
			return nil, err
		}
		return &chromaEngine{
			formatter: chromahtml.New(
				chromahtml.WithClasses(c.UseClasses),
			),
		}, nil
	}
}

// WriteCSS writes the style sheet for the given theme to w.
// It registers [Config.StyleFiles] first
// so that custom themes are addressable without a prior render.
func (c *Config) WriteCSS(ctx context.Context, w io.Writer, theme string) error {
	if err := c.RegisterStyles(ctx); err != nil {
		return err
	}

	style, ok := styles.Registry[theme]
	if !ok {
		return errtrace.Wrap(fmt.Errorf("unknown theme %q", theme))
	}

	formatter := chromahtml.New(chromahtml.WithClasses(true))
	return errtrace.Wrap(formatter.WriteCSS(w, style))
}

// RegisterStyles registers [Config.StyleFiles] with Chroma
// under the names declared inside each file.
// Loading the engine does this automatically;
// call it directly only when no engine will be loaded.
// Registering the same file twice is harmless.
func (c *Config) RegisterStyles(ctx context.Context) error {
	for _, path := range c.StyleFiles {
		if err := ctx.Err(); err != nil {
			return errtrace.Wrap(err)
		}

		f, err := os.Open(path)
		if err != nil {
			return errtrace.Wrap(fmt.Errorf("open style: %w", err))
		}

		style, err := chroma.NewXMLStyle(f)
		_ = f.Close()
		if err != nil {
			return errtrace.Wrap(fmt.Errorf("parse style %q: %w", path, err))
		}

		styles.Register(style)
	}
	return nil
}

// chromaEngine is an [Engine] built on the Chroma lexer and style
// registries.
type chromaEngine struct {
	formatter *chromahtml.Formatter
}

var _ Engine = (*chromaEngine)(nil)

func (e *chromaEngine) Format(content, language, theme string) (string, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		return "", errtrace.Wrap(fmt.Errorf("unknown language %q", language))
	}

	style, ok := styles.Registry[theme]
	if !ok {
		return "", errtrace.Wrap(fmt.Errorf("unknown theme %q", theme))
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, content)
	if err != nil {
		return "", errtrace.Wrap(fmt.Errorf("tokenize: %w", err))
	}

	var buf bytes.Buffer
	if err := e.formatter.Format(&buf, style, iterator); err != nil {
		return "", errtrace.Wrap(fmt.Errorf("format: %w", err))
	}
	return buf.String(), nil
}

// DetectLanguage guesses the language of a file from its name.
// It returns "" if no known language matches.
func DetectLanguage(filename string) string {
	lexer := lexers.Match(filename)
	if lexer == nil {
		return ""
	}
	return lexer.Config().Name
}

// Languages reports the names of all supported languages.
func Languages() []string {
	return lexers.Names(false)
}

// Themes reports the names of all registered themes.
func Themes() []string {
	return styles.Names()
}
