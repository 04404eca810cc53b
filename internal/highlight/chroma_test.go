package highlight

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChromaEngine_Format(t *testing.T) {
	t.Parallel()

	engine, err := new(Config).Loader()(context.Background())
	require.NoError(t, err)

	t.Run("known language and theme", func(t *testing.T) {
		t.Parallel()

		out, err := engine.Format("print(1)", "python", DefaultTheme)
		require.NoError(t, err)
		assert.Contains(t, out, "<pre")
		assert.Contains(t, out, "print")
	})

	t.Run("unknown language", func(t *testing.T) {
		t.Parallel()

		_, err := engine.Format("hello", "klingon", DefaultTheme)
		assert.ErrorContains(t, err, `unknown language "klingon"`)
	})

	t.Run("unknown theme", func(t *testing.T) {
		t.Parallel()

		_, err := engine.Format("print(1)", "python", "does-not-exist")
		assert.ErrorContains(t, err, `unknown theme "does-not-exist"`)
	})
}

func TestConfig_Loader_styleFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "corporate.xml")
	require.NoError(t, os.WriteFile(path, []byte(
		`<style name="corporate">`+
			`<entry type="Comment" style="italic #888888"/>`+
			`<entry type="Keyword" style="bold #000080"/>`+
			`</style>`,
	), 0o644))

	cfg := Config{StyleFiles: []string{path}}
	engine, err := cfg.Loader()(context.Background())
	require.NoError(t, err)

	out, err := engine.Format("print(1)", "python", "corporate")
	require.NoError(t, err, "style from file must be usable as a theme")
	assert.Contains(t, out, "print")
}

func TestConfig_Loader_badStyleFile(t *testing.T) {
	t.Parallel()

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		cfg := Config{StyleFiles: []string{filepath.Join(t.TempDir(), "nope.xml")}}
		_, err := cfg.Loader()(context.Background())
		assert.ErrorContains(t, err, "open style")
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.xml")
		require.NoError(t, os.WriteFile(path, []byte("not xml at all <"), 0o644))

		cfg := Config{StyleFiles: []string{path}}
		_, err := cfg.Loader()(context.Background())
		assert.ErrorContains(t, err, "parse style")
	})

	t.Run("canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		cfg := Config{StyleFiles: []string{"unused.xml"}}
		_, err := cfg.Loader()(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestConfig_WriteCSS(t *testing.T) {
	t.Parallel()

	t.Run("default theme", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, new(Config).WriteCSS(context.Background(), &buf, DefaultTheme))
		assert.Contains(t, buf.String(), ".chroma")
	})

	t.Run("unknown theme", func(t *testing.T) {
		t.Parallel()

		err := new(Config).WriteCSS(context.Background(), new(bytes.Buffer), "does-not-exist")
		assert.ErrorContains(t, err, "unknown theme")
	})
}

func TestDetectLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		want     string
	}{
		{"main.go", "Go"},
		{"script.py", "Python"},
		{"unknown.zzz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, DetectLanguage(tt.filename))
		})
	}
}

func TestLanguagesAndThemes(t *testing.T) {
	t.Parallel()

	assert.Contains(t, Languages(), "Go")
	assert.Contains(t, Themes(), DefaultTheme)
}
