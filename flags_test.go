package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/hilite/internal/iotest"
)

func TestCLIParser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string
		want params
	}{
		{
			desc: "minimal",
			give: []string{"main.go"},
			want: params{
				OutDir: "_site",
				Theme:  "plain",
				Files:  []string{"main.go"},
			},
		},
		{
			desc: "render options",
			give: []string{
				"-out", "site",
				"-theme", "monokai",
				"-lang", "python",
				"-embed",
				"a.py", "b.py",
			},
			want: params{
				OutDir: "site",
				Theme:  "monokai",
				Lang:   "python",
				Embed:  true,
				Files:  []string{"a.py", "b.py"},
			},
		},
		{
			desc: "style files",
			give: []string{
				"-style-file", "a.xml",
				"-style-file", "b.xml",
				"main.go",
			},
			want: params{
				OutDir:     "_site",
				Theme:      "plain",
				StyleFiles: []string{"a.xml", "b.xml"},
				Files:      []string{"main.go"},
			},
		},
		{
			desc: "css without files",
			give: []string{"-css"},
			want: params{
				OutDir: "_site",
				Theme:  "plain",
				CSS:    true,
				Files:  []string{},
			},
		},
		{
			desc: "list without files",
			give: []string{"-list"},
			want: params{
				OutDir: "_site",
				Theme:  "plain",
				List:   true,
				Files:  []string{},
			},
		},
		{
			desc: "watch",
			give: []string{"-watch", "-inline", "main.go"},
			want: params{
				OutDir: "_site",
				Theme:  "plain",
				Inline: true,
				Watch:  true,
				Files:  []string{"main.go"},
			},
		},
		{
			desc: "debug",
			give: []string{"-debug=log.txt", "main.go"},
			want: params{
				OutDir: "_site",
				Theme:  "plain",
				Debug:  "log.txt",
				Files:  []string{"main.go"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, err := (&cliParser{
				Stdout: iotest.Writer(t),
				Stderr: iotest.Writer(t),
			}).Parse(tt.give)
			require.NoError(t, err)
			assert.Equal(t, &tt.want, got)
		})
	}
}

func TestCLIParser_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string
	}{
		{desc: "no arguments"},
		{
			desc: "unknown flag",
			give: []string{"-this-does-not-exist"},
		},
		{
			desc: "watch with css",
			give: []string{"-watch", "-css", "main.go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			_, err := (&cliParser{
				Stdout: iotest.Writer(t),
				Stderr: iotest.Writer(t),
			}).Parse(tt.give)
			assert.Error(t, err)
		})
	}
}

func TestCLIParser_version(t *testing.T) {
	t.Parallel()

	_, err := (&cliParser{
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Parse([]string{"-version"})
	assert.ErrorIs(t, err, errHelp)
}

func TestCLIParser_helpTopicArgument(t *testing.T) {
	t.Parallel()

	// "-h themes" should behave like "-h=themes".
	_, err := (&cliParser{
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Parse([]string{"-h", "themes"})
	assert.ErrorIs(t, err, errHelp)
}
