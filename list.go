package main

import (
	"context"
	"fmt"

	"go.abhg.dev/hilite/internal/highlight"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// list prints the supported languages and themes.
// Chroma's registries sort by byte order;
// collate gives a case-insensitive listing instead.
func (cmd *mainCmd) list(ctx context.Context, cfg *highlight.Config) error {
	// Register -style-file themes so they show up too.
	if err := cfg.RegisterStyles(ctx); err != nil {
		return err
	}

	coll := collate.New(language.English, collate.IgnoreCase)

	languages := highlight.Languages()
	coll.SortStrings(languages)
	fmt.Fprintln(cmd.Stdout, "Languages:")
	for _, name := range languages {
		fmt.Fprintf(cmd.Stdout, "  %v\n", name)
	}

	themes := highlight.Themes()
	coll.SortStrings(themes)
	fmt.Fprintln(cmd.Stdout, "Themes:")
	for _, name := range themes {
		fmt.Fprintf(cmd.Stdout, "  %v\n", name)
	}
	return nil
}
