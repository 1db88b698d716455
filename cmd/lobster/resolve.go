package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/you-not-fish/lobster/internal/syntax"
	"github.com/you-not-fish/lobster/internal/types"
	"github.com/you-not-fish/lobster/internal/types2"
)

// CmdResolve resolves declaration specifier sequences.
var CmdResolve = &cli.Command{
	Name:      "resolve",
	Usage:     "Resolve declaration specifiers to a type",
	ArgsUsage: "SPECIFIERS...",
	Description: `Each argument is one specifier sequence, for example "const unsigned int".
Class names from the configuration file can be used as type names.`,
	Action: runResolve,
}

func runResolve(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("no specifiers given")
	}
	w := c.App.Writer

	s, err := newSession(c, nil)
	if err != nil {
		return err
	}

	checker := types2.NewChecker(s.ctx, s.scope, nil)
	failed := 0
	for i, src := range c.Args().Slice() {
		filename := fmt.Sprintf("arg%d", i+1)
		scanFailed := false
		specs := syntax.ScanSpecifiers(filename, src, func(pos syntax.Pos, msg string) {
			fmt.Fprintf(w, "%s: %s %s\n", pos, ErrorColor.Sprint("error:"), msg)
			scanFailed = true
		})
		if scanFailed {
			failed++
			continue
		}

		ts := types2.NewTypeSpecifier(syntax.NewPos(filename, 1, 1), specs...)
		checker.ResolveSpecifier(ts)

		fmt.Fprintln(w, InfoColor.Sprint(src))
		if ts.Type != nil {
			printField(w, "type", ts.Type)
			printField(w, "english", types.EnglishString(ts.Type, false))
			printField(w, "size", ts.Type.Size())
		}
		if len(ts.Storage) > 0 {
			printField(w, "storage", ts.Storage)
		}
		notes := append(types2.NoteList(nil), ts.Notes...)
		notes.Sort()
		for _, n := range notes {
			printNote(w, n)
		}
		if ts.Notes.HasErrors() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d specifier sequences did not resolve", failed, c.NArg())
	}
	return nil
}
