package main

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/you-not-fish/lobster/internal/types2"
)

// Colors
var (
	ErrorColor   = pterm.FgRed
	WarnColor    = pterm.FgYellow
	StyleColor   = pterm.FgCyan
	InfoColor    = pterm.FgLightBlue
	SuccessColor = pterm.FgLightGreen
)

func noteColor(kind types2.NoteKind) pterm.Color {
	switch kind {
	case types2.NoteError:
		return ErrorColor
	case types2.NoteWarning:
		return WarnColor
	case types2.NoteStyle:
		return StyleColor
	}
	return InfoColor
}

// printNote writes a single diagnostic in "pos: kind: msg [id]" form.
func printNote(w io.Writer, n *types2.Note) {
	fmt.Fprintf(w, "%s: %s %s %s\n",
		n.Pos,
		noteColor(n.Kind).Sprint(n.Kind.String()+":"),
		n.Msg,
		pterm.FgDarkGray.Sprint("["+n.ID+"]"))
}

// printTable renders rows with a header line.
func printTable(w io.Writer, data pterm.TableData) error {
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, s)
	return nil
}

// printField writes an aligned "label: value" line.
func printField(w io.Writer, label string, value any) {
	fmt.Fprintf(w, "  %-8s %v\n", label+":", value)
}
