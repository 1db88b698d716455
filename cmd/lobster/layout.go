package main

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/you-not-fish/lobster/internal/types"
	"github.com/you-not-fish/lobster/internal/types2"
)

// CmdLayout prints the layout of the configured classes.
var CmdLayout = &cli.Command{
	Name:  "layout",
	Usage: "Print the subobject layout of each configured class",
	Action: runLayout,
}

func runLayout(c *cli.Context) error {
	w := c.App.Writer
	conf := &types2.Config{Error: func(n *types2.Note) { printNote(w, n) }}

	s, err := newSession(c, conf)
	if err != nil {
		return err
	}
	if len(s.classes) == 0 {
		fmt.Fprintln(w, "no classes configured")
	}

	for _, cls := range s.classes {
		fmt.Fprintln(w, InfoColor.Sprint("class "+cls.Name()))
		if err := printTable(w, layoutTable(cls)); err != nil {
			return err
		}
		size := strconv.FormatInt(cls.Size(), 10)
		if cls.ReallyZeroSize() {
			size += " (empty)"
		}
		printField(w, "size", size)
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "max object size: %s\n", SuccessColor.Sprint(s.ctx.MaxSize()))
	return nil
}

func layoutTable(cls *types.Class) pterm.TableData {
	data := pterm.TableData{{"Subobject", "Kind", "Type", "Index", "Size"}}
	for _, so := range cls.Subobjects() {
		kind, index := "member", strconv.Itoa(so.Index)
		if so.IsBase {
			kind, index = "base", "-"
		}
		data = append(data, []string{
			so.Name,
			kind,
			types.TypeString(so.Type, false, ""),
			index,
			strconv.FormatInt(so.Type.Size(), 10),
		})
	}
	return data
}
