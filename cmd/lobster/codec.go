package main

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/urfave/cli/v2"

	"github.com/you-not-fish/lobster/internal/syntax"
	"github.com/you-not-fish/lobster/internal/types"
	"github.com/you-not-fish/lobster/internal/types2"
)

// CmdCodec encodes values to memory cells and decodes them back.
var CmdCodec = &cli.Command{
	Name:      "codec",
	Usage:     "Encode values of a type to memory cells and decode them back",
	ArgsUsage: "VALUES...",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "type",
			Aliases:  []string{"t"},
			Usage:    "Element type as declaration specifiers, e.g. \"const int\"",
			Required: true,
		},
		&cli.Int64Flag{
			Name:    "length",
			Aliases: []string{"n"},
			Usage:   "Treat the values as an array of this length",
		},
	},
	Action: runCodec,
}

func runCodec(c *cli.Context) error {
	w := c.App.Writer
	conf := &types2.Config{Error: func(n *types2.Note) { printNote(w, n) }}

	s, err := newSession(c, conf)
	if err != nil {
		return err
	}

	elem, err := resolveFlagType(s, conf, c.String("type"))
	if err != nil {
		return err
	}

	args := c.Args().Slice()
	var (
		typ types.Type = elem
		val types.Value
	)
	if n := c.Int64("length"); n > 0 {
		if int64(len(args)) != n {
			return fmt.Errorf("got %d values for an array of length %d", len(args), n)
		}
		typ = s.ctx.NewArray(elem, n)
		elems := make([]types.Value, len(args))
		for i, a := range args {
			if elems[i], err = parseValue(elem, a); err != nil {
				return fmt.Errorf("value %d: %w", i+1, err)
			}
		}
		val = elems
	} else {
		if len(args) != 1 {
			return fmt.Errorf("expected one value, got %d", len(args))
		}
		if val, err = parseValue(elem, args[0]); err != nil {
			return err
		}
	}

	cells, err := types.ValueToBytes(typ, val)
	if err != nil {
		return err
	}
	back, err := types.BytesToValue(typ, cells)
	if err != nil {
		return err
	}
	s.logger.Debug("codec round trip")

	printField(w, "type", typ)
	printField(w, "size", typ.Size())
	printField(w, "cells", fmt.Sprint([]types.Value(cells)))
	printField(w, "value", types.ValueToString(typ, back))
	printField(w, "ostream", types.ValueToOstreamString(typ, back))
	return nil
}

func resolveFlagType(s *session, conf *types2.Config, src string) (types.Type, error) {
	var scanErr error
	specs := syntax.ScanSpecifiers("--type", src, func(pos syntax.Pos, msg string) {
		if scanErr == nil {
			scanErr = fmt.Errorf("%s: %s", pos, msg)
		}
	})
	if scanErr != nil {
		return nil, scanErr
	}
	ts := types2.NewTypeSpecifier(syntax.NewPos("--type", 1, 1), specs...)
	if err := types2.Resolve(s.ctx, s.scope, conf, ts); err != nil {
		return nil, err
	}
	return ts.Type, nil
}

// parseValue converts command line text to the runtime representation
// of a value of type t.
func parseValue(t types.Type, s string) (types.Value, error) {
	switch t := types.CVUnqualified(t).(type) {
	case *types.Basic:
		switch {
		case t.Kind() == types.Bool:
			return strconv.ParseBool(s)
		case t.Kind() == types.Char && utf8.RuneCountInString(s) == 1:
			r, _ := utf8.DecodeRuneInString(s)
			return r, nil
		case t.Info()&types.IsInteger != 0:
			return strconv.ParseInt(s, 0, 64)
		case t.Info()&types.IsFloat != 0:
			return strconv.ParseFloat(s, 64)
		case t.Kind() == types.String:
			return s, nil
		}
	case *types.Enum:
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, nil
		}
		return s, nil
	case *types.Pointer:
		return strconv.ParseInt(s, 0, 64)
	}
	return nil, fmt.Errorf("values of type %s cannot be given on the command line", t)
}
