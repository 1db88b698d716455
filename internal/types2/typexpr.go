package types2

import (
	"go.uber.org/zap"

	"github.com/you-not-fish/lobster/internal/syntax"
	"github.com/you-not-fish/lobster/internal/types"
)

// ResolveSpecifier scans ts.Specs left to right and sets the resolved
// type and flags on ts. Problems are reported as notes; resolution never
// fails. If the sequence names no type, ts.Type is left nil.
func (c *Checker) ResolveSpecifier(ts *TypeSpecifier) {
	var (
		name    string
		namePos syntax.Pos
		hasName bool
	)

	for _, s := range ts.Specs {
		pos := s.Pos
		if !pos.IsValid() {
			pos = ts.Pos
		}
		switch {
		case s.Tok == syntax.Const:
			if ts.IsConst {
				c.report(ts, constOnce(pos))
				continue
			}
			ts.IsConst = true

		case s.Tok == syntax.Volatile:
			if ts.IsVolatile {
				c.report(ts, volatileOnce(pos))
				continue
			}
			ts.IsVolatile = true

		case s.Tok == syntax.Unsigned:
			switch {
			case ts.IsUnsigned:
				c.report(ts, unsignedOnce(pos))
			case ts.IsSigned:
				c.report(ts, signedUnsigned(pos))
			default:
				ts.IsUnsigned = true
			}

		case s.Tok == syntax.Signed:
			switch {
			case ts.IsSigned:
				c.report(ts, signedOnce(pos))
			case ts.IsUnsigned:
				c.report(ts, signedUnsigned(pos))
			default:
				ts.IsSigned = true
			}

		case s.Tok.IsStorage():
			ts.Storage = append(ts.Storage, s.Value)
			c.report(ts, storageIgnored(pos, s.Value))

		default:
			if hasName {
				c.report(ts, oneType(pos))
				continue
			}
			name, namePos, hasName = s.Value, pos, true
		}
	}

	if !hasName {
		if !ts.IsUnsigned && !ts.IsSigned {
			c.report(ts, noReturnType(ts.Pos))
			return
		}
		name, namePos = "int", ts.Pos
	}
	ts.TypeName = name

	if ts.IsUnsigned {
		c.report(ts, unsignedNotSupported(ts.Pos))
	}

	ts.Type = c.typeName(ts, name, namePos)
	Logger().Debug("resolved type specifier",
		zap.String("specifiers", ts.String()),
		zap.Stringer("type", ts.Type))
}

// typeName resolves name to a type carrying the flags accumulated on ts.
// Unresolvable names yield the Unknown type.
func (c *Checker) typeName(ts *TypeSpecifier, name string, pos syntax.Pos) types.Type {
	var typ types.Type
	if t, ok := c.ctx.Builtin(name); ok {
		typ = t
	} else if t := c.lookupType(name); t != nil {
		typ = t
	} else {
		c.report(ts, typeNotFound(pos, name))
		return c.ctx.Unknown()
	}

	if b, ok := typ.(*types.Basic); ok {
		typ = b.WithSign(ts.IsUnsigned, ts.IsSigned)
	}
	return types.CVQualified(typ, ts.IsConst, ts.IsVolatile)
}
