package config

import (
	"go.uber.org/zap"

	"github.com/you-not-fish/lobster/internal/errors"
	"github.com/you-not-fish/lobster/internal/syntax"
	"github.com/you-not-fish/lobster/internal/types"
	"github.com/you-not-fish/lobster/internal/types2"
)

// BuildClasses defines the configured classes in ctx, in file order, and
// completes each one. The returned scope declares the class names; member
// types may refer to any class defined before them.
//
// Member type diagnostics are passed to conf.Error; a member whose type
// has an error note aborts the build.
func (c *Config) BuildClasses(ctx *types.Context, conf *types2.Config, logger *zap.Logger) ([]*types.Class, *types.Scope, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	scope := types.NewScope(ctx.Universe(), syntax.NoPos, syntax.NoPos, FileName)
	checker := types2.NewChecker(ctx, scope, conf)
	byName := make(map[string]*types.Class, len(c.Classes))

	classes := make([]*types.Class, 0, len(c.Classes))
	for _, cc := range c.Classes {
		var base *types.Class
		if cc.Base != "" {
			base = byName[cc.Base]
			if base == nil {
				return nil, nil, errors.New(errors.PhaseLayout, errors.KindNotFound).
					Path(cc.Name).
					Value(cc.Base).
					Detail("base class %s is not defined before %s", cc.Base, cc.Name).
					Build()
			}
		}

		cls := ctx.NewClass(cc.Name, base)
		for _, mc := range cc.Members {
			typ, err := memberType(ctx, checker, mc)
			if err != nil {
				return nil, nil, err.WithPrefix(cc.Name)
			}
			cls.AddMember(types.NewVar(syntax.NoPos, mc.Name, typ))
		}
		cls.Complete()

		scope.Insert(types.NewTypeName(syntax.NoPos, cc.Name, cls))
		byName[cc.Name] = cls
		classes = append(classes, cls)
		logger.Debug("class built",
			zap.String("class", cc.Name),
			zap.Int("members", len(cc.Members)),
			zap.Int64("size", cls.Size()))
	}
	return classes, scope, nil
}

func memberType(ctx *types.Context, checker *types2.Checker, mc MemberConfig) (types.Type, *errors.Error) {
	var scanErr *errors.Error
	specs := syntax.ScanSpecifiers(FileName, mc.Type, func(pos syntax.Pos, msg string) {
		if scanErr == nil {
			scanErr = errors.New(errors.PhaseLayout, errors.KindInvalidInput).
				Path(mc.Name).
				Value(mc.Type).
				Detail("%s: %s", pos, msg).
				Build()
		}
	})
	if scanErr != nil {
		return nil, scanErr
	}

	ts := types2.NewTypeSpecifier(syntax.NoPos, specs...)
	checker.ResolveSpecifier(ts)
	for _, n := range ts.Notes {
		if n.Kind == types2.NoteError {
			return nil, errors.New(errors.PhaseLayout, errors.KindInvalidInput).
				Path(mc.Name).
				Value(mc.Type).
				Cause(n).
				Detail("invalid member type %q", mc.Type).
				Build()
		}
	}

	typ := ts.Type
	if mc.Length > 0 {
		typ = ctx.NewArray(typ, mc.Length)
	}
	if !types.IsComplete(typ) {
		return nil, errors.Incomplete(errors.PhaseLayout, typ.String()).WithPrefix(mc.Name)
	}
	return typ, nil
}
