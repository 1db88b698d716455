package types

import (
	"sort"

	"github.com/you-not-fish/lobster/internal/syntax"
)

// defBuiltinTypes registers the basic types in the builtin registry and
// declares their names in the universe scope.
func (ctx *Context) defBuiltinTypes() {
	for kind := Void; kind <= IStream; kind++ {
		b := basicTypes[kind] // copy
		ctx.basics[kind] = &b
		ctx.builtins[b.name] = &b
		ctx.universe.Insert(NewTypeName(syntax.NoPos, b.name, &b))
		ctx.noteSize(b.size)
	}
}

// BuiltinNames returns the names of all builtin types, sorted.
func (ctx *Context) BuiltinNames() []string {
	names := make([]string, 0, len(ctx.builtins))
	for name := range ctx.builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
