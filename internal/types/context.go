package types

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/you-not-fish/lobster/internal/syntax"
)

// Context holds the state of one compilation unit: the builtin type
// registry, the universe scope, class identities and the largest object
// size seen so far. Contexts are independent of each other; a single
// Context must not be used from more than one goroutine at a time.
type Context struct {
	builtins map[string]Type
	basics   [IStream + 1]*Basic
	universe *Scope
	classes  ClassTable
	maxSize  int64
}

// Option configures a Context.
type Option func(*Context)

// WithEnum registers a builtin enumeration type.
func WithEnum(name string, values ...string) Option {
	return func(ctx *Context) {
		ctx.NewEnum(name, values...)
	}
}

// WithMaxSize seeds the max-size tracker.
func WithMaxSize(n int64) Option {
	return func(ctx *Context) {
		ctx.maxSize = n
	}
}

// NewContext creates a Context with the builtin types registered.
func NewContext(opts ...Option) *Context {
	ctx := &Context{
		builtins: make(map[string]Type),
		universe: NewScope(nil, syntax.NoPos, syntax.NoPos, "universe"),
	}
	ctx.defBuiltinTypes()
	for _, opt := range opts {
		opt(ctx)
	}
	Logger().Debug("context initialized",
		zap.Int("builtins", len(ctx.builtins)),
		zap.Int64("maxSize", ctx.maxSize))
	return ctx
}

// Universe returns the root scope holding the builtin type names.
func (ctx *Context) Universe() *Scope {
	return ctx.universe
}

// Builtin returns the builtin type registered under name.
func (ctx *Context) Builtin(name string) (Type, bool) {
	t, ok := ctx.builtins[name]
	return t, ok
}

// Typ returns the unqualified builtin type of the given kind.
func (ctx *Context) Typ(kind BasicKind) *Basic {
	return ctx.basics[kind]
}

// Unknown returns the sentinel type used after a failed lookup.
func (ctx *Context) Unknown() *Basic {
	return ctx.basics[Unknown]
}

// Classes returns the class identity table.
func (ctx *Context) Classes() *ClassTable {
	return &ctx.classes
}

// NewPointer returns the type pointer-to-elem.
func (ctx *Context) NewPointer(elem Type) *Pointer {
	p := &Pointer{elem: elem}
	ctx.noteSize(p.Size())
	return p
}

// NewArrayPointer returns a pointer into the array object arr. It panics
// if arr is not of array type.
func (ctx *Context) NewArrayPointer(arr Referent) *Pointer {
	at, ok := arr.Type().(*Array)
	if !ok {
		panic(fmt.Sprintf("types: array pointer to non-array object of type %s", arr.Type()))
	}
	p := &Pointer{elem: at.elem, kind: ArrayPointer, target: arr}
	ctx.noteSize(p.Size())
	return p
}

// NewObjectPointer returns a pointer to the object obj.
func (ctx *Context) NewObjectPointer(obj Referent) *Pointer {
	p := &Pointer{elem: obj.Type(), kind: ObjectPointer, target: obj}
	ctx.noteSize(p.Size())
	return p
}

// NewReference returns the type reference-to-elem.
func (ctx *Context) NewReference(elem Type) *Reference {
	return newReference(elem)
}

// NewArray returns the type elem[length].
func (ctx *Context) NewArray(elem Type, length int64) *Array {
	a := &Array{ctx: ctx, elem: elem, length: length, known: true}
	ctx.noteSize(a.Size())
	return a
}

// NewUnboundedArray returns the incomplete type elem[].
func (ctx *Context) NewUnboundedArray(elem Type) *Array {
	return &Array{ctx: ctx, elem: elem}
}

// NewFunc returns a function type.
func (ctx *Context) NewFunc(result Type, params []Type, thisConst bool) *Func {
	return newFunc(result, params, thisConst)
}

// NewEnum defines an enumeration type and registers it as a builtin.
func (ctx *Context) NewEnum(name string, values ...string) *Enum {
	e := &Enum{def: newEnumDef(name, values)}
	ctx.builtins[name] = e
	ctx.universe.Insert(NewTypeName(syntax.NoPos, name, e))
	ctx.noteSize(e.Size())
	return e
}

// NewClass defines a class type with a fresh identity, an optional base
// class and the given initial members.
func (ctx *Context) NewClass(name string, base *Class, members ...*Var) *Class {
	c := &Class{def: newClassDef(ctx, name, base)}
	for _, m := range members {
		c.AddMember(m)
	}
	ctx.noteSize(c.Size())
	Logger().Debug("class created",
		zap.String("class", name),
		zap.Int("id", c.def.id),
		zap.Int64("size", c.Size()))
	return c
}

// Merge unifies the identities of two classes, e.g. a forward
// declaration and its definition. Both report the smaller id afterwards.
func (ctx *Context) Merge(c1, c2 *Class) int {
	id := ctx.classes.Union(c1.def.id, c2.def.id)
	Logger().Debug("classes merged",
		zap.String("class1", c1.def.name),
		zap.String("class2", c2.def.name),
		zap.Int("id", id))
	return id
}
