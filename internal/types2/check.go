package types2

import (
	"github.com/you-not-fish/lobster/internal/types"
)

// Checker resolves type specifiers within one compilation unit.
type Checker struct {
	conf  *Config
	ctx   *types.Context
	scope *types.Scope // scope for user-defined type names

	// Error tracking
	errors int   // error count
	first  *Note // first error
}

// NewChecker creates a Checker resolving names in scope.
// If scope is nil, the context's universe scope is used.
func NewChecker(ctx *types.Context, scope *types.Scope, conf *Config) *Checker {
	if conf == nil {
		conf = &Config{}
	}
	if scope == nil {
		scope = ctx.Universe()
	}
	return &Checker{conf: conf, ctx: ctx, scope: scope}
}

// Scope returns the scope used for type name lookups.
func (c *Checker) Scope() *types.Scope {
	return c.scope
}

// SetScope changes the scope used for type name lookups, e.g. when the
// caller enters a class or block.
func (c *Checker) SetScope(s *types.Scope) {
	c.scope = s
}

// Errors returns the number of error notes reported so far.
func (c *Checker) Errors() int {
	return c.errors
}

// First returns the first error note reported, or nil.
func (c *Checker) First() *Note {
	return c.first
}

// lookupType looks up a user-defined type name in the current scope chain.
// Objects that do not denote a type are ignored.
func (c *Checker) lookupType(name string) types.Type {
	obj, _ := c.scope.LookupParent(name)
	if tn, ok := obj.(*types.TypeName); ok && tn.Type() != nil {
		return tn.Type()
	}
	return nil
}

// report attaches n to ts and forwards it to the configured handler.
func (c *Checker) report(ts *TypeSpecifier, n *Note) {
	if n.Kind == NoteError {
		if c.errors == 0 {
			c.first = n
		}
		c.errors++
	}
	ts.AddNote(n)
	if c.conf.Error != nil {
		c.conf.Error(n)
	}
}
