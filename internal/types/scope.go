package types

import (
	"fmt"
	"sort"
	"strings"

	"github.com/you-not-fish/lobster/internal/syntax"
)

// Scope represents a lexical or class scope.
// Scopes form a tree starting from a Context's universe scope. A class
// scope additionally links to the scope of its base class, which is
// searched before the enclosing scope.
type Scope struct {
	parent   *Scope
	base     *Scope // base class scope, class scopes only
	children []*Scope
	elems    map[string][]Object // functions may be overloaded
	pos, end syntax.Pos
	comment  string // debugging comment (e.g., "class Card", "block")
}

// NewScope creates a new scope with the given parent.
func NewScope(parent *Scope, pos, end syntax.Pos, comment string) *Scope {
	s := &Scope{
		parent:  parent,
		elems:   make(map[string][]Object),
		pos:     pos,
		end:     end,
		comment: comment,
	}
	if parent != nil {
		parent.children = append(parent.children, s)
	}
	return s
}

// NewClassScope creates the member scope of a class. base is the scope
// of the base class, or nil.
func NewClassScope(parent, base *Scope, className string) *Scope {
	s := NewScope(parent, syntax.NoPos, syntax.NoPos, "class "+className)
	s.base = base
	return s
}

// Parent returns the parent scope, or nil for the universe scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Base returns the base class scope, or nil.
func (s *Scope) Base() *Scope {
	return s.base
}

// Children returns the list of child scopes.
func (s *Scope) Children() []*Scope {
	return s.children
}

// NumChildren returns the number of child scopes.
func (s *Scope) NumChildren() int {
	return len(s.children)
}

// Pos returns the start position of the scope in source.
func (s *Scope) Pos() syntax.Pos {
	return s.pos
}

// End returns the end position of the scope in source.
func (s *Scope) End() syntax.Pos {
	return s.end
}

// Comment returns the scope's comment (for debugging).
func (s *Scope) Comment() string {
	return s.comment
}

// Lookup returns the object with the given name in the current scope.
// For an overload set, the first declared function is returned.
// Returns nil if not found in this scope (does not search other scopes).
func (s *Scope) Lookup(name string) Object {
	if objs := s.elems[name]; len(objs) > 0 {
		return objs[0]
	}
	return nil
}

// LookupAll returns every object declared under name in this scope.
func (s *Scope) LookupAll(name string) []Object {
	return s.elems[name]
}

// LookupParent returns the object with the given name by searching
// from the current scope up through its base class scopes and then
// the parent scopes.
// Returns the object and the scope in which it was found.
// Returns (nil, nil) if not found.
func (s *Scope) LookupParent(name string) (Object, *Scope) {
	for scope := s; scope != nil; scope = scope.parent {
		for b := scope; b != nil; b = b.base {
			if obj := b.Lookup(name); obj != nil {
				return obj, b
			}
		}
	}
	return nil, nil
}

// Insert inserts an object into the scope.
// Functions with the same name form an overload set. Any other clash, or
// a function whose signature is already declared, returns the existing
// object and leaves the scope unchanged. Otherwise, returns nil.
func (s *Scope) Insert(obj Object) Object {
	return s.insert(obj.Name(), obj)
}

func (s *Scope) insert(name string, obj Object) Object {
	existing := s.elems[name]
	if len(existing) > 0 {
		f, ok := obj.(*FuncObj)
		if !ok {
			return existing[0]
		}
		for _, e := range existing {
			g, ok := e.(*FuncObj)
			if !ok {
				return e
			}
			if f.sig != nil && g.sig != nil && f.sig.SameSignature(g.sig) {
				return g
			}
		}
	}
	s.elems[name] = append(existing, obj)
	obj.setParent(s)
	return nil
}

// LookupOptions controls SingleLookup.
type LookupOptions struct {
	Own        bool   // do not search enclosing scopes
	NoBase     bool   // do not search base class scopes
	ExactMatch bool   // only functions whose parameter types equal ParamTypes
	ParamTypes []Type // parameter types for ExactMatch
}

// SingleLookup finds one object named name. The scope itself is searched
// first, then base class scopes unless NoBase is set, then enclosing
// scopes unless Own is set. With ExactMatch, only functions whose
// parameter types are exactly ParamTypes match.
func (s *Scope) SingleLookup(name string, opts LookupOptions) Object {
	for _, obj := range s.elems[name] {
		if !opts.ExactMatch {
			return obj
		}
		if f, ok := obj.(*FuncObj); ok && f.sig != nil && f.sig.SameParamTypes(opts.ParamTypes) {
			return obj
		}
	}
	if s.base != nil && !opts.NoBase {
		inner := opts
		inner.Own = true
		if obj := s.base.SingleLookup(name, inner); obj != nil {
			return obj
		}
	}
	if s.parent != nil && !opts.Own {
		inner := opts
		inner.NoBase = true
		return s.parent.SingleLookup(name, inner)
	}
	return nil
}

// Names returns the names of all objects in the scope, sorted alphabetically.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.elems))
	for name := range s.elems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NumObjects returns the number of objects in the scope.
func (s *Scope) NumObjects() int {
	n := 0
	for _, objs := range s.elems {
		n += len(objs)
	}
	return n
}

// String returns a string representation of the scope for debugging.
func (s *Scope) String() string {
	var buf strings.Builder
	s.writeTo(&buf, 0)
	return buf.String()
}

func (s *Scope) writeTo(buf *strings.Builder, indent int) {
	prefix := strings.Repeat("  ", indent)
	fmt.Fprintf(buf, "%sscope %s {\n", prefix, s.comment)
	for _, name := range s.Names() {
		for _, obj := range s.elems[name] {
			fmt.Fprintf(buf, "%s  %q: %s\n", prefix, name, obj.Type())
		}
	}
	for _, child := range s.children {
		child.writeTo(buf, indent+1)
	}
	fmt.Fprintf(buf, "%s}\n", prefix)
}
