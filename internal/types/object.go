package types

import "github.com/you-not-fish/lobster/internal/syntax"

// Object represents a declared entity: variable, member, type name or function.
type Object interface {
	Name() string    // object name
	Type() Type      // object type
	Pos() syntax.Pos // declaration position
	Parent() *Scope  // enclosing scope

	setParent(*Scope) // internal: set parent scope
	aObject()         // marker method to restrict implementations
}

// object is the base struct for all objects.
type object struct {
	name   string
	typ    Type
	pos    syntax.Pos
	parent *Scope
}

func (o *object) Name() string       { return o.name }
func (o *object) Type() Type         { return o.typ }
func (o *object) Pos() syntax.Pos    { return o.pos }
func (o *object) Parent() *Scope     { return o.parent }
func (o *object) setParent(s *Scope) { o.parent = s }
func (*object) aObject()             {}

// Var represents a variable or class data member.
type Var struct {
	object
	index int // member subobject index, -1 if not a subobject
}

// NewVar creates a new variable object.
func NewVar(pos syntax.Pos, name string, typ Type) *Var {
	return &Var{object: object{name: name, typ: typ, pos: pos}, index: -1}
}

// MemberIndex returns the zero-based position of v among its class's
// member subobjects, or -1 if v is not a member subobject.
func (v *Var) MemberIndex() int {
	return v.index
}

// SetType sets the variable's type.
func (v *Var) SetType(typ Type) {
	v.typ = typ
}

// TypeName represents a declared type name. It is the entity the
// specifier resolver accepts from scope lookups.
type TypeName struct {
	object
}

// NewTypeName creates a new type name object.
func NewTypeName(pos syntax.Pos, name string, typ Type) *TypeName {
	return &TypeName{object: object{name: name, typ: typ, pos: pos}}
}

// SetType sets the type associated with the type name.
// Forward-declared classes get their type once the definition is seen.
func (t *TypeName) SetType(typ Type) {
	t.typ = typ
}

// FuncObj represents a declared function, member function, constructor
// or destructor.
type FuncObj struct {
	object
	sig *Func
}

// NewFuncObj creates a new function object with the given signature.
func NewFuncObj(pos syntax.Pos, name string, sig *Func) *FuncObj {
	f := &FuncObj{object: object{name: name, pos: pos}}
	if sig != nil {
		f.SetSignature(sig)
	}
	return f
}

// Signature returns the function signature.
func (f *FuncObj) Signature() *Func {
	return f.sig
}

// SetSignature sets the function signature.
func (f *FuncObj) SetSignature(sig *Func) {
	f.sig = sig
	f.typ = sig
}
