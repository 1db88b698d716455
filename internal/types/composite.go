package types

import "github.com/you-not-fish/lobster/internal/rtabi"

// Pointer represents a pointer type T*.
// Array and object pointers additionally remember the object they were
// derived from so the simulator can check bounds and liveness.
type Pointer struct {
	typ
	elem   Type
	kind   PointerKind
	target Referent // backing array or object; nil for plain pointers
}

// Elem returns the pointee type.
func (p *Pointer) Elem() Type {
	return p.elem
}

// Size implements Type.
func (p *Pointer) Size() int64 {
	return rtabi.SizePtr
}

// String implements Type.
func (p *Pointer) String() string {
	return TypeString(p, false, "")
}

func (p *Pointer) withQualifiers(q Qualifiers) Type {
	c := *p
	c.cv = q
	return &c
}

// IsFuncPointer reports whether p points to a function.
func (p *Pointer) IsFuncPointer() bool {
	_, ok := p.elem.(*Func)
	return ok
}

// IsObjectPointer reports whether p points to an object type or void.
func (p *Pointer) IsObjectPointer() bool {
	return IsObjectType(p.elem) || IsVoid(p.elem)
}

// Reference represents a reference type T&.
// References cannot be rebound, so they carry no qualifiers of their own.
type Reference struct {
	typ
	elem Type
}

func newReference(elem Type) *Reference {
	return &Reference{elem: elem}
}

// Elem returns the referred-to type.
func (r *Reference) Elem() Type {
	return r.elem
}

// Size implements Type. A reference has the size of its referent.
func (r *Reference) Size() int64 {
	return r.elem.Size()
}

// String implements Type.
func (r *Reference) String() string {
	return TypeString(r, false, "")
}

func (r *Reference) withQualifiers(Qualifiers) Type {
	return r
}

// Array represents an array type T[N], or T[] when the length is unknown.
// An array's qualification is that of its element type.
type Array struct {
	typ
	ctx    *Context
	elem   Type
	length int64
	known  bool
}

// Elem returns the element type.
func (a *Array) Elem() Type {
	return a.elem
}

// Len returns the array length and whether it is known.
func (a *Array) Len() (int64, bool) {
	return a.length, a.known
}

// SetLength sets the length of an array, completing it if the length was
// unknown.
func (a *Array) SetLength(n int64) {
	a.length = n
	a.known = true
	a.ctx.noteSize(a.Size())
}

// ProperSize returns elemSize*length, which may be 0.
func (a *Array) ProperSize() int64 {
	if !a.known {
		return 0
	}
	return a.elem.Size() * a.length
}

// Size implements Type. Storage is never smaller than MinArraySize so
// that every array object has an address of its own.
func (a *Array) Size() int64 {
	return max(rtabi.MinArraySize, a.ProperSize())
}

func (a *Array) IsConst() bool          { return a.elem.IsConst() }
func (a *Array) IsVolatile() bool       { return a.elem.IsVolatile() }
func (a *Array) qualifiers() Qualifiers { return a.elem.qualifiers() }

// String implements Type.
func (a *Array) String() string {
	return TypeString(a, false, "")
}

func (a *Array) withQualifiers(q Qualifiers) Type {
	c := *a
	c.elem = CVQualified(a.elem, q&ConstQual != 0, q&VolatileQual != 0)
	return &c
}

// Func represents a function type.
type Func struct {
	typ
	result    Type
	params    []Type
	thisConst bool
}

// Result returns the return type.
func (f *Func) Result() Type {
	return f.result
}

// Params returns the parameter types.
func (f *Func) Params() []Type {
	return f.params
}

// NumParams returns the number of parameters.
func (f *Func) NumParams() int {
	return len(f.params)
}

// Param returns the parameter type at index i.
func (f *Func) Param(i int) Type {
	return f.params[i]
}

// IsThisConst reports whether f is the type of a const member function.
func (f *Func) IsThisConst() bool {
	return f.thisConst
}

// SameParamTypes reports whether f's parameter types are exactly params.
func (f *Func) SameParamTypes(params []Type) bool {
	if len(f.params) != len(params) {
		return false
	}
	for i := range f.params {
		if !SameType(f.params[i], params[i]) {
			return false
		}
	}
	return true
}

// SameReturnType reports whether f and g return the same type.
func (f *Func) SameReturnType(g *Func) bool {
	return SameType(f.result, g.result)
}

// SameSignature reports whether f and g agree on this-constness and
// parameter types. Return types are not part of a signature.
func (f *Func) SameSignature(g *Func) bool {
	return f.thisConst == g.thisConst && f.SameParamTypes(g.params)
}

// Size implements Type.
func (f *Func) Size() int64 {
	return rtabi.SizeFunc
}

// String implements Type.
func (f *Func) String() string {
	return TypeString(f, false, "")
}

func (f *Func) withQualifiers(Qualifiers) Type {
	return f
}

// newFunc strips top-level qualification from non-class parameter types
// and from return types other than classes, pointers and references.
func newFunc(result Type, params []Type, thisConst bool) *Func {
	switch result.(type) {
	case *Class, *Pointer, *Reference:
	default:
		result = CVUnqualified(result)
	}
	ps := make([]Type, len(params))
	for i, p := range params {
		if _, ok := p.(*Class); ok {
			ps[i] = p
		} else {
			ps[i] = CVUnqualified(p)
		}
	}
	return &Func{result: result, params: ps, thisConst: thisConst}
}
