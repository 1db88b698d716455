package types

// SameType reports whether x and y are exactly the same type, including
// cv-qualification at every level. It is false if either is nil.
func SameType(x, y Type) bool {
	if x == nil || y == nil {
		return false
	}
	if x == y {
		return true
	}
	return identical(x, y, true)
}

// SimilarType reports whether x and y are the same type ignoring
// cv-qualification at every level.
func SimilarType(x, y Type) bool {
	if x == nil || y == nil {
		return false
	}
	if x == y {
		return true
	}
	return identical(x, y, false)
}

func identical(x, y Type, cv bool) bool {
	if cv && x.qualifiers() != y.qualifiers() {
		return false
	}
	eq := SimilarType
	if cv {
		eq = SameType
	}

	switch x := x.(type) {
	case *Basic:
		if y, ok := y.(*Basic); ok {
			return x.kind == y.kind && x.unsigned == y.unsigned
		}
	case *Enum:
		if y, ok := y.(*Enum); ok {
			return x.def == y.def
		}
	case *Pointer:
		if y, ok := y.(*Pointer); ok {
			return eq(x.elem, y.elem)
		}
	case *Reference:
		if y, ok := y.(*Reference); ok {
			return eq(x.elem, y.elem)
		}
	case *Array:
		if y, ok := y.(*Array); ok {
			return x.known == y.known && x.length == y.length && eq(x.elem, y.elem)
		}
	case *Class:
		if y, ok := y.(*Class); ok {
			return x.ID() == y.ID()
		}
	case *Func:
		// Function types have no qualification of their own; similar
		// function types are the same type.
		if y, ok := y.(*Func); ok {
			return x.SameReturnType(y) && x.SameParamTypes(y.params)
		}
	}
	return false
}

// SubType reports whether x and y are class types and x is derived from y.
func SubType(x, y Type) bool {
	xc, ok := x.(*Class)
	if !ok {
		return false
	}
	yc, ok := y.(*Class)
	if !ok {
		return false
	}
	return xc.IsDerivedFrom(yc)
}

// IsReferenceRelated reports whether x is reference-related to y: the
// unqualified types are the same, or x is derived from y.
func IsReferenceRelated(x, y Type) bool {
	ux, uy := CVUnqualified(x), CVUnqualified(y)
	return SameType(ux, uy) || SubType(ux, uy)
}

// IsReferenceCompatible reports whether a reference to y may bind to an
// x: x is reference-related to y and y is at least as cv-qualified.
func IsReferenceCompatible(x, y Type) bool {
	return IsReferenceRelated(x, y) &&
		(y.IsConst() || !x.IsConst()) &&
		(y.IsVolatile() || !x.IsVolatile())
}

// CovariantType reports whether derived may override base as a return
// type: both are pointers (or both references) to classes with the same
// outer qualification, the derived class derives from the base class and
// is no more qualified than it.
func CovariantType(derived, base Type) bool {
	if SameType(derived, base) {
		return true
	}

	var dElem, bElem Type
	switch d := derived.(type) {
	case *Pointer:
		b, ok := base.(*Pointer)
		if !ok {
			return false
		}
		dElem, bElem = d.elem, b.elem
	case *Reference:
		b, ok := base.(*Reference)
		if !ok {
			return false
		}
		dElem, bElem = d.elem, b.elem
	default:
		return false
	}

	if derived.qualifiers() != base.qualifiers() {
		return false
	}

	dc, ok := dElem.(*Class)
	if !ok {
		return false
	}
	bc, ok := bElem.(*Class)
	if !ok {
		return false
	}
	if !dc.IsDerivedFrom(bc) {
		return false
	}

	if dc.IsConst() && !bc.IsConst() {
		return false
	}
	if dc.IsVolatile() && !bc.IsVolatile() {
		return false
	}
	return true
}

// IsCvConvertible reports whether a value of type t1 converts to t2 by
// qualification conversion alone. Top-level qualification is ignored.
// Below it, t2 must be const wherever t1 is, and where t2 adds const,
// every shallower level of t2 must already be const.
func IsCvConvertible(t1, t2 Type) bool {
	if !SimilarType(t1, t2) {
		return false
	}

	t1 = CompoundNext(t1)
	t2 = CompoundNext(t2)

	allConst := true
	for t1 != nil && t2 != nil {
		switch {
		case t1.IsConst() && !t2.IsConst():
			return false
		case !t1.IsConst() && t2.IsConst() && !allConst:
			return false
		}
		allConst = allConst && t2.IsConst()
		t1 = CompoundNext(t1)
		t2 = CompoundNext(t2)
	}
	return true
}

// CompoundNext returns the type a compound type is built from: the
// pointee, referent or element type. It returns nil for other types.
func CompoundNext(t Type) Type {
	switch t := t.(type) {
	case *Pointer:
		return t.elem
	case *Reference:
		return t.elem
	case *Array:
		return t.elem
	}
	return nil
}

// NoRef strips one level of reference from t.
func NoRef(t Type) Type {
	if r, ok := t.(*Reference); ok {
		return r.elem
	}
	return t
}

// CVQualified returns t with exactly the given qualification. If t
// already matches it is returned unchanged; otherwise a shallow copy
// sharing t's component types is returned. References and functions
// cannot be qualified and are returned as is.
func CVQualified(t Type, isConst, isVolatile bool) Type {
	q := MakeQualifiers(isConst, isVolatile)
	if t.qualifiers() == q {
		return t
	}
	return t.withQualifiers(q)
}

// CVUnqualified returns t without top-level qualification.
func CVUnqualified(t Type) Type {
	return CVQualified(t, false, false)
}

// IsCVQualified reports whether t is const or volatile.
func IsCVQualified(t Type) bool {
	return t.IsConst() || t.IsVolatile()
}

// IsObjectType reports whether t is an object type. Void, unknown,
// references and functions are not.
func IsObjectType(t Type) bool {
	switch t := t.(type) {
	case *Basic:
		return t.info&IsObject != 0
	case *Enum, *Pointer, *Array, *Class:
		return true
	}
	return false
}

// IsArithmeticType reports whether t is an integral or floating-point type.
func IsArithmeticType(t Type) bool {
	return IsIntegralType(t) || IsFloatingPointType(t)
}

// IsIntegralType reports whether t is char, int, size_t, bool or an enum.
func IsIntegralType(t Type) bool {
	switch t := t.(type) {
	case *Basic:
		return t.info&IsInteger != 0
	case *Enum:
		return true
	}
	return false
}

// IsFloatingPointType reports whether t is float or double.
func IsFloatingPointType(t Type) bool {
	b, ok := t.(*Basic)
	return ok && b.info&IsFloat != 0
}

// IsComplete reports whether the size and layout of t are known. Void,
// arrays of unknown length and classes still being defined are
// incomplete.
func IsComplete(t Type) bool {
	switch t := t.(type) {
	case *Basic:
		return t.kind != Void
	case *Array:
		return t.known
	case *Class:
		return t.def.complete || t.def.tempComplete
	}
	return true
}

// IsVoid reports whether t is void.
func IsVoid(t Type) bool {
	b, ok := t.(*Basic)
	return ok && b.kind == Void
}

// IsUnknown reports whether t is the sentinel unknown type.
func IsUnknown(t Type) bool {
	b, ok := t.(*Basic)
	return ok && b.kind == Unknown
}
