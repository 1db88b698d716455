// Package types implements the type model of the C++ teaching subset:
// builtin, enum, pointer, reference, array, class and function types,
// the relations between them, class layout, and the value codec used by
// the memory simulator.
//
// All types are created through a Context, which owns the builtin
// registry, the class identity table and the max-size tracker of one
// compilation unit. A Context must not be mutated concurrently.
package types

// Type is the interface implemented by all types.
//
// The set of implementations is closed: *Basic, *Enum, *Pointer,
// *Reference, *Array, *Class and *Func. Operations that differ by kind are
// free functions switching over that set (SameType, TypeString,
// ValueToBytes, ...).
type Type interface {
	// Size returns the size of the type in bytes. Incomplete types,
	// void and functions may report 0.
	Size() int64

	// IsConst and IsVolatile report the type's own cv-qualification.
	// References and functions are never qualified; an array reports
	// the qualification of its element type.
	IsConst() bool
	IsVolatile() bool

	// String returns the C declarator rendering of the type with no
	// variable name, e.g. "const int *".
	String() string

	qualifiers() Qualifiers
	withQualifiers(q Qualifiers) Type

	// aType is a marker method to restrict implementations to this package.
	aType()
}

// Qualifiers is a set of cv-qualifiers.
type Qualifiers uint8

const (
	ConstQual Qualifiers = 1 << iota
	VolatileQual

	NoQual Qualifiers = 0
)

// MakeQualifiers builds a qualifier set from flags.
func MakeQualifiers(isConst, isVolatile bool) Qualifiers {
	var q Qualifiers
	if isConst {
		q |= ConstQual
	}
	if isVolatile {
		q |= VolatileQual
	}
	return q
}

// prefix returns the qualifiers as they appear before a type name,
// e.g. "const volatile ".
func (q Qualifiers) prefix() string {
	s := ""
	if q&ConstQual != 0 {
		s += "const "
	}
	if q&VolatileQual != 0 {
		s += "volatile "
	}
	return s
}

// typ is a base struct for all type implementations.
type typ struct {
	cv Qualifiers
}

func (t typ) IsConst() bool          { return t.cv&ConstQual != 0 }
func (t typ) IsVolatile() bool       { return t.cv&VolatileQual != 0 }
func (t typ) qualifiers() Qualifiers { return t.cv }
func (typ) aType()                   {}
