package types

import "github.com/you-not-fish/lobster/internal/rtabi"

// PointerKind distinguishes plain pointers from pointers that track the
// object they were derived from.
type PointerKind int

const (
	PlainPointer  PointerKind = iota
	ArrayPointer              // points into an array object
	ObjectPointer             // points at a single object
)

// Referent is implemented by the simulator's runtime objects. Array and
// object pointers consult it to decide whether an address is still valid.
type Referent interface {
	IsAlive() bool
	Address() int64
	Type() Type
}

// Kind returns the pointer kind.
func (p *Pointer) Kind() PointerKind {
	return p.kind
}

// Target returns the array or object p was derived from, or nil.
func (p *Pointer) Target() Referent {
	return p.target
}

func (p *Pointer) arrayType() *Array {
	if p.kind != ArrayPointer {
		panic("types: not an array pointer: " + p.String())
	}
	return p.target.Type().(*Array)
}

// ArrayMin returns the address of the first element of the backing array.
func (p *Pointer) ArrayMin() int64 {
	p.arrayType()
	return p.target.Address()
}

// ArrayOnePast returns the address one past the end of the backing array.
func (p *Pointer) ArrayOnePast() int64 {
	return p.target.Address() + p.arrayType().ProperSize()
}

// ToIndex converts an address into an element index of the backing array.
func (p *Pointer) ToIndex(addr int64) int64 {
	at := p.arrayType()
	size := at.Elem().Size()
	if size == 0 {
		return 0
	}
	return (addr - p.target.Address()) / size
}

// IsNull reports whether v is the null pointer value.
func IsNull(v Value) bool {
	addr, ok := toInt64(v)
	return ok && addr == rtabi.NullAddress
}

// IsNegative reports whether v is a negative address.
func IsNegative(v Value) bool {
	addr, ok := toInt64(v)
	return ok && addr < 0
}

// IsValueValid reports whether v is a valid value of type t. Only array
// and object pointers can hold invalid values: an array pointer must stay
// within [first, one-past-the-end] of a live array, and an object pointer
// must point at its live object's current address.
func IsValueValid(t Type, v Value) bool {
	p, ok := t.(*Pointer)
	if !ok || p.kind == PlainPointer {
		return true
	}
	addr, ok := toInt64(v)
	if !ok {
		return false
	}
	if !p.target.IsAlive() {
		return false
	}
	switch p.kind {
	case ArrayPointer:
		return p.ArrayMin() <= addr && addr <= p.ArrayOnePast()
	case ObjectPointer:
		return addr == p.target.Address()
	}
	return true
}

// IsValueDereferenceable reports whether dereferencing v yields a live
// object. For array pointers the one-past-the-end address is valid but
// not dereferenceable.
func IsValueDereferenceable(t Type, v Value) bool {
	if !IsValueValid(t, v) {
		return false
	}
	if p, ok := t.(*Pointer); ok && p.kind == ArrayPointer {
		addr, _ := toInt64(v)
		return addr != p.ArrayOnePast()
	}
	return true
}
