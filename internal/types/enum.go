package types

import "github.com/you-not-fish/lobster/internal/rtabi"

// EnumDef is the definition shared by all qualified variants of an
// enumeration type.
type EnumDef struct {
	name   string
	values []string
	index  map[string]int
}

// Enum represents an enumeration type. Discriminants are stored as their
// index in the enumerator list.
type Enum struct {
	typ
	def *EnumDef
}

// Name returns the enumeration name.
func (e *Enum) Name() string {
	return e.def.name
}

// Values returns the enumerators in declaration order.
func (e *Enum) Values() []string {
	return e.def.values
}

// Len returns the number of enumerators.
func (e *Enum) Len() int {
	return len(e.def.values)
}

// Index returns the discriminant of the named enumerator.
func (e *Enum) Index(name string) (int, bool) {
	i, ok := e.def.index[name]
	return i, ok
}

// Enumerator returns the name of discriminant i, or "" if out of range.
func (e *Enum) Enumerator(i int64) string {
	if i < 0 || i >= int64(len(e.def.values)) {
		return ""
	}
	return e.def.values[i]
}

// Size implements Type.
func (e *Enum) Size() int64 {
	return rtabi.SizeEnum
}

// String implements Type.
func (e *Enum) String() string {
	return TypeString(e, false, "")
}

func (e *Enum) withQualifiers(q Qualifiers) Type {
	c := *e
	c.cv = q
	return &c
}

func newEnumDef(name string, values []string) *EnumDef {
	def := &EnumDef{
		name:   name,
		values: append([]string(nil), values...),
		index:  make(map[string]int, len(values)),
	}
	for i, v := range def.values {
		def.index[v] = i
	}
	return def
}
