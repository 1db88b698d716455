package types

import "github.com/you-not-fish/lobster/internal/rtabi"

// BasicKind describes the kind of basic type.
type BasicKind int

const (
	Invalid BasicKind = iota // invalid type

	Void
	Unknown // result of a failed type lookup

	// Integral types
	Char
	Int
	SizeT
	Bool

	// Floating-point types
	Float
	Double

	// Library types modeled as builtins
	String
	OStream
	IStream
)

// BasicInfo describes properties of a basic type.
type BasicInfo int

const (
	IsBoolean BasicInfo = 1 << iota
	IsInteger
	IsFloat
	IsString
	IsStream
	IsObject
	IsNumeric = IsInteger | IsFloat
)

// Basic represents a builtin type: void, unknown, char, int, size_t,
// bool, float, double, string, ostream and istream.
type Basic struct {
	typ
	kind     BasicKind
	info     BasicInfo
	name     string
	size     int64
	unsigned bool
	signed   bool
}

// Kind returns the kind of the basic type.
func (b *Basic) Kind() BasicKind {
	return b.kind
}

// Info returns information about the basic type.
func (b *Basic) Info() BasicInfo {
	return b.info
}

// Name returns the name of the basic type, without sign or cv prefix.
func (b *Basic) Name() string {
	return b.name
}

// IsUnsigned reports whether the type was declared unsigned.
func (b *Basic) IsUnsigned() bool {
	return b.unsigned
}

// IsSigned reports whether the type was explicitly declared signed.
func (b *Basic) IsSigned() bool {
	return b.signed
}

// WithSign returns a copy of b carrying the given sign flags. Sign flags
// are only kept on integral kinds.
func (b *Basic) WithSign(unsigned, signed bool) *Basic {
	if b.info&IsInteger == 0 || b.kind == Bool {
		return b
	}
	if b.unsigned == unsigned && b.signed == signed {
		return b
	}
	c := *b
	c.unsigned = unsigned
	c.signed = signed
	return &c
}

// Size implements Type.
func (b *Basic) Size() int64 {
	return b.size
}

// String implements Type.
func (b *Basic) String() string {
	return TypeString(b, false, "")
}

func (b *Basic) withQualifiers(q Qualifiers) Type {
	c := *b
	c.cv = q
	return &c
}

// spelling returns the name including an unsigned prefix.
func (b *Basic) spelling() string {
	if b.unsigned {
		return "unsigned " + b.name
	}
	return b.name
}

// basicTypes holds the prototypes of the builtin types, indexed by
// BasicKind. Contexts copy them; the prototypes are never handed out.
var basicTypes = [...]Basic{
	Void:    {kind: Void, name: "void", size: rtabi.SizeVoid},
	Unknown: {kind: Unknown, name: "unknown", size: rtabi.SizeUnknown},
	Char:    {kind: Char, info: IsInteger | IsObject, name: "char", size: rtabi.SizeChar},
	Int:     {kind: Int, info: IsInteger | IsObject, name: "int", size: rtabi.SizeInt},
	SizeT:   {kind: SizeT, info: IsInteger | IsObject, name: "size_t", size: rtabi.SizeSizeT},
	Bool:    {kind: Bool, info: IsBoolean | IsInteger | IsObject, name: "bool", size: rtabi.SizeBool},
	Float:   {kind: Float, info: IsFloat | IsObject, name: "float", size: rtabi.SizeFloat},
	Double:  {kind: Double, info: IsFloat | IsObject, name: "double", size: rtabi.SizeDouble},
	String:  {kind: String, info: IsString | IsObject, name: "string", size: rtabi.SizeString},
	OStream: {kind: OStream, info: IsStream | IsObject, name: "ostream", size: rtabi.SizeStream},
	IStream: {kind: IStream, info: IsStream | IsObject, name: "istream", size: rtabi.SizeStream},
}
