// Package syntax implements the lexical side of C++ declaration specifiers:
// source positions, specifier tokens and a small specifier scanner.
//
// Full C++ parsing happens elsewhere; this package only produces the ordered
// specifier sequence the type resolver consumes.
package syntax

import "fmt"

// Token represents the type of a specifier token.
type Token uint

const (
	// Special tokens
	_EOF   Token = iota // end of input
	_Error              // lexical error

	// Type names (builtin or user-defined)
	_Name

	// cv-qualifiers
	_Const
	_Volatile

	// Sign specifiers
	_Signed
	_Unsigned

	// Storage class specifiers
	_Register
	_Static
	_ThreadLocal
	_Extern
	_Mutable

	tokenCount
)

// tokenNames maps tokens to their string representation.
var tokenNames = [...]string{
	_EOF:   "EOF",
	_Error: "ERROR",

	_Name: "NAME",

	_Const:    "const",
	_Volatile: "volatile",

	_Signed:   "signed",
	_Unsigned: "unsigned",

	_Register:    "register",
	_Static:      "static",
	_ThreadLocal: "thread_local",
	_Extern:      "extern",
	_Mutable:     "mutable",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// IsKeyword reports whether t is a specifier keyword.
func (t Token) IsKeyword() bool {
	return t >= _Const && t <= _Mutable
}

// IsCV reports whether t is const or volatile.
func (t Token) IsCV() bool {
	return t == _Const || t == _Volatile
}

// IsSign reports whether t is signed or unsigned.
func (t Token) IsSign() bool {
	return t == _Signed || t == _Unsigned
}

// IsStorage reports whether t is a storage class specifier.
func (t Token) IsStorage() bool {
	return t >= _Register && t <= _Mutable
}

// IsEOF reports whether t is the EOF token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// Exported specifier tokens for resolver access
const (
	Name     Token = _Name
	Const    Token = _Const
	Volatile Token = _Volatile
	Signed   Token = _Signed
	Unsigned Token = _Unsigned
)

// keywords maps keyword strings to their token type.
// Note: builtin type names (int, char, bool, double, ...) are NOT keywords
// here - they are scanned as _Name and found in the builtin registry.
var keywords = map[string]Token{
	"const":        _Const,
	"volatile":     _Volatile,
	"signed":       _Signed,
	"unsigned":     _Unsigned,
	"register":     _Register,
	"static":       _Static,
	"thread_local": _ThreadLocal,
	"extern":       _Extern,
	"mutable":      _Mutable,
}

// LookupKeyword returns the token for the given identifier string.
// If the identifier is a keyword, returns the keyword token.
// Otherwise, returns _Name.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return _Name
}
