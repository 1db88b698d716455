package syntax

import "strings"

// Specifier is one element of a declaration-specifier sequence: either a
// keyword (const, unsigned, static, ...) or a type name.
type Specifier struct {
	Pos   Pos
	Tok   Token
	Value string // keyword spelling or type name
}

// NewSpecifier classifies lit as a keyword or type name.
func NewSpecifier(pos Pos, lit string) Specifier {
	return Specifier{Pos: pos, Tok: LookupKeyword(lit), Value: lit}
}

// NewTypeNameSpecifier creates a specifier for a user-defined type the
// parser has already identified. It is never treated as a keyword.
func NewTypeNameSpecifier(pos Pos, name string) Specifier {
	return Specifier{Pos: pos, Tok: _Name, Value: name}
}

// IsTypeName reports whether the specifier names a type.
func (s Specifier) IsTypeName() bool {
	return s.Tok == _Name
}

func (s Specifier) String() string {
	return s.Value
}

// Specifiers builds an unpositioned specifier sequence from words,
// e.g. Specifiers("const", "unsigned", "int").
func Specifiers(words ...string) []Specifier {
	specs := make([]Specifier, len(words))
	for i, w := range words {
		specs[i] = NewSpecifier(NoPos, w)
	}
	return specs
}

// JoinSpecifiers renders a specifier sequence as source text.
func JoinSpecifiers(specs []Specifier) string {
	words := make([]string, len(specs))
	for i, s := range specs {
		words[i] = s.Value
	}
	return strings.Join(words, " ")
}
