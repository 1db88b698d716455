package types2

import (
	"github.com/you-not-fish/lobster/internal/syntax"
	"github.com/you-not-fish/lobster/internal/types"
)

// Config specifies the configuration for specifier resolution.
type Config struct {
	// Error is called for each diagnostic, in addition to the note being
	// attached to its declaration.
	// If nil, notes are only attached.
	Error ErrorHandler
}

// TypeSpecifier is the declaration node the resolver works on. The
// parser fills in Pos and Specs; ResolveSpecifier fills in the rest.
type TypeSpecifier struct {
	Pos   syntax.Pos
	Specs []syntax.Specifier

	// Results
	Type       types.Type // nil if the sequence names no type
	TypeName   string     // the (possibly defaulted) type name
	IsConst    bool
	IsVolatile bool
	IsUnsigned bool
	IsSigned   bool
	Storage    []string // storage class keywords, in order

	Notes NoteList
}

// NewTypeSpecifier creates a declaration node for a specifier sequence.
func NewTypeSpecifier(pos syntax.Pos, specs ...syntax.Specifier) *TypeSpecifier {
	return &TypeSpecifier{Pos: pos, Specs: specs}
}

// AddNote attaches a diagnostic to the declaration.
func (ts *TypeSpecifier) AddNote(n *Note) {
	ts.Notes = append(ts.Notes, n)
}

// String returns the specifier sequence as written.
func (ts *TypeSpecifier) String() string {
	return syntax.JoinSpecifiers(ts.Specs)
}

// Resolve resolves each specifier sequence in order against scope.
// If scope is nil, the context's universe scope is used.
// It returns the first error note encountered, if any; warnings do not
// count as errors.
func Resolve(ctx *types.Context, scope *types.Scope, conf *Config, specs ...*TypeSpecifier) error {
	c := NewChecker(ctx, scope, conf)
	for _, ts := range specs {
		c.ResolveSpecifier(ts)
	}
	if c.errors > 0 {
		return c.first
	}
	return nil
}
