// Package errors provides the structured error type for codec and
// configuration failures.
//
// Errors carry a Phase (where the error occurred), a Kind (error category),
// the C++ type involved, and the member/element path that led to it:
//
//	err := errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
//		Path("hand", "[2]", "rank").
//		Type("Rank").
//		Detail("expected int64, got string").
//		Build()
//
// User-facing problems in source code are not errors; they are diagnostics
// reported by the type resolver.
package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode Phase = "encode" // runtime value to memory cells
	PhaseDecode Phase = "decode" // memory cells to runtime value
	PhaseLayout Phase = "layout" // class layout construction
	PhaseConfig Phase = "config" // configuration loading
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch Kind = "type_mismatch"
	KindSizeMismatch Kind = "size_mismatch"
	KindInvalidData  Kind = "invalid_data"
	KindFieldMissing Kind = "field_missing"
	KindInvalidEnum  Kind = "invalid_enum"
	KindIncomplete   Kind = "incomplete_type"
	KindNotFound     Kind = "not_found"
	KindInvalidInput Kind = "invalid_input"
)

// Error is the structured error type used by the codec and config loader.
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Type   string // C++ type involved, rendered
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Type != "" {
		b.WriteString(": type ")
		b.WriteString(e.Type)
	}

	if e.Detail != "" {
		if e.Type != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target has the same phase and kind
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// WithPrefix returns a copy of e whose path starts with the given elements.
// Recursive encoders use it to build the path from the innermost failure out.
func (e *Error) WithPrefix(path ...string) *Error {
	c := *e
	c.Path = append(append([]string(nil), path...), e.Path...)
	return &c
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the member/element path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Type sets the rendered C++ type
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TypeMismatch reports a runtime value of the wrong Go shape for a type.
func TypeMismatch(phase Phase, path []string, typ string, value any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Path:   path,
		Type:   typ,
		Value:  value,
		Detail: fmt.Sprintf("unexpected value %v (%T)", value, value),
	}
}

// SizeMismatch reports a cell sequence whose length differs from the type size.
func SizeMismatch(phase Phase, path []string, typ string, got, want int64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindSizeMismatch,
		Path:   path,
		Type:   typ,
		Detail: fmt.Sprintf("got %d cells, want %d", got, want),
	}
}

// FieldMissing reports a class record without a value for a subobject.
func FieldMissing(phase Phase, path []string, fieldName string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindFieldMissing,
		Path:   path,
		Detail: fmt.Sprintf("required member %q not found", fieldName),
	}
}

// InvalidEnum reports an enumerator index outside the enum's range.
func InvalidEnum(phase Phase, path []string, value any, enumType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidEnum,
		Path:   path,
		Type:   enumType,
		Detail: fmt.Sprintf("invalid enum value %v for %s", value, enumType),
		Value:  value,
	}
}

// Incomplete reports an operation that needs a complete type.
func Incomplete(phase Phase, typ string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIncomplete,
		Type:   typ,
		Detail: "type is incomplete",
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
