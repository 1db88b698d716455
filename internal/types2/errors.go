// Package types2 resolves C++ declaration specifiers into types and
// reports the diagnostics the teaching environment shows to students.
package types2

import (
	"fmt"
	"sort"

	"github.com/you-not-fish/lobster/internal/syntax"
)

// NoteKind classifies a diagnostic.
type NoteKind int

const (
	NoteError NoteKind = iota
	NoteWarning
	NoteStyle
	NoteOther
)

var noteKindNames = [...]string{
	NoteError:   "error",
	NoteWarning: "warning",
	NoteStyle:   "style",
	NoteOther:   "other",
}

func (k NoteKind) String() string {
	if k >= 0 && int(k) < len(noteKindNames) {
		return noteKindNames[k]
	}
	return fmt.Sprintf("NoteKind(%d)", int(k))
}

// Note is a diagnostic attached to a declaration. Notes are never fatal:
// resolution continues after reporting one.
type Note struct {
	Pos      syntax.Pos
	Kind     NoteKind
	ID       string // stable identifier, e.g. "type.const_once"
	Msg      string
	TypeName string // the name that failed to resolve, for type.typeNotFound
}

// Error implements the error interface.
func (n *Note) Error() string {
	return fmt.Sprintf("%s: %s: %s", n.Pos, n.Kind, n.Msg)
}

// ErrorHandler is a function called for each diagnostic.
type ErrorHandler func(n *Note)

// NoteList is an ordered list of diagnostics.
type NoteList []*Note

// HasErrors reports whether the list contains an error note.
func (l NoteList) HasErrors() bool {
	return l.Count(NoteError) > 0
}

// HasWarnings reports whether the list contains a warning note.
func (l NoteList) HasWarnings() bool {
	return l.Count(NoteWarning) > 0
}

// Count returns the number of notes of the given kind.
func (l NoteList) Count(kind NoteKind) int {
	n := 0
	for _, note := range l {
		if note.Kind == kind {
			n++
		}
	}
	return n
}

// Sort orders the notes by source position. Notes at the same position
// keep their reporting order.
func (l NoteList) Sort() {
	sort.SliceStable(l, func(i, j int) bool {
		return l[i].Pos.Before(l[j].Pos)
	})
}

// IDs returns the note identifiers in order.
func (l NoteList) IDs() []string {
	ids := make([]string, len(l))
	for i, n := range l {
		ids[i] = n.ID
	}
	return ids
}

// Note identifiers.
const (
	IDConstOnce            = "type.const_once"
	IDVolatileOnce         = "type.volatile_once"
	IDSignedOnce           = "type.signed_once"
	IDUnsignedOnce         = "type.unsigned_once"
	IDSignedUnsigned       = "type.signed_unsigned"
	IDOneType              = "declaration.typeSpecifier.one_type"
	IDNoReturnType         = "declaration.func.no_return_type"
	IDUnsignedNotSupported = "type.unsigned_not_supported"
	IDStorage              = "type.storage"
	IDTypeNotFound         = "type.typeNotFound"
)

// The note catalog. Each constructor fixes the kind, identifier and
// message of one diagnostic.

func constOnce(pos syntax.Pos) *Note {
	return &Note{Pos: pos, Kind: NoteError, ID: IDConstOnce, Msg: "const specified more than once"}
}

func volatileOnce(pos syntax.Pos) *Note {
	return &Note{Pos: pos, Kind: NoteError, ID: IDVolatileOnce, Msg: "volatile specified more than once"}
}

func signedOnce(pos syntax.Pos) *Note {
	return &Note{Pos: pos, Kind: NoteError, ID: IDSignedOnce, Msg: "sign specified more than once"}
}

func unsignedOnce(pos syntax.Pos) *Note {
	return &Note{Pos: pos, Kind: NoteError, ID: IDUnsignedOnce, Msg: "sign specified more than once"}
}

func signedUnsigned(pos syntax.Pos) *Note {
	return &Note{Pos: pos, Kind: NoteError, ID: IDSignedUnsigned, Msg: "signed and unsigned both specified"}
}

func oneType(pos syntax.Pos) *Note {
	return &Note{Pos: pos, Kind: NoteError, ID: IDOneType, Msg: "more than one type specified"}
}

func noReturnType(pos syntax.Pos) *Note {
	return &Note{Pos: pos, Kind: NoteError, ID: IDNoReturnType, Msg: "function has no return type"}
}

func unsignedNotSupported(pos syntax.Pos) *Note {
	return &Note{Pos: pos, Kind: NoteWarning, ID: IDUnsignedNotSupported,
		Msg: "unsigned not supported; the value is treated as signed"}
}

func storageIgnored(pos syntax.Pos, keyword string) *Note {
	return &Note{Pos: pos, Kind: NoteWarning, ID: IDStorage,
		Msg: fmt.Sprintf("storage class specifier %s is not supported and is ignored", keyword)}
}

func typeNotFound(pos syntax.Pos, name string) *Note {
	return &Note{Pos: pos, Kind: NoteError, ID: IDTypeNotFound, Msg: "type not found: " + name, TypeName: name}
}
