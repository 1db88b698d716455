package types2

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/you-not-fish/lobster/internal/syntax"
)

func TestNoteKindString(t *testing.T) {
	assert.Equal(t, "error", NoteError.String())
	assert.Equal(t, "warning", NoteWarning.String())
	assert.Equal(t, "style", NoteStyle.String())
	assert.Equal(t, "other", NoteOther.String())
	assert.Equal(t, "NoteKind(9)", NoteKind(9).String())
}

func TestNoteCatalog(t *testing.T) {
	pos := syntax.NewPos("a.cpp", 2, 3)
	tests := []struct {
		note *Note
		id   string
		kind NoteKind
		msg  string
	}{
		{constOnce(pos), IDConstOnce, NoteError, "const specified more than once"},
		{volatileOnce(pos), IDVolatileOnce, NoteError, "volatile specified more than once"},
		{signedOnce(pos), IDSignedOnce, NoteError, "sign specified more than once"},
		{unsignedOnce(pos), IDUnsignedOnce, NoteError, "sign specified more than once"},
		{signedUnsigned(pos), IDSignedUnsigned, NoteError, "signed and unsigned both specified"},
		{oneType(pos), IDOneType, NoteError, "more than one type specified"},
		{noReturnType(pos), IDNoReturnType, NoteError, "function has no return type"},
		{unsignedNotSupported(pos), IDUnsignedNotSupported, NoteWarning, "unsigned not supported; the value is treated as signed"},
		{storageIgnored(pos, "static"), IDStorage, NoteWarning, "storage class specifier static is not supported and is ignored"},
		{typeNotFound(pos, "Foo"), IDTypeNotFound, NoteError, "type not found: Foo"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.id, tt.note.ID)
			assert.Equal(t, tt.kind, tt.note.Kind)
			assert.Equal(t, tt.msg, tt.note.Msg)
			assert.Equal(t, pos, tt.note.Pos)
			assert.Equal(t, "a.cpp:2:3: "+tt.kind.String()+": "+tt.msg, tt.note.Error())
		})
	}
}

func TestNoteList(t *testing.T) {
	var l NoteList
	assert.False(t, l.HasErrors())
	assert.False(t, l.HasWarnings())

	l = append(l, unsignedNotSupported(syntax.NoPos))
	assert.False(t, l.HasErrors())
	assert.True(t, l.HasWarnings())

	l = append(l, oneType(syntax.NoPos), constOnce(syntax.NoPos))
	assert.True(t, l.HasErrors())
	assert.Equal(t, 2, l.Count(NoteError))
	assert.Equal(t, 1, l.Count(NoteWarning))
	assert.Zero(t, l.Count(NoteStyle))
	assert.Equal(t, []string{IDUnsignedNotSupported, IDOneType, IDConstOnce}, l.IDs())
}

func TestNoteListSort(t *testing.T) {
	at := func(line, col uint32) syntax.Pos { return syntax.NewPos("a.cpp", line, col) }
	l := NoteList{
		typeNotFound(at(1, 16), "Foo"),
		unsignedNotSupported(at(1, 1)),
		constOnce(at(1, 7)),
		storageIgnored(at(1, 1), "static"),
		oneType(at(2, 1)),
	}
	l.Sort()
	assert.Equal(t, []string{IDUnsignedNotSupported, IDStorage, IDConstOnce, IDTypeNotFound, IDOneType}, l.IDs())
}
