package types2

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-not-fish/lobster/internal/syntax"
	"github.com/you-not-fish/lobster/internal/types"
)

// resolve scans src as a specifier sequence and resolves it in scope.
// It returns the declaration node and every note passed to the handler.
func resolve(t *testing.T, ctx *types.Context, scope *types.Scope, src string) (*TypeSpecifier, NoteList) {
	t.Helper()
	specs := syntax.ScanSpecifiers("test.cpp", src, func(pos syntax.Pos, msg string) {
		t.Fatalf("scan error at %s: %s", pos, msg)
	})

	var handled NoteList
	conf := &Config{Error: func(n *Note) { handled = append(handled, n) }}
	ts := NewTypeSpecifier(syntax.NewPos("test.cpp", 1, 1), specs...)
	NewChecker(ctx, scope, conf).ResolveSpecifier(ts)
	return ts, handled
}

// expectNoNotes checks that src resolves to want without any notes.
func expectNoNotes(t *testing.T, src, want string) {
	t.Helper()
	ts, _ := resolve(t, types.NewContext(), nil, src)
	if len(ts.Notes) > 0 {
		t.Errorf("unexpected notes for %q:\n%s", src, joinNotes(ts.Notes))
	}
	require.NotNil(t, ts.Type, "type of %q", src)
	assert.Equal(t, want, ts.Type.String(), "type of %q", src)
}

// expectNotes checks that src produces exactly the given note IDs.
func expectNotes(t *testing.T, src string, ids ...string) *TypeSpecifier {
	t.Helper()
	ts, _ := resolve(t, types.NewContext(), nil, src)
	assert.Equal(t, ids, ts.Notes.IDs(), "notes for %q:\n%s", src, joinNotes(ts.Notes))
	return ts
}

func joinNotes(l NoteList) string {
	var lines []string
	for _, n := range l {
		lines = append(lines, n.Error())
	}
	return strings.Join(lines, "\n")
}

func TestBuiltinSpecifiers(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"int", "int"},
		{"char", "char"},
		{"bool", "bool"},
		{"double", "double"},
		{"float", "float"},
		{"size_t", "size_t"},
		{"string", "string"},
		{"ostream", "ostream"},
		{"const int", "const int"},
		{"int const", "const int"},
		{"volatile double", "volatile double"},
		{"const volatile char", "const volatile char"},
		{"signed int", "int"},
		{"signed", "int"},
		{"signed char", "char"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			expectNoNotes(t, tt.src, tt.want)
		})
	}
}

func TestResolvedFlags(t *testing.T) {
	ts, _ := resolve(t, types.NewContext(), nil, "const signed volatile int")
	assert.True(t, ts.IsConst)
	assert.True(t, ts.IsVolatile)
	assert.True(t, ts.IsSigned)
	assert.False(t, ts.IsUnsigned)
	assert.Equal(t, "int", ts.TypeName)
	assert.True(t, ts.Type.IsConst())
	assert.True(t, ts.Type.IsVolatile())
}

func TestUnsignedSpecifiers(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"unsigned", "unsigned int"},
		{"unsigned int", "unsigned int"},
		{"unsigned char", "unsigned char"},
		{"const unsigned", "const unsigned int"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			ts := expectNotes(t, tt.src, IDUnsignedNotSupported)
			require.NotNil(t, ts.Type)
			assert.Equal(t, tt.want, ts.Type.String())
			assert.True(t, ts.IsUnsigned)
			assert.False(t, ts.Notes.HasErrors())
			assert.True(t, ts.Notes.HasWarnings())
		})
	}
}

func TestUnsignedOnNonIntegral(t *testing.T) {
	ts := expectNotes(t, "unsigned double", IDUnsignedNotSupported)
	b, ok := ts.Type.(*types.Basic)
	require.True(t, ok)
	assert.False(t, b.IsUnsigned())
	assert.Equal(t, "double", ts.Type.String())
}

func TestDuplicateSpecifiers(t *testing.T) {
	tests := []struct {
		src  string
		ids  []string
		want string
	}{
		{"const const int", []string{IDConstOnce}, "const int"},
		{"volatile int volatile", []string{IDVolatileOnce}, "volatile int"},
		{"signed signed int", []string{IDSignedOnce}, "int"},
		{"unsigned unsigned int", []string{IDUnsignedOnce, IDUnsignedNotSupported}, "unsigned int"},
		{"unsigned signed int", []string{IDSignedUnsigned, IDUnsignedNotSupported}, "unsigned int"},
		{"signed unsigned int", []string{IDSignedUnsigned}, "int"},
		{"int double", []string{IDOneType}, "int"},
		{"const const const int", []string{IDConstOnce, IDConstOnce}, "const int"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			ts := expectNotes(t, tt.src, tt.ids...)
			require.NotNil(t, ts.Type)
			assert.Equal(t, tt.want, ts.Type.String())
		})
	}
}

func TestFirstSignWins(t *testing.T) {
	ts := expectNotes(t, "unsigned signed int", IDSignedUnsigned, IDUnsignedNotSupported)
	assert.True(t, ts.IsUnsigned)
	assert.False(t, ts.IsSigned)
	assert.Equal(t, 1, ts.Notes.Count(NoteWarning))
}

func TestNoTypeName(t *testing.T) {
	for _, src := range []string{"", "const", "const volatile"} {
		t.Run(src, func(t *testing.T) {
			ts := expectNotes(t, src, IDNoReturnType)
			assert.Nil(t, ts.Type)
			assert.Empty(t, ts.TypeName)
		})
	}
}

func TestStorageSpecifiers(t *testing.T) {
	ts := expectNotes(t, "static const int", IDStorage)
	assert.Equal(t, []string{"static"}, ts.Storage)
	assert.Equal(t, "const int", ts.Type.String())

	ts = expectNotes(t, "extern thread_local double", IDStorage, IDStorage)
	assert.Equal(t, []string{"extern", "thread_local"}, ts.Storage)
	assert.Equal(t, "double", ts.Type.String())
}

func TestTypeNotFound(t *testing.T) {
	ctx := types.NewContext()
	ts, _ := resolve(t, ctx, nil, "const Widget")
	require.Len(t, ts.Notes, 1)
	n := ts.Notes[0]
	assert.Equal(t, IDTypeNotFound, n.ID)
	assert.Equal(t, "Widget", n.TypeName)
	assert.Equal(t, "type not found: Widget", n.Msg)
	assert.Equal(t, "test.cpp:1:7", n.Pos.String())
	assert.True(t, types.IsUnknown(ts.Type))
	assert.Same(t, ctx.Unknown(), ts.Type)
}

func TestUserDefinedTypes(t *testing.T) {
	ctx := types.NewContext()
	card := ctx.NewClass("Card", nil,
		types.NewVar(syntax.NoPos, "rank", ctx.Typ(types.Int)),
	)
	card.Complete()

	scope := types.NewScope(ctx.Universe(), syntax.NoPos, syntax.NoPos, "file")
	scope.Insert(types.NewTypeName(syntax.NoPos, "Card", card))
	scope.Insert(types.NewVar(syntax.NoPos, "deck", ctx.Typ(types.Int)))

	inner := types.NewScope(scope, syntax.NoPos, syntax.NoPos, "block")

	ts, _ := resolve(t, ctx, inner, "const Card")
	assert.Empty(t, ts.Notes)
	assert.True(t, types.SimilarType(card, ts.Type))
	assert.True(t, ts.Type.IsConst())
	assert.False(t, card.IsConst(), "the class itself stays unqualified")

	// A variable does not denote a type.
	ts, _ = resolve(t, ctx, inner, "deck")
	assert.Equal(t, []string{IDTypeNotFound}, ts.Notes.IDs())
	assert.True(t, types.IsUnknown(ts.Type))
}

func TestBuiltinEnum(t *testing.T) {
	ctx := types.NewContext(types.WithEnum("Suit", "SPADES", "HEARTS", "DIAMONDS", "CLUBS"))
	ts, _ := resolve(t, ctx, nil, "Suit const")
	assert.Empty(t, ts.Notes)
	e, ok := ts.Type.(*types.Enum)
	require.True(t, ok)
	assert.Equal(t, 4, e.Len())
	assert.True(t, e.IsConst())
}

func TestBuiltinShadowsScope(t *testing.T) {
	ctx := types.NewContext()
	scope := types.NewScope(ctx.Universe(), syntax.NoPos, syntax.NoPos, "file")
	scope.Insert(types.NewTypeName(syntax.NoPos, "int", ctx.NewClass("int", nil)))

	ts, _ := resolve(t, ctx, scope, "int")
	assert.Same(t, ctx.Typ(types.Int), ts.Type)
}

func TestErrorHandlerSeesEveryNote(t *testing.T) {
	ts, handled := resolve(t, types.NewContext(), nil, "static unsigned unsigned Foo")
	assert.Equal(t, ts.Notes, handled)
	assert.Equal(t, []string{IDStorage, IDUnsignedOnce, IDUnsignedNotSupported, IDTypeNotFound}, handled.IDs())
}

func TestResolve(t *testing.T) {
	ctx := types.NewContext()
	good := NewTypeSpecifier(syntax.NoPos, syntax.Specifiers("const", "int")...)
	warn := NewTypeSpecifier(syntax.NoPos, syntax.Specifiers("unsigned")...)
	bad := NewTypeSpecifier(syntax.NoPos, syntax.Specifiers("Missing")...)
	worse := NewTypeSpecifier(syntax.NoPos)

	assert.NoError(t, Resolve(ctx, nil, nil, good, warn))
	assert.Equal(t, "const int", good.Type.String())
	assert.Equal(t, "unsigned int", warn.Type.String())

	err := Resolve(ctx, nil, nil, good, bad, worse)
	require.Error(t, err)
	var n *Note
	require.ErrorAs(t, err, &n)
	assert.Equal(t, IDTypeNotFound, n.ID)
	assert.Nil(t, worse.Type)
}

func TestCheckerCounts(t *testing.T) {
	ctx := types.NewContext()
	c := NewChecker(ctx, nil, nil)
	assert.Same(t, ctx.Universe(), c.Scope())

	c.ResolveSpecifier(NewTypeSpecifier(syntax.NoPos, syntax.Specifiers("unsigned")...))
	assert.Zero(t, c.Errors())
	assert.Nil(t, c.First())

	c.ResolveSpecifier(NewTypeSpecifier(syntax.NoPos, syntax.Specifiers("int", "char", "bool")...))
	assert.Equal(t, 2, c.Errors())
	require.NotNil(t, c.First())
	assert.Equal(t, IDOneType, c.First().ID)
}

func TestSyntheticPositions(t *testing.T) {
	pos := syntax.NewPos("deck.cpp", 4, 2)
	ts := NewTypeSpecifier(pos, syntax.Specifiers("const", "const", "int")...)
	NewChecker(types.NewContext(), nil, nil).ResolveSpecifier(ts)
	require.Len(t, ts.Notes, 1)
	assert.Equal(t, pos, ts.Notes[0].Pos)
	assert.Equal(t, "deck.cpp:4:2: error: const specified more than once", ts.Notes[0].Error())
}
