package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/you-not-fish/lobster/internal/rtabi"
	"github.com/you-not-fish/lobster/internal/syntax"
)

func TestBasicTypes(t *testing.T) {
	ctx := NewContext()

	tests := []struct {
		kind     BasicKind
		name     string
		size     int64
		object   bool
		integral bool
		floating bool
	}{
		{Void, "void", rtabi.SizeVoid, false, false, false},
		{Unknown, "unknown", rtabi.SizeUnknown, false, false, false},
		{Char, "char", rtabi.SizeChar, true, true, false},
		{Int, "int", rtabi.SizeInt, true, true, false},
		{SizeT, "size_t", rtabi.SizeSizeT, true, true, false},
		{Bool, "bool", rtabi.SizeBool, true, true, false},
		{Float, "float", rtabi.SizeFloat, true, false, true},
		{Double, "double", rtabi.SizeDouble, true, false, true},
		{String, "string", rtabi.SizeString, true, false, false},
		{OStream, "ostream", rtabi.SizeStream, true, false, false},
		{IStream, "istream", rtabi.SizeStream, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ := ctx.Typ(tt.kind)
			if typ == nil {
				t.Fatalf("Typ(%d) is nil", tt.kind)
			}
			if typ.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", typ.Kind(), tt.kind)
			}
			if typ.String() != tt.name {
				t.Errorf("String() = %q, want %q", typ.String(), tt.name)
			}
			if typ.Size() != tt.size {
				t.Errorf("Size() = %d, want %d", typ.Size(), tt.size)
			}
			if IsObjectType(typ) != tt.object {
				t.Errorf("IsObjectType() = %v, want %v", IsObjectType(typ), tt.object)
			}
			if IsIntegralType(typ) != tt.integral {
				t.Errorf("IsIntegralType() = %v, want %v", IsIntegralType(typ), tt.integral)
			}
			if IsFloatingPointType(typ) != tt.floating {
				t.Errorf("IsFloatingPointType() = %v, want %v", IsFloatingPointType(typ), tt.floating)
			}
			if IsArithmeticType(typ) != (tt.integral || tt.floating) {
				t.Errorf("IsArithmeticType() = %v", IsArithmeticType(typ))
			}

			found, ok := ctx.Builtin(tt.name)
			if !ok || found != Type(typ) {
				t.Errorf("Builtin(%q) did not return the registered type", tt.name)
			}
			if obj := ctx.Universe().Lookup(tt.name); obj == nil || obj.Type() != Type(typ) {
				t.Errorf("universe scope does not declare %q", tt.name)
			}
		})
	}
}

func TestContextsAreIndependent(t *testing.T) {
	c1 := NewContext(WithEnum("Suit", "CLUBS", "HEARTS"))
	c2 := NewContext()

	if _, ok := c2.Builtin("Suit"); ok {
		t.Error("enum registered in one context leaked into another")
	}
	if c1.Typ(Int) == c2.Typ(Int) {
		t.Error("contexts share builtin instances")
	}

	c1.NewArray(c1.Typ(Int), 1000)
	assert.Equal(t, int64(4000), c1.MaxSize())
	assert.Equal(t, int64(8), c2.MaxSize())
}

func TestCVQualified(t *testing.T) {
	ctx := NewContext()
	i := ctx.Typ(Int)

	if CVQualified(i, false, false) != Type(i) {
		t.Error("CVQualified with matching qualifiers should return the receiver")
	}

	ci := CVQualified(i, true, false)
	if !ci.IsConst() || ci.IsVolatile() {
		t.Errorf("const int: IsConst=%v IsVolatile=%v", ci.IsConst(), ci.IsVolatile())
	}
	if i.IsConst() {
		t.Error("qualifying must not modify the original")
	}
	if CVQualified(ci, true, false) != ci {
		t.Error("re-qualifying with the same qualifiers should be the identity")
	}
	if cv := CVQualified(ci, true, true); !cv.IsConst() || !cv.IsVolatile() {
		t.Error("const volatile int lost a qualifier")
	}
	assert.Same(t, i, CVUnqualified(i))
	assert.Equal(t, "int", CVUnqualified(ci).String())

	// references and functions are never qualified
	r := ctx.NewReference(i)
	assert.Same(t, r, CVQualified(r, true, false))
	f := ctx.NewFunc(i, nil, false)
	assert.Same(t, f, CVQualified(f, true, true))
}

func TestArrayQualificationFollowsElement(t *testing.T) {
	ctx := NewContext()
	arr := ctx.NewArray(CVQualified(ctx.Typ(Int), true, false), 3)
	if !arr.IsConst() {
		t.Error("array of const int should be const")
	}

	plain := ctx.NewArray(ctx.Typ(Int), 3)
	q := CVQualified(plain, true, false).(*Array)
	if !q.Elem().IsConst() {
		t.Error("qualifying an array should qualify its element type")
	}
	if plain.Elem().IsConst() {
		t.Error("qualifying an array must not modify the original element")
	}
}

func TestQualifiedClassSharesDefinition(t *testing.T) {
	ctx := NewContext()
	c := ctx.NewClass("Card", nil)
	cc := CVQualified(c, true, false).(*Class)

	c.AddMember(NewVar(syntax.NoPos, "rank", ctx.Typ(Int)))
	assert.Equal(t, int64(4), cc.Size(), "qualified variant must see later members")
	assert.True(t, SimilarType(c, cc))
	assert.False(t, SameType(c, cc))
}

func TestFuncStripsTopLevelQualifiers(t *testing.T) {
	ctx := NewContext()
	ci := CVQualified(ctx.Typ(Int), true, false)
	cls := CVQualified(ctx.NewClass("Card", nil), true, false)
	cptr := CVQualified(ctx.NewPointer(ctx.Typ(Int)), true, false)

	f := ctx.NewFunc(ci, []Type{ci, cls, cptr}, false)
	if f.Result().IsConst() {
		t.Error("const int return type should be unqualified")
	}
	if f.Param(0).IsConst() {
		t.Error("const int parameter should be unqualified")
	}
	if !f.Param(1).IsConst() {
		t.Error("const class parameter should keep its qualification")
	}
	if f.Param(2).IsConst() {
		t.Error("top-level const on a pointer parameter should be stripped")
	}

	g := ctx.NewFunc(cptr, nil, false)
	if !g.Result().IsConst() {
		t.Error("pointer return type should keep its qualification")
	}
}

func TestCompleteness(t *testing.T) {
	ctx := NewContext()
	cls := ctx.NewClass("Node", nil)

	tests := []struct {
		name string
		typ  Type
		want bool
	}{
		{"int", ctx.Typ(Int), true},
		{"void", ctx.Typ(Void), false},
		{"unknown", ctx.Typ(Unknown), true},
		{"pointer to void", ctx.NewPointer(ctx.Typ(Void)), true},
		{"array", ctx.NewArray(ctx.Typ(Int), 2), true},
		{"unbounded array", ctx.NewUnboundedArray(ctx.Typ(Int)), false},
		{"class under definition", cls, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsComplete(tt.typ); got != tt.want {
				t.Errorf("IsComplete(%s) = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}

	cls.SetTemporarilyComplete()
	assert.True(t, IsComplete(cls))
	cls.UnsetTemporarilyComplete()
	assert.False(t, IsComplete(cls))
	cls.Complete()
	assert.True(t, IsComplete(cls))
}

func TestCompoundNext(t *testing.T) {
	ctx := NewContext()
	i := ctx.Typ(Int)

	assert.Same(t, i, CompoundNext(ctx.NewPointer(i)))
	assert.Same(t, i, CompoundNext(ctx.NewReference(i)))
	assert.Same(t, i, CompoundNext(ctx.NewArray(i, 4)))
	assert.Nil(t, CompoundNext(i))
	assert.Nil(t, CompoundNext(ctx.NewFunc(i, nil, false)))

	r := ctx.NewReference(i)
	assert.Same(t, i, NoRef(r))
	assert.Same(t, i, NoRef(i))
}

func TestReferenceSize(t *testing.T) {
	ctx := NewContext()
	r := ctx.NewReference(ctx.Typ(Double))
	assert.Equal(t, int64(rtabi.SizeDouble), r.Size())
	assert.False(t, IsObjectType(r))
}

func TestEnum(t *testing.T) {
	ctx := NewContext(WithEnum("Suit", "CLUBS", "DIAMONDS", "HEARTS", "SPADES"))

	typ, ok := ctx.Builtin("Suit")
	if !ok {
		t.Fatal("Suit not registered")
	}
	e := typ.(*Enum)
	assert.Equal(t, 4, e.Len())
	assert.Equal(t, int64(rtabi.SizeEnum), e.Size())
	assert.True(t, IsIntegralType(e))
	assert.True(t, IsArithmeticType(e))

	i, ok := e.Index("HEARTS")
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	assert.Equal(t, "SPADES", e.Enumerator(3))
	assert.Equal(t, "", e.Enumerator(4))

	assert.Equal(t, "HEARTS", ValueToString(e, int64(2)))
	assert.Equal(t, "const Suit", CVQualified(e, true, false).String())
}
