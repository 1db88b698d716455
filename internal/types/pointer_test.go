package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// testObject is a stand-in for a simulator object.
type testObject struct {
	typ   Type
	addr  int64
	alive bool
}

func (o *testObject) IsAlive() bool  { return o.alive }
func (o *testObject) Address() int64 { return o.addr }
func (o *testObject) Type() Type     { return o.typ }

func TestArrayPointerValidity(t *testing.T) {
	ctx := NewContext()
	arr := &testObject{typ: ctx.NewArray(ctx.Typ(Int), 4), addr: 100, alive: true}
	p := ctx.NewArrayPointer(arr)

	assert.Equal(t, ArrayPointer, p.Kind())
	assert.Same(t, ctx.Typ(Int), p.Elem())
	assert.Equal(t, int64(100), p.ArrayMin())
	assert.Equal(t, int64(116), p.ArrayOnePast())
	assert.Equal(t, int64(2), p.ToIndex(108))

	tests := []struct {
		addr         int64
		valid, deref bool
	}{
		{96, false, false},
		{100, true, true},
		{112, true, true},
		{116, true, false}, // one past the end
		{120, false, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valid, IsValueValid(p, tt.addr), "valid(%d)", tt.addr)
		assert.Equal(t, tt.deref, IsValueDereferenceable(p, tt.addr), "deref(%d)", tt.addr)
	}

	arr.alive = false
	assert.False(t, IsValueValid(p, int64(100)), "dead array")
}

func TestObjectPointerValidity(t *testing.T) {
	ctx := NewContext()
	obj := &testObject{typ: ctx.Typ(Double), addr: 40, alive: true}
	p := ctx.NewObjectPointer(obj)

	assert.Equal(t, ObjectPointer, p.Kind())
	assert.True(t, SameType(p.Elem(), ctx.Typ(Double)))
	assert.True(t, IsValueValid(p, int64(40)))
	assert.False(t, IsValueValid(p, int64(48)))

	obj.addr = 48
	assert.True(t, IsValueValid(p, int64(48)), "validity follows the object's current address")

	obj.alive = false
	assert.False(t, IsValueValid(p, int64(48)))
}

func TestPlainPointerAlwaysValid(t *testing.T) {
	ctx := NewContext()
	p := ctx.NewPointer(ctx.Typ(Int))
	assert.True(t, IsValueValid(p, int64(-5)))
	assert.True(t, IsValueValid(ctx.Typ(Int), "anything"))
	assert.True(t, IsNull(int64(0)))
	assert.False(t, IsNull(int64(8)))
	assert.True(t, IsNegative(int64(-1)))
}

func TestArrayPointerToNonArrayPanics(t *testing.T) {
	ctx := NewContext()
	obj := &testObject{typ: ctx.Typ(Int)}
	assert.Panics(t, func() { ctx.NewArrayPointer(obj) })
}
