package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/you-not-fish/lobster/internal/rtabi"
	"github.com/you-not-fish/lobster/internal/syntax"
)

func TestArraySizes(t *testing.T) {
	ctx := NewContext()

	arr := ctx.NewArray(ctx.Typ(Int), 3)
	assert.Equal(t, int64(12), arr.ProperSize())
	assert.Equal(t, int64(12), arr.Size())

	empty := ctx.NewArray(ctx.Typ(Int), 0)
	assert.Equal(t, int64(0), empty.ProperSize())
	assert.Equal(t, int64(rtabi.MinArraySize), empty.Size())

	open := ctx.NewUnboundedArray(ctx.Typ(Double))
	_, known := open.Len()
	assert.False(t, known)
	open.SetLength(200)
	n, known := open.Len()
	assert.True(t, known)
	assert.Equal(t, int64(200), n)
	assert.Equal(t, int64(1600), ctx.MaxSize())
}

func TestMaxSize(t *testing.T) {
	ctx := NewContext()
	assert.Equal(t, int64(8), ctx.MaxSize(), "largest builtin is 8 bytes")

	ctx.NewArray(ctx.Typ(Char), 3)
	assert.Equal(t, int64(8), ctx.MaxSize(), "smaller sizes never lower the maximum")

	ctx.NewArray(ctx.Typ(Int), 10)
	assert.Equal(t, int64(40), ctx.MaxSize())

	c := ctx.NewClass("Big", nil)
	c.AddMember(NewVar(syntax.NoPos, "a", ctx.NewArray(ctx.Typ(Int), 10)))
	c.AddMember(NewVar(syntax.NoPos, "b", ctx.Typ(Int)))
	assert.Equal(t, int64(44), ctx.MaxSize())

	ctx.SetMaxSize(1 << 20)
	assert.Equal(t, int64(1<<20), ctx.MaxSize())

	seeded := NewContext(WithMaxSize(100))
	assert.Equal(t, int64(100), seeded.MaxSize())
}
