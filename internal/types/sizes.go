package types

// MaxSize returns the largest object size observed in this context.
// The memory simulator sizes its address space from it.
func (ctx *Context) MaxSize() int64 {
	return ctx.maxSize
}

// SetMaxSize overrides the tracked maximum.
func (ctx *Context) SetMaxSize(n int64) {
	ctx.maxSize = n
}

// noteSize raises the tracked maximum to n if n is larger.
func (ctx *Context) noteSize(n int64) {
	if ctx != nil && n > ctx.maxSize {
		ctx.maxSize = n
	}
}
