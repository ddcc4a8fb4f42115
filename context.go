package tether

import "github.com/mlegeay/tether/internal"

// Context carries a value down the owner tree without threading it through
// every call site.
type Context[T any] struct {
	ctx *internal.Context
}

// NewContext creates a context with a fallback value returned when no owner
// in the current chain holds a binding.
func NewContext[T any](initial T) *Context[T] {
	return &Context[T]{
		ctx: internal.GetRuntime().NewContext(initial),
	}
}

// Value returns the binding from the nearest owner up the chain, or the
// initial value when none is set.
func (c *Context[T]) Value() T {
	return as[T](c.ctx.Value())
}

// Set binds value in the current owner. Outside any owner the call is a
// no-op, since nothing would scope the binding.
func (c *Context[T]) Set(value T) {
	c.ctx.Set(value)
}
