package internal

// Context carries a value down the owner tree. Set binds a value in the
// current owner; Value walks the chain upwards and falls back to the
// initial value when no owner holds a binding.
type Context struct {
	initial any
}

func (r *Runtime) NewContext(initial any) *Context {
	return &Context{initial: initial}
}

func (c *Context) Value() any {
	r := GetRuntime()

	for o := r.tracker.currentOwner; o != nil; o = o.parent {
		if v, ok := o.context[c]; ok {
			return v
		}
	}

	return c.initial
}

// Set binds the value in the current owner. Outside any owner there is
// nothing to hold the binding, so the call is a no-op.
func (c *Context) Set(v any) {
	o := GetRuntime().tracker.currentOwner
	if o == nil {
		return
	}

	if o.context == nil {
		o.context = make(map[*Context]any)
	}
	o.context[c] = v
}
