package tether

import "github.com/mlegeay/tether/internal"

// Owner scopes the lifecycle of reactive nodes. Effects, memos and child
// owners created inside Run are disposed with it.
type Owner struct {
	owner *internal.Owner
}

// NewOwner creates an owner as a child of the current one, if any.
func NewOwner() *Owner {
	return &Owner{
		owner: internal.GetRuntime().NewOwner(),
	}
}

// Run executes fn within this owner's scope.
func (o *Owner) Run(fn func() error) error { return o.owner.Run(fn) }

// Dispose tears down this owner and everything created within it: children
// first (newest to oldest), then cleanups in registration order.
func (o *Owner) Dispose() { o.owner.Dispose() }

// OnCleanup registers fn to run once on the next disposal.
func (o *Owner) OnCleanup(fn func()) { o.owner.OnCleanup(fn) }

// OnDispose registers fn to run on every disposal.
func (o *Owner) OnDispose(fn func()) { o.owner.OnDispose(fn) }

// OnError registers fn as an error boundary: a panic inside Run or inside an
// owned effect is delivered here instead of propagating. Without any handler
// on the owner chain the panic propagates as usual.
func (o *Owner) OnError(fn func(any)) { o.owner.OnError(fn) }
