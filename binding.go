package tether

import "sync"

// Source is anything a binding can observe: a snapshot read plus a
// subscription returning an unsubscribe handle. Both [Store] and [Memo]
// satisfy it.
type Source[T any] interface {
	Read() T
	Subscribe(fn func()) (unsubscribe func())
}

// Binding adapts a source to a view surface. Its only job is to turn a
// subscription notification into the surface's native refresh trigger; it
// keeps the last observed snapshot so the view can re-read it cheaply.
//
//	b := tether.NewBinding[int](count)
//	b.Mount(view.Invalidate)
//	defer b.Unbind()
//
// Mount reads a snapshot, subscribes, and then re-reads a fresh snapshot, so
// a write landing between the initial read and the subscription is still
// observed.
type Binding[T any] struct {
	src      Source[T]
	fallback func() T

	mu      sync.Mutex
	mounted bool
	value   T
	unsub   func()
}

// BindingOption configures a binding at construction.
type BindingOption[T any] func(*Binding[T])

// WithFallback supplies the snapshot returned by Value while the binding is
// not mounted, for surfaces evaluated outside a live observation context
// (pre-render, tests, non-interactive output).
func WithFallback[T any](fn func() T) BindingOption[T] {
	return func(b *Binding[T]) {
		b.fallback = fn
	}
}

// NewBinding creates an unmounted binding over src.
func NewBinding[T any](src Source[T], opts ...BindingOption[T]) *Binding[T] {
	b := &Binding[T]{src: src}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Mount starts observing: every source notification re-reads the snapshot
// and then calls refresh. Mounting an already mounted binding first
// unmounts it.
func (b *Binding[T]) Mount(refresh func()) {
	b.Unbind()

	b.mu.Lock()
	b.value = b.src.Read()
	b.mu.Unlock()

	unsub := b.src.Subscribe(func() {
		b.mu.Lock()
		b.value = b.src.Read()
		b.mu.Unlock()

		if refresh != nil {
			refresh()
		}
	})

	// close the window between the initial read and the subscription
	b.mu.Lock()
	b.value = b.src.Read()
	b.mounted = true
	b.unsub = unsub
	b.mu.Unlock()
}

// Value returns the last observed snapshot. Unmounted, it returns the
// fallback snapshot when one was configured, else a direct read.
func (b *Binding[T]) Value() T {
	b.mu.Lock()
	mounted, v := b.mounted, b.value
	b.mu.Unlock()

	if mounted {
		return v
	}

	if b.fallback != nil {
		return b.fallback()
	}

	return b.src.Read()
}

// Unbind stops observing. Safe to call repeatedly or before Mount.
func (b *Binding[T]) Unbind() {
	b.mu.Lock()
	unsub := b.unsub
	b.unsub = nil
	b.mounted = false
	b.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}
