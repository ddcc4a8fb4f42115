package tether

import "github.com/mlegeay/tether/internal"

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

// Store holds a single shared value and notifies subscribers when it is
// replaced. The value is owned by the store: it can only change through
// Write or Update, and listeners never receive a mutable reference.
type Store[T any] struct {
	store *internal.Store
}

// NewStore creates a store holding initial.
func NewStore[T any](initial T, opts ...StoreOption) *Store[T] {
	s := &Store[T]{
		store: internal.GetRuntime().NewStore(initial),
	}

	for _, opt := range opts {
		opt(s.store)
	}

	return s
}

// StoreOption configures a store at construction.
type StoreOption func(*internal.Store)

// WithErrorHandler sets a per-store hook for listener panics, overriding the
// runtime-level handler set with [SetErrorHandler].
func WithErrorHandler(fn func(recovered any)) StoreOption {
	return func(s *internal.Store) {
		s.SetErrorHandler(fn)
	}
}

// Read returns the current value. It is a consistent snapshot and is safe to
// call at any time. Within an effect or memo it also registers the store as
// a dependency.
func (s *Store[T]) Read() T {
	return as[T](s.store.Read())
}

// Write replaces the value and then invokes every listener registered at the
// start of the pass exactly once, synchronously, in unspecified order.
// Writing a value equal to the current one still notifies.
func (s *Store[T]) Write(v T) {
	s.store.Write(v)
}

// Update replaces the value with fn(current), then notifies like Write.
func (s *Store[T]) Update(fn func(T) T) {
	s.store.Update(func(v any) any {
		return fn(as[T](v))
	})
}

// Subscribe registers fn, called with no arguments after every value
// replacement. The returned handle removes that exact registration; calling
// it more than once is a no-op. Subscribing the same function twice yields
// two independent registrations.
//
// A panicking listener does not prevent its siblings from running; the
// panic is reported through the store's error hook.
func (s *Store[T]) Subscribe(fn func()) (unsubscribe func()) {
	return s.store.Subscribe(fn)
}

// SetErrorHandler replaces the current goroutine runtime's default hook for
// listener panics. The zero behavior logs through log/slog.
func SetErrorHandler(fn func(recovered any)) {
	internal.GetRuntime().SetErrorHandler(fn)
}
