package tether

import "github.com/mlegeay/tether/internal"

// Memo is a cached derived value. It recomputes lazily once a dependency
// changes, and only propagates to its own observers when the recomputed
// value differs from the previous one.
type Memo[T any] struct {
	watcher *internal.Watcher
}

// NewMemo creates a memo deriving its value from the stores and memos read
// inside compute. Dependencies are re-collected on every recompute.
func NewMemo[T any](compute func() T) *Memo[T] {
	return &Memo[T]{
		watcher: internal.GetRuntime().NewMemo(func() any {
			return compute()
		}),
	}
}

// Read returns the memo's value, recomputing first if a dependency changed.
// Within an effect or another memo it registers a dependency.
func (m *Memo[T]) Read() T {
	return as[T](m.watcher.Value())
}

// Subscribe registers fn against the memo's output cell. fn runs after every
// recompute that produced a different value. Same contract as
// [Store.Subscribe].
func (m *Memo[T]) Subscribe(fn func()) (unsubscribe func()) {
	return m.watcher.Out().Subscribe(fn)
}
