package tether

import "github.com/mlegeay/tether/internal"

// NewEffect runs fn once immediately, then again whenever a store or memo it
// read during its last run is written. Dependencies are re-collected on
// every run.
func NewEffect(fn func()) {
	internal.GetRuntime().NewEffect(fn)
}

// OnCleanup registers fn with the current owner. Inside an effect it runs
// before each rerun and when the effect is disposed; inside an owner's Run
// it runs on disposal. Outside any owner it is a no-op.
func OnCleanup(fn func()) {
	internal.GetRuntime().OnCleanup(fn)
}

// Untrack runs fn without dependency collection, so stores read inside it do
// not become dependencies of the surrounding effect or memo.
func Untrack[T any](fn func() T) T {
	var result T
	internal.GetRuntime().Untrack(func() { result = fn() })
	return result
}
