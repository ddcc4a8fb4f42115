package tether

import "github.com/mlegeay/tether/internal"

// NewBatch coalesces effect and memo reruns across every write performed
// inside fn into a single flush at the end of the outermost batch. Plain
// Subscribe listeners are not deferred: they stay synchronous with each
// write.
func NewBatch(fn func()) {
	internal.GetRuntime().NewBatch(fn)
}
