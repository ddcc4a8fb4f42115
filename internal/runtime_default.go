//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

// One runtime per goroutine. Store values are shared between goroutines, but
// tracking and scheduling state always belongs to the goroutine performing
// the read or write, which keeps the cooperative single-threaded model of
// each runtime intact.
var runtimes sync.Map

func GetRuntime() *Runtime {
	gid := goid.Get()

	if r, ok := runtimes.Load(gid); ok {
		return r.(*Runtime)
	}

	r := NewRuntime()
	runtimes.Store(gid, r)
	return r
}
