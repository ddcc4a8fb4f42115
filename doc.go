// Package tether is a small observable-store library: shared state cells
// with explicit subscriptions, plus the tracked primitives usually built on
// top of them (effects, memos, contexts, batches, lifecycle owners).
//
// The core type is [Store]: it holds one value, replaces it through
// [Store.Write] or [Store.Update], and synchronously notifies every
// registered listener after each replacement. Stores are plain
// constructor-created values meant to be passed around explicitly; the
// library has no global registry.
//
//	count := tether.NewStore(0)
//
//	unsubscribe := count.Subscribe(func() {
//	    fmt.Println("count is now", count.Read())
//	})
//	defer unsubscribe()
//
//	count.Write(1)
//	count.Update(func(v int) int { return v + 1 })
//
// [NewEffect] and [NewMemo] layer dependency tracking on top: reading a
// store inside one records it as a dependency, and writes rerun the
// computation. [NewBatch] coalesces reruns across several writes.
// [Binding] adapts a store to a view surface's refresh mechanism; see its
// documentation for the mount contract.
//
// All tracking and scheduling state lives in a per-goroutine runtime, so a
// goroutine behaves as a single-threaded cooperative environment. Store
// values themselves may be shared: reads, writes and subscriptions are
// guarded, and notification always runs on the writing goroutine.
package tether
