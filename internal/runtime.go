package internal

import "log/slog"

// Runtime holds the scheduling and tracking state shared by every reactive
// primitive created on the same logical thread. See runtime_default.go for
// how a Runtime is resolved.
type Runtime struct {
	tracker *Tracker
	batcher *Batcher
	queue   *WatcherQueue

	flushing bool

	errorHandler func(recovered any)
}

func NewRuntime() *Runtime {
	return &Runtime{
		tracker: NewTracker(),
		batcher: NewBatcher(),
		queue:   NewWatcherQueue(),
	}
}

// Schedule queues the given watchers for a rerun. Outside a batch the queue
// is flushed immediately; inside a batch it drains when the outermost batch
// completes.
func (r *Runtime) Schedule(watchers []*Watcher) {
	for _, w := range watchers {
		w.stale = true
		r.queue.Enqueue(w)
	}

	if !r.batcher.IsBatching() {
		r.Flush()
	}
}

// Flush reruns queued watchers until the queue is empty. Reruns may write
// stores and queue more work; the loop picks that up in the same pass.
func (r *Runtime) Flush() {
	if r.flushing {
		return
	}

	r.flushing = true
	defer func() { r.flushing = false }()

	for {
		w := r.queue.Dequeue()
		if w == nil {
			return
		}

		if w.disposed {
			continue
		}

		// a memo already refreshed through a lazy read has nothing left to do
		if w.kind == WatcherMemo && !w.stale {
			continue
		}

		r.run(w)
	}
}

func (r *Runtime) CurrentOwner() *Owner {
	return r.tracker.currentOwner
}

func (r *Runtime) OnCleanup(fn func()) {
	if owner := r.CurrentOwner(); owner != nil {
		owner.OnCleanup(fn)
	}
}

func (r *Runtime) Untrack(fn func()) {
	r.tracker.RunUntracked(fn)
}

// SetErrorHandler replaces the hook invoked when a subscribed listener
// panics during a notification pass.
func (r *Runtime) SetErrorHandler(fn func(recovered any)) {
	r.errorHandler = fn
}

func (r *Runtime) reportListenerFailure(recovered any) {
	if r.errorHandler != nil {
		r.errorHandler(recovered)
		return
	}

	slog.Error("tether: store listener panicked", "recovered", recovered)
}
