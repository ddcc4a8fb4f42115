package internal

type WatcherKind int

const (
	// WatcherEffect reruns for its side effects whenever a dependency changes.
	WatcherEffect WatcherKind = iota
	// WatcherMemo recomputes a derived value; dependents only rerun when the
	// recomputed value differs from the previous one.
	WatcherMemo
)

// Watcher is a tracked computation: an effect or a memo. Dependencies are
// collected from store reads during each run and re-collected from scratch
// on every rerun, so they may change between runs.
type Watcher struct {
	*Owner

	kind    WatcherKind
	compute func() any

	// memo output cell; nil for effects
	out *Store

	deps []*Store

	stale    bool
	queued   bool
	disposed bool
}

func (r *Runtime) NewEffect(fn func()) *Watcher {
	w := &Watcher{
		Owner: &Owner{},
		kind:  WatcherEffect,
		compute: func() any {
			fn()
			return nil
		},
	}
	r.adopt(w, w.Owner)

	r.run(w)

	return w
}

func (r *Runtime) NewMemo(compute func() any) *Watcher {
	w := &Watcher{
		Owner:   &Owner{},
		kind:    WatcherMemo,
		compute: compute,
		out:     r.NewStore(nil),
	}
	r.adopt(w, w.Owner)

	r.run(w)

	return w
}

// Value reads the memo's current value, recomputing first if a dependency
// changed since the last run. The recompute happens before the dependency
// link so the reading watcher is not requeued by its own read.
func (w *Watcher) Value() any {
	r := GetRuntime()
	if w.stale && !w.disposed {
		r.run(w)
	}

	return w.out.Read()
}

// Out exposes the memo's output cell so callers can subscribe to it.
func (w *Watcher) Out() *Store {
	return w.out
}

// Dispose detaches the watcher from its dependencies and prevents any
// future rerun. Queued entries are skipped at flush time.
func (w *Watcher) Dispose() {
	if w.disposed {
		return
	}
	w.disposed = true

	w.reset()
	w.Owner.runDisposers()
}

// reset tears down the previous run: owned children and cleanups first,
// then the dependency links.
func (w *Watcher) reset() {
	w.Owner.disposeScope()

	for _, dep := range w.deps {
		dep.detach(w)
	}
	w.deps = nil
}

func (w *Watcher) link(s *Store) {
	if w.disposed {
		return
	}

	for _, dep := range w.deps {
		if dep == s {
			return
		}
	}

	w.deps = append(w.deps, s)
	s.attach(w)
}

// run executes the watcher's computation with tracking. A panic is delivered
// to the nearest owner with an error handler, like Owner.Run. For memos the
// result is written to the output cell only when it differs, which is what
// stops change propagation at unchanged derived values.
func (r *Runtime) run(w *Watcher) {
	if w.disposed {
		return
	}
	w.stale = false

	w.reset()

	defer func() {
		if rec := recover(); rec != nil {
			if !w.Owner.catch(rec) {
				panic(rec)
			}
		}
	}()

	var result any
	r.tracker.RunWithWatcher(w, func() {
		result = w.compute()
	})

	if w.kind == WatcherMemo && !sameValue(w.out.peek(), result) {
		w.out.Write(result)
	}
}

// sameValue compares with ==, treating non-comparable values as always
// changed rather than panicking.
func sameValue(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()

	return a == b
}
