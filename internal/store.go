package internal

import (
	"slices"
	"sync"
)

// Store is the untyped observable cell behind the public Store and Memo
// types. It owns its value: mutation only ever happens through Write or
// Update, and every replacement notifies the listeners registered at the
// start of the pass exactly once, synchronously.
type Store struct {
	mu    sync.Mutex
	value any
	subs  []*subscription

	// dependent watchers in link order, so reruns stay deterministic
	watchers []*Watcher

	// overrides the runtime error handler when a listener panics
	errorHandler func(recovered any)
}

// subscription is one registered listener. Subscribing the same function
// twice yields two independent subscriptions; identity lives here, not in
// the function value.
type subscription struct {
	fn      func()
	removed bool
}

func (r *Runtime) NewStore(initial any) *Store {
	return &Store{
		value: initial,
	}
}

func (s *Store) SetErrorHandler(fn func(recovered any)) {
	s.errorHandler = fn
}

// Read returns the current value. Within a watcher run it also records the
// store as a dependency of that watcher.
func (s *Store) Read() any {
	r := GetRuntime()
	if r.tracker.ShouldTrack() {
		r.tracker.currentWatcher.link(s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Write replaces the value and notifies. There is no equality short-circuit:
// writing a value equal to the current one still notifies every listener.
func (s *Store) Write(v any) {
	s.mu.Lock()
	s.value = v
	s.mu.Unlock()

	s.notify()
}

// Update replaces the value with fn(current) and notifies. fn runs outside
// the lock so it may freely read other stores, or even this one.
func (s *Store) Update(fn func(any) any) {
	s.mu.Lock()
	v := s.value
	s.mu.Unlock()

	next := fn(v)

	s.mu.Lock()
	s.value = next
	s.mu.Unlock()

	s.notify()
}

// Subscribe registers fn and returns a handle removing that exact
// registration. Calling the handle more than once is a no-op.
func (s *Store) Subscribe(fn func()) func() {
	sub := &subscription{fn: fn}

	s.mu.Lock()
	s.subs = append(s.subs, sub)
	s.mu.Unlock()

	return func() { s.unsubscribe(sub) }
}

func (s *Store) unsubscribe(sub *subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sub.removed {
		return
	}
	sub.removed = true

	for i, cur := range s.subs {
		if cur == sub {
			s.subs = slices.Delete(s.subs, i, i+1)
			break
		}
	}
}

// notify runs the listener pass against a snapshot of the subscription list:
// listeners added during the pass wait for the next one, and listeners
// removed during the pass still finish the current one. Watcher reruns are
// handed to the scheduler afterwards.
func (s *Store) notify() {
	r := GetRuntime()

	s.mu.Lock()
	subs := slices.Clone(s.subs)
	watchers := slices.Clone(s.watchers)
	s.mu.Unlock()

	for _, sub := range subs {
		s.invoke(r, sub)
	}

	r.Schedule(watchers)
}

// invoke isolates a listener panic: it is reported through the error hook
// and the remaining listeners still run.
func (s *Store) invoke(r *Runtime, sub *subscription) {
	defer func() {
		if rec := recover(); rec != nil {
			if s.errorHandler != nil {
				s.errorHandler(rec)
				return
			}
			r.reportListenerFailure(rec)
		}
	}()

	sub.fn()
}

func (s *Store) attach(w *Watcher) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.watchers, w) {
		return
	}
	s.watchers = append(s.watchers, w)
}

func (s *Store) detach(w *Watcher) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := slices.Index(s.watchers, w); i >= 0 {
		s.watchers = slices.Delete(s.watchers, i, i+1)
	}
}

// peek reads without tracking or locking ceremony beyond the value lock.
func (s *Store) peek() any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}
