package internal

// disposable is anything an owner can adopt as a child: plain owners and
// watchers (which carry extra teardown of their own).
type disposable interface {
	Dispose()
}

type Owner struct {
	// cleanup functions, run once on the next disposal then cleared
	cleanups []func()

	// disposal listeners, run on every disposal
	disposers []func()

	// panic handlers
	catchers []func(any)

	// context values bound to this owner
	context map[*Context]any

	parent   *Owner
	children []disposable
}

// NewOwner creates an owner and adopts it under the current one, so that
// disposing an ancestor disposes it too.
func (r *Runtime) NewOwner() *Owner {
	o := &Owner{}
	r.adopt(o, o)
	return o
}

func (r *Runtime) adopt(child disposable, o *Owner) {
	parent := r.tracker.currentOwner
	o.parent = parent

	if parent != nil {
		parent.children = append(parent.children, child)
	}
}

// Run executes fn with this owner as the current scope. A panic inside fn is
// delivered to the nearest ancestor (including this owner) with an OnError
// handler; without one it propagates as usual.
func (o *Owner) Run(fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if !o.catch(rec) {
				panic(rec)
			}
		}
	}()

	r := GetRuntime()
	r.tracker.RunWithOwner(o, func() {
		err = fn()
	})

	return err
}

// Dispose tears down children (newest first), then runs cleanups in
// registration order, then disposal listeners.
func (o *Owner) Dispose() {
	o.disposeScope()
	o.runDisposers()
}

// disposeScope releases everything created within the owner without firing
// the persistent disposal listeners. Watcher reruns use this to reset their
// scope between runs.
func (o *Owner) disposeScope() {
	children := o.children
	o.children = nil
	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	cleanups := o.cleanups
	o.cleanups = nil
	for _, fn := range cleanups {
		fn()
	}
}

func (o *Owner) runDisposers() {
	for _, fn := range o.disposers {
		fn()
	}
}

func (o *Owner) OnCleanup(fn func()) {
	o.cleanups = append(o.cleanups, fn)
}

func (o *Owner) OnDispose(fn func()) {
	o.disposers = append(o.disposers, fn)
}

func (o *Owner) OnError(fn func(any)) {
	o.catchers = append(o.catchers, fn)
}

// catch walks the owner chain looking for error handlers. The first owner
// that has any gets all of them invoked. Reports whether the panic was handled.
func (o *Owner) catch(rec any) bool {
	for cur := o; cur != nil; cur = cur.parent {
		if len(cur.catchers) == 0 {
			continue
		}

		for _, fn := range cur.catchers {
			fn(rec)
		}
		return true
	}

	return false
}
