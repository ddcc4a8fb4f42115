package internal

type Tracker struct {
	tracking bool

	currentOwner   *Owner   // for lifecycle/cleanup/context scoping
	currentWatcher *Watcher // for reactive dependency collection
}

func NewTracker() *Tracker {
	return &Tracker{
		tracking: true,
	}
}

func (t *Tracker) RunWithOwner(owner *Owner, fn func()) {
	prev := t.currentOwner
	t.currentOwner = owner
	defer func() { t.currentOwner = prev }()

	fn()
}

func (t *Tracker) RunWithWatcher(w *Watcher, fn func()) {
	prevOwner := t.currentOwner
	prevWatcher := t.currentWatcher

	t.currentOwner = w.Owner
	t.currentWatcher = w

	defer func() {
		t.currentOwner = prevOwner
		t.currentWatcher = prevWatcher
	}()

	fn()
}

func (t *Tracker) RunUntracked(fn func()) {
	prev := t.tracking
	t.tracking = false
	defer func() { t.tracking = prev }()

	fn()
}

func (t *Tracker) ShouldTrack() bool {
	return t.currentWatcher != nil && t.tracking
}
