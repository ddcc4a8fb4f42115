package internal

// WatcherQueue holds watchers waiting for a rerun, in first-write order,
// with at most one pending entry per watcher.
type WatcherQueue struct {
	items []*Watcher
}

func NewWatcherQueue() *WatcherQueue {
	return &WatcherQueue{
		items: make([]*Watcher, 0),
	}
}

func (q *WatcherQueue) Enqueue(w *Watcher) {
	if w.queued || w.disposed {
		return
	}

	w.queued = true
	q.items = append(q.items, w)
}

func (q *WatcherQueue) Dequeue() *Watcher {
	if len(q.items) == 0 {
		return nil
	}

	w := q.items[0]
	q.items = q.items[1:]
	w.queued = false

	return w
}
