package showcase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mlegeay/tether"
)

// lockedWriter serializes panel output: the binding refresh prints from the
// watcher goroutine while the timeout path prints from the caller's.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// The external-store pattern: an outside event source (here the filesystem)
// is bridged into a store, and from there on observers neither know nor
// care where the changes come from.
func runFilewatch(ctx context.Context, out io.Writer) error {
	out = &lockedWriter{w: out}

	dir, err := os.MkdirTemp("", "tether-filewatch-*")
	if err != nil {
		return fmt.Errorf("create watch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	events := tether.NewStore([]string{})

	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				line := fmt.Sprintf("%s %s", ev.Op, filepath.Base(ev.Name))
				events.Update(func(seen []string) []string {
					return append(slices.Clone(seen), line)
				})
			case werr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("filewatch showcase: watcher error", "error", werr)
			}
		}
	}()

	view := tether.NewBinding[[]string](events)
	view.Mount(func() {
		seen := view.Value()
		fmt.Fprintln(out, seen[len(seen)-1])
	})
	defer view.Unbind()

	name := filepath.Join(dir, "note.txt")
	if err := os.WriteFile(name, []byte("hello"), 0o644); err != nil {
		return err
	}
	if err := os.Remove(name); err != nil {
		return err
	}

	// give fsnotify a moment to deliver before tearing down
	deadline := time.After(500 * time.Millisecond)
	for len(events.Read()) < 2 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline:
			fmt.Fprintln(out, "timed out waiting for events")
			return nil
		case <-time.After(10 * time.Millisecond):
		}
	}

	return nil
}
