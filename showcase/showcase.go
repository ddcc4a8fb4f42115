// Package showcase holds small self-contained panels, each demonstrating one
// tether concept against a line-printing view. The panels double as living
// documentation: every one of them is wired through the public API only.
package showcase

import (
	"context"
	"fmt"
	"io"
)

// Panel is one registered demo.
type Panel struct {
	Name  string
	Brief string
	Run   func(ctx context.Context, out io.Writer) error
}

// panels is the registry. Add new panels here to make them visible to the
// CLI's list and run commands.
var panels = []Panel{
	{"counter", "a store bound to a view", runCounter},
	{"watcher", "an effect with cleanup between reruns", runWatcher},
	{"derived", "memoized values chained off one store", runDerived},
	{"theme", "a context value scoped by owners", runTheme},
	{"burst", "batched writes flushing once", runBurst},
	{"ticker", "an effect owning a timer, stopped by cleanup", runTicker},
	{"todos", "a keyed list store with a derived count", runTodos},
	{"filewatch", "filesystem events bridged into a store", runFilewatch},
}

// Panels returns the registry in registration order.
func Panels() []Panel {
	out := make([]Panel, len(panels))
	copy(out, panels)
	return out
}

// Lookup finds a panel by name.
func Lookup(name string) (Panel, bool) {
	for _, p := range panels {
		if p.Name == name {
			return p, true
		}
	}
	return Panel{}, false
}

// Run executes the named panels in order, writing their output to out.
func Run(ctx context.Context, out io.Writer, names []string) error {
	for _, name := range names {
		p, ok := Lookup(name)
		if !ok {
			return fmt.Errorf("unknown panel %q", name)
		}

		fmt.Fprintf(out, "== %s: %s\n", p.Name, p.Brief)
		if err := p.Run(ctx, out); err != nil {
			return fmt.Errorf("panel %s: %w", p.Name, err)
		}
	}

	return nil
}

// Names returns every registered panel name, in registration order.
func Names() []string {
	names := make([]string, len(panels))
	for i, p := range panels {
		names[i] = p.Name
	}
	return names
}
