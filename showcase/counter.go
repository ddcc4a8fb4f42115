package showcase

import (
	"context"
	"fmt"
	"io"

	"github.com/mlegeay/tether"
)

// The classic counter: a store as the single source of truth, a binding
// turning each write into a view refresh.
func runCounter(ctx context.Context, out io.Writer) error {
	count := tether.NewStore(0)

	view := tether.NewBinding[int](count)
	view.Mount(func() {
		fmt.Fprintf(out, "count: %d\n", view.Value())
	})
	defer view.Unbind()

	for range 3 {
		count.Update(func(v int) int { return v + 1 })
	}

	count.Write(0)
	return nil
}
