package showcase

import (
	"context"
	"fmt"
	"io"

	"github.com/mlegeay/tether"
)

// An effect tracks whatever it reads and reruns on change; OnCleanup runs
// before each rerun, which is where a real view would tear down the
// previous subscription, connection or timer.
func runWatcher(ctx context.Context, out io.Writer) error {
	name := tether.NewStore("world")

	o := tether.NewOwner()
	defer o.Dispose()

	err := o.Run(func() error {
		tether.NewEffect(func() {
			greeting := fmt.Sprintf("hello, %s", name.Read())
			fmt.Fprintln(out, greeting)

			tether.OnCleanup(func() {
				fmt.Fprintf(out, "forgetting %q\n", greeting)
			})
		})

		return nil
	})
	if err != nil {
		return err
	}

	name.Write("gopher")
	name.Write("tether")
	return nil
}
