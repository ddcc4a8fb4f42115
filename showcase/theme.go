package showcase

import (
	"context"
	"fmt"
	"io"

	"github.com/mlegeay/tether"
)

// A context value is bound in an owner and visible to everything created
// underneath it, without threading it through call sites. Sibling owners
// keep independent bindings.
func runTheme(ctx context.Context, out io.Writer) error {
	theme := tether.NewContext("light")

	paint := func(section string) {
		fmt.Fprintf(out, "%s painted in %s\n", section, theme.Value())
	}

	root := tether.NewOwner()
	defer root.Dispose()

	return root.Run(func() error {
		theme.Set("dark")
		paint("header")

		if err := tether.NewOwner().Run(func() error {
			theme.Set("sepia")
			paint("sidebar")
			return nil
		}); err != nil {
			return err
		}

		// the sidebar's binding does not leak back up
		paint("footer")
		return nil
	})
}
