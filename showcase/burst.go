package showcase

import (
	"context"
	"fmt"
	"io"

	"github.com/mlegeay/tether"
)

// Without a batch, three writes mean three reruns. Inside one, the effect
// sees only the settled values.
func runBurst(ctx context.Context, out io.Writer) error {
	x := tether.NewStore(0)
	y := tether.NewStore(0)

	tether.NewEffect(func() {
		fmt.Fprintf(out, "position: (%d, %d)\n", x.Read(), y.Read())
	})

	tether.NewBatch(func() {
		x.Write(3)
		y.Write(4)
		x.Write(5)
	})

	return nil
}
