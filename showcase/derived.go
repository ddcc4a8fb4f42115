package showcase

import (
	"context"
	"fmt"
	"io"

	"github.com/mlegeay/tether"
)

// Memos cache derived values and only propagate when the result actually
// changes: rounding keeps the label stable across small writes.
func runDerived(ctx context.Context, out io.Writer) error {
	celsius := tether.NewStore(20.0)

	fahrenheit := tether.NewMemo(func() float64 {
		return celsius.Read()*9/5 + 32
	})
	label := tether.NewMemo(func() string {
		return fmt.Sprintf("%.0f°C / %.0f°F", celsius.Read(), fahrenheit.Read())
	})

	tether.NewEffect(func() {
		fmt.Fprintln(out, label.Read())
	})

	celsius.Write(20.2) // label rounds to the same string, no reprint
	celsius.Write(25.0)
	celsius.Write(-5.0)
	return nil
}
