package showcase

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/mlegeay/tether"
)

// An effect that owns an external resource: the ticker is created on each
// run and stopped by OnCleanup, so rewriting the interval swaps it out
// without leaking the old one.
func runTicker(ctx context.Context, out io.Writer) error {
	interval := tether.NewStore(20 * time.Millisecond)

	var ticks atomic.Int64

	o := tether.NewOwner()
	err := o.Run(func() error {
		tether.NewEffect(func() {
			d := interval.Read()
			ticker := time.NewTicker(d)
			done := make(chan struct{})

			go func() {
				for {
					select {
					case <-ticker.C:
						ticks.Add(1)
					case <-done:
						return
					}
				}
			}()

			tether.OnCleanup(func() {
				ticker.Stop()
				close(done)
				fmt.Fprintf(out, "stopped %v ticker\n", d)
			})
		})

		return nil
	})
	if err != nil {
		return err
	}

	wait := func(d time.Duration) {
		select {
		case <-ctx.Done():
		case <-time.After(d):
		}
	}

	wait(90 * time.Millisecond)
	interval.Write(5 * time.Millisecond)
	wait(40 * time.Millisecond)

	o.Dispose()
	fmt.Fprintf(out, "accumulated %d ticks\n", ticks.Load())
	return ctx.Err()
}
