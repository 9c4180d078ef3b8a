// Package latency simulates slow collaborators on an injectable clock.
package latency

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
)

// Simulate blocks for d on clk, or until ctx is done. Non-positive durations
// return immediately.
func Simulate(ctx context.Context, clk clock.Clock, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := clk.Timer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
