// Package loop re-invokes a frame function at a fixed rate.
package loop

import (
	"context"
	"log"
	"time"

	"github.com/iburimskiy/absorb/internal/config"
)

// Run calls frame every 1/fps seconds until frame returns false or ctx ends.
// An overrunning frame is followed immediately by the next one; lost time is
// never made up.
func Run(ctx context.Context, fps int, frame func() bool) error {
	interval := time.Second / time.Duration(fps)
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		before := time.Now()
		if !frame() {
			return nil
		}
		timer.Reset(nextDelay(interval, time.Since(before)))
	}
}

// nextDelay is the sleep before the next frame given how long this one took.
func nextDelay(interval, spent time.Duration) time.Duration {
	sleep := interval - spent
	if sleep < config.SlowFrameWarning {
		log.Printf("stayed up all night: frame took %v of %v", spent, interval)
	}
	if sleep < 0 {
		return 0
	}
	return sleep
}
