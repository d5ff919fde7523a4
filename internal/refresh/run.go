package refresh

import (
	"context"
	"time"
)

// Func is a refresh callback. It runs off the frame loop and should return
// when ctx is cancelled.
type Func func(ctx context.Context) error

// Run calls fn and pads the call to at least minDuration so the game gets
// some time on screen. Cancelling ctx cuts the padding short.
func Run(ctx context.Context, fn Func, minDuration time.Duration) error {
	start := time.Now()

	var err error
	if fn != nil {
		err = fn(ctx)
	}

	rest := minDuration - time.Since(start)
	if rest <= 0 {
		return err
	}

	timer := time.NewTimer(rest)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		if err == nil {
			err = ctx.Err()
		}
	case <-timer.C:
	}
	return err
}

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
