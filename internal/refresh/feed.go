package refresh

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Feed is the list content shown under the header. It is updated by the
// refresh callback and read by the host, so access is locked.
type Feed struct {
	mu      sync.Mutex
	items   []string
	batches int
}

// NewFeed creates a feed with n placeholder items.
func NewFeed(n int) *Feed {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("List item %d", i+1)
	}
	return &Feed{items: items}
}

// Items returns a copy of the current items, newest first.
func (f *Feed) Items() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.items))
	copy(out, f.items)
	return out
}

// Len returns the number of items.
func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

// Batches returns how many times the feed was refreshed.
func (f *Feed) Batches() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.batches
}

// Prepend adds n fresh items to the top.
func (f *Feed) Prepend(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.batches++
	fresh := make([]string, 0, n+len(f.items))
	for i := range n {
		fresh = append(fresh, fmt.Sprintf("Refresh %d, item %d", f.batches, i+1))
	}
	f.items = append(fresh, f.items...)
}

// RefreshFunc returns a callback that simulates a slow load taking delay
// and then prepends n items.
func (f *Feed) RefreshFunc(delay time.Duration, n int) Func {
	return func(ctx context.Context) error {
		if err := Sleep(ctx, delay); err != nil {
			return fmt.Errorf("refresh: %w", err)
		}
		f.Prepend(n)
		return nil
	}
}
