package refresh

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/refresh-arcade/internal/core"
	"github.com/vovakirdan/refresh-arcade/internal/header"
	"github.com/vovakirdan/refresh-arcade/internal/lifecycle"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	opts := header.DefaultOptions()
	opts.RNG = zeroRNG{}
	h, err := header.New(header.VariantBlock, core.HeaderGeometry(1080, 1920), opts)
	if err != nil {
		t.Fatalf("header.New() error: %v", err)
	}
	return NewSession(h, DefaultTiming(), nil)
}

type zeroRNG struct{}

func (zeroRNG) Intn(int) int { return 0 }

func tick(s *Session, n int) {
	for range n {
		s.Tick()
	}
}

// pullToRefresh drags far enough to start a refresh.
func pullToRefresh(t *testing.T, s *Session) {
	t.Helper()
	s.Press(100)
	s.Drag(600)
	if !s.Ready() {
		t.Fatalf("Ready() = false after pulling %v units", 500*StickRatio)
	}
	if !s.Release() {
		t.Fatal("Release() = false, expected the refresh to start")
	}
}

func TestTicks(t *testing.T) {
	timing := DefaultTiming()

	tests := []struct {
		d        time.Duration
		expected int
	}{
		{500 * time.Millisecond, 30},
		{300 * time.Millisecond, 18},
		{10 * time.Millisecond, 1},
		{0, 0},
		{-time.Second, 0},
	}

	for _, tc := range tests {
		if got := timing.Ticks(tc.d); got != tc.expected {
			t.Errorf("Ticks(%v) = %d, expected %d", tc.d, got, tc.expected)
		}
	}
}

func TestShortPullRollsBack(t *testing.T) {
	s := newSession(t)

	s.Press(100)
	s.Drag(200)
	if s.Phase() != PhasePulling || !s.MaskVisible() {
		t.Fatalf("Phase() = %s, expected pulling with the mask shown", s.Phase())
	}
	if s.Reveal() != 65 {
		t.Errorf("Reveal() = %v, expected 65", s.Reveal())
	}

	if s.Release() {
		t.Error("Release() = true for a short pull")
	}
	if s.Phase() != PhaseCollapsing {
		t.Fatalf("Phase() = %s, expected collapsing", s.Phase())
	}

	tick(s, 18)
	if s.Phase() != PhaseHidden || s.Reveal() != 0 {
		t.Errorf("after collapse: phase %s reveal %v", s.Phase(), s.Reveal())
	}
	if s.Header().Status() != lifecycle.StatusPreparing {
		t.Errorf("header Status() = %s, expected preparing", s.Header().Status())
	}
	if s.Refreshes() != 0 {
		t.Errorf("Refreshes() = %d, expected 0", s.Refreshes())
	}
}

func TestUpwardDragStaysHidden(t *testing.T) {
	s := newSession(t)
	s.Press(300)
	s.Drag(100)

	if s.Phase() != PhaseHidden || s.Reveal() != 0 {
		t.Errorf("phase %s reveal %v, expected hidden", s.Phase(), s.Reveal())
	}
}

func TestRevealCapsAtHeaderHeight(t *testing.T) {
	s := newSession(t)
	s.Press(0)
	s.Drag(2000)

	if s.RevealFraction() != 1 {
		t.Errorf("RevealFraction() = %v, expected 1", s.RevealFraction())
	}
}

func TestFullCycle(t *testing.T) {
	s := newSession(t)
	pullToRefresh(t, s)

	if s.Phase() != PhaseRefreshing {
		t.Fatalf("Phase() = %s, expected refreshing", s.Phase())
	}
	if s.Header().Status() != lifecycle.StatusPlaying {
		t.Fatalf("header Status() = %s, expected playing", s.Header().Status())
	}
	if s.MaskVisible() {
		t.Error("mask should be hidden while the game runs")
	}

	s.Complete(nil)
	if s.Header().Status() != lifecycle.StatusFinished {
		t.Errorf("header Status() = %s, expected finished", s.Header().Status())
	}

	// Finished prompt stays up for the collapse delay
	tick(s, 30)
	if s.RevealFraction() != 1 {
		t.Errorf("RevealFraction() = %v during the delay, expected 1", s.RevealFraction())
	}

	tick(s, 18)
	if s.Phase() != PhaseHidden {
		t.Errorf("Phase() = %s, expected hidden", s.Phase())
	}
	if s.Header().Status() != lifecycle.StatusPreparing {
		t.Errorf("header Status() = %s, expected preparing", s.Header().Status())
	}
	if s.Animating() {
		t.Error("Animating() = true after the cycle ended")
	}
}

func TestCompleteIsIdempotent(t *testing.T) {
	s := newSession(t)
	s.Complete(nil)
	if s.Header().Status() != lifecycle.StatusPreparing {
		t.Error("Complete() outside a refresh should be ignored")
	}

	pullToRefresh(t, s)
	s.Complete(nil)
	s.Complete(errors.New("late"))
	tick(s, 48)
	if s.Phase() != PhaseHidden {
		t.Errorf("Phase() = %s, expected hidden", s.Phase())
	}
}

func TestDragMovesControllerWhileRefreshing(t *testing.T) {
	s := newSession(t)
	pullToRefresh(t, s)

	s.Press(0)
	s.Drag(100)
	if got := s.Header().Controller().Position(); got != 65 {
		t.Errorf("controller position = %v, expected 65", got)
	}

	s.Release()
	if !s.Header().Controller().Returning() {
		t.Error("releasing during a refresh should return the controller")
	}
	if s.Phase() != PhaseRefreshing {
		t.Errorf("Phase() = %s, expected refreshing", s.Phase())
	}
}

func TestCompleteWhileDraggingWaitsForRelease(t *testing.T) {
	s := newSession(t)
	pullToRefresh(t, s)

	s.Press(0)
	s.Drag(50)
	s.Complete(nil)

	if s.Phase() != PhaseRefreshing {
		t.Fatalf("Phase() = %s, expected the header to stay while dragging", s.Phase())
	}

	s.Release()
	if s.Phase() != PhaseCollapsing {
		t.Fatalf("Phase() = %s, expected collapsing", s.Phase())
	}

	// No delay after a drag
	tick(s, 18)
	if s.Phase() != PhaseHidden {
		t.Errorf("Phase() = %s, expected hidden", s.Phase())
	}
}

func TestPressIgnoredWhileCollapsing(t *testing.T) {
	s := newSession(t)
	s.Press(0)
	s.Drag(100)
	s.Release()

	s.Press(0)
	s.Drag(900)
	if s.Phase() != PhaseCollapsing {
		t.Errorf("Phase() = %s, expected collapsing", s.Phase())
	}
}

func TestRunPadsToMinimum(t *testing.T) {
	start := time.Now()
	err := Run(context.Background(), func(context.Context) error { return nil }, 30*time.Millisecond)

	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("Run() took %v, expected at least 30ms", elapsed)
	}
}

func TestRunCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, nil, time.Minute)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, expected context.Canceled", err)
	}
}

func TestRunReturnsCallbackError(t *testing.T) {
	boom := errors.New("boom")
	err := Run(context.Background(), func(context.Context) error { return boom }, 0)
	if !errors.Is(err, boom) {
		t.Errorf("Run() = %v, expected %v", err, boom)
	}
}

func TestFeed(t *testing.T) {
	f := NewFeed(3)
	if f.Len() != 3 || f.Items()[0] != "List item 1" {
		t.Fatalf("NewFeed(3) items = %v", f.Items())
	}

	if err := f.RefreshFunc(0, 2)(context.Background()); err != nil {
		t.Fatalf("RefreshFunc() error: %v", err)
	}

	items := f.Items()
	if len(items) != 5 || items[0] != "Refresh 1, item 1" || items[2] != "List item 1" {
		t.Errorf("Items() = %v, expected two fresh items on top", items)
	}
	if f.Batches() != 1 {
		t.Errorf("Batches() = %d, expected 1", f.Batches())
	}
}

func TestFeedRefreshCancelled(t *testing.T) {
	f := NewFeed(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := f.RefreshFunc(time.Minute, 2)(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("RefreshFunc() = %v, expected context.Canceled", err)
	}
	if f.Len() != 1 {
		t.Errorf("Len() = %d, expected the feed unchanged", f.Len())
	}
}
