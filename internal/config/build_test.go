package config

import (
	"testing"
	"time"

	"github.com/vovakirdan/refresh-arcade/internal/core"
	"github.com/vovakirdan/refresh-arcade/internal/header"
	"github.com/vovakirdan/refresh-arcade/internal/lifecycle"
)

func TestHeaderOptions(t *testing.T) {
	cfg := DefaultRefreshConfig()
	cfg.Block.Columns = 5
	cfg.Texts.GameOver = "bust"

	opts, err := cfg.HeaderOptions(7)
	if err != nil {
		t.Fatalf("HeaderOptions() error = %v", err)
	}
	if opts.Theme != core.DefaultTheme() {
		t.Errorf("Theme = %+v, expected %+v", opts.Theme, core.DefaultTheme())
	}
	if opts.Block.Columns != 5 || opts.Block.Speed != 6 {
		t.Errorf("Block = %+v, expected 5 columns at speed 6", opts.Block)
	}
	if opts.Texts.GameOver != "bust" {
		t.Errorf("Texts.GameOver = %q, expected %q", opts.Texts.GameOver, "bust")
	}
	if opts.RNG == nil {
		t.Fatal("RNG should be set")
	}
}

func TestHeaderOptionsSeedIsDeterministic(t *testing.T) {
	cfg := DefaultRefreshConfig()
	a, _ := cfg.HeaderOptions(42)
	b, _ := cfg.HeaderOptions(42)

	for i := 0; i < 20; i++ {
		if x, y := a.RNG.Intn(3), b.RNG.Intn(3); x != y {
			t.Fatalf("draw %d: %d != %d with the same seed", i, x, y)
		}
	}
}

func TestHeaderOptionsBadTheme(t *testing.T) {
	cfg := DefaultRefreshConfig()
	cfg.Theme.Right = "#12"
	if _, err := cfg.HeaderOptions(1); err == nil {
		t.Error("HeaderOptions() with a bad color should fail")
	}
}

func TestTiming(t *testing.T) {
	cfg := DefaultRefreshConfig()
	cfg.TickRate = 30
	cfg.Refresh.CollapseDelay = time.Second

	timing := cfg.Timing()
	if timing.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", timing.TickRate)
	}
	if timing.MinDuration != 1500*time.Millisecond {
		t.Errorf("MinDuration = %v, expected 1.5s", timing.MinDuration)
	}
	if timing.ReturnPerUnit != 1100*time.Microsecond {
		t.Errorf("ReturnPerUnit = %v, expected 1.1ms", timing.ReturnPerUnit)
	}
	if got := timing.Ticks(cfg.Refresh.CollapseDelay); got != 30 {
		t.Errorf("Ticks(CollapseDelay) = %d, expected 30", got)
	}
}

func TestNewSession(t *testing.T) {
	cfg := DefaultRefreshConfig()

	s, err := cfg.NewSession(header.VariantBlock, 1, nil)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	if s.Header().Variant() != header.VariantBlock {
		t.Errorf("Variant() = %v, expected block", s.Header().Variant())
	}
	if s.Header().Status() != lifecycle.StatusPreparing {
		t.Errorf("Status() = %v, expected preparing", s.Header().Status())
	}
	if s.Header().Geometry() != cfg.Geometry() {
		t.Errorf("Geometry() = %+v, expected %+v", s.Header().Geometry(), cfg.Geometry())
	}
}
