package gui

import (
	"testing"

	"github.com/vovakirdan/refresh-arcade/internal/config"
	"github.com/vovakirdan/refresh-arcade/internal/core"
)

func TestWindowSize(t *testing.T) {
	cfg := config.DefaultRefreshConfig()

	tests := []struct {
		scale float64
		w, h  int
	}{
		{.5, 540, 960},
		{.25, 270, 480},
		{1, 1080, 1920},
	}
	for _, tt := range tests {
		w, h := windowSize(cfg, tt.scale)
		if w != tt.w || h != tt.h {
			t.Errorf("windowSize(%v) = %dx%d, expected %dx%d", tt.scale, w, h, tt.w, tt.h)
		}
	}
}

func TestImageCanvasUnits(t *testing.T) {
	c := NewImageCanvas(nil, .5, 1080, 309)

	if c.Width() != 1080 || c.Height() != 309 {
		t.Errorf("size = %vx%v, expected 1080x309", c.Width(), c.Height())
	}
	if got := c.px(100); got != 50 {
		t.Errorf("px(100) = %v, expected 50", got)
	}
	// 4 glyphs of 6 pixels at half scale
	if got := c.MeasureText("game", 50); got != 48 {
		t.Errorf("MeasureText() = %v, expected 48", got)
	}
}

func TestRGBA(t *testing.T) {
	got := rgba(core.ColorRacket)
	if got.R != 0xA5 || got.G != 0xA5 || got.B != 0xA5 || got.A != 0xff {
		t.Errorf("rgba() = %v, expected opaque #A5A5A5", got)
	}
}

func TestNewGameDefaults(t *testing.T) {
	g, err := NewGame(Options{Config: config.DefaultRefreshConfig(), Seed: 1})
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	defer g.cancel()

	if g.scale != DefaultScale {
		t.Errorf("scale = %v, expected %v", g.scale, DefaultScale)
	}
	if w, h := g.Layout(0, 0); w != 540 || h != 960 {
		t.Errorf("Layout() = %dx%d, expected 540x960", w, h)
	}
	if g.feed.Len() != 20 {
		t.Errorf("feed Len() = %d, expected 20", g.feed.Len())
	}
}

func TestNewGameInvalidTheme(t *testing.T) {
	cfg := config.DefaultRefreshConfig()
	cfg.Theme.Left = "nope"
	if _, err := NewGame(Options{Config: cfg}); err == nil {
		t.Error("NewGame() with a bad theme should fail")
	}
}
