package config

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/refresh-arcade/internal/games/block"
	"github.com/vovakirdan/refresh-arcade/internal/header"
	"github.com/vovakirdan/refresh-arcade/internal/refresh"
)

// HeaderOptions converts the configuration into header options.
// A zero seed is replaced by the clock.
func (c RefreshConfig) HeaderOptions(seed int64) (header.Options, error) {
	theme, err := c.ParseTheme()
	if err != nil {
		return header.Options{}, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return header.Options{
		Theme: theme,
		Texts: header.Texts{
			Loading:  c.Texts.Loading,
			Finished: c.Texts.Finished,
			GameOver: c.Texts.GameOver,
		},
		Block: block.Config{
			Columns: c.Block.Columns,
			Speed:   c.Block.BallSpeed,
		},
		RNG: rand.New(rand.NewSource(seed)), //#nosec G404 -- lane choice, not security
	}, nil
}

// Timing converts the configuration into session timings.
func (c RefreshConfig) Timing() refresh.Timing {
	t := refresh.DefaultTiming()
	t.TickRate = c.TickRate
	t.MinDuration = c.Refresh.MinDuration
	t.CollapseDelay = c.Refresh.CollapseDelay
	t.CollapseDuration = c.Refresh.CollapseDuration
	return t
}

// NewSession builds a header running v and wraps it in a refresh session.
func (c RefreshConfig) NewSession(v header.Variant, seed int64, logger *log.Logger) (*refresh.Session, error) {
	opts, err := c.HeaderOptions(seed)
	if err != nil {
		return nil, err
	}
	h, err := header.New(v, c.Geometry(), opts)
	if err != nil {
		return nil, err
	}
	return refresh.NewSession(h, c.Timing(), logger), nil
}
