package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/refresh.yaml
var defaultRefreshYAML []byte

// DefaultRefreshConfig returns the default configuration.
func DefaultRefreshConfig() RefreshConfig {
	return RefreshConfig{
		Screen: ScreenConfig{
			Width:       1080,
			Height:      1920,
			HeaderRatio: 0.161,
		},
		TickRate: 60,
		Block: BlockConfig{
			Columns:   3,
			BallSpeed: 6,
		},
		Theme: ThemeConfig{
			Left:     "#000000",
			Middle:   "#000000",
			Right:    "#A5A5A5",
			Text:     "#C1C2C2",
			Boundary: "#606060",
		},
		Texts: TextsConfig{
			Loading:    "Play a game to relieve boredom",
			Finished:   "Loading completed",
			GameOver:   "game over",
			TopMask:    "Pull down to refresh",
			BottomMask: "Swipe up and down to control the game",
		},
		Refresh: RefreshTiming{
			MinDuration:      1500 * time.Millisecond,
			CollapseDelay:    500 * time.Millisecond,
			CollapseDuration: 300 * time.Millisecond,
			DemoDelay:        2 * time.Second,
			FeedItems:        20,
			BatchSize:        3,
		},
	}
}
