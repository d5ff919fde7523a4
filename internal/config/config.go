// Package config provides YAML-based configuration loading for the
// refresh header and its hosts.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/refresh-arcade/internal/core"
)

// RefreshConfig contains all configuration for the header games.
type RefreshConfig struct {
	Screen   ScreenConfig  `yaml:"screen"`
	TickRate int           `yaml:"tick_rate"`
	Block    BlockConfig   `yaml:"block"`
	Theme    ThemeConfig   `yaml:"theme"`
	Texts    TextsConfig   `yaml:"texts"`
	Refresh  RefreshTiming `yaml:"refresh"`
}

// ScreenConfig defines the virtual device screen.
type ScreenConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	HeaderRatio float64 `yaml:"header_ratio"`
}

// BlockConfig defines the breaker attributes.
type BlockConfig struct {
	Columns   int `yaml:"columns"`
	BallSpeed int `yaml:"ball_speed"`
}

// ThemeConfig defines header colors as hex strings.
type ThemeConfig struct {
	Left     string `yaml:"left"`
	Middle   string `yaml:"middle"`
	Right    string `yaml:"right"`
	Text     string `yaml:"text"`
	Boundary string `yaml:"boundary"`
}

// TextsConfig defines prompts and pull hints.
type TextsConfig struct {
	Loading    string `yaml:"loading"`
	Finished   string `yaml:"finished"`
	GameOver   string `yaml:"game_over"`
	TopMask    string `yaml:"top_mask"`
	BottomMask string `yaml:"bottom_mask"`
}

// RefreshTiming defines the pull-to-refresh timings and demo feed.
type RefreshTiming struct {
	MinDuration      time.Duration `yaml:"min_duration"`
	CollapseDelay    time.Duration `yaml:"collapse_delay"`
	CollapseDuration time.Duration `yaml:"collapse_duration"`
	DemoDelay        time.Duration `yaml:"demo_delay"`
	FeedItems        int           `yaml:"feed_items"`
	BatchSize        int           `yaml:"batch_size"`
}

// Geometry returns the header playfield derived from the screen.
func (c RefreshConfig) Geometry() core.Geometry {
	return core.Geometry{
		ScreenW: c.Screen.Width,
		ScreenH: c.Screen.Height,
		Width:   c.Screen.Width,
		Height:  c.Screen.Height * c.Screen.HeaderRatio,
	}
}

// ParseTheme converts the hex colors into a theme.
func (c RefreshConfig) ParseTheme() (core.Theme, error) {
	var theme core.Theme
	fields := []struct {
		name string
		hex  string
		dst  *core.Color
	}{
		{"left", c.Theme.Left, &theme.Left},
		{"middle", c.Theme.Middle, &theme.Middle},
		{"right", c.Theme.Right, &theme.Right},
		{"text", c.Theme.Text, &theme.Text},
		{"boundary", c.Theme.Boundary, &theme.Boundary},
	}
	for _, f := range fields {
		col, err := core.ParseHex(f.hex)
		if err != nil {
			return core.Theme{}, fmt.Errorf("theme.%s: %w", f.name, err)
		}
		*f.dst = col
	}
	return theme, nil
}

// Validate checks that the values can drive a header.
func (c RefreshConfig) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen: size must be positive, got %vx%v", c.Screen.Width, c.Screen.Height))
	}
	if c.Screen.HeaderRatio <= 0 || c.Screen.HeaderRatio > 1 {
		errs = append(errs, fmt.Errorf("screen.header_ratio: must be in (0, 1], got %v", c.Screen.HeaderRatio))
	}
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate: must be positive, got %d", c.TickRate))
	}
	if c.Block.Columns <= 0 {
		errs = append(errs, fmt.Errorf("block.columns: must be positive, got %d", c.Block.Columns))
	}
	if c.Block.BallSpeed <= 0 {
		errs = append(errs, fmt.Errorf("block.ball_speed: must be positive, got %d", c.Block.BallSpeed))
	}
	if _, err := c.ParseTheme(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
