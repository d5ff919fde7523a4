package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 24-bit RGB color used by the canvas.
// Hosts convert it to terminal truecolor or image colors.
type Color struct {
	R, G, B uint8
}

// RGB builds a color from its channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Predefined colors for header elements.
var (
	ColorBlack    = RGB(0, 0, 0)
	ColorWhite    = RGB(255, 255, 255)
	ColorBoundary = RGB(0x60, 0x60, 0x60)
	ColorPrompt   = RGB(0xC1, 0xC2, 0xC2)
	ColorRacket   = RGB(0xA5, 0xA5, 0xA5)
)

// ParseHex parses "#RRGGBB" or "RRGGBB".
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("core: invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil //#nosec G115 -- masked to 8 bits by the conversion
}

// Hex returns the color as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Ramp lightens the color towards white by step: each channel becomes
// 255 - (255 - c) / (step + 1). Step 0 returns the color unchanged.
func (c Color) Ramp(step int) Color {
	if step < 0 {
		step = 0
	}
	lighten := func(v uint8) uint8 {
		return uint8(255 - (255-int(v))/(step+1)) //#nosec G115 -- result stays in [v, 255]
	}
	return RGB(lighten(c.R), lighten(c.G), lighten(c.B))
}

// Theme groups the colors used to draw a header game.
type Theme struct {
	Left     Color // Enemy tanks, blocks
	Middle   Color // Bullets, ball
	Right    Color // Player tank, racket
	Text     Color // Status prompt
	Boundary Color // Top and bottom lines
}

// DefaultTheme returns the stock header palette.
func DefaultTheme() Theme {
	return Theme{
		Left:     ColorBlack,
		Middle:   ColorBlack,
		Right:    ColorRacket,
		Text:     ColorPrompt,
		Boundary: ColorBoundary,
	}
}
