package gui

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/refresh-arcade/internal/core"
)

// Debug font cell size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

// ImageCanvas draws playfield units onto an ebiten image.
type ImageCanvas struct {
	dst    *ebiten.Image
	scale  float64 // Pixels per unit
	unitsW float64
	unitsH float64
	glyphs *textCache
}

var _ core.Canvas = (*ImageCanvas)(nil)

// NewImageCanvas wraps dst, which holds a playfield of unitsW x unitsH at scale.
func NewImageCanvas(dst *ebiten.Image, scale, unitsW, unitsH float64) *ImageCanvas {
	return &ImageCanvas{dst: dst, scale: scale, unitsW: unitsW, unitsH: unitsH, glyphs: newTextCache()}
}

// Width implements core.Canvas.
func (c *ImageCanvas) Width() float64 { return c.unitsW }

// Height implements core.Canvas.
func (c *ImageCanvas) Height() float64 { return c.unitsH }

func (c *ImageCanvas) px(v float64) float32 {
	return float32(v * c.scale)
}

// FillRect implements core.Canvas.
func (c *ImageCanvas) FillRect(r core.Rect, col core.Color) {
	vector.DrawFilledRect(c.dst, c.px(r.Left), c.px(r.Top), c.px(r.Width()), c.px(r.Height()), rgba(col), false)
}

// FillCircle implements core.Canvas.
func (c *ImageCanvas) FillCircle(center core.Point, radius float64, col core.Color) {
	vector.DrawFilledCircle(c.dst, c.px(center.X), c.px(center.Y), c.px(radius), rgba(col), true)
}

// DrawLine implements core.Canvas.
func (c *ImageCanvas) DrawLine(from, to core.Point, col core.Color) {
	vector.StrokeLine(c.dst, c.px(from.X), c.px(from.Y), c.px(to.X), c.px(to.Y), 1, rgba(col), false)
}

// DrawText implements core.Canvas. The debug font has a fixed size, so
// size is ignored and pos is the baseline start.
func (c *ImageCanvas) DrawText(pos core.Point, text string, _ float64, col core.Color) {
	c.glyphs.draw(c.dst, text, float64(c.px(pos.X)), float64(c.px(pos.Y))-glyphH+4, col)
}

// MeasureText implements core.Canvas.
func (c *ImageCanvas) MeasureText(text string, _ float64) float64 {
	return textWidth(text) / c.scale
}

// textWidth is the debug font width of text in pixels.
func textWidth(text string) float64 {
	return float64(utf8.RuneCountInString(text) * glyphW)
}

func rgba(c core.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// textCache keeps white debug-font renderings of strings so they can be tinted.
type textCache struct {
	images map[string]*ebiten.Image
}

func newTextCache() *textCache {
	return &textCache{images: make(map[string]*ebiten.Image)}
}

func (t *textCache) get(text string) *ebiten.Image {
	if text == "" {
		return nil
	}
	if img, ok := t.images[text]; ok {
		return img
	}
	img := ebiten.NewImage(int(textWidth(text)), glyphH)
	ebitenutil.DebugPrint(img, text)
	t.images[text] = img
	return img
}

// draw renders text at the pixel position tinted with col.
func (t *textCache) draw(dst *ebiten.Image, text string, x, y float64, col core.Color) {
	img := t.get(text)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(rgba(col))
	dst.DrawImage(img, op)
}
