package core

import "math"

// Glyphs used when rasterizing canvas calls onto terminal cells.
const (
	GlyphFill   = '█'
	GlyphCircle = '●'
	GlyphHLine  = '─'
	GlyphVLine  = '│'
	GlyphDot    = '·'
)

// ScreenCanvas adapts a region of a Screen to the Canvas interface.
// Playfield units are scaled independently on each axis so the whole
// playfield fits into cols x rows cells starting at (originX, originY).
type ScreenCanvas struct {
	screen           *Screen
	originX, originY int
	cols, rows       int
	unitsW, unitsH   float64
	sx, sy           float64 // cells per unit
}

// NewScreenCanvas maps a playfield of unitsW x unitsH onto the given cell region.
func NewScreenCanvas(s *Screen, originX, originY, cols, rows int, unitsW, unitsH float64) *ScreenCanvas {
	c := &ScreenCanvas{
		screen:  s,
		originX: originX,
		originY: originY,
		cols:    max(cols, 0),
		rows:    max(rows, 0),
		unitsW:  unitsW,
		unitsH:  unitsH,
	}
	if unitsW > 0 {
		c.sx = float64(c.cols) / unitsW
	}
	if unitsH > 0 {
		c.sy = float64(c.rows) / unitsH
	}
	return c
}

// Width returns the playfield width in units.
func (c *ScreenCanvas) Width() float64 { return c.unitsW }

// Height returns the playfield height in units.
func (c *ScreenCanvas) Height() float64 { return c.unitsH }

// set writes a colored rune if (x, y) lies inside the region.
func (c *ScreenCanvas) set(x, y int, r rune, col Color) {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows {
		return
	}
	c.screen.SetColored(c.originX+x, c.originY+y, r, col)
}

// span converts a unit interval into a half-open cell interval.
// Non-empty intervals always cover at least one cell.
func span(lo, hi, scale float64) (int, int) {
	a := int(math.Floor(lo * scale))
	b := int(math.Ceil(hi * scale))
	if b <= a {
		b = a + 1
	}
	return a, b
}

// FillRect fills every cell the rectangle touches.
func (c *ScreenCanvas) FillRect(r Rect, col Color) {
	if r.Empty() {
		return
	}
	x0, x1 := span(r.Left, r.Right, c.sx)
	y0, y1 := span(r.Top, r.Bottom, c.sy)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.set(x, y, GlyphFill, col)
		}
	}
}

// FillCircle marks the cell under the center; circles are far smaller than a cell.
func (c *ScreenCanvas) FillCircle(center Point, _ float64, col Color) {
	x := int(math.Floor(center.X * c.sx))
	y := int(math.Floor(center.Y * c.sy))
	c.set(x, y, GlyphCircle, col)
}

// DrawLine rasterizes a line. Rows are clamped into the region so lines on
// the bottom edge of the playfield stay visible.
func (c *ScreenCanvas) DrawLine(from, to Point, col Color) {
	x0 := int(math.Floor(from.X * c.sx))
	x1 := int(math.Floor(to.X * c.sx))
	y0 := Clamp(int(math.Floor(from.Y*c.sy)), 0, c.rows-1)
	y1 := Clamp(int(math.Floor(to.Y*c.sy)), 0, c.rows-1)

	glyph := GlyphDot
	switch {
	case y0 == y1:
		glyph = GlyphHLine
	case x0 == x1:
		glyph = GlyphVLine
	}

	steps := max(Abs(x1-x0), Abs(y1-y0))
	if steps == 0 {
		c.set(x0, y0, glyph, col)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + (x1-x0)*i/steps
		y := y0 + (y1-y0)*i/steps
		c.set(x, y, glyph, col)
	}
}

// DrawText places text on the row containing pos.Y, clipped to the region.
func (c *ScreenCanvas) DrawText(pos Point, text string, _ float64, col Color) {
	x := int(math.Round(pos.X * c.sx))
	y := Clamp(int(math.Floor(pos.Y*c.sy)), 0, c.rows-1)
	i := 0
	for _, r := range text {
		c.set(x+i, y, r, col)
		i++
	}
}

// MeasureText returns the width of text in units: one cell per rune.
func (c *ScreenCanvas) MeasureText(text string, _ float64) float64 {
	if c.sx == 0 {
		return 0
	}
	return float64(len([]rune(text))) / c.sx
}
