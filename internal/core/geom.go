// Package core provides fundamental types and utilities shared by the header
// games and their hosts. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Point is a position in playfield units.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned rectangle in playfield units, stored by its edges.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// NewRect creates a rectangle from its top-left corner and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Contains returns true if the point (x, y) is inside this rectangle.
// Left and top edges are inclusive, right and bottom edges exclusive.
func (r Rect) Contains(x, y float64) bool {
	if r.Empty() {
		return false
	}
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Offset returns the rectangle translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
// When max < min the result is min.
func ClampF(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		return min
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Geometry describes where a header game lives. ScreenW and ScreenH are the
// device screen the proportions are taken from; Width and Height are the
// header playfield. All values are in playfield units and fixed for the
// lifetime of an engine.
type Geometry struct {
	ScreenW, ScreenH float64
	Width, Height    float64
}

// HeaderRatio is the header height as a fraction of the screen height.
const HeaderRatio = .161

// HeaderGeometry derives the header playfield from a screen size.
func HeaderGeometry(screenW, screenH float64) Geometry {
	return Geometry{
		ScreenW: screenW,
		ScreenH: screenH,
		Width:   screenW,
		Height:  screenH * HeaderRatio,
	}
}
