package core

// Canvas is the drawing surface handed to the header on every frame.
// Coordinates are playfield units; the host decides how they map to
// terminal cells or window pixels. Implementations hold no game logic.
type Canvas interface {
	// Width and Height return the playfield size in units.
	Width() float64
	Height() float64

	FillRect(r Rect, c Color)
	FillCircle(center Point, radius float64, c Color)
	DrawLine(from, to Point, c Color)

	// DrawText draws text with its baseline-left corner at pos.
	// Size is a hint; hosts with fixed-size glyphs ignore it.
	DrawText(pos Point, text string, size float64, c Color)

	// MeasureText returns the horizontal extent of text in units.
	MeasureText(text string, size float64) float64
}
