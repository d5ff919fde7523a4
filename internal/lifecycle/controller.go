package lifecycle

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/refresh-arcade/internal/core"
)

// RestPosition is where the controller sits after a reset: just below the
// top boundary line.
const RestPosition = 1.0

// Controller maps the host's drag distance to the player paddle/turret
// position along the vertical axis of the playfield.
type Controller struct {
	position float64
	size     float64 // Paddle extent along the drag axis
	field    float64 // Playfield height
	ret      *gween.Tween
}

// NewController creates a controller for a paddle of the given size inside
// a playfield of the given height.
func NewController(size, fieldHeight float64) *Controller {
	return &Controller{
		position: RestPosition,
		size:     size,
		field:    fieldHeight,
	}
}

// Position returns the top edge of the paddle.
func (c *Controller) Position() float64 {
	return c.position
}

// Max returns the largest valid position.
func (c *Controller) Max() float64 {
	return c.field - c.size
}

// SetPosition clamps distance to [0, field - size] and stores it.
// A running return animation is cancelled.
func (c *Controller) SetPosition(distance float64) {
	c.ret = nil
	c.position = core.ClampF(distance, 0, c.Max())
}

// Reset puts the controller back at rest immediately.
func (c *Controller) Reset() {
	c.ret = nil
	c.position = RestPosition
}

// ReturnToStart animates the controller back to the rest position over the
// given number of frame ticks with an accelerate/decelerate curve.
func (c *Controller) ReturnToStart(ticks int) {
	if ticks <= 0 {
		c.Reset()
		return
	}
	c.ret = gween.New(float32(c.position), RestPosition, float32(ticks), ease.InOutQuad)
}

// Returning reports whether a return animation is in progress.
func (c *Controller) Returning() bool {
	return c.ret != nil
}

// Tick advances a running return animation by one frame.
func (c *Controller) Tick() {
	if c.ret == nil {
		return
	}
	val, done := c.ret.Update(1)
	c.position = float64(val)
	if done {
		c.position = RestPosition
		c.ret = nil
	}
}
