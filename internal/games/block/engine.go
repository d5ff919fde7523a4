// Package block implements the ball-and-paddle breaker header game.
// A grid of colored blocks sits on the left, the racket on the right.
// The ball bounces between them; clearing every block and returning the
// ball to the racket wins, letting it past the racket loses.
package block

import (
	"math"

	"github.com/vovakirdan/refresh-arcade/internal/core"
)

// Layout ratios, relative to the device screen.
const (
	CellHeightRatio = .03125
	CellWidthRatio  = .01806
	GridLeftRatio   = .08
	RacketLeftRatio = .8
	RacketScale     = 1.6 // Racket length in cell heights
)

// Ball constants.
const (
	Radius       = 8.0
	DefaultSpeed = 6
	DefaultAngle = 30
	TopAngle     = 180 - DefaultAngle // After touching the top boundary
	BottomAngle  = 180 + DefaultAngle // After touching the bottom boundary
	DividerSize  = 1.0
)

// DefaultColumns is the number of block columns when none is configured.
const DefaultColumns = 3

// Config holds the tunable attributes of the breaker.
type Config struct {
	Columns int // Block columns; rows are fixed
	Speed   int // Ball units per tick
}

// DefaultConfig returns the stock breaker attributes.
func DefaultConfig() Config {
	return Config{Columns: DefaultColumns, Speed: DefaultSpeed}
}

// Ball is the single ball of a game.
type Ball struct {
	X, Y       float64
	MovingLeft bool
	Angle      int // Degrees
}

// Engine is the breaker simulation.
type Engine struct {
	width, height float64
	cellW, cellH  float64
	gridLeft      float64
	racketLeft    float64
	racketSize    float64
	speed         float64

	ball Ball
	grid *Grid
	tick uint64
}

// New creates a breaker for the playfield described by g.
func New(g core.Geometry, cfg Config) *Engine {
	if cfg.Columns <= 0 {
		cfg.Columns = DefaultColumns
	}
	if cfg.Speed <= 0 {
		cfg.Speed = DefaultSpeed
	}

	cellH := g.ScreenH * CellHeightRatio
	e := &Engine{
		width:      g.Width,
		height:     g.Height,
		cellW:      g.ScreenW * CellWidthRatio,
		cellH:      cellH,
		gridLeft:   g.ScreenW * GridLeftRatio,
		racketLeft: g.ScreenW * RacketLeftRatio,
		racketSize: float64(int(cellH * RacketScale)),
		speed:      float64(cfg.Speed),
		grid:       NewGrid(cfg.Columns),
	}
	e.Reset()
	return e
}

// Reset restores the engine to its freshly constructed state.
func (e *Engine) Reset() {
	e.ball = Ball{
		X:          e.racketLeft - 2*Radius,
		Y:          float64(int(e.height * .5)),
		MovingLeft: true,
		Angle:      DefaultAngle,
	}
	e.grid.Reset()
	e.tick = 0
}

// ControllerSize returns the racket length along the drag axis.
func (e *Engine) ControllerSize() float64 {
	return e.racketSize
}

// Ball returns a copy of the ball.
func (e *Engine) Ball() Ball {
	return e.ball
}

// Grid returns the block grid.
func (e *Engine) Grid() *Grid {
	return e.grid
}

// gridRight is the right edge of the last block column.
func (e *Engine) gridRight() float64 {
	cols := float64(e.grid.Columns())
	return e.gridLeft + cols*e.cellW + (cols-1)*DividerSize
}

// Step advances the ball by one tick with the racket at pos.
func (e *Engine) Step(pos float64) core.StepResult {
	e.tick++
	b := &e.ball
	var res core.StepResult

	// Inside the block area: bounce off a newly cleared block
	if b.X <= e.gridRight()+Radius && e.HitBlock(b.X, b.Y) {
		b.MovingLeft = false
	}

	// Through the block area: never come back from behind
	if b.X <= e.gridLeft+Radius {
		b.MovingLeft = false
	}

	if b.X+Radius >= e.racketLeft && b.X-Radius < e.racketLeft+e.cellW {
		if HitRacket(b.Y, pos, e.racketSize) {
			if e.grid.Full() {
				return core.End(core.EndCleared)
			}
			b.MovingLeft = true
		}
	} else if b.X > e.width {
		res = core.End(core.EndBallLost)
	}

	if b.Y <= Radius+DividerSize {
		b.Angle = TopAngle
	} else if b.Y >= e.height-Radius-DividerSize {
		b.Angle = BottomAngle
	}

	if b.MovingLeft {
		b.X -= e.speed
	} else {
		b.X += e.speed
	}
	b.Y -= math.Tan(float64(b.Angle)*math.Pi/180) * e.speed

	return res
}

// CellAt maps a ball position to the grid cell it is about to touch.
// Indices are clamped into the grid.
func (e *Engine) CellAt(x, y float64) Cell {
	col := int((x - e.gridLeft - Radius - e.speed) / e.cellW)
	row := int(y / e.cellH)
	return Cell{
		Column: core.Clamp(col, 0, e.grid.Columns()-1),
		Row:    core.Clamp(row, 0, Rows-1),
	}
}

// HitBlock clears the cell under (x, y). Returns true only when this call
// cleared it.
func (e *Engine) HitBlock(x, y float64) bool {
	return e.grid.Clear(e.CellAt(x, y))
}

// HitRacket reports whether y falls on a racket whose top is at pos.
func HitRacket(y, pos, size float64) bool {
	d := y - pos
	return d >= 0 && d <= size
}

// blockRect returns the drawing rectangle of a cell.
func (e *Engine) blockRect(c Cell) core.Rect {
	left := e.gridLeft + float64(c.Column)*(e.cellW+DividerSize)
	top := DividerSize + float64(c.Row)*(e.cellH+DividerSize)
	return core.Rect{Left: left, Top: top, Right: left + e.cellW, Bottom: top + e.cellH}
}

// Render draws the remaining blocks, the racket and, while simulating,
// the ball.
func (e *Engine) Render(dst core.Canvas, simulating bool, pos float64, theme core.Theme) {
	for row := range Rows {
		for col := range e.grid.Columns() {
			c := Cell{Column: col, Row: row}
			if e.grid.IsCleared(c) {
				continue
			}
			dst.FillRect(e.blockRect(c), theme.Left.Ramp(col))
		}
	}

	dst.FillRect(core.Rect{
		Left:   e.racketLeft,
		Top:    pos,
		Right:  e.racketLeft + e.cellW,
		Bottom: pos + e.racketSize,
	}, theme.Right)

	if simulating {
		dst.FillCircle(core.Pt(e.ball.X, e.ball.Y), Radius, theme.Middle)
	}
}
