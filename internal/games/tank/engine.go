// Package tank implements the lane shooter header game.
// Enemy tanks roll in from the left along three lanes; the player tank sits
// at the right edge, moves vertically with the controller and fires
// automatically. Letting eight enemies through, or being rammed, ends the game.
package tank

import (
	"math"

	"github.com/vovakirdan/refresh-arcade/internal/core"
)

// Geometry constants.
const (
	Lanes        = 3       // Number of enemy tracks
	DividerSize  = 1       // Gap between lanes and at the edges
	BarrelRatio  = 1.0 / 3 // Barrel size relative to the tank size
	EnemyLengthK = 2.5     // Enemy body length in barrels
)

// Bullet is a projectile travelling left.
type Bullet struct {
	X, Y float64
}

// Engine is the shooter simulation. It is passive: the header calls Step
// once per frame tick and Render once per draw.
type Engine struct {
	width, height float64
	size          int     // Player tank size and lane height
	barrel        int     // Barrel size
	radius        float64 // Bullet radius

	rng core.RandomSource

	lanes   [Lanes]Lane
	bullets []Bullet
	diff    Difficulty
	enemy   Cadence
	fire    Cadence
	tick    uint64
}

// New creates a shooter for the playfield described by g.
func New(g core.Geometry, rng core.RandomSource) *Engine {
	width, height := g.Width, g.Height
	size := int(math.Floor((height-(Lanes+1)*DividerSize)/Lanes + .5))
	size = max(size, 1)
	barrel := int(math.Floor(float64(size)*BarrelRatio + .5))

	e := &Engine{
		width:  width,
		height: height,
		size:   size,
		barrel: barrel,
		radius: math.Max(float64(barrel-2*DividerSize)*.5, 0),
		rng:    rng,
	}
	e.Reset()
	return e
}

// Reset restores the engine to its freshly constructed state.
func (e *Engine) Reset() {
	for i := range e.lanes {
		e.lanes[i].Clear()
	}
	e.bullets = nil
	e.diff = NewDifficulty(e.size + e.barrel)
	e.enemy.Eager = true
	e.enemy.Reset()
	e.fire.Reset()
	e.tick = 0
}

// ControllerSize returns the player tank size, which is also the extent of
// the controller along the drag axis.
func (e *Engine) ControllerSize() float64 {
	return float64(e.size)
}

// Difficulty returns a copy of the current difficulty state.
func (e *Engine) Difficulty() Difficulty {
	return e.diff
}

// Bullets returns the live projectiles in spawn order.
func (e *Engine) Bullets() []Bullet {
	return e.bullets
}

// Lane returns the lane with the given index.
func (e *Engine) Lane(i int) *Lane {
	return &e.lanes[core.Clamp(i, 0, Lanes-1)]
}

// LaneOf maps a vertical coordinate to a lane index.
func (e *Engine) LaneOf(y float64) int {
	laneH := max(int(e.height)/Lanes, 1)
	return core.Clamp(int(y)/laneH, 0, Lanes-1)
}

// spawnRect is the body of a new enemy on the given lane, just off the
// left edge.
func (e *Engine) spawnRect(lane int) core.Rect {
	left := -float64(e.size + e.barrel)
	top := float64(lane*(e.size+DividerSize) + DividerSize)
	return core.Rect{
		Left:   left,
		Top:    top,
		Right:  left + float64(e.barrel)*EnemyLengthK,
		Bottom: top + float64(e.size),
	}
}

// muzzleX is where bullets spawn: the tip of the player's barrel.
func (e *Engine) muzzleX() float64 {
	return e.width - float64(e.size) - float64(e.barrel)
}

// Step advances the simulation by one tick with the player at pos.
func (e *Engine) Step(pos float64) core.StepResult {
	e.tick++

	for i := range e.lanes {
		e.lanes[i].Advance(float64(e.diff.EnemySpeed))
	}

	if e.enemy.Advance(e.diff.EnemySpeed, e.diff.EnemySpacing) {
		lane := core.Clamp(e.rng.Intn(Lanes), 0, Lanes-1)
		e.lanes[lane].Push(e.spawnRect(lane))
	}

	if e.fire.Advance(e.diff.BulletSpeed, e.diff.BulletSpacing) {
		e.bullets = append(e.bullets, Bullet{
			X: e.muzzleX(),
			Y: float64(int(pos + float64(e.size)*.5)),
		})
	}

	e.moveBullets()

	if e.collectMisses() {
		return core.End(core.EndMissCeiling)
	}

	if e.crashed(pos) {
		return core.End(core.EndCrash)
	}

	return core.StepResult{}
}

// moveBullets moves every bullet and resolves hits. A hit removes the bullet
// and the lane head. At most one bullet leaving the left edge is discarded
// per tick, and a bullet that hits is never counted as leaving.
func (e *Engine) moveBullets() {
	speed := float64(e.diff.BulletSpeed)
	kept := e.bullets[:0]
	discarded := false

	for _, b := range e.bullets {
		b.X -= speed

		lane := &e.lanes[e.LaneOf(b.Y)]
		if lane.HeadContains(b.X, b.Y) {
			lane.Pop()
			e.diff.RecordKill()
			continue
		}

		if !discarded && b.X+e.radius <= 0 {
			discarded = true
			continue
		}

		kept = append(kept, b)
	}

	// Zero the tail so dropped bullets don't linger in the backing array
	clear(e.bullets[len(kept):])
	e.bullets = kept
}

// collectMisses removes lane heads that crossed the right edge.
// Returns true when the miss ceiling is reached.
func (e *Engine) collectMisses() bool {
	for i := range e.lanes {
		head, ok := e.lanes[i].Head()
		if !ok || head.Left < e.width {
			continue
		}
		e.lanes[i].Pop()
		if e.diff.RecordMiss() {
			return true
		}
	}
	return false
}

// crashed tests the player's leading corners against the heads of the
// lanes they sit in.
func (e *Engine) crashed(pos float64) bool {
	x := e.width - float64(e.size)
	top := pos
	bottom := pos + float64(e.size)

	if e.lanes[e.LaneOf(top)].HeadContains(x, top) {
		return true
	}
	return e.lanes[e.LaneOf(bottom)].HeadContains(x, bottom)
}

// Render draws the player tank and, while simulating, enemies and bullets.
func (e *Engine) Render(dst core.Canvas, simulating bool, pos float64, theme core.Theme) {
	size := float64(e.size)
	barrel := float64(e.barrel)

	// Player body and barrel pointing left
	dst.FillRect(core.Rect{Left: e.width - size, Top: pos, Right: e.width, Bottom: pos + size}, theme.Right)
	barrelTop := pos + (size-barrel)*.5
	dst.FillRect(core.Rect{Left: e.width - size - barrel, Top: barrelTop, Right: e.width - size, Bottom: barrelTop + barrel}, theme.Right)

	if !simulating {
		return
	}

	for i := range e.lanes {
		for _, r := range e.lanes[i].Units() {
			dst.FillRect(r, theme.Left)
			top := r.Top + (size-barrel)*.5
			dst.FillRect(core.Rect{Left: r.Right, Top: top, Right: r.Right + barrel, Bottom: top + barrel}, theme.Left)
		}
	}

	for _, b := range e.bullets {
		dst.FillCircle(core.Pt(b.X, b.Y), e.radius, theme.Middle)
	}
}
