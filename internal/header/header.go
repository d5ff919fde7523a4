// Package header runs one header game: it owns the lifecycle, the
// controller and exactly one engine, and draws the shared chrome
// (boundary lines and the status prompt) around it.
package header

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/refresh-arcade/internal/core"
	"github.com/vovakirdan/refresh-arcade/internal/games/block"
	"github.com/vovakirdan/refresh-arcade/internal/games/tank"
	"github.com/vovakirdan/refresh-arcade/internal/lifecycle"
)

// Prompt sizes in playfield units.
const (
	PromptSize         = 50
	FinishedPromptSize = 40
	baselineShift      = .35 // Baseline offset below the center, in text sizes
)

// Texts are the prompts shown for each status.
type Texts struct {
	Loading  string // Preparing and Playing
	Finished string
	GameOver string
}

// DefaultTexts returns the stock prompts.
func DefaultTexts() Texts {
	return Texts{
		Loading:  "Play a game to relieve boredom",
		Finished: "Loading completed",
		GameOver: "game over",
	}
}

// Options configure a header.
type Options struct {
	Theme core.Theme
	Texts Texts
	Block block.Config
	// RNG picks enemy lanes. Nil seeds one from the clock.
	RNG core.RandomSource
}

// DefaultOptions returns stock theme, texts and breaker settings.
func DefaultOptions() Options {
	return Options{
		Theme: core.DefaultTheme(),
		Texts: DefaultTexts(),
		Block: block.DefaultConfig(),
	}
}

// engine is the capability both games provide.
type engine interface {
	Step(pos float64) core.StepResult
	Render(dst core.Canvas, simulating bool, pos float64, theme core.Theme)
	Reset()
	ControllerSize() float64
}

var (
	_ engine = (*tank.Engine)(nil)
	_ engine = (*block.Engine)(nil)
)

// Header is one running header game.
type Header struct {
	variant    Variant
	geom       core.Geometry
	opts       Options
	machine    *lifecycle.Machine
	controller *lifecycle.Controller

	// Exactly one is set, matching variant
	tank  *tank.Engine
	block *block.Engine

	reason core.EndReason
	ticks  uint64
}

// New builds a header running the given variant inside g.
func New(v Variant, g core.Geometry, opts Options) (*Header, error) {
	if g.Width <= 0 || g.Height <= 0 {
		return nil, fmt.Errorf("header: invalid playfield %vx%v", g.Width, g.Height)
	}
	if opts.RNG == nil {
		opts.RNG = rand.New(rand.NewSource(time.Now().UnixNano())) //#nosec G404 -- lane choice, not security
	}

	h := &Header{
		variant: v,
		geom:    g,
		opts:    opts,
		machine: lifecycle.NewMachine(),
	}

	switch v {
	case VariantTank:
		h.tank = tank.New(g, opts.RNG)
	case VariantBlock:
		h.block = block.New(g, opts.Block)
	default:
		return nil, fmt.Errorf("header: unknown variant %d", int(v))
	}

	h.controller = lifecycle.NewController(h.ControllerSize(), g.Height)
	h.machine.OnReset(h.reset)
	return h, nil
}

// Variant returns the game being played.
func (h *Header) Variant() Variant {
	return h.variant
}

// Geometry returns the playfield the header was built for.
func (h *Header) Geometry() core.Geometry {
	return h.geom
}

// ControllerSize returns the extent of the player paddle or tank.
func (h *Header) ControllerSize() float64 {
	switch h.variant {
	case VariantTank:
		return h.tank.ControllerSize()
	default:
		return h.block.ControllerSize()
	}
}

// Controller returns the controller, for hosts that animate it.
func (h *Header) Controller() *lifecycle.Controller {
	return h.controller
}

// Status returns the current lifecycle status.
func (h *Header) Status() lifecycle.Status {
	return h.machine.Status()
}

// EndReason returns why the last game ended, or EndNone.
func (h *Header) EndReason() core.EndReason {
	return h.reason
}

// Ticks returns the number of simulated steps since the last reset.
func (h *Header) Ticks() uint64 {
	return h.ticks
}

// OnChange registers an observer for applied status transitions.
func (h *Header) OnChange(fn func(from, to lifecycle.Status)) {
	h.machine.OnChange(fn)
}

// SetStatus requests a lifecycle transition. Entering Preparing resets the
// engine and the controller. Over is reached only through the game itself,
// so requesting it is refused. Returns whether the transition was applied.
func (h *Header) SetStatus(s lifecycle.Status) bool {
	if s == lifecycle.StatusOver {
		return false
	}
	return h.machine.Set(s)
}

// SetControllerPosition moves the player to distance, clamped to the playfield.
func (h *Header) SetControllerPosition(distance float64) {
	h.controller.SetPosition(distance)
}

// ReturnController animates the player back to its rest position.
func (h *Header) ReturnController(ticks int) {
	h.controller.ReturnToStart(ticks)
}

// Animating reports whether the host should keep scheduling frame ticks.
func (h *Header) Animating() bool {
	return h.Status().Simulating() || h.controller.Returning()
}

func (h *Header) reset() {
	switch h.variant {
	case VariantTank:
		h.tank.Reset()
	case VariantBlock:
		h.block.Reset()
	}
	h.controller.Reset()
	h.reason = core.EndNone
	h.ticks = 0
}

// OnFrameTick advances the game one step when the status simulates, then
// draws the frame onto dst.
func (h *Header) OnFrameTick(dst core.Canvas) {
	h.controller.Tick()

	if h.Status().Simulating() {
		h.step()
	}

	h.draw(dst)
}

// Redraw draws the current frame onto dst without advancing anything.
func (h *Header) Redraw(dst core.Canvas) {
	h.draw(dst)
}

func (h *Header) step() {
	h.ticks++
	pos := h.controller.Position()

	var res core.StepResult
	switch h.variant {
	case VariantTank:
		res = h.tank.Step(pos)
	case VariantBlock:
		res = h.block.Step(pos)
	}

	// Only a running game can end; a finished one keeps animating
	if res.Over && h.machine.End() {
		h.reason = res.Reason
	}
}

func (h *Header) draw(dst core.Canvas) {
	h.drawBoundary(dst)
	h.drawPrompt(dst)

	simulating := h.Status().Simulating()
	pos := h.controller.Position()
	switch h.variant {
	case VariantTank:
		h.tank.Render(dst, simulating, pos, h.opts.Theme)
	case VariantBlock:
		h.block.Render(dst, simulating, pos, h.opts.Theme)
	}
}

func (h *Header) drawBoundary(dst core.Canvas) {
	w, ht := h.geom.Width, h.geom.Height
	dst.DrawLine(core.Pt(0, 0), core.Pt(w, 0), h.opts.Theme.Boundary)
	dst.DrawLine(core.Pt(0, ht), core.Pt(w, ht), h.opts.Theme.Boundary)
}

// Prompt returns the text and size shown for the current status.
func (h *Header) Prompt() (string, float64) {
	switch h.Status() {
	case lifecycle.StatusFinished:
		return h.opts.Texts.Finished, FinishedPromptSize
	case lifecycle.StatusOver:
		return h.opts.Texts.GameOver, PromptSize
	default:
		return h.opts.Texts.Loading, PromptSize
	}
}

func (h *Header) drawPrompt(dst core.Canvas) {
	text, size := h.Prompt()
	if text == "" {
		return
	}
	x := (h.geom.Width - dst.MeasureText(text, size)) * .5
	y := h.geom.Height*.5 + size*baselineShift
	dst.DrawText(core.Pt(x, y), text, size, h.opts.Theme.Text)
}

// Snapshot encodes the engine state.
func (h *Header) Snapshot() ([]byte, error) {
	switch h.variant {
	case VariantTank:
		return h.tank.Snapshot().Encode()
	default:
		return h.block.Snapshot().Encode()
	}
}
