// Package gui hosts the refresh header in a desktop window using Ebitengine.
package gui

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/refresh-arcade/internal/config"
	"github.com/vovakirdan/refresh-arcade/internal/core"
	"github.com/vovakirdan/refresh-arcade/internal/header"
	"github.com/vovakirdan/refresh-arcade/internal/refresh"
)

// Page layout in pixels.
const (
	DefaultScale = .5
	feedPadding  = 12
	lineHeight   = 28
)

var (
	pageColor   = core.RGB(0xFF, 0xFF, 0xFF)
	headerColor = core.RGB(0xF4, 0xF4, 0xF4)
	maskColor   = core.RGB(0xFA, 0xFA, 0xFA)
	hintColor   = core.RGB(0x80, 0x80, 0x80)
	itemColor   = core.RGB(0x33, 0x33, 0x33)
	ruleColor   = core.RGB(0xE0, 0xE0, 0xE0)
)

// Options configure a window.
type Options struct {
	Variant header.Variant
	Config  config.RefreshConfig
	Seed    int64   // Zero seeds from the clock
	Scale   float64 // Pixels per playfield unit; zero uses DefaultScale
	Logger  *log.Logger
}

// Game implements ebiten.Game around one refresh session and its feed.
type Game struct {
	session *refresh.Session
	feed    *refresh.Feed
	cfg     config.RefreshConfig
	logger  *log.Logger

	scale  float64
	width  int
	height int

	headerImg *ebiten.Image
	canvas    *ImageCanvas
	text      *textCache

	ctx    context.Context
	cancel context.CancelFunc
	done   chan error
}

// NewGame builds a window model. The header image is allocated lazily on
// the first update.
func NewGame(opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = DefaultScale
	}

	session, err := opts.Config.NewSession(opts.Variant, opts.Seed, logger)
	if err != nil {
		return nil, fmt.Errorf("create header: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w, h := windowSize(opts.Config, scale)
	return &Game{
		session: session,
		feed:    refresh.NewFeed(opts.Config.Refresh.FeedItems),
		cfg:     opts.Config,
		logger:  logger,
		scale:   scale,
		width:   w,
		height:  h,
		text:    newTextCache(),
		ctx:     ctx,
		cancel:  cancel,
		done:    make(chan error, 1),
	}, nil
}

// windowSize converts the virtual screen into window pixels.
func windowSize(cfg config.RefreshConfig, scale float64) (int, int) {
	return int(math.Round(cfg.Screen.Width * scale)), int(math.Round(cfg.Screen.Height * scale))
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.cancel()
		return ebiten.Termination
	}
	g.ensureHeaderImage()
	g.handlePointer()

	select {
	case err := <-g.done:
		g.session.Complete(err)
	default:
	}

	g.session.Tick()
	g.headerImg.Fill(rgba(headerColor))
	g.session.Header().OnFrameTick(g.canvas)
	return nil
}

func (g *Game) ensureHeaderImage() {
	if g.headerImg != nil {
		return
	}
	geom := g.session.Header().Geometry()
	w := max(int(math.Ceil(geom.Width*g.scale)), 1)
	h := max(int(math.Ceil(geom.Height*g.scale)), 1)
	g.headerImg = ebiten.NewImage(w, h)
	g.canvas = NewImageCanvas(g.headerImg, g.scale, geom.Width, geom.Height)
}

// handlePointer maps left mouse gestures to press, drag and release.
func (g *Game) handlePointer() {
	_, my := ebiten.CursorPosition()
	y := float64(my) / g.scale

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.session.Press(y)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.session.Drag(y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		if g.session.Release() {
			g.startRefresh()
		}
	}
}

// startRefresh runs the feed refresh on its own goroutine. The result is
// picked up by the next Update.
func (g *Game) startRefresh() {
	g.logger.Info("refresh started", "variant", g.session.Header().Variant())
	fn := g.feed.RefreshFunc(g.cfg.Refresh.DemoDelay, g.cfg.Refresh.BatchSize)
	minDuration := g.cfg.Refresh.MinDuration
	go func() {
		g.done <- refresh.Run(g.ctx, fn, minDuration)
	}()
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(rgba(pageColor))

	reveal := g.session.Reveal() * g.scale
	if reveal > 0 && g.headerImg != nil {
		if g.session.MaskVisible() {
			g.drawMask(screen, reveal)
		} else {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(0, reveal-float64(g.headerImg.Bounds().Dy()))
			screen.DrawImage(g.headerImg, op)
		}
	}

	g.drawFeed(screen, reveal)
}

// drawMask covers the revealed header with the pull hints.
func (g *Game) drawMask(screen *ebiten.Image, reveal float64) {
	full := float64(g.headerImg.Bounds().Dy())
	top := reveal - full
	vector.DrawFilledRect(screen, 0, float32(top), float32(g.width), float32(full), rgba(maskColor), false)

	hints := []struct {
		text string
		y    float64
	}{
		{g.cfg.Texts.TopMask, top + full*.25},
		{g.cfg.Texts.BottomMask, top + full*.75},
	}
	for _, h := range hints {
		x := (float64(g.width) - textWidth(h.text)) / 2
		g.text.draw(screen, h.text, x, h.y-glyphH/2, hintColor)
	}
}

// drawFeed lists the feed items below the revealed header.
func (g *Game) drawFeed(screen *ebiten.Image, top float64) {
	y := top + feedPadding
	for _, item := range g.feed.Items() {
		if y > float64(g.height) {
			break
		}
		g.text.draw(screen, item, feedPadding, y, itemColor)
		rule := float32(y + lineHeight - 6)
		vector.StrokeLine(screen, feedPadding, rule, float32(g.width-feedPadding), rule, 1, rgba(ruleColor), false)
		y += lineHeight
	}

	status := fmt.Sprintf("%s  %s  %s  TPS %.0f",
		g.session.Header().Variant().Title(),
		g.session.Phase(),
		g.session.Header().Status(),
		ebiten.ActualTPS(),
	)
	g.text.draw(screen, status, feedPadding, float64(g.height-glyphH-4), hintColor)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens a window and blocks until it is closed.
func Run(opts Options) error {
	g, err := NewGame(opts)
	if err != nil {
		return err
	}
	defer g.cancel()

	ebiten.SetWindowTitle("funrefresh - " + opts.Variant.Title())
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetTPS(opts.Config.TickRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
