package tui

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/refresh-arcade/internal/config"
	"github.com/vovakirdan/refresh-arcade/internal/core"
	"github.com/vovakirdan/refresh-arcade/internal/header"
	"github.com/vovakirdan/refresh-arcade/internal/lifecycle"
	"github.com/vovakirdan/refresh-arcade/internal/refresh"
)

// Terminal layout.
const (
	minHeaderRows = 4
	maxHeaderRows = 14
	keyStepRows   = 2 // Rows dragged per keypress
	defaultWidth  = 80
	defaultHeight = 24
)

var (
	headerStyle = lipgloss.NewStyle().Background(lipgloss.Color("#EEEEEE"))
	maskStyle   = headerStyle.Foreground(lipgloss.Color("#808080"))
	feedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C1C2C2"))
	freshStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#606060"))
)

// refreshDoneMsg reports the end of a refresh callback.
type refreshDoneMsg struct {
	err error
}

// Options configure a refresh model.
type Options struct {
	Variant header.Variant
	Config  config.RefreshConfig
	Seed    int64 // Zero seeds from the clock
	Logger  *log.Logger
	Width   int // Initial terminal size; zero uses 80x24
	Height  int
}

// Model is the Bubble Tea model hosting one refresh header above a feed.
type Model struct {
	session *refresh.Session
	feed    *refresh.Feed
	cfg     config.RefreshConfig
	logger  *log.Logger

	screen *core.Screen
	canvas *core.ScreenCanvas

	keys KeyMap
	help help.Model

	ctx    context.Context
	cancel context.CancelFunc

	width      int
	height     int
	headerRows int
	dragY      float64 // Keyboard drag position, in playfield units
	dragging   bool
	ticking    bool
	quitting   bool
	backToMenu bool
	embedded   bool // Hosted by App, which owns the menu
}

// NewModel creates a refresh model sized for a default terminal.
func NewModel(opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	session, err := opts.Config.NewSession(opts.Variant, opts.Seed, logger)
	if err != nil {
		return Model{}, fmt.Errorf("create header: %w", err)
	}
	session.Header().OnChange(func(from, to lifecycle.Status) {
		logger.Debug("header status", "from", from, "to", to)
	})

	ctx, cancel := context.WithCancel(context.Background())
	m := Model{
		session: session,
		feed:    refresh.NewFeed(opts.Config.Refresh.FeedItems),
		cfg:     opts.Config,
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		ctx:     ctx,
		cancel:  cancel,
	}
	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = defaultWidth, defaultHeight
	}
	return m.layout(width, height), nil
}

// Session returns the refresh session.
func (m Model) Session() *refresh.Session {
	return m.session
}

// Feed returns the list below the header.
func (m Model) Feed() *refresh.Feed {
	return m.feed
}

// HeaderRows returns the terminal rows of a fully revealed header.
func (m Model) HeaderRows() int {
	return m.headerRows
}

// Init initializes the model. The header stays idle until pulled.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.layout(msg.Width, msg.Height), nil

	case TickMsg:
		return m.handleTick()

	case refreshDoneMsg:
		m.session.Complete(msg.err)
		return m.ensureTicking()
	}

	return m, nil
}

// layout recomputes the header raster for a terminal size.
// The playfield keeps its virtual geometry, so no reset is needed.
func (m Model) layout(width, height int) Model {
	m.width = max(width, 1)
	m.height = max(height, 1)
	m.headerRows = core.Clamp(m.height/3, minHeaderRows, maxHeaderRows)

	g := m.session.Header().Geometry()
	m.screen = core.NewScreen(m.width, m.headerRows)
	m.canvas = core.NewScreenCanvas(m.screen, 0, 0, m.width, m.headerRows, g.Width, g.Height)
	m.help.Width = m.width
	m.redraw()
	return m
}

// unitsPerRow converts terminal rows into playfield units.
func (m Model) unitsPerRow() float64 {
	return m.session.Header().Geometry().Height / float64(m.headerRows)
}

// frame advances the header one tick and redraws its raster.
func (m Model) frame() {
	m.screen.Clear()
	m.session.Header().OnFrameTick(m.canvas)
}

// redraw repaints the header raster without advancing the game.
func (m Model) redraw() {
	m.screen.Clear()
	m.session.Header().Redraw(m.canvas)
}

// handleKey processes keyboard input. Pull and push emulate a drag.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Menu):
		if !m.embedded {
			return m.quit()
		}
		m.backToMenu = true
		m.cancel()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Pull):
		return m.keyDrag(keyStepRows)

	case key.Matches(msg, m.keys.Push):
		return m.keyDrag(-keyStepRows)

	case key.Matches(msg, m.keys.Release):
		m.dragging = false
		m.dragY = 0
		return m.release()
	}

	return m, nil
}

func (m Model) keyDrag(rows int) (tea.Model, tea.Cmd) {
	if !m.dragging {
		m.dragging = true
		m.dragY = 0
		m.session.Press(0)
	}
	m.dragY = math.Max(m.dragY+float64(rows)*m.unitsPerRow(), 0)
	m.session.Drag(m.dragY)
	return m.ensureTicking()
}

// handleMouse maps left button gestures to press, drag and release.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	y := float64(msg.Y) * m.unitsPerRow()
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.dragging = true
		m.session.Press(y)
	case tea.MouseActionMotion:
		if !m.dragging {
			return m, nil
		}
		m.session.Drag(y)
		return m.ensureTicking()
	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragging = false
		return m.release()
	}
	return m, nil
}

// release ends a gesture and starts the refresh callback when the pull was far enough.
func (m Model) release() (tea.Model, tea.Cmd) {
	started := m.session.Release()
	m2, tick := m.ensureTicking()
	if !started {
		return m2, tick
	}
	m.logger.Info("refresh started", "variant", m.session.Header().Variant())
	return m2, tea.Batch(tick, m.refreshCmd())
}

// refreshCmd runs the feed refresh off the frame loop.
func (m Model) refreshCmd() tea.Cmd {
	ctx := m.ctx
	fn := m.feed.RefreshFunc(m.cfg.Refresh.DemoDelay, m.cfg.Refresh.BatchSize)
	minDuration := m.cfg.Refresh.MinDuration
	return func() tea.Msg {
		return refreshDoneMsg{err: refresh.Run(ctx, fn, minDuration)}
	}
}

// ensureTicking starts the frame loop if the session needs it.
func (m Model) ensureTicking() (Model, tea.Cmd) {
	if m.ticking || !m.session.Animating() {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.cfg.TickRate)
}

// handleTick advances the session and the header by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.session.Tick()
	m.frame()

	if !m.session.Animating() {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.cfg.TickRate)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.cancel()
	return m, tea.Quit
}

// View renders the revealed header, the feed and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var lines []string
	visible := int(math.Round(m.session.RevealFraction() * float64(m.headerRows)))
	if visible > 0 {
		if m.session.MaskVisible() {
			lines = append(lines, m.maskRows(visible)...)
		} else {
			top := m.headerRows - visible
			lines = append(lines, strings.Split(RenderRows(m.screen, top, m.headerRows, headerStyle), "\n")...)
		}
	}

	footer := m.footer()
	room := m.height - len(lines) - lipgloss.Height(footer)
	items := m.feed.Items()
	fresh := m.freshCount()
	for i := 0; i < len(items) && i < room; i++ {
		style := feedStyle
		if i < fresh {
			style = freshStyle
		}
		lines = append(lines, style.Render("  "+items[i]))
	}
	for len(lines) < m.height-lipgloss.Height(footer) {
		lines = append(lines, "")
	}

	lines = append(lines, footer)
	return strings.Join(lines, "\n")
}

// maskRows covers the revealed header with the pull hints.
func (m Model) maskRows(visible int) []string {
	rows := make([]string, m.headerRows)
	half := m.headerRows / 2
	for i := range rows {
		text := ""
		switch i {
		case half / 2:
			text = m.cfg.Texts.TopMask
		case half + (m.headerRows-half)/2:
			text = m.cfg.Texts.BottomMask
		}
		rows[i] = maskStyle.Render(padRight(centerText(text, m.width), m.width))
	}
	return rows[m.headerRows-visible:]
}

// freshCount is the number of items added by the latest refresh.
func (m Model) freshCount() int {
	if m.feed.Batches() == 0 {
		return 0
	}
	return min(m.cfg.Refresh.BatchSize, m.feed.Len())
}

func (m Model) footer() string {
	status := statusStyle.Render(fmt.Sprintf(" %s · %s · %s · refreshes %d",
		m.session.Header().Variant().Title(),
		m.session.Phase(),
		m.session.Header().Status(),
		m.session.Refreshes(),
	))
	return status + "\n" + m.help.View(m.keys)
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked for the variant picker.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program hosting a single header.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Drag to pull the header
	)

	_, err = p.Run()
	return err
}
