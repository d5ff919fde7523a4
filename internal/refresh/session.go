// Package refresh drives the pull-to-refresh flow around a header game:
// pulling the header into view, starting the game while a refresh
// callback runs, and rolling the header back once it completes.
package refresh

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/refresh-arcade/internal/core"
	"github.com/vovakirdan/refresh-arcade/internal/header"
	"github.com/vovakirdan/refresh-arcade/internal/lifecycle"
)

// StickRatio scales raw drag distance into header movement.
const StickRatio = .65

// Phase is the state of the pull-to-refresh flow.
type Phase int

const (
	PhaseHidden     Phase = iota // Header out of view
	PhasePulling                 // User is dragging the header down
	PhaseRefreshing              // Header revealed, game running
	PhaseCollapsing              // Header rolling back up
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseHidden:
		return "hidden"
	case PhasePulling:
		return "pulling"
	case PhaseRefreshing:
		return "refreshing"
	case PhaseCollapsing:
		return "collapsing"
	default:
		return "unknown"
	}
}

// Timing holds the durations of the flow.
type Timing struct {
	TickRate         int           // Frame ticks per second
	MinDuration      time.Duration // Shortest refresh, padded if the callback is faster
	CollapseDelay    time.Duration // Pause on the finished prompt before rolling back
	CollapseDuration time.Duration // Roll-back animation length
	ReturnPerUnit    time.Duration // Controller return time per unit of drag
}

// DefaultTiming returns the stock timings at 60 ticks per second.
func DefaultTiming() Timing {
	return Timing{
		TickRate:         60,
		MinDuration:      1500 * time.Millisecond,
		CollapseDelay:    500 * time.Millisecond,
		CollapseDuration: 300 * time.Millisecond,
		ReturnPerUnit:    1100 * time.Microsecond,
	}
}

// Ticks converts a duration into frame ticks, rounding up.
func (t Timing) Ticks(d time.Duration) int {
	if d <= 0 || t.TickRate <= 0 {
		return 0
	}
	return int(math.Ceil(d.Seconds() * float64(t.TickRate)))
}

// Session tracks one header through repeated pull, refresh and collapse
// cycles. All methods must be called from the frame loop.
type Session struct {
	header *header.Header
	timing Timing
	log    *log.Logger

	phase  Phase
	height float64 // Fully revealed header height
	reveal float64 // Visible part of the header

	pressed   bool
	startY    float64
	offset    float64 // Drag distance scaled by StickRatio
	againDown bool    // Dragging the controller during a refresh
	completed bool    // Refresh callback returned
	started   bool    // Current cycle started the game

	delay     int
	collapse  *gween.Tween
	refreshes int
}

// NewSession wraps a header. A nil logger discards output.
func NewSession(h *header.Header, timing Timing, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		header: h,
		timing: timing,
		log:    logger,
		height: h.Geometry().Height,
	}
}

// Header returns the wrapped header.
func (s *Session) Header() *header.Header {
	return s.header
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Reveal returns how much of the header is visible, in playfield units.
func (s *Session) Reveal() float64 {
	return s.reveal
}

// RevealFraction returns Reveal as a fraction of the header height.
func (s *Session) RevealFraction() float64 {
	if s.height <= 0 {
		return 0
	}
	return core.ClampF(s.reveal/s.height, 0, 1)
}

// Ready reports whether releasing now would start a refresh.
func (s *Session) Ready() bool {
	return s.phase == PhasePulling && s.offset > s.height
}

// MaskVisible reports whether the pull hints should cover the game:
// the header is in view but no game has started.
func (s *Session) MaskVisible() bool {
	return s.phase != PhaseHidden && s.header.Status() == lifecycle.StatusPreparing
}

// Refreshes returns the number of refreshes started.
func (s *Session) Refreshes() int {
	return s.refreshes
}

// Animating reports whether the host should keep scheduling frame ticks.
func (s *Session) Animating() bool {
	return s.phase == PhaseCollapsing || s.header.Animating()
}

// Press starts a drag at y.
func (s *Session) Press(y float64) {
	if s.phase == PhaseCollapsing {
		return
	}
	s.pressed = true
	s.startY = y
	s.offset = 0
	if s.phase == PhaseRefreshing {
		s.againDown = true
		s.reveal = s.height
	}
}

// Drag moves an active drag to y.
func (s *Session) Drag(y float64) {
	if !s.pressed {
		return
	}
	s.offset = (y - s.startY) * StickRatio

	switch s.phase {
	case PhaseHidden, PhasePulling:
		if s.offset <= 0 {
			s.phase = PhaseHidden
			s.reveal = 0
			return
		}
		s.phase = PhasePulling
		s.reveal = core.ClampF(s.offset, 0, s.height)
	case PhaseRefreshing:
		s.header.SetControllerPosition(s.offset)
	}
}

// Release ends a drag. It returns true when the host should start the
// refresh callback.
func (s *Session) Release() bool {
	if !s.pressed {
		return false
	}
	s.pressed = false

	switch s.phase {
	case PhasePulling:
		if s.offset > s.height {
			s.start()
			return true
		}
		s.beginCollapse(0)
	case PhaseRefreshing:
		if !s.againDown {
			return false
		}
		s.againDown = false
		if s.completed {
			s.beginCollapse(0)
			return false
		}
		d := time.Duration(math.Max(s.offset, 0) * float64(s.timing.ReturnPerUnit))
		s.header.ReturnController(s.timing.Ticks(d))
	}
	return false
}

func (s *Session) start() {
	s.phase = PhaseRefreshing
	s.reveal = s.height
	s.completed = false
	s.started = true
	s.refreshes++
	s.header.SetStatus(lifecycle.StatusPlaying)
	s.log.Debug("refresh started", "variant", s.header.Variant(), "refreshes", s.refreshes)
}

// Complete reports that the refresh callback returned. The header shows
// the finished prompt, then rolls back after the collapse delay.
func (s *Session) Complete(err error) {
	if s.phase != PhaseRefreshing || s.completed {
		return
	}
	s.completed = true
	if err != nil {
		s.log.Warn("refresh failed", "err", err)
	} else {
		s.log.Debug("refresh finished", "ticks", s.header.Ticks())
	}

	s.header.SetStatus(lifecycle.StatusFinished)
	if !s.againDown {
		s.beginCollapse(s.timing.Ticks(s.timing.CollapseDelay))
	}
}

func (s *Session) beginCollapse(delay int) {
	s.phase = PhaseCollapsing
	s.delay = delay
	s.offset = 0
	s.collapse = gween.New(float32(s.reveal), 0, float32(max(s.timing.Ticks(s.timing.CollapseDuration), 1)), ease.InOutQuad)
}

// Tick advances the collapse animation by one frame.
func (s *Session) Tick() {
	if s.phase != PhaseCollapsing {
		return
	}
	if s.delay > 0 {
		s.delay--
		return
	}

	val, done := s.collapse.Update(1)
	s.reveal = float64(val)
	if !done {
		return
	}

	s.reveal = 0
	s.collapse = nil
	s.phase = PhaseHidden
	if s.started {
		s.started = false
		s.completed = false
		s.header.SetStatus(lifecycle.StatusPreparing)
	}
}
