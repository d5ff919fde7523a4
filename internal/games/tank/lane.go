package tank

import "github.com/vovakirdan/refresh-arcade/internal/core"

// Lane is a FIFO of enemy tank bodies. Units enter at the back and leave
// from the front; only the front unit collides.
type Lane struct {
	units []core.Rect
}

// Push appends a newly spawned unit.
func (l *Lane) Push(r core.Rect) {
	l.units = append(l.units, r)
}

// Head returns the front unit.
func (l *Lane) Head() (core.Rect, bool) {
	if len(l.units) == 0 {
		return core.Rect{}, false
	}
	return l.units[0], true
}

// Pop removes the front unit.
func (l *Lane) Pop() {
	if len(l.units) == 0 {
		return
	}
	l.units[0] = core.Rect{}
	l.units = l.units[1:]
}

// Advance moves every unit right by dx.
func (l *Lane) Advance(dx float64) {
	for i := range l.units {
		l.units[i] = l.units[i].Offset(dx, 0)
	}
}

// Len returns the number of units in the lane.
func (l *Lane) Len() int {
	return len(l.units)
}

// Units returns the units in spawn order. The slice must not be modified.
func (l *Lane) Units() []core.Rect {
	return l.units
}

// Clear empties the lane.
func (l *Lane) Clear() {
	l.units = nil
}

// HeadContains reports whether the front unit contains (x, y).
func (l *Lane) HeadContains(x, y float64) bool {
	head, ok := l.Head()
	return ok && head.Contains(x, y)
}
