package block

import (
	"fmt"
	"math"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot contains the complete simulation state.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64  `msgpack:"tick"`
	BallX      float64 `msgpack:"ball_x"`
	BallY      float64 `msgpack:"ball_y"`
	MovingLeft bool    `msgpack:"moving_left"`
	Angle      int     `msgpack:"angle"`
	Columns    int     `msgpack:"columns"`

	// Cleared cells in clearance order, each 2 ints: Column, Row
	ClearedData []int `msgpack:"cleared"`
}

// Snapshot returns the current state as a Snapshot.
func (e *Engine) Snapshot() Snapshot {
	order := e.grid.Order()
	cleared := make([]int, 0, len(order)*2)
	for _, c := range order {
		cleared = append(cleared, c.Column, c.Row)
	}

	return Snapshot{
		Tick:        e.tick,
		BallX:       e.ball.X,
		BallY:       e.ball.Y,
		MovingLeft:  e.ball.MovingLeft,
		Angle:       e.ball.Angle,
		Columns:     e.grid.Columns(),
		ClearedData: cleared,
	}
}

// ApplySnapshot restores simulation state from a snapshot. Cells outside
// the current grid are ignored.
func (e *Engine) ApplySnapshot(snap Snapshot) {
	e.tick = snap.Tick
	e.ball = Ball{
		X:          snap.BallX,
		Y:          snap.BallY,
		MovingLeft: snap.MovingLeft,
		Angle:      snap.Angle,
	}

	e.grid.Reset()
	for i := 0; i+1 < len(snap.ClearedData); i += 2 {
		e.grid.Clear(Cell{Column: snap.ClearedData[i], Row: snap.ClearedData[i+1]})
	}
}

// Encode serializes the snapshot with msgpack.
func (snap Snapshot) Encode() ([]byte, error) {
	b, err := msgpack.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("block: encode snapshot: %w", err)
	}
	return b, nil
}

// DecodeSnapshot parses a snapshot produced by Encode.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("block: decode snapshot: %w", err)
	}
	return snap, nil
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	if snap.MovingLeft {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.Angle)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Columns) //#nosec G115 -- hash computation
	for _, v := range snap.ClearedData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
