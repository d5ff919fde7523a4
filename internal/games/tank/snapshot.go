package tank

import (
	"fmt"
	"math"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/refresh-arcade/internal/core"
)

// Snapshot contains the complete simulation state, excluding the random
// source. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick uint64 `msgpack:"tick"`

	LevelTarget   int `msgpack:"level_target"`
	Kills         int `msgpack:"kills"`
	Misses        int `msgpack:"misses"`
	EnemySpeed    int `msgpack:"enemy_speed"`
	BulletSpeed   int `msgpack:"bullet_speed"`
	EnemySpacing  int `msgpack:"enemy_spacing"`
	BulletSpacing int `msgpack:"bullet_spacing"`
	Level         int `msgpack:"level"`

	EnemyOffset  int  `msgpack:"enemy_offset"`
	EnemyPrimed  bool `msgpack:"enemy_primed"`
	BulletOffset int  `msgpack:"bullet_offset"`

	// Enemy bodies per lane, each 4 floats: Left, Top, Right, Bottom
	LaneData [Lanes][]float64 `msgpack:"lanes"`

	// Bullets, each 2 floats: X, Y
	BulletData []float64 `msgpack:"bullets"`
}

// Snapshot returns the current state as a Snapshot.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          e.tick,
		LevelTarget:   e.diff.LevelTarget,
		Kills:         e.diff.Kills,
		Misses:        e.diff.Misses,
		EnemySpeed:    e.diff.EnemySpeed,
		BulletSpeed:   e.diff.BulletSpeed,
		EnemySpacing:  e.diff.EnemySpacing,
		BulletSpacing: e.diff.BulletSpacing,
		Level:         e.diff.Level,
		EnemyOffset:   e.enemy.Offset,
		EnemyPrimed:   e.enemy.fired,
		BulletOffset:  e.fire.Offset,
		BulletData:    make([]float64, 0, len(e.bullets)*2),
	}

	for i := range e.lanes {
		units := e.lanes[i].Units()
		data := make([]float64, 0, len(units)*4)
		for _, r := range units {
			data = append(data, r.Left, r.Top, r.Right, r.Bottom)
		}
		snap.LaneData[i] = data
	}

	for _, b := range e.bullets {
		snap.BulletData = append(snap.BulletData, b.X, b.Y)
	}

	return snap
}

// ApplySnapshot restores simulation state from a snapshot.
func (e *Engine) ApplySnapshot(snap Snapshot) {
	e.tick = snap.Tick
	e.diff = Difficulty{
		LevelTarget:   snap.LevelTarget,
		Kills:         snap.Kills,
		Misses:        snap.Misses,
		EnemySpeed:    snap.EnemySpeed,
		BulletSpeed:   snap.BulletSpeed,
		EnemySpacing:  snap.EnemySpacing,
		BulletSpacing: snap.BulletSpacing,
		Level:         snap.Level,
	}
	e.enemy = Cadence{Offset: snap.EnemyOffset, Eager: true, fired: snap.EnemyPrimed}
	e.fire = Cadence{Offset: snap.BulletOffset}

	for i := range e.lanes {
		e.lanes[i].Clear()
		data := snap.LaneData[i]
		for j := 0; j+3 < len(data); j += 4 {
			e.lanes[i].Push(core.Rect{Left: data[j], Top: data[j+1], Right: data[j+2], Bottom: data[j+3]})
		}
	}

	e.bullets = nil
	for j := 0; j+1 < len(snap.BulletData); j += 2 {
		e.bullets = append(e.bullets, Bullet{X: snap.BulletData[j], Y: snap.BulletData[j+1]})
	}
}

// Encode serializes the snapshot with msgpack.
func (snap Snapshot) Encode() ([]byte, error) {
	b, err := msgpack.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("tank: encode snapshot: %w", err)
	}
	return b, nil
}

// DecodeSnapshot parses a snapshot produced by Encode.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("tank: decode snapshot: %w", err)
	}
	return snap, nil
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.LevelTarget, snap.Kills, snap.Misses,
		snap.EnemySpeed, snap.BulletSpeed,
		snap.EnemySpacing, snap.BulletSpacing, snap.Level,
		snap.EnemyOffset, snap.BulletOffset,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	if snap.EnemyPrimed {
		h = h*31 + 1
	}

	for _, lane := range snap.LaneData {
		h = h*31 + uint64(len(lane))
		for _, v := range lane {
			h = h*31 + math.Float64bits(v)
		}
	}
	for _, v := range snap.BulletData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
