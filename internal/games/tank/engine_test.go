package tank

import (
	"bytes"
	"testing"

	"github.com/vovakirdan/refresh-arcade/internal/core"
)

const (
	testW = 1080
	testH = 310
)

// scriptedRNG returns lanes from a fixed script, cycling.
type scriptedRNG struct {
	lanes []int
	i     int
}

func (r *scriptedRNG) Intn(n int) int {
	v := r.lanes[r.i%len(r.lanes)]
	r.i++
	return v % n
}

var testGeometry = core.Geometry{ScreenW: testW, ScreenH: 1920, Width: testW, Height: testH}

func lanes(l ...int) *scriptedRNG {
	return &scriptedRNG{lanes: l}
}

func TestGeometry(t *testing.T) {
	e := New(testGeometry, lanes(0))

	if e.ControllerSize() != 102 {
		t.Errorf("ControllerSize() = %v, expected 102", e.ControllerSize())
	}
	if e.barrel != 34 {
		t.Errorf("barrel = %d, expected 34", e.barrel)
	}
	if e.radius != 16 {
		t.Errorf("radius = %v, expected 16", e.radius)
	}

	got := e.spawnRect(1)
	expected := core.Rect{Left: -136, Top: 104, Right: -51, Bottom: 206}
	if got != expected {
		t.Errorf("spawnRect(1) = %+v, expected %+v", got, expected)
	}

	if d := e.Difficulty(); d.EnemySpacing != 196 || d.BulletSpacing != 360 {
		t.Errorf("initial spacings = %d/%d, expected 196/360", d.EnemySpacing, d.BulletSpacing)
	}
}

func TestLaneOf(t *testing.T) {
	e := New(testGeometry, lanes(0))

	tests := []struct {
		y        float64
		expected int
	}{
		{0, 0},
		{102, 0},
		{103, 1},
		{205.9, 1},
		{206, 2},
		{309, 2},
		{500, 2},
		{-5, 0},
	}

	for _, tc := range tests {
		if got := e.LaneOf(tc.y); got != tc.expected {
			t.Errorf("LaneOf(%v) = %d, expected %d", tc.y, got, tc.expected)
		}
	}
}

func TestCadenceIntegerDivision(t *testing.T) {
	c := Cadence{}
	fired := 0
	for i := 1; i <= 52; i++ {
		if c.Advance(7, 360) {
			fired = i
		}
	}
	// 7*52 = 364 is the first offset with 364/360 == 1
	if fired != 52 {
		t.Errorf("cadence fired at tick %d, expected 52", fired)
	}
	if c.Offset != 0 {
		t.Errorf("Offset = %d after firing, expected 0", c.Offset)
	}
}

func TestCadenceEagerFirstTick(t *testing.T) {
	c := Cadence{Eager: true}
	if !c.Advance(2, 196) {
		t.Error("eager cadence should fire on the first tick")
	}
	if c.Advance(2, 196) {
		t.Error("eager cadence should fire only once unconditionally")
	}

	c.Reset()
	if !c.Advance(2, 196) {
		t.Error("Reset should re-arm the eager fire")
	}
}

func TestCadenceOvershoot(t *testing.T) {
	// Speed past twice the spacing skips the quotient 1 and never fires
	c := Cadence{}
	for range 10 {
		if c.Advance(100, 30) {
			t.Fatal("cadence fired with offset / spacing > 1")
		}
	}
}

func TestCadenceBreakdownLevels(t *testing.T) {
	d := NewDifficulty(136)
	bulletEvery, bulletStop, enemyStop := 0, 0, 0
	for d.Level < 40 {
		if bulletEvery == 0 && d.BulletSpeed > d.BulletSpacing {
			bulletEvery = d.Level
		}
		if bulletStop == 0 && d.BulletSpeed >= 2*d.BulletSpacing {
			bulletStop = d.Level
		}
		if enemyStop == 0 && d.EnemySpeed >= 2*d.EnemySpacing {
			enemyStop = d.Level
		}
		d.levelUp()
	}

	if bulletEvery != 13 {
		t.Errorf("bullet speed passes spacing at level %d, expected 13", bulletEvery)
	}
	if bulletStop != 28 {
		t.Errorf("bullet cadence stops at level %d, expected 28", bulletStop)
	}
	if enemyStop != 23 {
		t.Errorf("enemy cadence stops at level %d, expected 23", enemyStop)
	}

	// Between one and two spacings the cadence fires every tick
	c := Cadence{}
	for range 5 {
		if !c.Advance(31, 30) {
			t.Fatal("cadence should fire every tick when speed is within one spacing")
		}
	}
}

func TestDifficultyLevelUp(t *testing.T) {
	d := NewDifficulty(136)

	for i := 1; i < MagicNumber; i++ {
		if d.RecordKill() {
			t.Fatalf("level-up after %d kills, expected after %d", i, MagicNumber)
		}
	}
	if !d.RecordKill() {
		t.Fatal("expected level-up on the 8th kill")
	}

	expected := Difficulty{
		LevelTarget:   16,
		Kills:         0,
		EnemySpeed:    3,
		BulletSpeed:   9,
		EnemySpacing:  184,
		BulletSpacing: 330,
		Level:         2,
	}
	if d != expected {
		t.Errorf("after level-up = %+v, expected %+v", d, expected)
	}
}

func TestDifficultyLevelSchedule(t *testing.T) {
	d := NewDifficulty(136)
	levelUps := 0

	// 8, then 16, then 24 more kills
	for i := 0; i < 8+16+24; i++ {
		if d.RecordKill() {
			levelUps++
		}
		if d.Kills >= d.LevelTarget {
			t.Fatalf("Kills = %d reached LevelTarget = %d", d.Kills, d.LevelTarget)
		}
	}

	if levelUps != 3 {
		t.Errorf("levelUps = %d, expected 3", levelUps)
	}
	if d.EnemySpacing != 196-3*EnemySpacingStep {
		t.Errorf("EnemySpacing = %d, expected %d", d.EnemySpacing, 196-3*EnemySpacingStep)
	}
	if d.BulletSpacing != 360-3*BulletSpacingStep {
		t.Errorf("BulletSpacing = %d, expected %d", d.BulletSpacing, 360-3*BulletSpacingStep)
	}
}

func TestDifficultySpacingFloors(t *testing.T) {
	d := Difficulty{LevelTarget: 1, EnemySpacing: 20, BulletSpacing: 40}

	d.RecordKill()
	if d.EnemySpacing != 12 || d.BulletSpacing != 30 {
		t.Errorf("spacings = %d/%d, expected 12/30", d.EnemySpacing, d.BulletSpacing)
	}

	d.LevelTarget = 1
	d.RecordKill()
	if d.EnemySpacing != 12 || d.BulletSpacing != 30 {
		t.Errorf("spacings below floor: %d/%d", d.EnemySpacing, d.BulletSpacing)
	}
}

func TestMissCeiling(t *testing.T) {
	// Spawns go to lane 2; escapees are fed through lane 0
	e := New(testGeometry, lanes(2))
	speed := float64(e.Difficulty().EnemySpeed)

	for i := 1; i <= MagicNumber; i++ {
		e.Lane(0).Push(core.NewRect(testW-speed, 1, 85, 102))
		res := e.Step(1)

		if i < MagicNumber && res.Over {
			t.Fatalf("Over after %d misses, expected %d", i, MagicNumber)
		}
		if i == MagicNumber {
			if !res.Over || res.Reason != core.EndMissCeiling {
				t.Errorf("Step() = %+v, expected miss ceiling", res)
			}
		}
	}

	if e.Difficulty().Misses != MagicNumber {
		t.Errorf("Misses = %d, expected %d", e.Difficulty().Misses, MagicNumber)
	}
	if e.Lane(0).Len() != 0 {
		t.Errorf("lane 0 holds %d units, expected escaped units removed", e.Lane(0).Len())
	}
}

func TestBulletHitsLaneHead(t *testing.T) {
	e := New(testGeometry, lanes(2))
	e.Lane(1).Push(core.NewRect(500, 104, 85, 102))
	e.bullets = []Bullet{{X: 560, Y: 155}}

	if res := e.Step(1); res.Over {
		t.Fatalf("Step() = %+v, expected no terminal outcome", res)
	}

	if e.Difficulty().Kills != 1 {
		t.Errorf("Kills = %d, expected 1", e.Difficulty().Kills)
	}
	if e.Lane(1).Len() != 0 {
		t.Errorf("lane 1 holds %d units, expected the head destroyed", e.Lane(1).Len())
	}
	if len(e.Bullets()) != 0 {
		t.Errorf("bullets = %v, expected the hitting bullet removed", e.Bullets())
	}
}

func TestHitTakesPrecedenceOverDiscard(t *testing.T) {
	e := New(testGeometry, lanes(2))
	e.Lane(0).Push(core.Rect{Left: -100, Top: 1, Right: -15, Bottom: 103})
	e.bullets = []Bullet{
		{X: -23, Y: 50},  // Hits and leaves in the same tick
		{X: -50, Y: 150}, // Leaves
		{X: -60, Y: 150}, // Leaves, but only one discard per tick
	}

	e.Step(1)

	if e.Difficulty().Kills != 1 {
		t.Errorf("Kills = %d, expected 1", e.Difficulty().Kills)
	}
	bullets := e.Bullets()
	if len(bullets) != 1 || bullets[0].X != -67 {
		t.Errorf("bullets = %v, expected only the third bullet left", bullets)
	}
}

func TestOnlyHeadCollides(t *testing.T) {
	e := New(testGeometry, lanes(2))
	e.Lane(1).Push(core.NewRect(100, 104, 85, 102))
	e.Lane(1).Push(core.NewRect(500, 104, 85, 102))
	e.bullets = []Bullet{{X: 560, Y: 155}}

	e.Step(1)

	if e.Difficulty().Kills != 0 {
		t.Errorf("Kills = %d, expected a non-head unit to be ignored", e.Difficulty().Kills)
	}
	if e.Lane(1).Len() != 2 {
		t.Errorf("lane 1 holds %d units, expected 2", e.Lane(1).Len())
	}
}

func TestCrash(t *testing.T) {
	tests := []struct {
		name string
		pos  float64
		rect core.Rect
		over bool
	}{
		{"top corner in lane 0", 1, core.NewRect(900, 1, 85, 102), true},
		{"bottom corner in lane 1", 50, core.NewRect(900, 104, 85, 102), true},
		{"enemy not yet arrived", 1, core.NewRect(800, 1, 85, 102), false},
		{"different lane", 1, core.NewRect(900, 207, 85, 102), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := New(testGeometry, lanes(2))
			lane := e.LaneOf(tc.rect.Top)
			e.Lane(lane).Push(tc.rect)

			res := e.Step(tc.pos)
			if res.Over != tc.over {
				t.Errorf("Step(%v).Over = %v, expected %v", tc.pos, res.Over, tc.over)
			}
			if tc.over && res.Reason != core.EndCrash {
				t.Errorf("Reason = %v, expected crash", res.Reason)
			}
		})
	}
}

func TestBulletSpawnsAtMuzzle(t *testing.T) {
	e := New(testGeometry, lanes(2))

	var fired []Bullet
	for range 52 {
		e.Step(40.3)
		if len(e.Bullets()) > 0 {
			fired = e.Bullets()
			break
		}
	}

	if len(fired) != 1 {
		t.Fatalf("bullets = %v, expected one bullet after the first cadence", fired)
	}
	// Spawned at 1080-102-34, then moved by one bullet step
	if fired[0].X != 944-7 || fired[0].Y != 91 {
		t.Errorf("bullet = %+v, expected {X:937 Y:91}", fired[0])
	}
}

func TestUnitsNeverOvertake(t *testing.T) {
	e := New(testGeometry, lanes(0, 1, 2, 2, 1, 0, 1))

	for tick := 0; tick < 3000; tick++ {
		// Sweep the player so bullets reach every lane
		pos := float64((tick / 40 % 3) * 103)
		res := e.Step(pos)

		for i := range Lanes {
			units := e.Lane(i).Units()
			for j := 1; j < len(units); j++ {
				if units[j].Left > units[j-1].Left {
					t.Fatalf("tick %d lane %d: unit %d (left %v) overtook unit %d (left %v)",
						tick, i, j, units[j].Left, j-1, units[j-1].Left)
				}
			}
		}

		if res.Over {
			break
		}
	}
}

func TestResetEqualsFresh(t *testing.T) {
	e := New(testGeometry, lanes(0, 2, 1))
	for range 700 {
		if e.Step(120).Over {
			break
		}
	}
	e.Reset()

	fresh := New(testGeometry, lanes(0))

	got, err := e.Snapshot().Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	expected, err := fresh.Snapshot().Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	if !bytes.Equal(got, expected) {
		t.Error("reset engine differs from a fresh engine")
	}

	d := e.Difficulty()
	if d.Kills != 0 || d.Misses != 0 || len(e.Bullets()) != 0 {
		t.Errorf("after Reset: kills=%d misses=%d bullets=%d, expected all zero", d.Kills, d.Misses, len(e.Bullets()))
	}
}

func TestSnapshotDeterminism(t *testing.T) {
	e1 := New(testGeometry, lanes(1))
	for range 300 {
		e1.Step(1)
	}

	data, err := e1.Snapshot().Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	snap, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("DecodeSnapshot() error: %v", err)
	}

	e2 := New(testGeometry, lanes(1))
	e2.ApplySnapshot(snap)

	for range 200 {
		r1 := e1.Step(1)
		r2 := e2.Step(1)
		if r1 != r2 {
			t.Fatalf("Step() results differ: %+v vs %+v", r1, r2)
		}
	}

	s1, s2 := e1.Snapshot(), e2.Snapshot()
	if s1.Hash() != s2.Hash() {
		t.Errorf("Hash() = %d, expected %d", s2.Hash(), s1.Hash())
	}
}

// recorder counts draw calls.
type recorder struct {
	rects   []core.Rect
	circles int
}

func (r *recorder) Width() float64  { return testW }
func (r *recorder) Height() float64 { return testH }

func (r *recorder) FillRect(rect core.Rect, _ core.Color) {
	r.rects = append(r.rects, rect)
}

func (r *recorder) FillCircle(core.Point, float64, core.Color) {
	r.circles++
}

func (r *recorder) DrawLine(core.Point, core.Point, core.Color)      {}
func (r *recorder) DrawText(core.Point, string, float64, core.Color) {}

func (r *recorder) MeasureText(text string, _ float64) float64 {
	return float64(len(text))
}

func TestRender(t *testing.T) {
	e := New(testGeometry, lanes(0))
	e.Lane(1).Push(core.NewRect(100, 104, 85, 102))
	e.bullets = []Bullet{{X: 500, Y: 50}}

	idle := &recorder{}
	e.Render(idle, false, 1, core.DefaultTheme())
	if len(idle.rects) != 2 || idle.circles != 0 {
		t.Errorf("idle render drew %d rects and %d circles, expected only the player", len(idle.rects), idle.circles)
	}

	playing := &recorder{}
	e.Render(playing, true, 1, core.DefaultTheme())
	if len(playing.rects) != 4 || playing.circles != 1 {
		t.Errorf("render drew %d rects and %d circles, expected 4 and 1", len(playing.rects), playing.circles)
	}

	player := playing.rects[0]
	if player.Left != testW-102 || player.Top != 1 || player.Right != testW {
		t.Errorf("player rect = %+v, expected right-aligned at pos 1", player)
	}
}
