package tank

// Difficulty constants.
const (
	MagicNumber        = 8   // Miss ceiling and level target increment
	InitialEnemySpeed  = 2   // Units per tick
	InitialBulletSpeed = 7   // Units per tick
	EnemySpacingGap    = 60  // Added to the tank length for the first spacing
	InitialBulletGap   = 360 // Bullet spacing at level 1
	EnemySpacingStep   = 12  // Enemy spacing reduction per level, also its floor
	BulletSpacingStep  = 30  // Bullet spacing reduction per level, also its floor
)

// Difficulty is the escalating state of one shooter game.
type Difficulty struct {
	LevelTarget   int // Kills needed for the next level
	Kills         int // Kills in the current level
	Misses        int // Enemies that crossed the right edge
	EnemySpeed    int
	BulletSpeed   int
	EnemySpacing  int
	BulletSpacing int
	Level         int // Starts at 1
}

// NewDifficulty returns level 1 settings. The initial enemy spacing
// depends on the tank length so one tank fits between two spawns.
func NewDifficulty(tankLength int) Difficulty {
	return Difficulty{
		LevelTarget:   MagicNumber,
		EnemySpeed:    InitialEnemySpeed,
		BulletSpeed:   InitialBulletSpeed,
		EnemySpacing:  tankLength + EnemySpacingGap,
		BulletSpacing: InitialBulletGap,
		Level:         1,
	}
}

// RecordKill counts a destroyed enemy and levels up when the target is
// reached. Returns true on level-up.
func (d *Difficulty) RecordKill() bool {
	d.Kills++
	if d.Kills < d.LevelTarget {
		return false
	}
	d.levelUp()
	return true
}

// RecordMiss counts an escaped enemy. Returns true once the ceiling is hit.
func (d *Difficulty) RecordMiss() bool {
	d.Misses++
	return d.Misses >= MagicNumber
}

func (d *Difficulty) levelUp() {
	d.Level++
	d.LevelTarget += MagicNumber
	d.Kills = 0
	d.EnemySpeed++
	d.BulletSpeed += 2
	d.EnemySpacing = max(d.EnemySpacing-EnemySpacingStep, EnemySpacingStep)
	d.BulletSpacing = max(d.BulletSpacing-BulletSpacingStep, BulletSpacingStep)
}
