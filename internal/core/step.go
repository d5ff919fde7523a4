package core

// RandomSource yields uniform integers in [0, n).
// *math/rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// EndReason explains why an engine reported a terminal outcome.
type EndReason int

const (
	EndNone        EndReason = iota
	EndMissCeiling           // Too many enemies slipped past
	EndCrash                 // Enemy rammed the player tank
	EndCleared               // Every block cleared and the ball returned
	EndBallLost              // Ball got past the racket
)

// String returns a human-readable name for the reason.
func (r EndReason) String() string {
	switch r {
	case EndMissCeiling:
		return "miss ceiling"
	case EndCrash:
		return "crash"
	case EndCleared:
		return "cleared"
	case EndBallLost:
		return "ball lost"
	default:
		return "none"
	}
}

// StepResult contains the outcome of a single engine step.
type StepResult struct {
	Over   bool      // Terminal outcome; the header moves Playing to Over
	Reason EndReason // Set when Over is true
}

// End builds a terminal step result.
func End(reason EndReason) StepResult {
	return StepResult{Over: true, Reason: reason}
}
