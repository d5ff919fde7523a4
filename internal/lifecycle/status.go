// Package lifecycle holds the game status machine and the player controller
// shared by every header game variant.
package lifecycle

// Status is the lifecycle state of a header game.
type Status int

const (
	StatusPreparing Status = iota // Idle, resting frame and loading prompt
	StatusPlaying                 // Simulation advances every tick
	StatusOver                    // Frozen until reset
	StatusFinished                // Still simulating, shows the finished prompt
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPreparing:
		return "preparing"
	case StatusPlaying:
		return "playing"
	case StatusOver:
		return "over"
	case StatusFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Simulating reports whether entities advance in this status.
func (s Status) Simulating() bool {
	return s == StatusPlaying || s == StatusFinished
}

// CanTransition reports whether from -> to is an edge of the lifecycle.
// Playing -> Over is included; only the engine reports it.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusPreparing:
		return to == StatusPlaying
	case StatusPlaying:
		return to == StatusOver || to == StatusFinished
	case StatusFinished, StatusOver:
		return to == StatusPreparing
	}
	return false
}
