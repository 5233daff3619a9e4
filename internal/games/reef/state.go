// Package reef implements Reef Runner, an underwater endless runner.
// A fish swims against the current, rising and diving past sharks,
// octopuses and jellyfish while the score and scroll speed climb.
package reef

import "time"

// Phase is the top-level game state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// MotionState is the fine-grained movement mode of the player.
type MotionState int

const (
	Swimming MotionState = iota
	Rising
	Falling // diving while the dive control is held
	Dead
)

// String returns a human-readable name for the motion state.
func (m MotionState) String() string {
	switch m {
	case Swimming:
		return "swimming"
	case Rising:
		return "rising"
	case Falling:
		return "falling"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// GameState is the session-wide state owned by the engine.
type GameState struct {
	Phase        Phase
	Score        float64 // accrues per frame; displayed floored
	HighScore    int
	Speed        float64 // scroll speed in canvas pixels per frame
	ScrollOffset float64 // ground texture offset in (-tile, 0]
	Elapsed      time.Duration
}
