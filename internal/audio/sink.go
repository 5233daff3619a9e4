// Package audio plays the short synthesized cues of the game.
package audio

// Cue names understood by the players in this package.
const (
	CueJump  = "jump"
	CueHit   = "hit"
	CueScore = "score"
)

// Sink receives fire-and-forget cues. Implementations never report errors;
// a cue that cannot be played is dropped.
type Sink interface {
	Play(cue string, volume float64)
}

// Nop is a Sink that discards every cue.
type Nop struct{}

// Play does nothing.
func (Nop) Play(string, float64) {}
