package reef

import (
	"math"

	"github.com/vovakirdan/reef-runner/internal/config"
)

// Tracker advances the score and ramps the scroll speed.
type Tracker struct {
	cfg       config.GameConfig
	tile      float64
	score     float64
	speed     float64
	scroll    float64
	lastFloor int
}

// Progress reports threshold events crossed by one Advance call.
type Progress struct {
	SpeedUp   bool // speed was raised this frame
	Milestone bool // floored score reached a new multiple of the cue interval
}

// NewTracker creates a tracker at initial speed.
func NewTracker(cfg config.GameConfig, tileWidth float64) *Tracker {
	t := &Tracker{cfg: cfg, tile: tileWidth}
	t.Reset()
	return t
}

// Reset zeroes the score and scroll and restores the initial speed.
func (t *Tracker) Reset() {
	t.score = 0
	t.speed = t.cfg.InitialSpeed
	t.scroll = 0
	t.lastFloor = 0
}

// Score returns the raw score.
func (t *Tracker) Score() float64 { return t.score }

// Speed returns the current scroll speed.
func (t *Tracker) Speed() float64 { return t.speed }

// Scroll returns the ground texture offset.
func (t *Tracker) Scroll() float64 { return t.scroll }

// Advance adds one frame of score, then scrolls the ground. The speed ramp
// and the milestone fire only on the frame where the floored score changes
// to a qualifying multiple, never again while it stays there.
func (t *Tracker) Advance() Progress {
	var pr Progress

	t.score += t.cfg.ScorePerFrame
	if f := int(math.Floor(t.score)); f != t.lastFloor {
		t.lastFloor = f
		if f > 0 && f%t.cfg.SpeedIncreaseInterval == 0 && t.speed < t.cfg.MaxSpeed {
			t.speed = math.Min(t.speed+t.cfg.SpeedIncrease, t.cfg.MaxSpeed)
			pr.SpeedUp = true
		}
		if t.cfg.ScoreCueInterval > 0 && f > 0 && f%t.cfg.ScoreCueInterval == 0 {
			pr.Milestone = true
		}
	}

	t.scroll -= t.speed
	if t.scroll <= -t.tile {
		t.scroll = 0
	}
	return pr
}
