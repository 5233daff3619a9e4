package reef

import (
	"time"

	"github.com/vovakirdan/reef-runner/internal/config"
	"github.com/vovakirdan/reef-runner/internal/core"
)

// Animator is a looping frame counter.
type Animator struct {
	Frame int
	Timer time.Duration
}

// Tick advances the timer by dt and steps the frame once the clip's frame
// time has elapsed. Clips with a zero frame time never advance.
func (a *Animator) Tick(dt time.Duration, clip config.Animation) {
	a.Timer += dt
	if clip.FrameTime > 0 && a.Timer >= clip.FrameTime && clip.Frames > 0 {
		a.Timer = 0
		a.Frame = (a.Frame + 1) % clip.Frames
	}
}

// Player is the fish.
type Player struct {
	X, Y   float64
	VY     float64 // positive is down
	Motion MotionState
	Animator
}

// newPlayer places the player at its start position.
func newPlayer(cfg config.PlayerConfig) Player {
	return Player{X: cfg.X, Y: cfg.StartY, Motion: Swimming}
}

// Height returns the current box height, which shrinks while diving.
func (p Player) Height(cfg config.PlayerConfig) float64 {
	if p.Motion == Falling {
		return cfg.DiveHeight
	}
	return cfg.Height
}

// Box returns the player's visual bounding box.
func (p Player) Box(cfg config.PlayerConfig) core.Box {
	return core.NewBox(p.X, p.Y, cfg.Width, p.Height(cfg))
}

// Clip returns the animation for the current motion state.
func (p Player) Clip(cfg config.PlayerConfig) config.Animation {
	switch p.Motion {
	case Rising:
		return cfg.Animations.Jumping
	case Falling:
		return cfg.Animations.Ducking
	case Dead:
		return cfg.Animations.Dead
	default:
		return cfg.Animations.Running
	}
}

// swimUp applies the upward impulse. It is legal at any height or velocity.
func (p *Player) swimUp(cfg config.PlayerConfig) {
	p.VY = cfg.JumpForce
	p.Motion = Rising
}

// update integrates one frame of motion. diveHeld is the polled dive control.
func (p *Player) update(dt time.Duration, diveHeld bool, cfg config.PlayerConfig, groundY float64) {
	switch {
	case diveHeld:
		p.Motion = Falling
	case p.Motion == Falling:
		p.Motion = Swimming
	}

	p.VY += cfg.Gravity
	if p.VY > cfg.MaxFallSpeed {
		p.VY = cfg.MaxFallSpeed
	}
	p.Y += p.VY

	floor := groundY - cfg.Height
	if p.Y = core.ClampF(p.Y, cfg.TopBound, floor); p.Y == cfg.TopBound || p.Y == floor {
		p.VY = 0
	}

	if p.Motion == Rising && abs(p.VY) < 1 {
		p.Motion = Swimming
	}

	p.Tick(dt, p.Clip(cfg))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
