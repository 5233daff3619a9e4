package config

import (
	"errors"
	"fmt"
)

// SpeedCeiling is the highest scroll speed a config may ramp to.
const SpeedCeiling = 15

// ValidationError describes one invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Field, e.Message)
}

// Validate checks the configuration for values the simulation cannot run with.
// All problems are reported together.
func (c ReefConfig) Validate() error {
	var errs []error
	fail := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		fail("canvas", "dimensions must be positive, got %vx%v", c.Canvas.Width, c.Canvas.Height)
	}

	p := c.Player
	if p.Width <= 0 || p.Height <= 0 || p.DiveHeight <= 0 {
		fail("player", "width, height and dive_height must be positive")
	}
	if p.TopBound >= c.Ground.Y-p.Height {
		fail("player.top_bound", "must be above ground.y - player.height (%v)", c.Ground.Y-p.Height)
	}
	if p.MaxFallSpeed <= 0 {
		fail("player.max_fall_speed", "must be positive, got %v", p.MaxFallSpeed)
	}
	if p.Hitbox.X < 0 || p.Hitbox.Y < 0 || 2*p.Hitbox.X >= p.Width || 2*p.Hitbox.Y >= p.DiveHeight {
		fail("player.hitbox", "inset (%v, %v) leaves no hitbox", p.Hitbox.X, p.Hitbox.Y)
	}
	for name, anim := range map[string]Animation{
		"running": p.Animations.Running,
		"jumping": p.Animations.Jumping,
		"ducking": p.Animations.Ducking,
		"dead":    p.Animations.Dead,
	} {
		validateAnimation("player.animations."+name, anim, fail)
	}

	if c.Ground.TileWidth <= 0 {
		fail("ground.tile_width", "must be positive, got %v", c.Ground.TileWidth)
	}

	o := c.Obstacles
	if o.MinDistance <= 0 || o.MinDistance > o.MaxDistance {
		fail("obstacles", "need 0 < min_distance <= max_distance, got %v..%v", o.MinDistance, o.MaxDistance)
	}
	for _, name := range KindNames {
		k, ok := o.Kinds[name]
		field := "obstacles.kinds." + name
		if !ok {
			fail(field, "missing from catalog")
			continue
		}
		if k.Width <= 0 || k.Height <= 0 {
			fail(field, "width and height must be positive")
		}
		if k.Hitbox.X < 0 || k.Hitbox.Y < 0 {
			fail(field+".hitbox", "inset must not be negative")
		}
		switch k.Placement.Mode {
		case PlaceGround, PlaceFixed:
		case PlaceBand:
			if k.Placement.Span < 0 {
				fail(field+".placement.span", "must not be negative")
			}
		default:
			fail(field+".placement.mode", "unknown mode %q", k.Placement.Mode)
		}
		if k.Animation != nil {
			if name == KindSmallPredator || name == KindLargePredator {
				fail(field+".animation", "predators are not animated")
			} else {
				validateAnimation(field+".animation", *k.Animation, fail)
			}
		}
	}
	for name := range o.Kinds {
		if !knownKind(name) {
			fail("obstacles.kinds."+name, "unknown kind")
		}
	}

	g := c.Game
	if g.InitialSpeed <= 0 || g.MaxSpeed < g.InitialSpeed {
		fail("game", "need 0 < initial_speed <= max_speed, got %v..%v", g.InitialSpeed, g.MaxSpeed)
	}
	if g.MaxSpeed > SpeedCeiling {
		fail("game.max_speed", "must not exceed %d, got %v", SpeedCeiling, g.MaxSpeed)
	}
	if g.SpeedIncrease < 0 {
		fail("game.speed_increase", "must not be negative")
	}
	if g.SpeedIncreaseInterval <= 0 {
		fail("game.speed_increase_interval", "must be positive")
	}
	if g.ScorePerFrame <= 0 {
		fail("game.score_per_frame", "must be positive")
	}

	pc := c.Particles
	if pc.Count < 0 || pc.MinSpeed > pc.MaxSpeed || pc.MinSize > pc.MaxSize {
		fail("particles", "invalid ranges")
	}

	return errors.Join(errs...)
}

func validateAnimation(field string, a Animation, fail func(string, string, ...any)) {
	if a.Frames <= 0 {
		fail(field+".frames", "must be positive, got %d", a.Frames)
	}
	if a.FrameTime < 0 {
		fail(field+".frame_time", "must not be negative")
	}
}

func knownKind(name string) bool {
	for _, k := range KindNames {
		if k == name {
			return true
		}
	}
	return false
}
