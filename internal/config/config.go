// Package config provides YAML-based configuration loading for Reef Runner.
// Every tunable of the simulation lives here: canvas bounds, player physics,
// obstacle geometry, spawn distances and the speed ramp.
package config

import "time"

// ReefConfig contains all configuration for the game.
// It is loaded once per process and never mutated afterwards.
type ReefConfig struct {
	Canvas    CanvasConfig   `yaml:"canvas"`
	Player    PlayerConfig   `yaml:"player"`
	Ground    GroundConfig   `yaml:"ground"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Game      GameConfig     `yaml:"game"`
	Particles ParticleConfig `yaml:"particles"`
	Audio     AudioConfig    `yaml:"audio"`
}

// CanvasConfig defines the world size in canvas pixels.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player's box and physics.
type PlayerConfig struct {
	X            float64          `yaml:"x"`
	StartY       float64          `yaml:"start_y"`
	TopBound     float64          `yaml:"top_bound"`
	Width        float64          `yaml:"width"`
	Height       float64          `yaml:"height"`
	DiveHeight   float64          `yaml:"dive_height"`
	JumpForce    float64          `yaml:"jump_force"` // negative = up
	Gravity      float64          `yaml:"gravity"`
	MaxFallSpeed float64          `yaml:"max_fall_speed"`
	Hitbox       Inset            `yaml:"hitbox"`
	Animations   PlayerAnimations `yaml:"animations"`
}

// PlayerAnimations holds one animation per motion key.
type PlayerAnimations struct {
	Running Animation `yaml:"running"`
	Jumping Animation `yaml:"jumping"`
	Ducking Animation `yaml:"ducking"`
	Dead    Animation `yaml:"dead"`
}

// Animation is a frame count and the time each frame is shown.
// A zero FrameTime means the animation never advances.
type Animation struct {
	Frames    int           `yaml:"frames"`
	FrameTime time.Duration `yaml:"frame_time"`
}

// Inset is the margin removed from each side of a box to form its hitbox.
type Inset struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// GroundConfig defines the seafloor line and its texture tile.
type GroundConfig struct {
	Y         float64 `yaml:"y"`
	TileWidth float64 `yaml:"tile_width"`
}

// ObstacleConfig defines spawn distances and the kind catalog.
type ObstacleConfig struct {
	MinDistance float64               `yaml:"min_distance"`
	MaxDistance float64               `yaml:"max_distance"`
	Kinds       map[string]KindConfig `yaml:"kinds"`
}

// KindConfig is the geometry, placement and animation of one obstacle kind.
type KindConfig struct {
	Width     float64    `yaml:"width"`
	Height    float64    `yaml:"height"`
	Placement Placement  `yaml:"placement"`
	Hitbox    Inset      `yaml:"hitbox"`
	Animation *Animation `yaml:"animation,omitempty"` // nil for static kinds
}

// PlacementMode selects how a kind's spawn y is computed.
type PlacementMode string

const (
	// PlaceGround puts the obstacle's bottom Offset pixels above the ground line.
	PlaceGround PlacementMode = "ground"
	// PlaceFixed puts the obstacle's top at y = Offset.
	PlaceFixed PlacementMode = "fixed"
	// PlaceBand puts the obstacle's top uniformly in [Offset, Offset+Span).
	PlaceBand PlacementMode = "band"
)

// Placement describes the vertical spawn band of a kind.
type Placement struct {
	Mode   PlacementMode `yaml:"mode"`
	Offset float64       `yaml:"offset"`
	Span   float64       `yaml:"span"`
}

// GameConfig defines scoring and the speed ramp.
type GameConfig struct {
	InitialSpeed          float64 `yaml:"initial_speed"`
	SpeedIncrease         float64 `yaml:"speed_increase"`
	SpeedIncreaseInterval int     `yaml:"speed_increase_interval"`
	MaxSpeed              float64 `yaml:"max_speed"`
	ScorePerFrame         float64 `yaml:"score_per_frame"`
	ScoreCueInterval      int     `yaml:"score_cue_interval"`
}

// ParticleConfig defines the ambient bubble pool.
type ParticleConfig struct {
	Count         int     `yaml:"count"`
	MinSpeed      float64 `yaml:"min_speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
	MinSize       float64 `yaml:"min_size"`
	MaxSize       float64 `yaml:"max_size"`
	Rise          float64 `yaml:"rise"` // vertical drift as a fraction of speed
	RespawnMargin float64 `yaml:"respawn_margin"`
}

// AudioConfig defines cue volumes and the output sample rate.
type AudioConfig struct {
	Enabled    bool               `yaml:"enabled"`
	SampleRate int                `yaml:"sample_rate"`
	Volumes    map[string]float64 `yaml:"volumes"`
}

// Volume returns the configured volume for a cue, or 1 when unset.
func (a AudioConfig) Volume(cue string) float64 {
	if v, ok := a.Volumes[cue]; ok {
		return v
	}
	return 1.0
}

// Names of the obstacle kinds in the catalog.
const (
	KindSmallPredator = "small_predator"
	KindLargePredator = "large_predator"
	KindFloaterHigh   = "floater_high"
	KindFloaterLow    = "floater_low"
	KindDrifter       = "drifter"
)

// KindNames lists the catalog in its canonical order.
var KindNames = []string{
	KindSmallPredator,
	KindLargePredator,
	KindFloaterHigh,
	KindFloaterLow,
	KindDrifter,
}
