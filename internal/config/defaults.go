package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/reef.yaml
var defaultReefYAML []byte

// DefaultReefConfig returns the built-in configuration.
// It mirrors defaults/reef.yaml and is used when the embedded file cannot be parsed.
func DefaultReefConfig() ReefConfig {
	return ReefConfig{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 200,
		},
		Player: PlayerConfig{
			X:            50,
			StartY:       100,
			TopBound:     20,
			Width:        40,
			Height:       30,
			DiveHeight:   20,
			JumpForce:    -8,
			Gravity:      0.3,
			MaxFallSpeed: 6,
			Hitbox:       Inset{X: 8, Y: 5},
			Animations: PlayerAnimations{
				Running: Animation{Frames: 2, FrameTime: 300 * time.Millisecond},
				Jumping: Animation{Frames: 1},
				Ducking: Animation{Frames: 2, FrameTime: 300 * time.Millisecond},
				Dead:    Animation{Frames: 1},
			},
		},
		Ground: GroundConfig{
			Y:         170,
			TileWidth: 24,
		},
		Obstacles: ObstacleConfig{
			MinDistance: 400,
			MaxDistance: 800,
			Kinds: map[string]KindConfig{
				KindSmallPredator: {
					Width:     50,
					Height:    25,
					Placement: Placement{Mode: PlaceGround, Offset: 20},
					Hitbox:    Inset{X: 8, Y: 5},
				},
				KindLargePredator: {
					Width:     70,
					Height:    35,
					Placement: Placement{Mode: PlaceGround, Offset: 30},
					Hitbox:    Inset{X: 8, Y: 5},
				},
				KindFloaterHigh: {
					Width:     45,
					Height:    40,
					Placement: Placement{Mode: PlaceFixed, Offset: 30},
					Hitbox:    Inset{X: 5, Y: 3},
					Animation: &Animation{Frames: 3, FrameTime: 400 * time.Millisecond},
				},
				KindFloaterLow: {
					Width:     45,
					Height:    40,
					Placement: Placement{Mode: PlaceGround, Offset: 10},
					Hitbox:    Inset{X: 5, Y: 3},
					Animation: &Animation{Frames: 3, FrameTime: 400 * time.Millisecond},
				},
				KindDrifter: {
					Width:     30,
					Height:    35,
					Placement: Placement{Mode: PlaceBand, Offset: 40, Span: 60},
					Hitbox:    Inset{X: 6, Y: 4},
					Animation: &Animation{Frames: 2, FrameTime: 500 * time.Millisecond},
				},
			},
		},
		Game: GameConfig{
			InitialSpeed:          3,
			SpeedIncrease:         0.05,
			SpeedIncreaseInterval: 150,
			MaxSpeed:              15,
			ScorePerFrame:         0.1,
			ScoreCueInterval:      100,
		},
		Particles: ParticleConfig{
			Count:         8,
			MinSpeed:      0.3,
			MaxSpeed:      1.1,
			MinSize:       3,
			MaxSize:       11,
			Rise:          0.3,
			RespawnMargin: 100,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volumes: map[string]float64{
				"jump":  0.3,
				"hit":   0.5,
				"score": 0.2,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultReefYAML
}
