package reef

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/reef-runner/internal/config"
	"github.com/vovakirdan/reef-runner/internal/core"
)

// Kind is the category of an obstacle.
type Kind int

const (
	SmallPredator Kind = iota // small shark
	LargePredator             // large shark
	FloaterHigh               // octopus near the surface
	FloaterLow                // octopus near the seafloor
	Drifter                   // jellyfish in mid-water
)

// Kinds lists every obstacle kind in catalog order.
var Kinds = []Kind{SmallPredator, LargePredator, FloaterHigh, FloaterLow, Drifter}

// String returns the catalog name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(config.KindNames) {
		return "unknown"
	}
	return config.KindNames[k]
}

// Payload is the kind-specific part of an obstacle: Static or Animated.
type Payload interface {
	isPayload()
}

// Static is the payload of kinds that are never animated.
type Static struct{}

// Animated is the payload of kinds that cycle through frames.
type Animated struct {
	Animator
	Clip config.Animation
}

func (Static) isPayload()   {}
func (Animated) isPayload() {}

// Obstacle is a single spawned creature.
type Obstacle struct {
	X, Y    float64
	W, H    float64
	Kind    Kind
	Payload Payload
}

// Box returns the obstacle's visual bounding box.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.W, o.H)
}

// Frame returns the current animation frame and whether the kind animates.
func (o Obstacle) Frame() (int, bool) {
	if a, ok := o.Payload.(Animated); ok {
		return a.Frame, true
	}
	return 0, false
}

// Expired reports whether the trailing edge has left the viewport.
func (o Obstacle) Expired() bool {
	return o.X+o.W <= 0
}

// advance scrolls the obstacle and steps its animation.
func (o *Obstacle) advance(speed float64, dt time.Duration) {
	o.X -= speed
	if a, ok := o.Payload.(Animated); ok {
		a.Tick(dt, a.Clip)
		o.Payload = a
	}
}

// Generator spawns obstacles at randomized distances.
type Generator struct {
	cfg       config.ObstacleConfig
	canvasW   float64
	groundY   float64
	rng       *rand.Rand
	countdown float64 // scroll distance remaining before the next spawn
}

// NewGenerator creates a generator with a full countdown.
func NewGenerator(cfg config.ReefConfig, rng *rand.Rand) *Generator {
	g := &Generator{
		cfg:     cfg.Obstacles,
		canvasW: cfg.Canvas.Width,
		groundY: cfg.Ground.Y,
		rng:     rng,
	}
	g.Reset()
	return g
}

// Reset sets the countdown back to the minimum spawn distance.
func (g *Generator) Reset() {
	g.countdown = g.cfg.MinDistance
}

// Advance consumes one frame of scroll distance. When the countdown runs
// out it returns a new obstacle and redraws the countdown.
func (g *Generator) Advance(speed float64) (Obstacle, bool) {
	g.countdown -= speed
	if g.countdown > 0 {
		return Obstacle{}, false
	}
	o := g.Spawn(Kinds[g.rng.Intn(len(Kinds))])
	g.countdown = g.cfg.MinDistance + g.rng.Float64()*(g.cfg.MaxDistance-g.cfg.MinDistance)
	return o, true
}

// Spawn builds an obstacle of the given kind at the right edge of the
// viewport. Existing obstacles are not consulted, so spawns may overlap.
func (g *Generator) Spawn(kind Kind) Obstacle {
	kc := g.cfg.Kinds[kind.String()]
	o := Obstacle{
		X:       g.canvasW,
		Y:       g.placement(kc),
		W:       kc.Width,
		H:       kc.Height,
		Kind:    kind,
		Payload: Static{},
	}
	if kc.Animation != nil {
		o.Payload = Animated{Clip: *kc.Animation}
	}
	return o
}

func (g *Generator) placement(kc config.KindConfig) float64 {
	p := kc.Placement
	switch p.Mode {
	case config.PlaceGround:
		return g.groundY - kc.Height - p.Offset
	case config.PlaceBand:
		return p.Offset + g.rng.Float64()*p.Span
	default:
		return p.Offset
	}
}
