package reef

import (
	"math/rand"

	"github.com/vovakirdan/reef-runner/internal/config"
)

// Particle is an ambient bubble.
type Particle struct {
	X, Y  float64
	Speed float64
	Size  float64
}

// Bubbles is the fixed-size pool of ambient particles.
type Bubbles struct {
	cfg  config.ParticleConfig
	w, h float64
	rng  *rand.Rand
	pool []Particle
}

// NewBubbles scatters cfg.Count bubbles over the canvas.
func NewBubbles(cfg config.ParticleConfig, w, h float64, rng *rand.Rand) *Bubbles {
	b := &Bubbles{cfg: cfg, w: w, h: h, rng: rng, pool: make([]Particle, cfg.Count)}
	for i := range b.pool {
		b.pool[i] = Particle{
			X:     rng.Float64() * w,
			Y:     rng.Float64() * h,
			Speed: cfg.MinSpeed + rng.Float64()*(cfg.MaxSpeed-cfg.MinSpeed),
			Size:  b.randomSize(),
		}
	}
	return b
}

func (b *Bubbles) randomSize() float64 {
	return b.cfg.MinSize + b.rng.Float64()*(b.cfg.MaxSize-b.cfg.MinSize)
}

// Update drifts every bubble left and up. A bubble that leaves past the
// top or left edge reappears beyond the right edge; its speed is kept.
func (b *Bubbles) Update() {
	for i := range b.pool {
		p := &b.pool[i]
		p.X -= p.Speed
		p.Y -= p.Speed * b.cfg.Rise
		if p.X+p.Size < 0 || p.Y+p.Size < 0 {
			p.X = b.w + b.rng.Float64()*b.cfg.RespawnMargin
			p.Y = b.rng.Float64() * b.h
			p.Size = b.randomSize()
		}
	}
}

// Particles returns a copy of the pool.
func (b *Bubbles) Particles() []Particle {
	out := make([]Particle, len(b.pool))
	copy(out, b.pool)
	return out
}
