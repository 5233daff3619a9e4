package reef

// HighScoreKey is the key-value entry holding the best floored score.
const HighScoreKey = "reef-high-score"

// View is a read-only copy of everything a frame needs to be drawn.
type View struct {
	State     GameState
	Player    Player
	Obstacles []Obstacle
	Particles []Particle
}

// Renderer draws one frame. It is called once per Step, after the update.
type Renderer interface {
	Render(v View)
}

// Store is the persistent key-value store holding the high score.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(View)

// Render calls f(v).
func (f RendererFunc) Render(v View) { f(v) }

type nopRenderer struct{}

func (nopRenderer) Render(View) {}
