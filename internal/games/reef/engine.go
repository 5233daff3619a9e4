package reef

import (
	"errors"
	"io"
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/reef-runner/internal/audio"
	"github.com/vovakirdan/reef-runner/internal/config"
	"github.com/vovakirdan/reef-runner/internal/core"
	"github.com/vovakirdan/reef-runner/internal/storage"
)

// Engine owns the whole simulation. It is driven by repeated Step calls
// from a single goroutine and never blocks.
type Engine struct {
	cfg       config.ReefConfig
	state     GameState
	player    Player
	obstacles []Obstacle
	bubbles   *Bubbles
	gen       *Generator
	tracker   *Tracker
	input     *core.Input
	rng       *rand.Rand
	running   bool

	renderer Renderer
	audio    audio.Sink
	store    Store
	log      *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithRenderer sets the render sink.
func WithRenderer(r Renderer) Option {
	return func(e *Engine) { e.renderer = r }
}

// WithAudio sets the audio sink.
func WithAudio(s audio.Sink) Option {
	return func(e *Engine) { e.audio = s }
}

// WithStore sets the persistent store used for the high score.
func WithStore(s Store) Option {
	return func(e *Engine) { e.store = s }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithRand sets the random source for spawns and bubbles.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithInput sets the held-control set polled at the start of every frame.
func WithInput(in *core.Input) Option {
	return func(e *Engine) { e.input = in }
}

// New creates an engine in the Menu phase with the high score read from
// the store. A nil sink is replaced by a no-op; without a store the high
// score lives in memory only.
func New(cfg config.ReefConfig, opts ...Option) *Engine {
	e := &Engine{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}

	if e.renderer == nil {
		e.renderer = nopRenderer{}
	}
	if e.audio == nil {
		e.audio = audio.Nop{}
	}
	if e.store == nil {
		e.store = storage.NewMemory()
	}
	if e.log == nil {
		e.log = log.New(io.Discard)
	}
	if e.input == nil {
		e.input = core.NewInput()
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e.gen = NewGenerator(cfg, e.rng)
	e.tracker = NewTracker(cfg.Game, cfg.Ground.TileWidth)
	e.bubbles = NewBubbles(cfg.Particles, cfg.Canvas.Width, cfg.Canvas.Height, e.rng)
	e.player = newPlayer(cfg.Player)
	e.state = GameState{
		Phase:     PhaseMenu,
		HighScore: e.loadHighScore(),
		Speed:     cfg.Game.InitialSpeed,
	}
	return e
}

// loadHighScore reads the stored record. Any failure yields 0; a broken
// store is swapped for an in-memory one for the rest of the session.
func (e *Engine) loadHighScore() int {
	v, err := e.store.Get(HighScoreKey)
	if errors.Is(err, storage.ErrNotFound) {
		return 0
	}
	if err != nil {
		e.log.Warn("high score unavailable, keeping it in memory", "error", err)
		e.store = storage.NewMemory()
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		e.log.Warn("ignoring malformed high score", "value", v)
		return 0
	}
	return n
}

// Start begins accepting frames and input. It is a no-op if already running.
func (e *Engine) Start() {
	if e.running {
		return
	}
	e.running = true
	e.log.Debug("engine started")
}

// Stop halts the engine. State stays readable.
func (e *Engine) Stop() {
	if !e.running {
		return
	}
	e.running = false
	e.input.Clear()
	e.log.Debug("engine stopped", "score", e.Score(), "high_score", e.state.HighScore)
}

// Running reports whether the engine accepts frames.
func (e *Engine) Running() bool { return e.running }

// Frame is the driver entry point: it steps the engine if running and
// reports whether it did.
func (e *Engine) Frame(dt time.Duration) bool {
	if !e.running {
		return false
	}
	e.Step(dt)
	return true
}

// Press delivers a discrete input event. It is applied immediately.
func (e *Engine) Press(a core.Action) {
	if !e.running {
		return
	}
	switch a {
	case core.ActionSwimUp:
		if e.state.Phase != PhasePlaying {
			e.startGame()
		}
		e.player.swimUp(e.cfg.Player)
		e.cue(audio.CueJump)
	case core.ActionDive:
		if e.state.Phase == PhasePlaying {
			e.player.Motion = Falling
		}
	}
}

// Input returns the held-control set the engine polls.
func (e *Engine) Input() *core.Input { return e.input }

// Score returns the floored current score.
func (e *Engine) Score() int { return int(math.Floor(e.state.Score)) }

// HighScore returns the best floored score seen by this engine or its store.
func (e *Engine) HighScore() int { return e.state.HighScore }

// State returns a copy of the game state.
func (e *Engine) State() GameState { return e.state }

// Player returns a copy of the player.
func (e *Engine) Player() Player { return e.player }

// Obstacles returns a copy of the live obstacles in spawn order.
func (e *Engine) Obstacles() []Obstacle {
	out := make([]Obstacle, len(e.obstacles))
	copy(out, e.obstacles)
	return out
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.ReefConfig { return e.cfg }

// Snapshot returns the current View.
func (e *Engine) Snapshot() View {
	return View{
		State:     e.state,
		Player:    e.player,
		Obstacles: e.Obstacles(),
		Particles: e.bubbles.Particles(),
	}
}

// Step advances one frame and renders it. Only the Playing phase updates
// the simulation; other phases just render.
func (e *Engine) Step(dt time.Duration) {
	if e.state.Phase == PhasePlaying {
		e.update(dt)
	}
	e.render()
}

// Redraw renders the current state without advancing it.
func (e *Engine) Redraw() {
	e.render()
}

func (e *Engine) update(dt time.Duration) {
	e.state.Elapsed += dt
	e.player.update(dt, e.input.Held(core.ActionDive), e.cfg.Player, e.cfg.Ground.Y)

	speed := e.state.Speed
	live := e.obstacles[:0]
	for _, o := range e.obstacles {
		o.advance(speed, dt)
		if !o.Expired() {
			live = append(live, o)
		}
	}
	e.obstacles = live
	if o, ok := e.gen.Advance(speed); ok {
		e.obstacles = append(e.obstacles, o)
	}

	e.bubbles.Update()

	pr := e.tracker.Advance()
	e.state.Score = e.tracker.Score()
	e.state.Speed = e.tracker.Speed()
	e.state.ScrollOffset = e.tracker.Scroll()
	if pr.SpeedUp {
		e.log.Debug("speed up", "score", e.Score(), "speed", e.state.Speed)
	}
	if pr.Milestone {
		e.cue(audio.CueScore)
	}

	if _, hit := FirstCollision(e.player, e.obstacles, e.cfg); hit {
		e.gameOver()
	}
}

// startGame resets the session and enters Playing.
func (e *Engine) startGame() {
	from := e.state.Phase
	e.tracker.Reset()
	e.gen.Reset()
	e.obstacles = e.obstacles[:0]
	e.player = newPlayer(e.cfg.Player)
	e.input.Clear()
	e.state.Phase = PhasePlaying
	e.state.Score = e.tracker.Score()
	e.state.Speed = e.tracker.Speed()
	e.state.ScrollOffset = e.tracker.Scroll()
	e.state.Elapsed = 0
	e.log.Info("phase", "from", from, "to", PhasePlaying)
}

func (e *Engine) gameOver() {
	e.state.Phase = PhaseGameOver
	e.player.Motion = Dead
	e.cue(audio.CueHit)

	score := e.Score()
	e.log.Info("phase", "from", PhasePlaying, "to", PhaseGameOver,
		"score", score, "speed", e.state.Speed, "elapsed", e.state.Elapsed.Round(time.Millisecond))
	if score > e.state.HighScore {
		e.state.HighScore = score
		e.log.Info("new high score", "score", score)
		if err := e.store.Set(HighScoreKey, strconv.Itoa(score)); err != nil {
			e.log.Warn("cannot persist high score", "error", err)
		}
	}
}

// cue plays an audio cue. A panicking sink is dropped for the session.
func (e *Engine) cue(name string) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Warn("audio sink failed, muting", "panic", r)
			e.audio = audio.Nop{}
		}
	}()
	e.audio.Play(name, e.cfg.Audio.Volume(name))
}

// render hands the frame to the renderer. A panicking renderer is dropped
// for the session and the simulation keeps running.
func (e *Engine) render() {
	defer func() {
		if r := recover(); r != nil {
			e.log.Warn("renderer failed, disabling", "panic", r)
			e.renderer = nopRenderer{}
		}
	}()
	e.renderer.Render(e.Snapshot())
}
