package reef

import (
	"errors"
	"math/rand"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/vovakirdan/reef-runner/internal/audio"
	"github.com/vovakirdan/reef-runner/internal/config"
	"github.com/vovakirdan/reef-runner/internal/core"
	"github.com/vovakirdan/reef-runner/internal/storage"
)

const frame = time.Second / 60

type playedCue struct {
	name   string
	volume float64
}

type recordingAudio struct {
	cues []playedCue
}

func (r *recordingAudio) Play(cue string, volume float64) {
	r.cues = append(r.cues, playedCue{cue, volume})
}

func (r *recordingAudio) count(name string) int {
	n := 0
	for _, c := range r.cues {
		if c.name == name {
			n++
		}
	}
	return n
}

type failingStore struct {
	getErr, setErr error
	sets           int
}

func (f *failingStore) Get(string) (string, error) { return "", f.getErr }

func (f *failingStore) Set(string, string) error {
	f.sets++
	return f.setErr
}

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	opts = append([]Option{WithRand(rand.New(rand.NewSource(1)))}, opts...)
	e := New(config.DefaultReefConfig(), opts...)
	e.Start()
	return e
}

// forceCollision drops an obstacle covering the whole canvas.
func forceCollision(e *Engine) {
	e.obstacles = append(e.obstacles, Obstacle{
		X: 0, Y: 0, W: 800, H: 200,
		Kind:    LargePredator,
		Payload: Static{},
	})
}

// startCalm enters Playing with the player sinking slowly from the start
// position, clear of the surface band.
func startCalm(e *Engine) {
	e.Press(core.ActionSwimUp)
	e.player.VY = 0
	e.gen.countdown = 1e9
}

// setScore jumps the session score without firing threshold events.
func setScore(e *Engine, score float64) {
	e.tracker.score = score
	e.tracker.lastFloor = int(score)
}

func TestNewEngineStartsInMenu(t *testing.T) {
	e := newTestEngine(t)

	st := e.State()
	if st.Phase != PhaseMenu {
		t.Errorf("Phase = %v, expected menu", st.Phase)
	}
	if st.HighScore != 0 {
		t.Errorf("HighScore = %d, expected 0 for empty store", st.HighScore)
	}
	if len(e.Snapshot().Particles) != 8 {
		t.Errorf("expected 8 bubbles, got %d", len(e.Snapshot().Particles))
	}
}

func TestPressFromMenuStartsRising(t *testing.T) {
	e := newTestEngine(t)

	e.Press(core.ActionSwimUp)

	if e.State().Phase != PhasePlaying {
		t.Fatalf("Phase = %v, expected playing", e.State().Phase)
	}
	p := e.Player()
	if p.Motion != Rising {
		t.Errorf("Motion = %v, expected rising", p.Motion)
	}
	if p.VY != -8 {
		t.Errorf("VY = %v, expected -8", p.VY)
	}
}

func TestMenuDoesNotSimulate(t *testing.T) {
	e := newTestEngine(t)
	before := e.Snapshot()

	for i := 0; i < 100; i++ {
		e.Step(frame)
	}

	after := e.Snapshot()
	if after.State != before.State || after.Player != before.Player {
		t.Error("Menu phase should not advance the simulation")
	}
	if after.Particles[0] != before.Particles[0] {
		t.Error("bubbles should not drift outside Playing")
	}
}

func TestDiveOnlyWhilePlaying(t *testing.T) {
	e := newTestEngine(t)

	e.Press(core.ActionDive)
	if e.State().Phase != PhaseMenu || e.Player().Motion != Swimming {
		t.Error("dive in Menu should have no effect")
	}
}

func TestStartResetsSession(t *testing.T) {
	e := newTestEngine(t)
	e.Press(core.ActionSwimUp)

	for i := 0; i < 600 && e.State().Phase == PhasePlaying; i++ {
		if i%20 == 0 {
			e.Press(core.ActionSwimUp)
		}
		e.Step(frame)
	}
	forceCollision(e)
	e.Step(frame)
	if e.State().Phase != PhaseGameOver {
		t.Fatalf("expected game over, got %v", e.State().Phase)
	}
	if e.State().Elapsed <= 0 {
		t.Error("Elapsed should accumulate while playing")
	}

	e.Press(core.ActionSwimUp)

	st := e.State()
	if st.Phase != PhasePlaying {
		t.Errorf("Phase = %v, expected playing", st.Phase)
	}
	if st.Score != 0 {
		t.Errorf("Score = %v, expected 0", st.Score)
	}
	if st.Speed != 3 {
		t.Errorf("Speed = %v, expected initial speed 3", st.Speed)
	}
	if st.ScrollOffset != 0 {
		t.Errorf("ScrollOffset = %v, expected 0", st.ScrollOffset)
	}
	if st.Elapsed != 0 {
		t.Errorf("Elapsed = %v, expected 0", st.Elapsed)
	}
	if n := len(e.Obstacles()); n != 0 {
		t.Errorf("expected no obstacles after restart, got %d", n)
	}
	if e.gen.countdown != 400 {
		t.Errorf("spawn countdown = %v, expected min distance 400", e.gen.countdown)
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	e := newTestEngine(t)
	rng := rand.New(rand.NewSource(7))
	cfg := e.Config()
	floor := cfg.Ground.Y - cfg.Player.Height

	for i := 0; i < 5000; i++ {
		if e.State().Phase != PhasePlaying || rng.Intn(8) == 0 {
			e.Press(core.ActionSwimUp)
		}
		e.Input().SetHeld(core.ActionDive, rng.Intn(3) == 0)
		e.Step(frame)

		if e.State().Phase != PhasePlaying {
			continue
		}
		y := e.Player().Y
		if y < cfg.Player.TopBound || y > floor {
			t.Fatalf("frame %d: y = %v outside [%v, %v]", i, y, cfg.Player.TopBound, floor)
		}
	}
}

func TestClampZeroesVelocity(t *testing.T) {
	e := newTestEngine(t)
	e.Press(core.ActionSwimUp)

	// Sink to the seafloor.
	for i := 0; i < 200; i++ {
		e.Step(frame)
		if e.State().Phase != PhasePlaying {
			t.Fatal("unexpected collision")
		}
	}
	p := e.Player()
	if p.Y != 140 || p.VY != 0 {
		t.Errorf("at floor: y = %v vy = %v, expected 140 and 0", p.Y, p.VY)
	}

	// Swim up repeatedly until pinned at the surface.
	e.obstacles = nil
	e.gen.countdown = 1e9
	for i := 0; i < 30; i++ {
		e.Press(core.ActionSwimUp)
		e.Step(frame)
	}
	if p := e.Player(); p.Y != 20 {
		t.Errorf("at surface: y = %v, expected 20", p.Y)
	}
}

func TestRisingDemotesAtApex(t *testing.T) {
	e := newTestEngine(t)
	e.Press(core.ActionSwimUp)

	frames := 0
	for e.Player().Motion == Rising {
		e.Step(frame)
		frames++
		if frames > 100 {
			t.Fatal("player never left Rising")
		}
	}
	if e.Player().Motion != Swimming {
		t.Errorf("Motion = %v, expected swimming after apex", e.Player().Motion)
	}
	if v := e.Player().VY; v <= -1 || v >= 1 {
		t.Errorf("|VY| = %v at demotion, expected < 1", v)
	}
}

func TestDiveHeldAndReleased(t *testing.T) {
	e := newTestEngine(t)
	e.Press(core.ActionSwimUp)
	e.Step(frame)

	e.Press(core.ActionDive)
	e.Input().SetHeld(core.ActionDive, true)
	vy := e.Player().VY
	if e.Player().Motion != Falling {
		t.Fatalf("Motion = %v, expected falling", e.Player().Motion)
	}
	if e.Player().VY != vy {
		t.Error("dive must not change velocity directly")
	}

	e.Step(frame)
	if e.Player().Motion != Falling {
		t.Error("held dive should keep the player falling")
	}
	hb := PlayerHitbox(e.Player(), e.Config().Player)
	if hb.H != 10 {
		t.Errorf("diving hitbox height = %v, expected 10", hb.H)
	}

	e.Input().SetHeld(core.ActionDive, false)
	e.Step(frame)
	if e.Player().Motion != Swimming {
		t.Errorf("Motion = %v, expected swimming after release", e.Player().Motion)
	}
}

func TestSpeedNeverDecreases(t *testing.T) {
	e := newTestEngine(t)
	e.Press(core.ActionSwimUp)
	e.gen.countdown = 1e9

	last := e.State().Speed
	for i := 0; i < 5000; i++ {
		e.Step(frame)
		if e.State().Phase != PhasePlaying {
			t.Fatal("unexpected collision")
		}
		s := e.State().Speed
		if s < last || s > 15 {
			t.Fatalf("frame %d: speed %v after %v", i, s, last)
		}
		last = s
	}
	if last <= 3 {
		t.Errorf("speed should have ramped after 500 points, got %v", last)
	}
}

func TestObstacleRemovedExactlyWhenOffscreen(t *testing.T) {
	e := newTestEngine(t)
	startCalm(e)

	o := e.gen.Spawn(FloaterHigh)
	e.obstacles = append(e.obstacles, o)
	x := o.X

	for i := 0; i < 400; i++ {
		e.Step(frame)
		if e.State().Phase != PhasePlaying {
			t.Fatal("unexpected collision")
		}
		x -= e.State().Speed
		present := len(e.Obstacles()) == 1
		if present != (x+o.W > 0) {
			t.Fatalf("frame %d: x = %v, present = %v", i, x, present)
		}
		if !present {
			return
		}
	}
	t.Error("obstacle never left the screen")
}

func TestObstacleScrollsAtSpeed(t *testing.T) {
	e := newTestEngine(t)
	startCalm(e)

	o := e.gen.Spawn(FloaterHigh)
	e.obstacles = append(e.obstacles, o)

	frames := int(e.Config().Canvas.Width / e.State().Speed)
	for i := 0; i < frames; i++ {
		e.Step(frame)
	}
	got := e.Obstacles()
	if len(got) != 1 {
		t.Fatalf("expected obstacle still partially visible, got %d", len(got))
	}
	if want := 800 - float64(frames)*3; got[0].X != want {
		t.Errorf("X = %v, expected %v", got[0].X, want)
	}

	// 2 -> -43 is still visible; -46 is gone.
	for i := 0; i < 15; i++ {
		e.Step(frame)
	}
	if len(e.Obstacles()) != 1 {
		t.Fatal("obstacle removed while still visible")
	}
	e.Step(frame)
	if len(e.Obstacles()) != 0 {
		t.Error("obstacle should be gone once x + width <= 0")
	}
}

func TestObstacleAnimationAdvances(t *testing.T) {
	e := newTestEngine(t)
	e.Press(core.ActionSwimUp)
	e.gen.countdown = 1e9

	e.obstacles = append(e.obstacles, e.gen.Spawn(FloaterHigh), e.gen.Spawn(SmallPredator))

	e.Step(399 * time.Millisecond)
	if f, _ := e.Obstacles()[0].Frame(); f != 0 {
		t.Errorf("frame = %d before frame time elapsed", f)
	}
	e.Step(time.Millisecond)
	if f, _ := e.Obstacles()[0].Frame(); f != 1 {
		t.Errorf("frame = %d, expected 1", f)
	}
	if _, animated := e.Obstacles()[1].Frame(); animated {
		t.Error("predators must not animate")
	}
}

func TestCollisionEndsGame(t *testing.T) {
	rec := &recordingAudio{}
	e := newTestEngine(t, WithAudio(rec))
	e.Press(core.ActionSwimUp)

	forceCollision(e)
	e.Step(frame)

	if e.State().Phase != PhaseGameOver {
		t.Fatalf("Phase = %v, expected game over", e.State().Phase)
	}
	if e.Player().Motion != Dead {
		t.Errorf("Motion = %v, expected dead", e.Player().Motion)
	}
	if rec.count(audio.CueHit) != 1 {
		t.Errorf("expected one hit cue, got %v", rec.cues)
	}

	// Simulation is frozen after game over.
	frozen := e.Snapshot()
	for i := 0; i < 10; i++ {
		e.Step(frame)
	}
	if e.State() != frozen.State || e.Player() != frozen.Player {
		t.Error("game over should freeze the simulation")
	}
}

func TestHighScoreScenario(t *testing.T) {
	store := storage.NewMemory()
	store.Set(HighScoreKey, "120")

	e := newTestEngine(t, WithStore(store))
	if e.HighScore() != 120 {
		t.Fatalf("HighScore = %d, expected 120 from store", e.HighScore())
	}

	e.Press(core.ActionSwimUp)
	setScore(e, 150)
	forceCollision(e)
	e.Step(frame)

	if e.Score() != 150 {
		t.Fatalf("Score = %d, expected 150", e.Score())
	}
	if v, _ := store.Get(HighScoreKey); v != "150" {
		t.Errorf("stored high score = %q, expected 150", v)
	}

	e.Press(core.ActionSwimUp)
	setScore(e, 90)
	forceCollision(e)
	e.Step(frame)

	if v, _ := store.Get(HighScoreKey); v != "150" {
		t.Errorf("stored high score = %q, expected to stay 150", v)
	}
	if e.HighScore() != 150 {
		t.Errorf("HighScore = %d, expected 150", e.HighScore())
	}
}

func TestReentryClearsObstacles(t *testing.T) {
	e := newTestEngine(t)
	e.Press(core.ActionSwimUp)
	e.obstacles = append(e.obstacles, e.gen.Spawn(Drifter), e.gen.Spawn(FloaterLow))
	forceCollision(e)
	e.Step(frame)

	e.Press(core.ActionSwimUp)
	if n := len(e.Obstacles()); n != 0 {
		t.Errorf("expected obstacles cleared on re-entry, got %d", n)
	}
}

func TestStartStop(t *testing.T) {
	e := New(config.DefaultReefConfig(), WithRand(rand.New(rand.NewSource(1))))

	if e.Frame(frame) {
		t.Error("Frame() before Start() should not step")
	}
	e.Press(core.ActionSwimUp)
	if e.State().Phase != PhaseMenu {
		t.Error("input before Start() should be ignored")
	}

	e.Start()
	e.Start()
	if !e.Running() {
		t.Fatal("engine should be running")
	}
	e.Press(core.ActionSwimUp)
	for i := 0; i < 35; i++ {
		e.Frame(frame)
	}
	score := e.Score()

	e.Stop()
	if e.Frame(frame) {
		t.Error("Frame() after Stop() should not step")
	}
	if e.Score() != score {
		t.Errorf("Score changed after Stop: %d -> %d", score, e.Score())
	}
	if score != 3 {
		t.Errorf("Score = %d after 35 frames, expected 3", score)
	}
}

func TestHeldControlsReleasedOnRestartAndStop(t *testing.T) {
	e := newTestEngine(t)
	startCalm(e)
	forceCollision(e)
	e.Step(frame)

	e.Input().SetHeld(core.ActionDive, true)
	e.Press(core.ActionSwimUp)
	if e.Input().Held(core.ActionDive) {
		t.Error("restart should release a held dive")
	}

	e.Input().SetHeld(core.ActionDive, true)
	e.Stop()
	if e.Input().Held(core.ActionDive) {
		t.Error("Stop should release a held dive")
	}
}

func TestAudioCues(t *testing.T) {
	rec := &recordingAudio{}
	e := newTestEngine(t, WithAudio(rec))

	e.Press(core.ActionSwimUp)
	if len(rec.cues) != 1 || rec.cues[0] != (playedCue{audio.CueJump, 0.3}) {
		t.Fatalf("cues = %v, expected jump at 0.3", rec.cues)
	}

	e.gen.countdown = 1e9
	setScore(e, 99.95)
	e.Step(frame)
	if rec.count(audio.CueScore) != 1 {
		t.Errorf("expected a score cue at 100, got %v", rec.cues)
	}
	for i := 0; i < 5; i++ {
		e.Step(frame)
	}
	if rec.count(audio.CueScore) != 1 {
		t.Error("score cue should fire once per multiple")
	}
}

func TestRendererCalledEveryStep(t *testing.T) {
	var phases []Phase
	e := newTestEngine(t, WithRenderer(RendererFunc(func(v View) {
		phases = append(phases, v.State.Phase)
	})))

	e.Step(frame)
	e.Press(core.ActionSwimUp)
	e.Step(frame)
	forceCollision(e)
	e.Step(frame)
	e.Step(frame)

	want := []Phase{PhaseMenu, PhasePlaying, PhaseGameOver, PhaseGameOver}
	if len(phases) != len(want) {
		t.Fatalf("rendered %d frames, expected %d", len(phases), len(want))
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Errorf("frame %d rendered %v, expected %v", i, phases[i], want[i])
		}
	}
}

func TestRendererCannotMutateEngine(t *testing.T) {
	e := newTestEngine(t, WithRenderer(RendererFunc(func(v View) {
		for i := range v.Obstacles {
			v.Obstacles[i].X = -1000
		}
	})))
	e.Press(core.ActionSwimUp)
	e.gen.countdown = 1e9
	e.obstacles = append(e.obstacles, e.gen.Spawn(FloaterHigh))

	e.Step(frame)
	if len(e.Obstacles()) != 1 || e.Obstacles()[0].X < 0 {
		t.Error("renderer mutated engine obstacles")
	}
}

func TestPanickingSinksDegrade(t *testing.T) {
	renders := 0
	e := newTestEngine(t,
		WithRenderer(RendererFunc(func(View) {
			renders++
			panic("no display")
		})),
		WithAudio(panicAudio{}),
	)

	e.Press(core.ActionSwimUp)
	for i := 0; i < 15; i++ {
		e.Step(frame)
	}

	if e.State().Phase != PhasePlaying {
		t.Errorf("simulation should continue, phase = %v", e.State().Phase)
	}
	if renders != 1 {
		t.Errorf("failed renderer should be dropped after first panic, called %d times", renders)
	}
	if e.Score() != 1 {
		t.Errorf("Score = %d, expected 1", e.Score())
	}
}

type panicAudio struct{}

func (panicAudio) Play(string, float64) { panic("no device") }

func TestStoreReadFailureFallsBackToMemory(t *testing.T) {
	store := &failingStore{getErr: errors.New("disk gone")}
	e := newTestEngine(t, WithStore(store))

	if e.HighScore() != 0 {
		t.Errorf("HighScore = %d, expected 0", e.HighScore())
	}

	e.Press(core.ActionSwimUp)
	setScore(e, 42)
	forceCollision(e)
	e.Step(frame)

	if e.HighScore() != 42 {
		t.Errorf("HighScore = %d, expected 42 in memory", e.HighScore())
	}
	if store.sets != 0 {
		t.Error("a store that failed to read should not be written during the session")
	}
}

func TestStoreWriteFailureKeepsMemoryValue(t *testing.T) {
	store := &failingStore{getErr: storage.ErrNotFound, setErr: errors.New("read-only")}
	e := newTestEngine(t, WithStore(store))

	e.Press(core.ActionSwimUp)
	setScore(e, 77)
	forceCollision(e)
	e.Step(frame)

	if store.sets != 1 {
		t.Errorf("expected one write attempt, got %d", store.sets)
	}
	if e.HighScore() != 77 {
		t.Errorf("HighScore = %d, expected 77", e.HighScore())
	}
}

func TestMalformedStoredHighScore(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"valid", "250", 250},
		{"garbage", "abc", 0},
		{"negative", "-5", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := storage.NewMemory()
			store.Set(HighScoreKey, tc.value)
			e := newTestEngine(t, WithStore(store))
			if e.HighScore() != tc.want {
				t.Errorf("HighScore = %d, expected %d", e.HighScore(), tc.want)
			}
		})
	}
}

func TestSQLiteBackedHighScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "reef.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	e := newTestEngine(t, WithStore(store))
	e.Press(core.ActionSwimUp)
	setScore(e, 310)
	forceCollision(e)
	e.Step(frame)

	v, err := store.Get(HighScoreKey)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if n, _ := strconv.Atoi(v); n != 310 {
		t.Errorf("stored = %q, expected 310", v)
	}

	again := newTestEngine(t, WithStore(store))
	if again.HighScore() != 310 {
		t.Errorf("new engine HighScore = %d, expected 310", again.HighScore())
	}
}
