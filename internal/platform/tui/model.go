package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/reef-runner/internal/audio"
	"github.com/vovakirdan/reef-runner/internal/config"
	"github.com/vovakirdan/reef-runner/internal/core"
	"github.com/vovakirdan/reef-runner/internal/games/reef"
	"github.com/vovakirdan/reef-runner/internal/storage"
)

// Options configures a play session.
type Options struct {
	Game    config.ReefConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // nil plays without persistence
	Sound   *audio.Mutable // nil plays silently
	Logger  *log.Logger
	Hold    time.Duration // dive hold window; 0 uses DefaultHoldWindow
}

// Model is the Bubble Tea model for a Reef Runner session.
type Model struct {
	engine   *reef.Engine
	screen   *core.Screen
	store    *storage.Store
	sound    *audio.Mutable
	keys     *KeyMapper
	dive     *Hold
	log      *log.Logger
	tickRate int
	lastTick time.Time
	quitting bool
}

// NewModel builds the engine and the screen it renders into.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Sound == nil {
		opts.Sound = audio.NewMutable(audio.Nop{}, true)
	}

	screen := core.NewScreen(rt.ScreenW, rt.ScreenH)
	engineOpts := []reef.Option{
		reef.WithRenderer(reef.NewScreenRenderer(screen, opts.Game)),
		reef.WithAudio(opts.Sound),
		reef.WithLogger(opts.Logger),
		reef.WithRand(rand.New(rand.NewSource(rt.Seed))),
	}
	if opts.Store != nil {
		engineOpts = append(engineOpts, reef.WithStore(opts.Store))
	}

	return Model{
		engine:   reef.New(opts.Game, engineOpts...),
		screen:   screen,
		store:    opts.Store,
		sound:    opts.Sound,
		keys:     NewKeyMapper(),
		dive:     NewHold(opts.Hold),
		log:      opts.Logger,
		tickRate: rt.TickRate,
	}
}

// Engine returns the engine driven by this model.
func (m Model) Engine() *reef.Engine { return m.engine }

// Init starts the engine and the tick loop.
func (m Model) Init() tea.Cmd {
	m.engine.Start()
	m.engine.Redraw()
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.keys.MapMouse(msg) == core.ActionSwimUp {
			m.engine.Press(core.ActionSwimUp)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.engine.Redraw()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Presses go to the engine immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.engine.Stop()
		m.quitting = true
		return m, tea.Quit
	case core.ActionSwimUp:
		m.dive.Release()
		m.engine.Input().SetHeld(core.ActionDive, false)
		m.engine.Press(core.ActionSwimUp)
	case core.ActionDive:
		m.dive.Press(time.Now())
		m.engine.Input().SetHeld(core.ActionDive, true)
		m.engine.Press(core.ActionDive)
	case core.ActionMute:
		muted := m.sound.Toggle()
		m.log.Debug("audio toggled", "muted", muted)
	}

	return m, nil
}

// handleTick advances one frame and records finished runs.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := core.RuntimeConfig{TickRate: m.tickRate}.FrameInterval()
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	m.engine.Input().SetHeld(core.ActionDive, m.dive.Held(now))

	before := m.engine.State().Phase
	m.engine.Frame(dt)
	if before == reef.PhasePlaying && m.engine.State().Phase == reef.PhaseGameOver {
		m.saveRun(m.engine.State())
	}

	if !m.engine.Running() {
		return m, nil
	}
	return m, tickCmd(m.tickRate)
}

// saveRun appends a finished run to the history.
func (m Model) saveRun(st reef.GameState) {
	score := m.engine.Score()
	if m.store == nil || score <= 0 {
		return
	}
	run := storage.Run{Score: score, Speed: st.Speed, Duration: st.Elapsed}
	if _, err := m.store.SaveRun(run); err != nil {
		m.log.Warn("cannot record run", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".reef", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("reef_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("cannot save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.sound.Muted() && m.screen.Height() > 0 {
		m.screen.DrawTextColor(2, m.screen.Height()-1, "MUTED (m)", core.ColorGray)
	}
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for one play session.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse click swims up
	)

	_, err := p.Run()
	model.engine.Stop()
	return err
}
