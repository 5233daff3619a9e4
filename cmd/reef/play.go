package main

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/reef-runner/internal/audio"
	"github.com/vovakirdan/reef-runner/internal/config"
	"github.com/vovakirdan/reef-runner/internal/core"
	"github.com/vovakirdan/reef-runner/internal/platform/tui"
	"github.com/vovakirdan/reef-runner/internal/storage"
)

var flagHold int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Reef Runner",
	Long: `Start a game in the terminal.

Controls:
  Space/Up/W/Enter/Click  - Swim up (also starts a game)
  Down/S (hold)           - Dive
  M                       - Toggle sound
  Ctrl+S                  - Save a screenshot to ~/.reef/screenshots
  Q/Ctrl+C                - Quit

Examples:
  reef play
  reef play --fps 30 --mute
  reef play --config ./my-reef.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHold, "hold", 0, "Dive hold window in milliseconds (0 = default)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logOut := io.Discard
	if f, err := openLogFile(flagLogFile); err == nil {
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, playing without persistence", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("session start", "fps", flagFPS, "seed", flagSeed, "db", flagDBPath)
	return tui.Run(tui.Options{
		Game: cfg,
		Runtime: rt,
		Store:  store,
		Sound:  audio.NewMutable(openAudio(cfg.Audio, logger), flagMute),
		Logger: logger,
		Hold:   time.Duration(flagHold) * time.Millisecond,
	})
}

// openAudio returns the device player, or a silent sink when audio is
// disabled or the device cannot be opened.
func openAudio(cfg config.AudioConfig, logger *log.Logger) audio.Sink {
	if !cfg.Enabled {
		return audio.Nop{}
	}
	player, err := audio.NewPlayer(cfg.SampleRate)
	if err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
		return audio.Nop{}
	}
	return player
}
