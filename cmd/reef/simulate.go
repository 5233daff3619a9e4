package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/reef-runner/internal/config"
	"github.com/vovakirdan/reef-runner/internal/core"
	"github.com/vovakirdan/reef-runner/internal/games/reef"
	"github.com/vovakirdan/reef-runner/internal/storage"
)

var (
	flagFrames  int
	flagEvery   int
	flagPersist bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless session",
	Long: `Drive the engine without a terminal UI and print the outcome.

The fish swims up every --every frames and the game restarts after each
collision until --frames frames have run. Useful for tuning a config.

Examples:
  reef simulate --frames 3600 --every 25
  reef simulate --config ./my-reef.yaml --seed 42 --fps 1000`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 600, "Number of frames to simulate")
	simulateCmd.Flags().IntVar(&flagEvery, "every", 20, "Swim up every N frames")
	simulateCmd.Flags().BoolVar(&flagPersist, "persist", false, "Read and write the high score in --db")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger := newLogger(os.Stderr)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var store reef.Store = storage.NewMemory()
	if flagPersist {
		db, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer db.Close()
		store = db
	}

	engine := reef.New(cfg,
		reef.WithStore(store),
		reef.WithLogger(logger),
		reef.WithRand(rand.New(rand.NewSource(seed))),
	)

	// Ctrl+C ends the session early and still prints the result.
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	runs, best := 0, 0
	every := max(flagEvery, 1)
	err = reef.Run(ctx, engine, flagFPS, func(n int) {
		if engine.State().Phase != reef.PhasePlaying {
			if n > 0 {
				runs++
				best = max(best, engine.Score())
			}
			engine.Press(core.ActionSwimUp)
		} else if n%every == 0 {
			engine.Press(core.ActionSwimUp)
		}
		if n+1 >= flagFrames {
			engine.Stop()
		}
	})
	if err != nil && ctx.Err() == nil {
		return err
	}

	fmt.Printf("frames:     %d\n", flagFrames)
	fmt.Printf("runs:       %d\n", runs)
	fmt.Printf("best run:   %d\n", best)
	fmt.Printf("last score: %d\n", engine.Score())
	fmt.Printf("high score: %d\n", engine.HighScore())
	return nil
}
