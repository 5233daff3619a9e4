package reef

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/reef-runner/internal/config"
	"github.com/vovakirdan/reef-runner/internal/core"
)

func TestRunStopsOnCancel(t *testing.T) {
	e := New(config.DefaultReefConfig(), WithRand(rand.New(rand.NewSource(1))))
	ctx, cancel := context.WithCancel(context.Background())

	frames := 0
	err := Run(ctx, e, 500, func(n int) {
		if n == 0 {
			e.Press(core.ActionSwimUp)
		}
		frames++
		if frames == 20 {
			cancel()
		}
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, expected context.Canceled", err)
	}
	if frames != 20 {
		t.Errorf("ran %d frames, expected 20", frames)
	}
	if e.Running() {
		t.Error("engine should be stopped after cancel")
	}
	if e.State().Phase != PhasePlaying {
		t.Errorf("Phase = %v, expected playing", e.State().Phase)
	}
}

func TestRunEndsWhenEngineStops(t *testing.T) {
	e := New(config.DefaultReefConfig(), WithRand(rand.New(rand.NewSource(1))))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := Run(ctx, e, 500, func(n int) {
		if n == 4 {
			e.Stop()
		}
	})
	if err != nil {
		t.Errorf("Run() = %v, expected nil after Stop", err)
	}
}
