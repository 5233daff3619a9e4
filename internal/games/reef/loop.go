package reef

import (
	"context"
	"time"

	"github.com/vovakirdan/reef-runner/internal/core"
)

// Run drives e at tickRate frames per second on the calling goroutine
// until ctx is done or the engine is stopped. onFrame, if set, is called
// after every frame with the frame's index. The engine is started if needed.
func Run(ctx context.Context, e *Engine, tickRate int, onFrame func(n int)) error {
	interval := core.RuntimeConfig{TickRate: tickRate}.FrameInterval()

	e.Start()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for n := 0; ; n++ {
		select {
		case <-ctx.Done():
			e.Stop()
			return ctx.Err()
		case now := <-ticker.C:
			if err := ctx.Err(); err != nil {
				e.Stop()
				return err
			}
			dt := now.Sub(last)
			last = now
			if !e.Frame(dt) {
				return nil
			}
			if onFrame != nil {
				onFrame(n)
			}
		}
	}
}
