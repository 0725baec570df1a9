package app

import (
	"context"

	"termlife/internal/core"
)

// Loop drives sim until ctx is done: draw the current generation, advance,
// then pause. Cancellation is only observed during the pause, so a frame is
// never torn. It returns nil on cancellation and the draw error otherwise.
func Loop(ctx context.Context, sim core.Sim, pacer *core.Pacer, draw func() error) error {
	for {
		if err := draw(); err != nil {
			return err
		}
		sim.Step()
		if pacer.Wait(ctx) != nil {
			return nil
		}
	}
}
