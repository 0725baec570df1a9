package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"termlife/internal/core"
	"termlife/internal/render"
)

// Terminal renders a simulation onto an ANSI terminal using the alternate
// screen buffer.
type Terminal struct {
	w     io.Writer
	out   *bufio.Writer
	sim   core.Sim
	pacer *core.Pacer
}

// NewTerminal constructs a Terminal writing frames to w.
func NewTerminal(w io.Writer, sim core.Sim, interval time.Duration) *Terminal {
	return &Terminal{w: w, out: bufio.NewWriter(w), sim: sim, pacer: core.NewPacer(interval)}
}

// Run seeds the simulation and renders generations until ctx is cancelled
// or a write fails. The terminal is restored on every exit path, panics
// included.
func (t *Terminal) Run(ctx context.Context) (err error) {
	if _, err := io.WriteString(t.w, render.Setup); err != nil {
		return fmt.Errorf("terminal setup: %w", err)
	}
	defer func() {
		// Straight to w: the buffered writer keeps failing once it saw an error.
		if _, terr := io.WriteString(t.w, render.Teardown); terr != nil && err == nil {
			err = fmt.Errorf("terminal teardown: %w", terr)
		}
	}()

	t.sim.Seed()
	return Loop(ctx, t.sim, t.pacer, t.draw)
}

func (t *Terminal) draw() error {
	if err := render.Frame(t.out, t.sim); err != nil {
		return fmt.Errorf("render generation %d: %w", t.sim.Generation(), err)
	}
	if err := t.out.Flush(); err != nil {
		return fmt.Errorf("flush generation %d: %w", t.sim.Generation(), err)
	}
	return nil
}
