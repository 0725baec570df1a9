package core

import (
	"context"
	"time"
)

// DefaultInterval is the pause between two rendered generations.
const DefaultInterval = 100 * time.Millisecond

// Pacer paces a simulation loop at a fixed interval between ticks.
type Pacer struct {
	interval time.Duration
}

// NewPacer constructs a Pacer. Non-positive intervals fall back to
// DefaultInterval.
func NewPacer(interval time.Duration) *Pacer {
	p := &Pacer{}
	p.SetInterval(interval)
	return p
}

// SetInterval changes the pause length.
func (p *Pacer) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	p.interval = interval
}

// Interval returns the configured pause length.
func (p *Pacer) Interval() time.Duration { return p.interval }

// TPS converts the interval into ticks per second, never less than one.
func (p *Pacer) TPS() int {
	tps := int(time.Second / p.interval)
	if tps < 1 {
		return 1
	}
	return tps
}

// Wait blocks for one interval. It returns ctx.Err() if the context is done
// first, including when it was already done on entry.
func (p *Pacer) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t := time.NewTimer(p.interval)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
