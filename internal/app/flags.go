package app

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"termlife/internal/core"
	"termlife/internal/sims/life"
)

// Frontends understood by the terminal binary.
const (
	FrontendANSI  = "ansi"
	FrontendTcell = "tcell"
)

// ErrUnknownFrontend is returned for a -frontend value nobody implements.
var ErrUnknownFrontend = errors.New("unknown frontend")

// Config represents the command-line parameters for the application.
type Config struct {
	Rows     int
	Cols     int
	Interval time.Duration
	Pattern  string
	Seed     int64
	Frontend string
	Scale    int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := life.DefaultConfig()
	return &Config{
		Rows:     def.Rows,
		Cols:     def.Cols,
		Interval: core.DefaultInterval,
		Pattern:  def.Pattern,
		Seed:     def.Seed,
		Frontend: FrontendANSI,
		Scale:    16,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "pause between generations")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern ("+strings.Join(life.Patterns(), ", ")+")")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomized patterns")
	fs.StringVar(&c.Frontend, "frontend", c.Frontend, "terminal frontend (ansi, tcell)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier for the window build")
}

// Life extracts the simulation configuration.
func (c *Config) Life() life.Config {
	return life.Config{Rows: c.Rows, Cols: c.Cols, Pattern: c.Pattern, Seed: c.Seed}
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	if err := c.Life().Validate(); err != nil {
		return err
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", c.Interval)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	switch c.Frontend {
	case FrontendANSI, FrontendTcell:
		return nil
	}
	return fmt.Errorf("%w %q", ErrUnknownFrontend, c.Frontend)
}
