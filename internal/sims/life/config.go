package life

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned for non-positive grid dimensions.
	ErrInvalidSize = errors.New("grid dimensions must be positive")
	// ErrUnknownPattern is returned when no pattern is registered under a name.
	ErrUnknownPattern = errors.New("unknown pattern")
)

// Config holds parameters for the Game of Life simulation.
type Config struct {
	Rows    int
	Cols    int
	Pattern string
	Seed    int64
}

// DefaultConfig returns a 20x20 board seeded with a glider.
func DefaultConfig() Config {
	return Config{Rows: 20, Cols: 20, Pattern: "glider", Seed: 42}
}

// Validate reports whether the configuration can build a simulation.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Rows, c.Cols)
	}
	if _, ok := patterns[c.Pattern]; !ok {
		return fmt.Errorf("%w %q", ErrUnknownPattern, c.Pattern)
	}
	return nil
}
