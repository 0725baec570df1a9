package life

import (
	"termlife/internal/core"
)

// Life implements Conway's Game of Life on a bounded grid. Cells beyond the
// edge count as dead.
type Life struct {
	cfg        Config
	cur        *core.Grid
	nxt        *core.Grid
	generation int
}

// New returns a glider-seeded Life simulation with the provided dimensions.
// The board stays empty until Seed or Reset is called.
func New(rows, cols int) *Life {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = rows, cols
	return newLife(cfg)
}

// NewWithConfig returns a Life simulation built from cfg.
func NewWithConfig(cfg Config) (*Life, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newLife(cfg), nil
}

func newLife(cfg Config) *Life {
	cur := core.NewGrid(cfg.Rows, cfg.Cols)
	cfg.Rows, cfg.Cols = cur.Rows, cur.Cols
	return &Life{cfg: cfg, cur: cur, nxt: core.NewGrid(cfg.Rows, cfg.Cols)}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Grid exposes the current generation. It is invalidated by the next Step.
func (l *Life) Grid() *core.Grid { return l.cur }

// Cells exposes the current grid values in row-major order.
func (l *Life) Cells() []bool { return l.cur.Cells() }

// Alive reports whether the cell at (row, col) is alive.
func (l *Life) Alive(row, col int) bool { return l.cur.Alive(row, col) }

// Set overrides a single cell of the current generation.
func (l *Life) Set(row, col int, alive bool) { l.cur.Set(row, col, alive) }

// Generation returns the number of steps since the last seed.
func (l *Life) Generation() int { return l.generation }

// Population returns the number of live cells.
func (l *Life) Population() int {
	n := 0
	for _, alive := range l.cur.Cells() {
		if alive {
			n++
		}
	}
	return n
}

// Seed clears the board and paints the configured pattern.
func (l *Life) Seed() { l.Reset(l.cfg.Seed) }

// Reset clears the board and paints the configured pattern, feeding seed to
// randomized patterns.
func (l *Life) Reset(seed int64) {
	l.cur.Clear()
	l.nxt.Clear()
	l.generation = 0
	if p, ok := patterns[l.cfg.Pattern]; ok {
		p(l.cur, core.NewRNG(seed))
	}
}

// CountNeighbors returns the number of live cells among the up to eight
// cells surrounding (row, col).
func (l *Life) CountNeighbors(row, col int) int {
	neighbors := 0
	for r := max(0, row-1); r <= min(l.cur.Rows-1, row+1); r++ {
		for c := max(0, col-1); c <= min(l.cur.Cols-1, col+1); c++ {
			if r == row && c == col {
				continue
			}
			if l.cur.Alive(r, c) {
				neighbors++
			}
		}
	}
	return neighbors
}

// Rule decides the next state of a cell: a live cell survives with two or
// three neighbors, a dead cell is born with exactly three.
func Rule(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	rows, cols := l.cur.Rows, l.cur.Cols
	next := l.nxt.Cells()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			next[l.nxt.Index(row, col)] = Rule(l.cur.Alive(row, col), l.CountNeighbors(row, col))
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
}
