package life

import (
	"sort"

	"termlife/internal/core"
)

// Pattern paints initial live cells onto a cleared grid. The RNG is only
// consulted by randomized patterns.
type Pattern func(g *core.Grid, rng *core.RNG)

var patterns = map[string]Pattern{}

// RegisterPattern adds a pattern under the provided name.
func RegisterPattern(name string, p Pattern) {
	if name == "" || p == nil {
		return
	}
	patterns[name] = p
}

// Patterns returns the registered pattern names in sorted order.
func Patterns() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Points builds a Pattern that marks fixed coordinates alive. Points outside
// the grid are skipped.
func Points(pts ...core.Point) Pattern {
	return func(g *core.Grid, _ *core.RNG) {
		for _, p := range pts {
			g.Set(p.Row, p.Col, true)
		}
	}
}

// Glider is the 5-cell spaceship travelling towards the bottom right.
var Glider = []core.Point{{Row: 1, Col: 1}, {Row: 2, Col: 2}, {Row: 3, Col: 0}, {Row: 3, Col: 1}, {Row: 3, Col: 2}}

func init() {
	RegisterPattern("glider", Points(Glider...))
	RegisterPattern("blinker", Points(core.Point{Row: 2, Col: 1}, core.Point{Row: 2, Col: 2}, core.Point{Row: 2, Col: 3}))
	RegisterPattern("block", Points(core.Point{Row: 1, Col: 1}, core.Point{Row: 1, Col: 2}, core.Point{Row: 2, Col: 1}, core.Point{Row: 2, Col: 2}))
	RegisterPattern("random", func(g *core.Grid, rng *core.RNG) {
		rng.FillBinary(g.Cells())
	})
}
