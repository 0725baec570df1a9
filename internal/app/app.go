//go:build ebiten

package app

import (
	"fmt"
	"image/color"

	"termlife/internal/render"
	"termlife/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Life simulation to the ebiten.Game interface.
type Game struct {
	sim     *life.Life
	painter *render.GridPainter

	onColor  color.Color
	offColor color.Color

	scale int
	drawn bool
}

// New constructs a Game for the provided simulation.
func New(sim *life.Life, scale int) *Game {
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.Rows, size.Cols),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}
}

// Update advances the simulation once per drawn frame so every generation
// reaches the screen before it is replaced.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.drawn {
		g.sim.Step()
		g.drawn = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("gen %d  pop %d", g.sim.Generation(), g.sim.Population()))
	g.drawn = true
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.Cols * g.scale, s.Rows * g.scale
}
