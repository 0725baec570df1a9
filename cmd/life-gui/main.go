//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"termlife/internal/app"
	"termlife/internal/core"
	"termlife/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	sim, err := life.NewWithConfig(cfg.Life())
	if err != nil {
		log.Fatal(err)
	}
	sim.Seed()

	game := app.New(sim, cfg.Scale)
	size := sim.Size()

	ebiten.SetWindowTitle("life — " + cfg.Pattern)
	ebiten.SetTPS(core.NewPacer(cfg.Interval).TPS())
	ebiten.SetWindowSize(size.Cols*cfg.Scale, size.Rows*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
