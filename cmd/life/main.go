package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"termlife/internal/app"
	"termlife/internal/core"
	"termlife/internal/sims/life"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *app.Config) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	if err := cfg.Validate(); err != nil {
		return err
	}
	sim, err := life.NewWithConfig(cfg.Life())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Frontend {
	case app.FrontendTcell:
		scr, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("open screen: %w", err)
		}
		return app.NewScreen(scr, sim, cfg.Interval).Run(ctx)
	default:
		checkTerminal(os.Stdout, sim.Size())
		return app.NewTerminal(os.Stdout, sim, cfg.Interval).Run(ctx)
	}
}

// checkTerminal warns when frames will not land on a screen that fits them.
func checkTerminal(f *os.File, size core.Size) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		log.Print("stdout is not a terminal, control sequences will be written verbatim")
		return
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		log.Printf("query terminal size: %v", err)
		return
	}
	if w < size.Cols || h < size.Rows {
		log.Printf("terminal is %dx%d but the grid needs %dx%d, frames will be clipped", w, h, size.Cols, size.Rows)
	}
}
