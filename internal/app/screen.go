package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"termlife/internal/core"
	"termlife/internal/render"
)

// Screen renders a simulation through a tcell screen. Besides the board it
// shows a status line and stops on q, Esc or Ctrl-C.
type Screen struct {
	scr   tcell.Screen
	sim   core.Sim
	pacer *core.Pacer

	alive tcell.Style
	dead  tcell.Style
}

// NewScreen constructs a Screen. scr must not be initialized yet.
func NewScreen(scr tcell.Screen, sim core.Sim, interval time.Duration) *Screen {
	return &Screen{
		scr:   scr,
		sim:   sim,
		pacer: core.NewPacer(interval),
		alive: tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
		dead:  tcell.StyleDefault.Foreground(tcell.ColorGray),
	}
}

// Run seeds the simulation and renders generations until ctx is cancelled,
// a quit key is pressed or drawing fails.
func (s *Screen) Run(ctx context.Context) error {
	if err := s.scr.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	s.scr.HideCursor()
	s.scr.Clear()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	// PollEvent returns nil once Fini has run, which ends this goroutine.
	g.Go(func() error {
		s.poll(cancel)
		return nil
	})
	g.Go(func() (err error) {
		defer s.scr.Fini()
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("simulation panic: %v", r)
			}
		}()
		s.sim.Seed()
		return Loop(ctx, s.sim, s.pacer, s.draw)
	})
	return g.Wait()
}

func (s *Screen) poll(stop context.CancelFunc) {
	for {
		switch ev := s.scr.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if isQuit(ev) {
				stop()
			}
		case *tcell.EventResize:
			s.scr.Sync()
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func (s *Screen) draw() error {
	size := s.sim.Size()
	for row := 0; row < size.Rows; row++ {
		for col := 0; col < size.Cols; col++ {
			glyph, style := render.DeadGlyph, s.dead
			if s.sim.Alive(row, col) {
				glyph, style = render.AliveGlyph, s.alive
			}
			s.scr.SetContent(col, row, glyph, nil, style)
		}
	}
	status := fmt.Sprintf("gen %d  pop %d  q to quit", s.sim.Generation(), s.sim.Population())
	for col := 0; col < size.Cols || col < len(status); col++ {
		r := ' '
		if col < len(status) {
			r = rune(status[col])
		}
		s.scr.SetContent(col, size.Rows, r, nil, tcell.StyleDefault)
	}
	s.scr.Show()
	return nil
}
