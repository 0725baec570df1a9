package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"termlife/internal/render"
	"termlife/internal/sims/life"
)

var errBroken = errors.New("broken pipe")

type flakyWriter struct {
	buf    strings.Builder
	writes int
	failAt int
}

func (f *flakyWriter) Write(p []byte) (int, error) {
	f.writes++
	if f.writes == f.failAt {
		return 0, errBroken
	}
	return f.buf.Write(p)
}

func seededFrame(t *testing.T, rows, cols int) string {
	t.Helper()
	sim := life.New(rows, cols)
	sim.Seed()
	var sb strings.Builder
	if err := render.Frame(&sb, sim); err != nil {
		t.Fatalf("frame: %v", err)
	}
	return sb.String()
}

func TestTerminalRunWritesSetupFrameTeardown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out flakyWriter
	sim := life.New(20, 20)
	if err := NewTerminal(&out, sim, time.Hour).Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := render.Setup + seededFrame(t, 20, 20) + render.Teardown
	if got := out.buf.String(); got != want {
		t.Fatalf("unexpected terminal output:\n%q\nexpected:\n%q", got, want)
	}
	if sim.Generation() != 1 {
		t.Fatalf("expected one generation to be computed, got %d", sim.Generation())
	}
}

func TestTerminalRestoresOnWriteError(t *testing.T) {
	// Write 1 is setup, write 2 the first flushed frame.
	out := &flakyWriter{failAt: 2}
	err := NewTerminal(out, life.New(5, 5), time.Millisecond).Run(context.Background())
	if !errors.Is(err, errBroken) {
		t.Fatalf("expected write error, got %v", err)
	}
	if got := out.buf.String(); got != render.Setup+render.Teardown {
		t.Fatalf("terminal not restored, output %q", got)
	}
}

func TestTerminalSetupFailure(t *testing.T) {
	out := &flakyWriter{failAt: 1}
	err := NewTerminal(out, life.New(5, 5), time.Millisecond).Run(context.Background())
	if !errors.Is(err, errBroken) {
		t.Fatalf("expected setup error, got %v", err)
	}
	if out.buf.Len() != 0 {
		t.Fatalf("nothing should be written after a failed setup, got %q", out.buf.String())
	}
}

type panicky struct{ *life.Life }

func (panicky) Step() { panic("boom") }

func TestTerminalRestoresOnPanic(t *testing.T) {
	var out flakyWriter
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic to propagate")
			}
		}()
		_ = NewTerminal(&out, panicky{life.New(3, 3)}, time.Millisecond).Run(context.Background())
	}()

	if !strings.HasSuffix(out.buf.String(), render.Teardown) {
		t.Fatalf("terminal not restored after panic, output %q", out.buf.String())
	}
}
