package core

import (
	"slices"
	"testing"
)

func TestFillBinaryDeterministic(t *testing.T) {
	a := make([]bool, 64)
	b := make([]bool, 64)
	NewRNG(7).FillBinary(a)
	NewRNG(7).FillBinary(b)
	if !slices.Equal(a, b) {
		t.Fatal("same seed must produce the same fill")
	}

	c := make([]bool, 64)
	NewRNG(8).FillBinary(c)
	if slices.Equal(a, c) {
		t.Fatal("different seeds should produce different fills")
	}
}
