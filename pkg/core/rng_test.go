package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 64; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestChanceBounds(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 200; i++ {
		if r.Chance(0) {
			t.Fatal("0% chance must never fire")
		}
		if !r.Chance(100) {
			t.Fatal("100% chance must always fire")
		}
	}
}

func TestPickEmpty(t *testing.T) {
	r := NewRNG(3)
	if got := Pick[int](r, nil); got != 0 {
		t.Fatalf("expected zero value from empty pick, got %d", got)
	}
	if got := Pick(r, []string{"only"}); got != "only" {
		t.Fatalf("expected sole option, got %q", got)
	}
}
