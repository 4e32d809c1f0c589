package breakout

import "testing"

func TestSimpleRNGDeterministic(t *testing.T) {
	a := NewSimpleRNG(42)
	b := NewSimpleRNG(42)

	for i := range 100 {
		if a.Next() != b.Next() {
			t.Fatalf("sequences diverged at step %d", i)
		}
	}
}

func TestSimpleRNGZeroSeed(t *testing.T) {
	r := NewSimpleRNG(0)
	first := r.Next()
	if first == r.Next() {
		t.Error("zero seed should still produce a moving sequence")
	}
}

func TestSimpleRNGRanges(t *testing.T) {
	r := NewSimpleRNG(7)

	for range 1000 {
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v, want [0, 1)", f)
		}
	}
}
