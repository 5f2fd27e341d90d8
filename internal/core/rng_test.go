package core

import "testing"

func TestInclusiveRange(t *testing.T) {
	r := NewRNG(1)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := r.Inclusive(3)
		if v < 0 || v > 3 {
			t.Fatalf("value %d outside [0, 3]", v)
		}
		seen[v] = true
	}
	if len(seen) != 4 {
		t.Fatalf("expected all of [0, 3] to appear, saw %v", seen)
	}
	if r.Inclusive(0) != 0 {
		t.Fatal("Inclusive(0) must be 0")
	}
}
