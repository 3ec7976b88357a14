package modring

import "testing"

func TestDiff(t *testing.T) {
	tests := []struct {
		a, b, size, want int
	}{
		{0, 0, 256, 0},
		{3, 3, 16, 0},
		{0, 255, 256, 1},   // adjacent across the wrap boundary
		{255, 0, 256, 1},
		{0, 128, 256, 128}, // maximally far
		{2, 14, 16, 4},
		{14, 2, 16, 4},
		{15, 0, 16, 1},
		{0, 8, 16, 8},
		{10, 250, 256, 16},
	}
	for _, tc := range tests {
		if got := Diff(tc.a, tc.b, tc.size); got != tc.want {
			t.Errorf("Diff(%d, %d, %d) = %d, want %d", tc.a, tc.b, tc.size, got, tc.want)
		}
	}
}

func TestDiffSymmetric(t *testing.T) {
	for a := 0; a < 256; a += 7 {
		for b := 0; b < 256; b += 11 {
			if Diff(a, b, 256) != Diff(b, a, 256) {
				t.Fatalf("Diff(%d, %d, 256) != Diff(%d, %d, 256)", a, b, b, a)
			}
		}
	}
}

// TestDiffBounded verifies the distance never exceeds half the ring.
func TestDiffBounded(t *testing.T) {
	for a := 0; a < 16; a++ {
		for b := 0; b < 16; b++ {
			if d := Diff(a, b, 16); d < 0 || d > 8 {
				t.Fatalf("Diff(%d, %d, 16) = %d out of [0, 8]", a, b, d)
			}
		}
	}
}
