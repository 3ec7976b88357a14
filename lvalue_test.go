package fuzzydigest

import "testing"

func TestLengthCodePure(t *testing.T) {
	for _, n := range []int{1, 100, 656, 657, 3199, 3200, 1 << 20} {
		if a, b := lengthCode(n), lengthCode(n); a != b {
			t.Errorf("lengthCode(%d) not stable: %d vs %d", n, a, b)
		}
	}
}

func TestLengthCodeNonPositive(t *testing.T) {
	for _, n := range []int{0, -1, -1000} {
		if got := lengthCode(n); got != 0 {
			t.Errorf("lengthCode(%d) = %d, want 0", n, got)
		}
	}
}

// TestLengthCodeMonotone walks every length through the bracket joins
// and checks the code never decreases and never jumps by more than one.
// Near-duplicate inputs that grew slightly must land on equal or
// adjacent codes.
func TestLengthCodeMonotone(t *testing.T) {
	prev := lengthCode(1)
	for n := 2; n <= 10000; n++ {
		code := lengthCode(n)
		if code < prev {
			t.Fatalf("lengthCode decreased at %d: %d -> %d", n, prev, code)
		}
		if code-prev > 1 {
			t.Fatalf("lengthCode jumped at %d: %d -> %d", n, prev, code)
		}
		prev = code
	}
}

// TestLengthCodeCoarseAtScale verifies the logarithmic compression:
// lengths a few bytes apart share a code once inputs are large.
func TestLengthCodeCoarseAtScale(t *testing.T) {
	for _, n := range []int{10000, 100000, 1 << 20} {
		if a, b := lengthCode(n), lengthCode(n+16); a != b {
			t.Errorf("lengthCode(%d)=%d vs lengthCode(%d)=%d, want equal", n, a, n+16, b)
		}
	}
}
