package pearson

import "testing"

// TestTableIsPermutation verifies the substitution table contains every
// byte value exactly once. A duplicated or missing entry would silently
// bias every bucket histogram built on top of the hash.
func TestTableIsPermutation(t *testing.T) {
	var seen [256]bool
	for i, v := range table {
		if seen[v] {
			t.Fatalf("table[%d] = %d appears more than once", i, v)
		}
		seen[v] = true
	}
	for v, ok := range seen {
		if !ok {
			t.Errorf("value %d missing from table", v)
		}
	}
}

func TestHashEmpty(t *testing.T) {
	if got := Hash(nil); got != 0 {
		t.Errorf("Hash(nil) = %d, want 0", got)
	}
	if got := Hash([]byte{}); got != 0 {
		t.Errorf("Hash([]byte{}) = %d, want 0", got)
	}
}

// TestHash4MatchesHash verifies the inlineable four-byte fast path agrees
// with the general loop for every salt used by the triplet definitions.
func TestHash4MatchesHash(t *testing.T) {
	salts := []byte{0, 2, 3, 5, 7, 11, 13}
	for _, salt := range salts {
		for b := 0; b < 256; b += 17 {
			c1, c2, c3 := byte(b), byte(b*3), byte(b*7)
			want := Hash([]byte{salt, c1, c2, c3})
			got := Hash4(salt, c1, c2, c3)
			if got != want {
				t.Fatalf("Hash4(%d, %d, %d, %d) = %d, Hash = %d", salt, c1, c2, c3, got, want)
			}
		}
	}
}

func TestHashDeterministic(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	first := Hash(data)
	for i := 0; i < 100; i++ {
		if got := Hash(data); got != first {
			t.Fatalf("iteration %d: Hash = %d, want %d", i, got, first)
		}
	}
}

// TestSaltsDecorrelate verifies that distinct salts route the same
// content triple to distinct buckets for most inputs. This is the
// property that lets one window position contribute several independent
// histogram hits.
func TestSaltsDecorrelate(t *testing.T) {
	salts := []byte{2, 3, 5, 7, 11, 13}
	collisions := 0
	trials := 0
	for b := 0; b < 256; b++ {
		c1, c2, c3 := byte(b), byte(b+1), byte(b+2)
		for i := 0; i < len(salts); i++ {
			for j := i + 1; j < len(salts); j++ {
				trials++
				if Hash4(salts[i], c1, c2, c3) == Hash4(salts[j], c1, c2, c3) {
					collisions++
				}
			}
		}
	}
	// Random one-byte hashes collide at ~1/256; allow generous slack.
	if collisions > trials/64 {
		t.Errorf("salted hashes collide too often: %d of %d", collisions, trials)
	}
}
