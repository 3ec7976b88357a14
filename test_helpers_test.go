package fuzzydigest

import (
	"encoding/binary"
	randv2 "math/rand/v2"
	"testing"

	"github.com/zeebo/xxh3"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

// newTestRNG returns an RNG seeded from the test name, so every test is
// deterministic yet sees its own stream.
func newTestRNG(t testing.TB) *randv2.Rand {
	t.Helper()
	sum := xxh3.Hash128([]byte(t.Name()))
	return randv2.New(randv2.NewPCG(testSeed1^sum.Lo, testSeed2^sum.Hi))
}

// fillFromRNG fills buf with pseudo-random bytes from rng.
func fillFromRNG(rng *randv2.Rand, buf []byte) {
	for i := 0; i+8 <= len(buf); i += 8 {
		binary.LittleEndian.PutUint64(buf[i:], rng.Uint64())
	}
	if tail := len(buf) % 8; tail > 0 {
		v := rng.Uint64()
		start := len(buf) - tail
		for j := 0; j < tail; j++ {
			buf[start+j] = byte(v >> (j * 8))
		}
	}
}

// randomInput returns n deterministic pseudo-random bytes.
func randomInput(rng *randv2.Rand, n int) []byte {
	buf := make([]byte, n)
	fillFromRNG(rng, buf)
	return buf
}

// mustDigest computes the digest of data and fails the test on error.
func mustDigest(t *testing.T, data []byte) Digest {
	t.Helper()
	d, err := ComputeDigest(data)
	if err != nil {
		t.Fatalf("ComputeDigest(%d bytes) failed: %v", len(data), err)
	}
	return d
}
