package fuzzydigest

import (
	errdefs "github.com/alexezh/shadow-sub002/errors"
)

const (
	// numBuckets is the histogram width: one slot per possible Pearson
	// output byte. The slot count never changes; counters only grow during
	// a pass.
	numBuckets = 256

	// MinInputSize is the shortest input that yields the quartileSample
	// full-window triplet observations the statistics need. A full window
	// requires windowSize bytes of history, so the first full sample
	// arrives at byte windowSize and the 128th at byte 132. Shorter inputs
	// fail with errors.ErrInsufficientData.
	MinInputSize = quartileSample + windowSize - 1
)

// Hasher computes a locality-sensitive digest of a byte stream fed
// through one or more Write calls. It implements io.Writer.
//
// A Hasher carries O(1) state beyond the fixed histogram: the 5-byte
// window, a length counter and a rolling checksum. It is not safe for
// concurrent use; digesting many inputs in parallel takes one Hasher per
// input (see ComputeDigests).
type Hasher struct {
	cfg      config
	window   slideWindow
	buckets  [numBuckets]uint32
	checksum byte
	length   int
	scratch  [tripletCount]byte
}

// New returns a Hasher ready to accept input.
func New(opts ...Option) *Hasher {
	h := &Hasher{cfg: defaultConfig()}
	for _, opt := range opts {
		opt(&h.cfg)
	}
	return h
}

// Write feeds the next chunk of the stream. Chunk boundaries do not
// affect the result: any split of the same byte sequence produces the
// same digest. The error is always nil; it exists for the io.Writer
// contract.
func (h *Hasher) Write(p []byte) (int, error) {
	for _, b := range p {
		h.window.put(b)
		h.checksum = h.window.rollChecksum(h.checksum)
		for _, bucket := range h.window.tripletHashes(h.scratch[:0]) {
			h.buckets[bucket]++
		}
	}
	h.length += len(p)
	return len(p), nil
}

// Len reports the number of bytes written so far.
func (h *Hasher) Len() int {
	return h.length
}

// Digest finalizes the statistics accumulated so far and returns the
// immutable digest. The Hasher is not consumed: further Writes extend
// the stream and a later Digest call reflects them.
//
// Returns errors.ErrInsufficientData when fewer than MinInputSize bytes
// have been written, and errors.ErrDegenerateHistogram when the third
// quartile is zero under WithStrictQuartiles.
func (h *Hasher) Digest() (Digest, error) {
	if h.length < MinInputSize {
		return Digest{}, errdefs.ErrInsufficientData
	}

	q := newQuartiles(h.buckets[:quartileSample])
	if q.third == 0 && h.cfg.strictQuartiles {
		return Digest{}, errdefs.ErrDegenerateHistogram
	}

	var b digestBuilder
	b.setChecksum(h.checksum)
	b.setLengthCode(lengthCode(h.length))
	b.setQuartiles(q.q1Ratio(), q.q2Ratio())
	b.setBody(encodeBody(&h.buckets, q))
	return b.build()
}

// Reset returns the Hasher to its zero state for reuse. Options set at
// construction are kept.
func (h *Hasher) Reset() {
	h.window = slideWindow{}
	h.buckets = [numBuckets]uint32{}
	h.checksum = 0
	h.length = 0
}

// ComputeDigest digests data in a single pass. Equivalent to writing
// data to a fresh Hasher and calling Digest.
func ComputeDigest(data []byte, opts ...Option) (Digest, error) {
	h := New(opts...)
	_, _ = h.Write(data)
	return h.Digest()
}
