package fuzzydigest

import "github.com/alexezh/shadow-sub002/internal/pearson"

const (
	// windowSize is the trailing history the deepest triplet definition
	// reaches: the current byte plus four before it.
	windowSize = 5

	// tripletCount is the number of salted triplet definitions evaluated
	// once the window is fully populated.
	tripletCount = 6

	// checksumSalt seeds the rolling checksum's Pearson quadruple. It is
	// distinct from every triplet salt so checksum and bucket streams stay
	// decorrelated.
	checksumSalt = 0
)

// slideWindow is a fixed-capacity ring over the most recent input bytes.
// recent[0] is the newest byte; put evicts the oldest beyond windowSize.
// The pivot counts bytes pushed so far and gates which triplet
// definitions have enough history to evaluate.
type slideWindow struct {
	recent [windowSize]byte
	pivot  int
}

// put pushes a new byte and advances the pivot.
func (w *slideWindow) put(b byte) {
	w.recent[4] = w.recent[3]
	w.recent[3] = w.recent[2]
	w.recent[2] = w.recent[1]
	w.recent[1] = w.recent[0]
	w.recent[0] = b
	w.pivot++
}

// rollChecksum folds the newest byte, its predecessor and the previous
// checksum through the Pearson quadruple. Hash-like rather than
// additive, so transpositions and substitutions both perturb it.
func (w *slideWindow) rollChecksum(prev byte) byte {
	return pearson.Hash4(checksumSalt, w.recent[0], w.recent[1], prev)
}

// tripletHashes appends the bucket index of every triplet definition
// that is currently evaluable and returns the extended slice. Each
// definition pairs a distinct prime salt with a distinct reach-back
// pattern, so one window position feeds up to six decorrelated buckets.
// Early in the stream (pivot < windowSize) fewer hashes — possibly
// none — are produced; short streams never fail here.
func (w *slideWindow) tripletHashes(dst []byte) []byte {
	if w.pivot >= 3 {
		dst = append(dst, pearson.Hash4(2, w.recent[0], w.recent[1], w.recent[2]))
	}
	if w.pivot >= 4 {
		dst = append(dst,
			pearson.Hash4(3, w.recent[0], w.recent[1], w.recent[3]),
			pearson.Hash4(5, w.recent[0], w.recent[2], w.recent[3]))
	}
	if w.pivot >= windowSize {
		dst = append(dst,
			pearson.Hash4(7, w.recent[0], w.recent[2], w.recent[4]),
			pearson.Hash4(11, w.recent[0], w.recent[1], w.recent[4]),
			pearson.Hash4(13, w.recent[0], w.recent[3], w.recent[4]))
	}
	return dst
}
