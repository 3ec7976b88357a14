// Package fuzzydigest implements a streaming locality-sensitive hash:
// near-duplicate byte streams produce digests with a small mutual
// distance, while unrelated streams produce distant digests.
//
// The engine makes a single forward pass over the input with O(1) state
// per byte: a 5-byte sliding window feeds six salted Pearson triplet
// hashes per position into a 256-slot histogram, alongside a rolling
// one-byte checksum. Quartile statistics of the histogram, a log-scale
// length code, and a 2-bit-per-bucket body quantization form the final
// 35-byte digest.
//
// # Basic Usage
//
// One-shot:
//
//	digest, err := fuzzydigest.ComputeDigest(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(digest) // 70 hex characters
//
// Streaming:
//
//	h := fuzzydigest.New()
//	for chunk := range chunks {
//	    h.Write(chunk)
//	}
//	digest, err := h.Digest()
//
// Comparing:
//
//	d := fuzzydigest.Distance(a, b)
//	if d < threshold {
//	    // near-duplicates
//	}
//
// Inputs shorter than MinInputSize cannot produce statistically
// meaningful quartiles and fail with errors.ErrInsufficientData.
//
// Digest computation is a pure function of the input bytes: no
// randomness, no global mutable state beyond the read-only substitution
// table. Computing digests for many inputs is embarrassingly parallel;
// see ComputeDigests.
//
// This is not a cryptographic hash. The digest is trivially forgeable
// and must never be used where collision resistance matters.
//
// # Package Structure
//
//   - Public API: hasher.go (New, Write, Digest), digest.go (Digest,
//     ParseDigest), distance.go (Distance), batch.go (ComputeDigests)
//   - Configuration: options.go, distance.go (functional options)
//   - Statistics: quartiles.go, lvalue.go
//   - Primitives: internal/pearson (substitution-table hash),
//     internal/modring (circular distance)
//   - Tools: cmd/fuzzydigest (hash/compare/scan CLI), cmd/bench
package fuzzydigest
