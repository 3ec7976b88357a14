package fuzzydigest

import "slices"

// quartileSample is how many histogram slots feed the quartile
// statistics and the body encoding: the first half of the bucket array.
// Header and body must agree on this scope, and it is part of the wire
// format — widening it to the full 256 slots would change every digest.
const quartileSample = 128

// quartiles holds the distribution points of the sampled histogram,
// with first <= second <= third by construction.
type quartiles struct {
	first, second, third uint32
}

// newQuartiles sorts a copy of the sampled histogram slots ascending and
// reads the ranks at 1/4, 1/2 and 3/4 of the sample. It panics if fewer
// than quartileSample slots are supplied: callers always pass the
// fixed-width bucket array, so a short slice is a bug, not a runtime
// condition.
func newQuartiles(buckets []uint32) quartiles {
	if len(buckets) < quartileSample {
		panic("fuzzydigest: quartiles need at least 128 histogram slots")
	}
	sorted := make([]uint32, quartileSample)
	copy(sorted, buckets[:quartileSample])
	slices.Sort(sorted)
	return quartiles{
		first:  sorted[quartileSample/4-1],
		second: sorted[quartileSample/2-1],
		third:  sorted[quartileSample*3/4-1],
	}
}

// q1Ratio returns floor(Q1*100/Q3) mod 16. When the third quartile is
// zero — highly repetitive input lighting up only a few buckets — the
// ratio is defined as zero rather than dividing by zero.
func (q quartiles) q1Ratio() byte {
	if q.third == 0 {
		return 0
	}
	return byte(uint64(q.first) * 100 / uint64(q.third) % 16)
}

// q2Ratio returns floor(Q2*100/Q3) mod 16, with the same zero-Q3
// fallback as q1Ratio.
func (q quartiles) q2Ratio() byte {
	if q.third == 0 {
		return 0
	}
	return byte(uint64(q.second) * 100 / uint64(q.third) % 16)
}
