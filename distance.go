package fuzzydigest

import (
	"github.com/alexezh/shadow-sub002/internal/modring"
)

// Default distance weights. Off-by-one header differences are treated as
// noise; anything larger scales hard so unrelated inputs separate
// cleanly from near-duplicates.
const (
	defaultLengthMultiplier = 12
	defaultRatioMultiplier  = 12
	defaultOutlierPenalty   = 6
)

// DistanceOption adjusts the weighting of the digest distance. The
// defaults are a reasonable general-purpose scoring; no reference corpus
// pins them, so callers with their own ground truth can retune.
type DistanceOption func(*distanceConfig)

type distanceConfig struct {
	includeLength    bool
	lengthMultiplier int
	ratioMultiplier  int
	outlierPenalty   int
}

func defaultDistanceConfig() distanceConfig {
	return distanceConfig{
		includeLength:    true,
		lengthMultiplier: defaultLengthMultiplier,
		ratioMultiplier:  defaultRatioMultiplier,
		outlierPenalty:   defaultOutlierPenalty,
	}
}

// IgnoreLength drops the length-code term from the distance, for
// comparing content that is expected to have been truncated or padded.
func IgnoreLength() DistanceOption {
	return func(c *distanceConfig) { c.includeLength = false }
}

// WithLengthMultiplier sets the scale applied to length-code differences
// greater than one.
func WithLengthMultiplier(m int) DistanceOption {
	return func(c *distanceConfig) { c.lengthMultiplier = m }
}

// WithRatioMultiplier sets the scale applied to quartile-ratio nibble
// differences greater than one.
func WithRatioMultiplier(m int) DistanceOption {
	return func(c *distanceConfig) { c.ratioMultiplier = m }
}

// WithOutlierPenalty sets the score for body slots whose quantized codes
// are maximally apart (0 versus 3).
func WithOutlierPenalty(p int) DistanceOption {
	return func(c *distanceConfig) { c.outlierPenalty = p }
}

// Distance returns a non-negative dissimilarity score between two
// digests: 0 for identical digests, small for near-duplicate inputs,
// large for unrelated ones. It is symmetric in its arguments.
//
// The score combines a checksum mismatch indicator, the circular
// difference of the length codes (ring 256), the circular differences of
// the quartile ratio nibbles (ring 16), and a graded per-bucket body
// difference. Header codes live on wrap-around domains, so
// boundary-adjacent values (255 vs 0) score as near.
func Distance(a, b Digest, opts ...DistanceOption) int {
	cfg := defaultDistanceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	d := 0
	if a.checksum != b.checksum {
		d++
	}
	if cfg.includeLength {
		ld := modring.Diff(int(a.lcode), int(b.lcode), 256)
		if ld > 1 {
			ld *= cfg.lengthMultiplier
		}
		d += ld
	}
	d += ratioDistance(a.Q1Ratio(), b.Q1Ratio(), cfg.ratioMultiplier)
	d += ratioDistance(a.Q2Ratio(), b.Q2Ratio(), cfg.ratioMultiplier)
	d += bodyDistance(&a.body, &b.body, cfg.outlierPenalty)
	return d
}

// Distance returns the distance to other under the default weights.
func (d Digest) Distance(other Digest) int {
	return Distance(d, other)
}

// ratioDistance scores a ring-16 nibble difference: zero or one is kept
// as-is, anything larger scales by the multiplier.
func ratioDistance(a, b byte, mult int) int {
	rd := modring.Diff(int(a), int(b), 16)
	if rd <= 1 {
		return rd
	}
	return (rd - 1) * mult
}

// bodyDistance sums quantization-code differences across the sampled
// buckets. Codes one or two steps apart contribute their difference; a
// maximally-apart pair contributes outlierPenalty, since a bucket moving
// from the bottom to the top of the distribution signals real content
// divergence rather than threshold jitter.
func bodyDistance(a, b *[bodySize]byte, outlierPenalty int) int {
	d := 0
	for i := range a {
		x, y := a[i], b[i]
		if x == y {
			continue
		}
		for shift := 0; shift < 8; shift += 2 {
			diff := int(x>>shift&3) - int(y>>shift&3)
			if diff < 0 {
				diff = -diff
			}
			if diff == 3 {
				d += outlierPenalty
			} else {
				d += diff
			}
		}
	}
	return d
}
