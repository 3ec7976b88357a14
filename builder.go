package fuzzydigest

import (
	errdefs "github.com/alexezh/shadow-sub002/errors"
)

// digestBuilder assembles a Digest in stages. build refuses to produce a
// value until the checksum, length code, quartile ratios and body have
// all been supplied, so a partially assembled digest can never escape as
// a Digest value.
type digestBuilder struct {
	d    Digest
	have uint8
}

const (
	haveChecksum = 1 << iota
	haveLengthCode
	haveQuartiles
	haveBody

	haveAll = haveChecksum | haveLengthCode | haveQuartiles | haveBody
)

func (b *digestBuilder) setChecksum(c byte) {
	b.d.checksum = c
	b.have |= haveChecksum
}

func (b *digestBuilder) setLengthCode(l byte) {
	b.d.lcode = l
	b.have |= haveLengthCode
}

// setQuartiles packs the two ratio nibbles: q1 low, q2 high.
func (b *digestBuilder) setQuartiles(q1Ratio, q2Ratio byte) {
	b.d.q = q1Ratio&0x0F | (q2Ratio&0x0F)<<4
	b.have |= haveQuartiles
}

func (b *digestBuilder) setBody(body [bodySize]byte) {
	b.d.body = body
	b.have |= haveBody
}

// build finalizes the digest, or returns errors.ErrIncompleteDigest if
// any component is still missing.
func (b *digestBuilder) build() (Digest, error) {
	if b.have != haveAll {
		return Digest{}, errdefs.ErrIncompleteDigest
	}
	return b.d, nil
}
