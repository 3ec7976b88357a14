package fuzzydigest

import (
	"encoding/hex"
	"fmt"

	"github.com/cespare/xxhash/v2"

	errdefs "github.com/alexezh/shadow-sub002/errors"
)

const (
	// bodySize is the body encoding width: two bits per sampled bucket.
	bodySize = quartileSample / 4

	// digestSize is the binary digest width: checksum, length code and
	// packed quartile ratios, followed by the body.
	digestSize = 3 + bodySize

	// encodedSize is the textual digest width in hex characters.
	encodedSize = digestSize * 2
)

// Digest is the immutable fingerprint of one input stream: a rolling
// checksum byte, a log-scale length code, the packed quartile ratio
// nibbles, and a 32-byte histogram body. Digests are plain values — safe
// to copy, compare with ==, and use as map keys. Once built, a Digest is
// never mutated.
type Digest struct {
	checksum byte
	lcode    byte
	q        byte
	body     [bodySize]byte
}

// Checksum returns the rolling checksum byte accumulated over the whole
// stream.
func (d Digest) Checksum() byte { return d.checksum }

// LengthCode returns the one-byte log-scale length code.
func (d Digest) LengthCode() byte { return d.lcode }

// Q1Ratio returns the first quartile ratio nibble (0..15).
func (d Digest) Q1Ratio() byte { return d.q & 0x0F }

// Q2Ratio returns the second quartile ratio nibble (0..15).
func (d Digest) Q2Ratio() byte { return d.q >> 4 }

// Body returns a copy of the 2-bit-per-bucket histogram quantization.
func (d Digest) Body() [bodySize]byte { return d.body }

// AppendBinary appends the fixed 35-byte wire form — checksum, length
// code, packed ratios, body — to dst and returns the extended slice.
func (d Digest) AppendBinary(dst []byte) []byte {
	dst = append(dst, d.checksum, d.lcode, d.q)
	return append(dst, d.body[:]...)
}

// DigestFromBytes reconstructs a Digest from its 35-byte binary form.
func DigestFromBytes(raw []byte) (Digest, error) {
	if len(raw) != digestSize {
		return Digest{}, fmt.Errorf("%w: want %d bytes, got %d", errdefs.ErrInvalidDigest, digestSize, len(raw))
	}
	d := Digest{checksum: raw[0], lcode: raw[1], q: raw[2]}
	copy(d.body[:], raw[3:])
	return d, nil
}

// String returns the fixed-width hexadecimal form: 70 lowercase hex
// characters, stable across runs and processes.
func (d Digest) String() string {
	var buf [digestSize]byte
	return hex.EncodeToString(d.AppendBinary(buf[:0]))
}

// ParseDigest parses the hexadecimal form produced by String.
func ParseDigest(s string) (Digest, error) {
	if len(s) != encodedSize {
		return Digest{}, fmt.Errorf("%w: want %d hex characters, got %d", errdefs.ErrInvalidDigest, encodedSize, len(s))
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Digest{}, fmt.Errorf("%w: %v", errdefs.ErrInvalidDigest, err)
	}
	return DigestFromBytes(raw)
}

// MarshalText implements encoding.TextMarshaler.
func (d Digest) MarshalText() ([]byte, error) {
	var buf [digestSize]byte
	dst := make([]byte, encodedSize)
	hex.Encode(dst, d.AppendBinary(buf[:0]))
	return dst, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Digest) UnmarshalText(text []byte) error {
	parsed, err := ParseDigest(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Sum64 returns a stable 64-bit key for the digest: xxHash64 over the
// wire form. Equal digests always produce equal keys, so callers can use
// it to bucket digests in content-addressed dedup maps without holding
// the full value. It is not the comparison metric — use Distance for
// similarity.
func (d Digest) Sum64() uint64 {
	var buf [digestSize]byte
	return xxhash.Sum64(d.AppendBinary(buf[:0]))
}

// encodeBody quantizes each sampled bucket to two bits against the
// quartile points: 3 above Q3, 2 above Q2, 1 above Q1, 0 otherwise.
// Bucket i lands in body[i/4] at bit position (i%4)*2.
func encodeBody(buckets *[numBuckets]uint32, q quartiles) [bodySize]byte {
	var body [bodySize]byte
	for i := 0; i < quartileSample; i++ {
		var code byte
		switch c := buckets[i]; {
		case c > q.third:
			code = 3
		case c > q.second:
			code = 2
		case c > q.first:
			code = 1
		}
		body[i>>2] |= code << ((i & 3) * 2)
	}
	return body
}
