// Package errors defines all exported error sentinels for the fuzzydigest
// library.
//
// This is the single source of truth for error values. Both the top-level
// fuzzydigest package and its internal packages import from here, ensuring
// errors.Is checks work across package boundaries.
package errors

import "errors"

// Digest computation errors
var (
	// ErrInsufficientData is returned when the input stream is too short to
	// produce the 128 full-window histogram samples the quartile statistics
	// need. Retrying the same input reproduces the error; the computation is
	// deterministic.
	ErrInsufficientData = errors.New("fuzzydigest: input too short for a statistically meaningful digest")

	// ErrDegenerateHistogram is returned under WithStrictQuartiles when the
	// third quartile of the bucket histogram is zero, which happens for
	// highly repetitive input that lights up only a handful of buckets.
	ErrDegenerateHistogram = errors.New("fuzzydigest: third quartile is zero (degenerate bucket histogram)")

	// ErrIncompleteDigest reports an internal staging bug: a digest was
	// finalized before the checksum, length code, quartile ratios and body
	// were all supplied.
	ErrIncompleteDigest = errors.New("fuzzydigest: digest finalized before all components were supplied")
)

// Serialization errors
var (
	// ErrInvalidDigest is returned when parsing a textual or binary digest
	// of the wrong length or with characters outside the hex alphabet.
	ErrInvalidDigest = errors.New("fuzzydigest: malformed digest encoding")
)
