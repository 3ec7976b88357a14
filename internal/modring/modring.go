// Package modring provides distance on wrap-around (modular) domains.
package modring

// Diff returns the circular distance between a and b on a ring of the
// given size: min(|b-a|, size-|b-a|). Values adjacent across the wrap
// boundary (for example 255 and 0 on a 256-ring) score as near rather
// than maximally far. Both inputs must already lie in [0, size).
func Diff(a, b, size int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	if wrap := size - d; wrap < d {
		return wrap
	}
	return d
}
