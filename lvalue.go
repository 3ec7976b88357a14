package fuzzydigest

import "math"

// Length-code brackets and scale constants. Each bracket divides the
// natural log of the length by the log of a different base (1.5, 1.3,
// 1.1), with an offset keeping the code continuous across the bracket
// joins. The coarser the bracket, the more lengths share a code, so
// near-duplicates that grew or shrank by a few bytes keep equal or
// adjacent headers.
const (
	lengthBracket1 = 656
	lengthBracket2 = 3199

	log15 = 0.4054651081081644  // ln 1.5
	log13 = 0.2623642644674911  // ln 1.3
	log11 = 0.0953101798043249  // ln 1.1

	lengthOffset2 = 8.72777
	lengthOffset3 = 62.5472
)

// lengthCode maps an input length onto a one-byte log scale. It is a
// pure function of n: identical across calls and independent of content.
func lengthCode(n int) byte {
	if n <= 0 {
		return 0
	}
	var code float64
	switch {
	case n <= lengthBracket1:
		code = math.Floor(math.Log(float64(n)) / log15)
	case n <= lengthBracket2:
		code = math.Floor(math.Log(float64(n))/log13 - lengthOffset2)
	default:
		code = math.Floor(math.Log(float64(n))/log11 - lengthOffset3)
	}
	return byte(int(code) & 0xFF)
}
