package fuzzydigest

// Option is a functional option for configuring digest computation.
type Option func(*config)

type config struct {
	strictQuartiles bool
}

func defaultConfig() config {
	return config{}
}

// WithStrictQuartiles makes Digest report
// errors.ErrDegenerateHistogram when the third quartile of the bucket
// histogram is zero, instead of the default fallback of zero ratio
// nibbles. Degenerate histograms come from highly repetitive input that
// lights up only a handful of buckets; strict mode suits callers that
// would rather skip such inputs than compare their low-information
// digests.
func WithStrictQuartiles() Option {
	return func(c *config) { c.strictQuartiles = true }
}
