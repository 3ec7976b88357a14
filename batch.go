package fuzzydigest

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BatchOption is a functional option for configuring ComputeDigests.
type BatchOption func(*batchConfig)

type batchConfig struct {
	workers    int
	hasherOpts []Option
}

// WithWorkers sets the number of parallel workers. Defaults to
// GOMAXPROCS.
func WithWorkers(n int) BatchOption {
	return func(c *batchConfig) { c.workers = n }
}

// WithHasherOptions applies the given Options to every per-input
// computation.
func WithHasherOptions(opts ...Option) BatchOption {
	return func(c *batchConfig) { c.hasherOpts = opts }
}

// ComputeDigests digests every input concurrently. Each computation is
// fully independent — nothing is shared beyond the read-only
// substitution table — so inputs simply fan out across workers with no
// locking. The result slice is index-aligned with inputs.
//
// The first failing input (for example one below MinInputSize) cancels
// the remaining work and its error is returned, wrapped with the input
// index. Callers that expect short inputs should filter them out first.
func ComputeDigests(ctx context.Context, inputs [][]byte, opts ...BatchOption) ([]Digest, error) {
	cfg := batchConfig{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}

	results := make([]Digest, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i, input := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := ComputeDigest(input, cfg.hasherOpts...)
			if err != nil {
				return fmt.Errorf("input %d: %w", i, err)
			}
			results[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
