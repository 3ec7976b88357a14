package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	fuzzydigest "github.com/alexezh/shadow-sub002"
	errdefs "github.com/alexezh/shadow-sub002/errors"
)

// scanEntry is the per-file result of the parallel digest pass.
type scanEntry struct {
	path   string
	exact  uint64 // xxHash64 of the raw contents, for exact-duplicate grouping
	digest fuzzydigest.Digest
	fuzzy  bool // false when the file is too short for a fuzzy digest
}

func runScan(args []string) error {
	flags := pflag.NewFlagSet("scan", pflag.ContinueOnError)
	threshold := flags.Int("threshold", 50, "max distance to report a near-duplicate pair")
	workers := flags.Int("workers", runtime.GOMAXPROCS(0), "parallel digest workers")
	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if flags.NArg() != 1 {
		return errors.New("scan: need exactly one directory")
	}
	root := flags.Arg(0)

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Digest every file in parallel. Each file is independent, so this is
	// a plain fan-out; results land in an index-aligned slice.
	entries := make([]scanEntry, len(paths))
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(*workers)
	for i, path := range paths {
		g.Go(func() error {
			return withFileBytes(path, func(data []byte) error {
				e := scanEntry{path: path, exact: xxhash.Sum64(data)}
				d, err := fuzzydigest.ComputeDigest(data)
				switch {
				case err == nil:
					e.digest, e.fuzzy = d, true
				case errors.Is(err, errdefs.ErrInsufficientData):
					// Too short for a fuzzy digest; still participates in
					// exact-duplicate grouping.
				default:
					return fmt.Errorf("%s: %w", path, err)
				}
				entries[i] = e
				return nil
			})
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	reportExactDuplicates(entries)
	reportNearDuplicates(entries, *threshold)
	return nil
}

// reportExactDuplicates groups files by their content hash and prints
// every group with more than one member, in first-seen order.
func reportExactDuplicates(entries []scanEntry) {
	groups := make(map[uint64][]string, len(entries))
	var order []uint64
	for _, e := range entries {
		if _, seen := groups[e.exact]; !seen {
			order = append(order, e.exact)
		}
		groups[e.exact] = append(groups[e.exact], e.path)
	}
	for _, h := range order {
		if paths := groups[h]; len(paths) > 1 {
			fmt.Print("exact")
			for _, p := range paths {
				fmt.Printf("  %s", p)
			}
			fmt.Println()
		}
	}
}

// reportNearDuplicates prints every pair of distinct-content files whose
// digest distance is within the threshold. Pairwise over the digestable
// files; exact duplicates are already reported and skipped here.
func reportNearDuplicates(entries []scanEntry, threshold int) {
	for i := range entries {
		if !entries[i].fuzzy {
			continue
		}
		for j := i + 1; j < len(entries); j++ {
			if !entries[j].fuzzy || entries[i].exact == entries[j].exact {
				continue
			}
			if d := fuzzydigest.Distance(entries[i].digest, entries[j].digest); d <= threshold {
				fmt.Printf("near  %d  %s  %s\n", d, entries[i].path, entries[j].path)
			}
		}
	}
}
