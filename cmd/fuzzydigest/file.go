package main

import (
	"os"

	"github.com/edsrzf/mmap-go"

	fuzzydigest "github.com/alexezh/shadow-sub002"
)

// withFileBytes opens path read-only, maps it into memory and passes the
// contents to fn. Empty files (which mmap rejects) are passed as a nil
// slice; files that cannot be mapped fall back to a plain read. The
// slice is only valid for the duration of fn.
func withFileBytes(path string, fn func(data []byte) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		return fn(nil)
	}

	fadviseSequential(int(f.Fd()), 0, info.Size())

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		data, rerr := os.ReadFile(path)
		if rerr != nil {
			return rerr
		}
		return fn(data)
	}
	defer m.Unmap()
	return fn(m)
}

// digestFile computes the fuzzy digest of the file at path.
func digestFile(path string) (fuzzydigest.Digest, error) {
	var d fuzzydigest.Digest
	err := withFileBytes(path, func(data []byte) error {
		var derr error
		d, derr = fuzzydigest.ComputeDigest(data)
		return derr
	})
	return d, err
}
