// Bench is a benchmarking tool for measuring fuzzydigest throughput:
// digest MB/s, distance comparisons per second, and peak memory usage.
//
// Usage:
//
//	go run ./cmd/bench -size 4194304 -iters 64
//
// Flags:
//
//	-size         Input size in bytes (default: 4 MiB)
//	-iters        Digest iterations (default: 64)
//	-comparisons  Distance comparisons (default: 1,000,000)
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"runtime"
	"syscall"
	"time"

	"github.com/spaolacci/murmur3"

	fuzzydigest "github.com/alexezh/shadow-sub002"
)

// getMaxRSS returns the maximum resident set size in bytes.
// Uses getrusage(RUSAGE_SELF) which tracks peak RSS since process start.
func getMaxRSS() uint64 {
	var rusage syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &rusage); err != nil {
		return 0
	}
	// On macOS, MaxRss is in bytes. On Linux, it's in kilobytes.
	maxRSS := uint64(rusage.Maxrss)
	if runtime.GOOS == "linux" {
		maxRSS *= 1024
	}
	return maxRSS
}

// generateData produces size bytes of deterministic pseudo-random data
// by chaining murmur3 128-bit blocks from the seed.
func generateData(size int, seed uint32) []byte {
	data := make([]byte, 0, size+16)
	block := make([]byte, 16)
	binary.LittleEndian.PutUint64(block[0:8], uint64(seed))
	for len(data) < size {
		h1, h2 := murmur3.Sum128WithSeed(block, seed)
		binary.LittleEndian.PutUint64(block[0:8], h1)
		binary.LittleEndian.PutUint64(block[8:16], h2)
		data = append(data, block...)
	}
	return data[:size]
}

func main() {
	sizeFlag := flag.Int("size", 4<<20, "input size in bytes")
	itersFlag := flag.Int("iters", 64, "digest iterations")
	cmpFlag := flag.Int("comparisons", 1_000_000, "distance comparisons")
	flag.Parse()

	fmt.Println("Generating input...")
	data := generateData(*sizeFlag, 0x1234)

	fmt.Println("Digesting...")
	start := time.Now()
	var last fuzzydigest.Digest
	for i := 0; i < *itersFlag; i++ {
		d, err := fuzzydigest.ComputeDigest(data)
		if err != nil {
			fmt.Println("digest failed:", err)
			return
		}
		last = d
	}
	elapsed := time.Since(start)
	totalMB := float64(*sizeFlag) * float64(*itersFlag) / (1 << 20)
	fmt.Printf("digest: %.1f MB/s (%d x %d bytes in %v)\n",
		totalMB/elapsed.Seconds(), *itersFlag, *sizeFlag, elapsed)
	fmt.Printf("sample digest: %s\n", last)

	other, err := fuzzydigest.ComputeDigest(generateData(*sizeFlag, 0x5678))
	if err != nil {
		fmt.Println("digest failed:", err)
		return
	}

	fmt.Println("Comparing...")
	start = time.Now()
	sink := 0
	for i := 0; i < *cmpFlag; i++ {
		sink += fuzzydigest.Distance(last, other)
	}
	elapsed = time.Since(start)
	fmt.Printf("distance: %.0f ops/s (accumulated %d)\n",
		float64(*cmpFlag)/elapsed.Seconds(), sink)

	fmt.Printf("peak RSS: %.1f MB\n", float64(getMaxRSS())/(1<<20))
}
