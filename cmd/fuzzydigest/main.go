// Fuzzydigest computes and compares locality-sensitive digests of files.
//
// Usage:
//
//	fuzzydigest hash FILE...
//	fuzzydigest compare [--ignore-length] A B
//	fuzzydigest scan [--threshold N] [--workers N] DIR
//
// hash prints one 70-character digest per file. compare accepts either
// file paths or digest strings and prints their distance. scan walks a
// directory and reports exact duplicates (identical contents) and
// near-duplicate pairs under the distance threshold.
//
// All file I/O happens here, in the caller; the engine itself only sees
// byte slices.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch cmd := os.Args[1]; cmd {
	case "hash":
		err = runHash(os.Args[2:])
	case "compare":
		err = runCompare(os.Args[2:])
	case "scan":
		err = runScan(os.Args[2:])
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "fuzzydigest: unknown command %q\n\n", cmd)
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "fuzzydigest:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage:
  fuzzydigest hash FILE...                          print digests of files
  fuzzydigest compare [--ignore-length] A B         distance between two files or digest strings
  fuzzydigest scan [--threshold N] [--workers N] DIR  report duplicate and near-duplicate files
`)
}
