package fuzzydigest_test

import (
	"fmt"
	"strings"

	fuzzydigest "github.com/alexezh/shadow-sub002"
)

func ExampleComputeDigest() {
	data := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog. ", 8))
	d, err := fuzzydigest.ComputeDigest(data)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(d.String()))
	// Output: 70
}

func ExampleDistance() {
	base := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog. ", 50))
	variant := append([]byte(nil), base...)
	variant[100] = 'X'
	unrelated := make([]byte, len(base))
	for i := range unrelated {
		unrelated[i] = byte(i*7 + 3)
	}

	a, _ := fuzzydigest.ComputeDigest(base)
	b, _ := fuzzydigest.ComputeDigest(variant)
	c, _ := fuzzydigest.ComputeDigest(unrelated)

	fmt.Println(fuzzydigest.Distance(a, a) == 0)
	fmt.Println(fuzzydigest.Distance(a, b) < fuzzydigest.Distance(a, c))
	// Output:
	// true
	// true
}

func ExampleParseDigest() {
	data := []byte(strings.Repeat("content-addressed storage block ", 16))
	d, _ := fuzzydigest.ComputeDigest(data)

	parsed, err := fuzzydigest.ParseDigest(d.String())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(parsed == d)
	// Output: true
}
