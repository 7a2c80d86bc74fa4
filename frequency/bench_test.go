// SPDX-License-Identifier: MIT

package frequency_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/slidingwindow/frequency"
)

var benchInput = strings.Repeat("AABABBACCDBA", 10_000)

// BenchmarkLongestKDistinctString benchmarks K=3 over 120k runes.
func BenchmarkLongestKDistinctString(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := frequency.LongestKDistinctString(benchInput, 3); err != nil {
			b.Fatalf("LongestKDistinctString failed: %v", err)
		}
	}
}

// BenchmarkLongestReplaceableString benchmarks K=4 over 120k runes.
func BenchmarkLongestReplaceableString(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := frequency.LongestReplaceableString(benchInput, 4); err != nil {
			b.Fatalf("LongestReplaceableString failed: %v", err)
		}
	}
}
