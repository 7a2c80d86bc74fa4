// SPDX-License-Identifier: MIT

// Package anagram detects windows of a source sequence that are
// permutations of a pattern: same categories, same counts, same length.
//
// How it works
//
//	A need map starts from the pattern's category counts. As an element
//	enters, its need is decremented; as one leaves, incremented. A matched
//	counter tracks how many pattern categories currently have need exactly
//	zero. The window is a permutation when matched equals the number of
//	distinct pattern categories. Elements outside the pattern never touch
//	the map.
//
//	  src = "eidbaooo", pattern = "ab"
//	  window "ba" at [3,4] → need{a:0, b:0}, matched 2/2 → match
//
// Procedures:
//   - FirstPermutation    — bounds of the earliest match or ErrNoWindow
//   - ContainsPermutation — boolean form
//   - FindAll             — start index of every match, in order
//
// String forms operate on runes; indices are rune offsets.
//
// Complexity: O(n + m) time, O(distinct pattern categories) space.
package anagram
