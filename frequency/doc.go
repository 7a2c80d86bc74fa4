// SPDX-License-Identifier: MIT

// Package frequency finds the longest windows constrained by how often
// categories occur inside them.
//
// What
//
//   - LongestKDistinct: the longest window holding at most K distinct
//     categories. A count-per-category map is kept and zero-count entries
//     are deleted, so len(map) is always the distinct count.
//   - LongestReplaceable: the longest window where
//     size − (count of the most frequent category) <= K, i.e. at most K
//     elements would have to change to make the window uniform.
//
// Stale maximum
//
//	LongestReplaceable never lowers its max frequency when elements leave.
//	The window only grows while that maximum is achieved by a category
//	still inside it, so a stale value can never inflate the answer; it only
//	stops the window from growing. Because of that a violation shrinks the
//	window by exactly one element instead of looping until valid.
//
// Both procedures take string forms that operate on runes; window bounds
// are then rune offsets.
//
// Complexity: O(n) time, O(distinct categories) extra space.
package frequency
