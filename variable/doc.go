// SPDX-License-Identifier: MIT

// Package variable implements the two variable-size window searches:
// the smallest window meeting a threshold and the longest window for
// which a caller-supplied state stays valid.
//
// What
//
//   - ShortestAtLeast: expand Right, accumulating a sum; while sum >= target,
//     record the window if shorter, then shrink from the Left.
//   - Longest: expand Right, feeding the entering element to a State; while
//     the State is invalid, shrink from the Left; after validity is
//     restored, record the window if longer.
//
// The State interface is the pluggable validity predicate. Two concrete
// states ship with the package:
//
//	SumAtMost — window sum <= Limit (non-negative elements)
//	Unique    — no category appears twice
//
// Non-applicability
//
//	Both sum-based searches rely on the sum growing monotonically as the
//	window expands. A negative element breaks that invariant, so it is
//	rejected with *window.ArgumentError rather than silently producing a
//	wrong length.
//
// Complexity: O(n) time. Left and Right each advance at most n times.
package variable
