// SPDX-License-Identifier: MIT

// Package fixed evaluates an aggregate over every contiguous window of a
// constant width k and reports the best one.
//
// 🚀 What is a fixed-size window?
//
//	Right advances across every index and the entering element is added to
//	a running aggregate. Once the window is exactly k wide the aggregate is
//	evaluated, then the leaving element is subtracted and Left advances.
//	Nothing is ever recomputed from scratch.
//
//	  seq = [1 4 2 10 23 3 1 0 20], k = 4
//	         └──┬──┘             first window, sum 17
//	           └──┬───┘          slide: +23 −1, sum 39  ← best
//
// ✨ Procedures:
//   - MaxSum / MinSum — best window sum with its bounds (earliest wins ties)
//   - Sums            — every window sum, in order
//   - MaxAverage      — best window mean as float64
//   - Maxima / Minima — per-window extreme via a monotonic deque
//
// ⚙️ Usage:
//
//	res, err := fixed.MaxSum([]int{1, 4, 2, 10, 23, 3, 1, 0, 20}, 4)
//	if errors.Is(err, window.ErrNoWindow) {
//		// fewer than k elements
//	}
//	fmt.Println(res.Value, res.Window) // 39 [1,4]
//
// Errors:
//   - k <= 0           → *window.ArgumentError (errors.Is ErrInvalidArgument)
//   - len(seq) < k     → window.ErrNoWindow (covers the empty input)
//
// Complexity: O(n) time, O(1) extra space (O(k) for Maxima/Minima).
package fixed
