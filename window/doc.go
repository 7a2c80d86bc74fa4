// SPDX-License-Identifier: MIT

// Package window holds the small set of types shared by every sliding-window
// procedure in this module: the Window bounds, the Number constraint,
// functional options with step hooks, and the sentinel errors.
//
// What
//
//   - Window is a closed index range [Left, Right] over an input sequence.
//     Both bounds only move forward during a scan.
//   - Options carry optional hooks fired on every expansion, shrink and
//     record step, plus a verbose trace writer.
//   - ErrNoWindow reports "no valid window exists"; it is never conflated
//     with a zero length or an empty result.
//   - ErrInvalidArgument (wrapped by *ArgumentError) reports a rejected
//     configuration such as k <= 0.
//
// What it is not
//
//	There is no shared window-state type here. Each algorithm package keeps
//	its own state shape (running sum, distinct counter, signed need map),
//	because the invariant of each procedure lives in that shape.
//
// Usage:
//
//	steps := 0
//	res, err := fixed.MaxSum(seq, 3, window.WithOnExpand(func(window.Window) { steps++ }))
//	if errors.Is(err, window.ErrNoWindow) {
//		// sequence shorter than k
//	}
package window
