// SPDX-License-Identifier: MIT

package fixed

import (
	"cmp"

	"github.com/katalvlaran/slidingwindow/window"
)

// Maxima returns the maximum of every window of width k, in scan order.
//
// Algorithm Outline:
//  1. Keep a deque of indices whose values are strictly decreasing.
//  2. On entry, drop tail indices whose value is <= the entering value.
//  3. Drop the head when it falls left of the window.
//  4. Once the window is k wide, the head is the window maximum.
//
// Each index is pushed and popped at most once: O(n) time, O(k) space.
func Maxima[T cmp.Ordered](seq []T, k int, opts ...window.Option) ([]T, error) {
	return extrema("fixed.Maxima", seq, k, func(tail, in T) bool { return tail <= in }, opts)
}

// Minima returns the minimum of every window of width k, in scan order.
func Minima[T cmp.Ordered](seq []T, k int, opts ...window.Option) ([]T, error) {
	return extrema("fixed.Minima", seq, k, func(tail, in T) bool { return tail >= in }, opts)
}

// extrema runs the monotonic-deque scan. dominated(tail, in) reports whether
// the tail element can never again be the window extreme once in has entered.
func extrema[T cmp.Ordered](op string, seq []T, k int, dominated func(tail, in T) bool, opts []window.Option) ([]T, error) {
	if err := validate(op, len(seq), k); err != nil {
		return nil, err
	}
	o := window.NewOptions(opts...)

	out := make([]T, 0, len(seq)-k+1)
	dq := make([]int, 0, k)
	left := 0
	for right, v := range seq {
		for len(dq) > 0 && dominated(seq[dq[len(dq)-1]], v) {
			dq = dq[:len(dq)-1]
		}
		dq = append(dq, right)
		o.Expand(left, right)
		if right-left+1 < k {
			continue
		}
		// head index is always inside [left, right] here
		out = append(out, seq[dq[0]])
		o.Record(left, right)
		if dq[0] == left {
			dq = dq[1:]
		}
		left++
		o.Shrink(left, right)
	}

	return out, nil
}
