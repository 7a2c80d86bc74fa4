// SPDX-License-Identifier: MIT

package variable

import "github.com/katalvlaran/slidingwindow/window"

// ShortestAtLeast returns the shortest contiguous window whose sum is
// >= target.
//
// Algorithm Outline:
//  1. Advance Right, adding the entering element to sum.
//  2. While sum >= target: record the window if shorter than the best,
//     subtract the leaving element and advance Left.
//
// Elements must be non-negative; a negative element returns
// *window.ArgumentError. A target <= 0 is met by any single element.
// When no window qualifies (including empty input) the error is
// window.ErrNoWindow. Ties keep the earliest window.
//
// Example:
//
//	w, _ := ShortestAtLeast([]int{2, 3, 1, 2, 4, 3}, 7)
//	// w == [4,5], w.Len() == 2
func ShortestAtLeast[T window.Number](seq []T, target T, opts ...window.Option) (window.Window, error) {
	const op = "variable.ShortestAtLeast"
	if err := requireNonNegative(op, seq); err != nil {
		return window.Window{}, err
	}
	o := window.NewOptions(opts...)

	var (
		sum   T
		best  window.Window
		found bool
	)
	left := 0
	for right, v := range seq {
		sum += v
		o.Expand(left, right)
		for left <= right && sum >= target {
			if !found || right-left+1 < best.Len() {
				best = window.Window{Left: left, Right: right}
				found = true
				o.Record(left, right)
			}
			sum -= seq[left]
			left++
			o.Shrink(left, right)
		}
	}
	if !found {
		return window.Window{}, window.ErrNoWindow
	}

	return best, nil
}
