// SPDX-License-Identifier: MIT

package frequency

import "github.com/katalvlaran/slidingwindow/window"

// LongestKDistinct returns the longest window holding at most k distinct
// categories. Ties keep the earliest window.
//
// Errors:
//   - k < 0                   → *window.ArgumentError
//   - k == 0, or empty seq    → window.ErrNoWindow
//
// Example:
//
//	w, _ := LongestKDistinctString("eceba", 2) // w == [0,2] ("ece")
func LongestKDistinct[T comparable](seq []T, k int, opts ...window.Option) (window.Window, error) {
	if k < 0 {
		return window.Window{}, window.InvalidArgument("frequency.LongestKDistinct", "k", k, "must be >= 0")
	}
	o := window.NewOptions(opts...)

	var (
		best  window.Window
		found bool
	)
	dc := newDistinctCounter[T]()
	left := 0
	for right, v := range seq {
		dc.add(v)
		o.Expand(left, right)
		for dc.distinct() > k {
			dc.remove(seq[left])
			left++
			o.Shrink(left, right)
		}
		if left <= right && (!found || right-left+1 > best.Len()) {
			best = window.Window{Left: left, Right: right}
			found = true
			o.Record(left, right)
		}
	}
	if !found {
		return window.Window{}, window.ErrNoWindow
	}

	return best, nil
}

// LongestKDistinctString is LongestKDistinct over the runes of s.
func LongestKDistinctString(s string, k int, opts ...window.Option) (window.Window, error) {
	return LongestKDistinct([]rune(s), k, opts...)
}
