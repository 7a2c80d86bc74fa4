// SPDX-License-Identifier: MIT

package variable

import "github.com/katalvlaran/slidingwindow/window"

// Longest returns the longest contiguous window for which st stays valid.
//
// Algorithm Outline:
//  1. Advance Right and call st.Add with the entering element.
//  2. While !st.Valid(), call st.Remove with the leaving element and
//     advance Left.
//  3. With validity restored, record the window if longer than the best.
//
// st must be empty on entry. Longest drains it before returning, so the
// same State can be reused for another scan. Ties keep the earliest window.
//
// Errors:
//   - nil st                          → *window.ArgumentError
//   - empty seq, or no valid window   → window.ErrNoWindow
func Longest[T any](seq []T, st State[T], opts ...window.Option) (window.Window, error) {
	if st == nil {
		return window.Window{}, window.InvalidArgument("variable.Longest", "state", nil, "must not be nil")
	}
	o := window.NewOptions(opts...)

	var (
		best  window.Window
		found bool
	)
	left := 0
	for right, v := range seq {
		st.Add(v)
		o.Expand(left, right)
		for left <= right && !st.Valid() {
			st.Remove(seq[left])
			left++
			o.Shrink(left, right)
		}
		if left <= right && (!found || right-left+1 > best.Len()) {
			best = window.Window{Left: left, Right: right}
			found = true
			o.Record(left, right)
		}
	}
	// leave st empty for the next caller
	for ; left < len(seq); left++ {
		st.Remove(seq[left])
	}
	if !found {
		return window.Window{}, window.ErrNoWindow
	}

	return best, nil
}

// LongestSumAtMost returns the longest window whose sum is <= limit.
// Elements must be non-negative.
func LongestSumAtMost[T window.Number](seq []T, limit T, opts ...window.Option) (window.Window, error) {
	if err := requireNonNegative("variable.LongestSumAtMost", seq); err != nil {
		return window.Window{}, err
	}

	return Longest[T](seq, NewSumAtMost(limit), opts...)
}

// LongestUnique returns the longest window in which no element repeats.
func LongestUnique[T comparable](seq []T, opts ...window.Option) (window.Window, error) {
	return Longest[T](seq, NewUnique[T](), opts...)
}

// LongestUniqueString is LongestUnique over the runes of s. Window bounds
// are rune offsets.
//
// Example:
//
//	w, _ := LongestUniqueString("abcabcbb") // w == [0,2] ("abc")
func LongestUniqueString(s string, opts ...window.Option) (window.Window, error) {
	return LongestUnique([]rune(s), opts...)
}
