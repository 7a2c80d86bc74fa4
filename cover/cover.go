// SPDX-License-Identifier: MIT

package cover

import "github.com/katalvlaran/slidingwindow/window"

// MinWindow returns the shortest window of src containing every element of
// pattern with multiplicity. Ties keep the earliest window.
//
// Errors:
//   - empty pattern                     → *window.ArgumentError
//   - no covering window, or empty src  → window.ErrNoWindow
func MinWindow[T comparable](src, pattern []T, opts ...window.Option) (window.Window, error) {
	if len(pattern) == 0 {
		return window.Window{}, window.InvalidArgument("cover.MinWindow", "len(pattern)", 0, "must be >= 1")
	}
	o := window.NewOptions(opts...)

	var (
		best  window.Window
		found bool
	)
	cv := newCoverage(pattern)
	left := 0
	for right, v := range src {
		cv.enter(v)
		o.Expand(left, right)
		for cv.covered() {
			if !found || right-left+1 < best.Len() {
				best = window.Window{Left: left, Right: right}
				found = true
				o.Record(left, right)
			}
			cv.leave(src[left])
			left++
			o.Shrink(left, right)
		}
	}
	if !found {
		return window.Window{}, window.ErrNoWindow
	}

	return best, nil
}

// MinWindowString returns the shortest substring of s containing every rune
// of t with multiplicity.
//
// Example:
//
//	sub, _ := MinWindowString("ADOBECODEBANC", "ABC") // "BANC"
func MinWindowString(s, t string, opts ...window.Option) (string, error) {
	src := []rune(s)
	w, err := MinWindow(src, []rune(t), opts...)
	if err != nil {
		return "", err
	}

	return string(src[w.Left : w.Right+1]), nil
}
